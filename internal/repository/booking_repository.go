package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create checks room/bed availability and inserts the booking in one
	// serializable transaction. A clash with a non-cancelled booking on an
	// overlapping date range fails with CapacityConflictError.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error)
	// UpdateStatus writes the new status and, when notes is non-nil, the
	// admin notes, as a single row update guarded by the expected current
	// status. It returns pgx.ErrNoRows semantics as (nil, nil) when the
	// guard does not match.
	UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus, notes *string) (*domain.Booking, error)
	// UpdateNotes replaces the admin notes without touching the status.
	UpdateNotes(ctx context.Context, bookingID string, notes string) (*domain.Booking, error)
	// CheckAvailability re-runs the creation-time conflict check for an
	// existing booking's rooms and dates, ignoring the booking itself.
	// Reactivating a cancelled booking must not double-book rooms taken
	// while it was cancelled.
	CheckAvailability(ctx context.Context, b *domain.Booking) error
	// Delete removes a booking only while its status is terminal.
	Delete(ctx context.Context, bookingID string) (bool, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingCols = `booking_id, package_id, package_title, package_description, package_price, package_features,
customer_name, customer_email, customer_phone,
person_count, room_type, room_numbers, bed_numbers,
check_in_date, check_out_date, booking_date,
price_per_person, total_price, status, admin_notes, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.BookingID, &b.PackageID, &b.PackageTitle, &b.PackageDescription, &b.PackagePrice, &b.PackageFeatures,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.PersonCount, &b.RoomType, &b.RoomNumbers, &b.BedNumbers,
		&b.CheckInDate, &b.CheckOutDate, &b.BookingDate,
		&b.PricePerPerson, &b.TotalPrice, &b.Status, &b.AdminNotes, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// createRetries bounds retries on serialization failures under
// concurrent checkout.
const createRetries = 3

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		err := r.createOnce(ctx, b)
		if err == nil {
			return nil
		}
		if isSerializationFailure(err) {
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

func (r *bookingRepository) createOnce(ctx context.Context, b *domain.Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Availability check: any non-cancelled booking holding one of the
	// requested rooms or beds on an overlapping [in, out) range blocks
	// creation. Row locks serialize concurrent checkouts racing for the
	// same rooms.
	const conflictQ = `SELECT booking_id, room_numbers, bed_numbers FROM bookings
		WHERE status <> 'cancelled'
		  AND check_in_date < $2 AND check_out_date > $1
		  AND (room_numbers && $3 OR bed_numbers && $4)
		LIMIT 1
		FOR UPDATE`

	rooms := b.RoomNumbers
	if rooms == nil {
		rooms = []int{}
	}
	beds := b.BedNumbers
	if beds == nil {
		beds = []int{}
	}

	var conflictID string
	var conflictRooms, conflictBeds []int
	err = tx.QueryRow(ctx, conflictQ, b.CheckInDate, b.CheckOutDate, rooms, beds).
		Scan(&conflictID, &conflictRooms, &conflictBeds)
	switch {
	case err == nil:
		return &domain.CapacityConflictError{
			ConflictingBookingID: conflictID,
			RoomNumbers:          intersect(rooms, conflictRooms),
			BedNumbers:           intersect(beds, conflictBeds),
		}
	case errors.Is(err, pgx.ErrNoRows):
		// rooms are free
	default:
		return err
	}

	const insertQ = `INSERT INTO bookings (
		booking_id, package_id, package_title, package_description, package_price, package_features,
		customer_name, customer_email, customer_phone,
		person_count, room_type, room_numbers, bed_numbers,
		check_in_date, check_out_date,
		price_per_person, total_price, status, admin_notes
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,'pending',$18)
	RETURNING booking_date, updated_at`

	err = tx.QueryRow(ctx, insertQ,
		b.BookingID, b.PackageID, b.PackageTitle, b.PackageDescription, b.PackagePrice, b.PackageFeatures,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.PersonCount, b.RoomType, rooms, beds,
		b.CheckInDate, b.CheckOutDate,
		b.PricePerPerson, b.TotalPrice, b.AdminNotes,
	).Scan(&b.BookingDate, &b.UpdatedAt)
	if err != nil {
		return err
	}
	b.Status = domain.BookingPending

	return tx.Commit(ctx)
}

func (r *bookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE booking_id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	b, err := scanBooking(r.pool.QueryRow(ctx, q, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *bookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	limit, offset = clampPagination(limit, offset)

	const q = `SELECT ` + bookingCols + ` FROM bookings ORDER BY booking_date DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	limit, offset = clampPagination(limit, offset)

	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE status=$1 ORDER BY booking_date DESC LIMIT $2 OFFSET $3`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus, notes *string) (*domain.Booking, error) {
	// Status and notes change in one UPDATE so a partial write is never
	// observable. The WHERE status guard rejects a transition raced by
	// another admin.
	const q = `UPDATE bookings
		SET status=$3, admin_notes=COALESCE($4, admin_notes), updated_at=now()
		WHERE booking_id=$1 AND status=$2
		RETURNING ` + bookingCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	b, err := scanBooking(r.pool.QueryRow(ctx, q, bookingID, from, to, notes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *bookingRepository) UpdateNotes(ctx context.Context, bookingID string, notes string) (*domain.Booking, error) {
	const q = `UPDATE bookings SET admin_notes=$2, updated_at=now() WHERE booking_id=$1 RETURNING ` + bookingCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	b, err := scanBooking(r.pool.QueryRow(ctx, q, bookingID, notes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *bookingRepository) CheckAvailability(ctx context.Context, b *domain.Booking) error {
	const q = `SELECT booking_id, room_numbers, bed_numbers FROM bookings
		WHERE status <> 'cancelled'
		  AND booking_id <> $1
		  AND check_in_date < $3 AND check_out_date > $2
		  AND (room_numbers && $4 OR bed_numbers && $5)
		LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rooms := b.RoomNumbers
	if rooms == nil {
		rooms = []int{}
	}
	beds := b.BedNumbers
	if beds == nil {
		beds = []int{}
	}

	var conflictID string
	var conflictRooms, conflictBeds []int
	err := r.pool.QueryRow(ctx, q, b.BookingID, b.CheckInDate, b.CheckOutDate, rooms, beds).
		Scan(&conflictID, &conflictRooms, &conflictBeds)
	switch {
	case err == nil:
		return &domain.CapacityConflictError{
			ConflictingBookingID: conflictID,
			RoomNumbers:          intersect(rooms, conflictRooms),
			BedNumbers:           intersect(beds, conflictBeds),
		}
	case errors.Is(err, pgx.ErrNoRows):
		return nil
	default:
		return err
	}
}

func (r *bookingRepository) Delete(ctx context.Context, bookingID string) (bool, error) {
	const q = `DELETE FROM bookings WHERE booking_id=$1 AND status IN ('cancelled','completed')`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, bookingID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

func intersect(a, b []int) []int {
	var out []int
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
