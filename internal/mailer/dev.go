package mailer

import (
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/logger"
)

// DevMailer logs emails instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendBookingReceived(toEmail, toName, bookingID, packageTitle string, totalPrice float64) error {
	logger.Info("[DEV MAIL] Booking received",
		"to", toEmail,
		"name", toName,
		"booking_id", bookingID,
		"package", packageTitle,
		"total", totalPrice,
	)
	return nil
}

func (d *DevMailer) SendBookingAlert(toEmail, bookingID, packageTitle, customerName string, totalPrice float64) error {
	logger.Info("[DEV MAIL] New booking alert",
		"to", toEmail,
		"booking_id", bookingID,
		"package", packageTitle,
		"customer", customerName,
		"total", totalPrice,
	)
	return nil
}

func (d *DevMailer) SendStatusChanged(toEmail, toName, bookingID, packageTitle, newStatus string) error {
	logger.Info("[DEV MAIL] Booking status changed",
		"to", toEmail,
		"name", toName,
		"booking_id", bookingID,
		"package", packageTitle,
		"status", newStatus,
	)
	return nil
}
