package mailer

// Service sends booking emails: customer-facing confirmations and the
// staff alert for new bookings.
type Service interface {
	SendBookingReceived(toEmail, toName, bookingID, packageTitle string, totalPrice float64) error
	SendStatusChanged(toEmail, toName, bookingID, packageTitle, newStatus string) error
	SendBookingAlert(toEmail, bookingID, packageTitle, customerName string, totalPrice float64) error
}
