package notify

import (
	"fmt"
	"os"
	"strconv"

	"plumber-backend/logger"
	bookingModel "plumber-backend/models/booking"
	contactModel "plumber-backend/models/contact"
	notificationModel "plumber-backend/models/notification"
	quoteModel "plumber-backend/models/quote"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// EmailSender sends one message with a plain-text body and an HTML
// alternative. Implementations must be safe to call from request handlers.
type EmailSender interface {
	Send(to, subject, textBody, htmlBody string) error
}

// SMSSender sends one text message.
type SMSSender interface {
	Send(to, body string) error
}

// DispatchResult reports what each best-effort send attempt did. The
// primary record is committed before any of this runs; nothing here can
// fail the submission.
type DispatchResult struct {
	CustomerEmailSent bool     `json:"customer_email_sent"`
	AdminAlertSent    bool     `json:"admin_alert_sent"`
	SMSSent           bool     `json:"sms_sent"`
	Errors            []string `json:"errors,omitempty"`
}

func (r *DispatchResult) fail(context string, err error) {
	logger.Error(context, err)
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", context, err))
}

// Notifier dispatches confirmation emails, admin alerts, and optional SMS
// for newly created records.
type Notifier struct {
	db         *gorm.DB
	email      EmailSender
	sms        SMSSender // nil when Twilio is not configured
	adminEmail string
}

// NewNotifier wires senders from the environment. SMS is optional and
// enabled only when Twilio credentials are present.
func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{
		db:         db,
		email:      newSMTPSenderFromEnv(),
		sms:        newTwilioSenderFromEnv(),
		adminEmail: os.Getenv("ADMIN_EMAIL"),
	}
}

// NewNotifierWithSenders injects senders directly. Used by tests.
func NewNotifierWithSenders(db *gorm.DB, email EmailSender, sms SMSSender, adminEmail string) *Notifier {
	return &Notifier{db: db, email: email, sms: sms, adminEmail: adminEmail}
}

// smtpSender delivers through gomail over SMTP. The send is synchronous
// in the request; there is no retry.
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func newSMTPSenderFromEnv() EmailSender {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &smtpSender{
		dialer: gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("SMTP_USERNAME"),
			os.Getenv("SMTP_PASSWORD"),
		),
		from: os.Getenv("DEFAULT_FROM_EMAIL"),
	}
}

func (s *smtpSender) Send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// BookingCreated sends the customer confirmation and the internal alert
// for a new booking. All failures are swallowed into the result.
func (n *Notifier) BookingCreated(b *bookingModel.Booking) DispatchResult {
	var result DispatchResult

	subject, text, html := bookingConfirmation(b)
	if err := n.email.Send(b.Email, subject, text, html); err != nil {
		result.fail("Failed to send booking confirmation email", err)
	} else {
		result.CustomerEmailSent = true
		logger.Success(fmt.Sprintf("Booking confirmation email sent to %s for booking #%d", b.Email, b.ID))
	}

	n.sendAdminAlert(&result,
		notificationModel.TypeBooking,
		fmt.Sprintf("New Booking: %s", b.Service.Name),
		fmt.Sprintf("%s requested %s (%s urgency). Phone: %s", b.CustomerName, b.Service.Name, b.Urgency, b.Phone),
		b.ID,
		adminBookingAlert(b),
	)

	if b.Customer != nil && b.Customer.SMSNotifications && b.Customer.Phone != nil {
		n.sendSMS(&result, *b.Customer.Phone, bookingSMS(b))
	}

	return result
}

// ContactCreated sends the confirmation and alert for a contact message.
func (n *Notifier) ContactCreated(msg *contactModel.ContactMessage) DispatchResult {
	var result DispatchResult

	subject, text, html := contactConfirmation(msg)
	if err := n.email.Send(msg.Email, subject, text, html); err != nil {
		result.fail("Failed to send contact confirmation email", err)
	} else {
		result.CustomerEmailSent = true
		logger.Success(fmt.Sprintf("Contact confirmation email sent to %s for message #%d", msg.Email, msg.ID))
	}

	n.sendAdminAlert(&result,
		notificationModel.TypeContact,
		fmt.Sprintf("New Contact Message: %s", msg.Subject),
		fmt.Sprintf("%s wrote: %s", msg.Name, msg.Message),
		msg.ID,
		adminContactAlert(msg),
	)

	return result
}

// QuoteCreated sends the confirmation and alert for a quote request.
func (n *Notifier) QuoteCreated(q *quoteModel.QuoteRequest) DispatchResult {
	var result DispatchResult

	subject, text, html := quoteConfirmation(q)
	if err := n.email.Send(q.Email, subject, text, html); err != nil {
		result.fail("Failed to send quote confirmation email", err)
	} else {
		result.CustomerEmailSent = true
		logger.Success(fmt.Sprintf("Quote confirmation email sent to %s for quote #%d", q.Email, q.ID))
	}

	n.sendAdminAlert(&result,
		notificationModel.TypeQuote,
		fmt.Sprintf("New Quote Request: %s", q.Service.Name),
		fmt.Sprintf("%s requested a quote for %s. Estimated: $%s", q.CustomerName, q.Service.Name, q.EstimatedTotal.StringFixed(2)),
		q.ID,
		adminQuoteAlert(q),
	)

	return result
}

// sendAdminAlert emails the admin address and, on success, appends one
// AdminNotification row. The row append is itself best-effort.
func (n *Notifier) sendAdminAlert(result *DispatchResult, notifType, title, message string, relatedID uint, body adminAlertBody) {
	if n.adminEmail == "" {
		result.fail("Admin alert skipped", fmt.Errorf("ADMIN_EMAIL not configured"))
		return
	}

	if err := n.email.Send(n.adminEmail, body.subject, body.text, body.html); err != nil {
		result.fail("Failed to send admin alert email", err)
		return
	}
	result.AdminAlertSent = true

	row := notificationModel.AdminNotification{
		Type:      notifType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}
	if err := n.db.Create(&row).Error; err != nil {
		result.fail("Failed to create admin notification", err)
		return
	}
	logger.Info(fmt.Sprintf("Admin notification created: %s", title))
}

func (n *Notifier) sendSMS(result *DispatchResult, to, body string) {
	if n.sms == nil {
		return
	}
	if err := n.sms.Send(to, body); err != nil {
		result.fail("Failed to send SMS confirmation", err)
		return
	}
	result.SMSSent = true
	logger.Success(fmt.Sprintf("SMS confirmation sent to %s", to))
}
