package notify

import (
	"fmt"
	"html"
	"os"

	bookingModel "plumber-backend/models/booking"
	contactModel "plumber-backend/models/contact"
	quoteModel "plumber-backend/models/quote"
)

const dateLayout = "January 2, 2006 at 3:04 PM"

type adminAlertBody struct {
	subject string
	text    string
	html    string
}

func emergencyPhone() string {
	if p := os.Getenv("EMERGENCY_PHONE"); p != "" {
		return p
	}
	return "(647) 551-8342"
}

func bookingConfirmation(b *bookingModel.Booking) (subject, text, htmlBody string) {
	location := "your area"
	if b.ServiceArea != nil {
		location = b.ServiceArea.Name
	}
	subject = fmt.Sprintf("Booking Confirmation - %s in %s", b.Service.Name, location)

	preferred := b.PreferredDate.Format(dateLayout)
	text = fmt.Sprintf(`Dear %s,

Thank you for choosing SPRO Plumbing! We've received your service request for %s in %s.

Booking Details:
- Service: %s
- Location: %s
- Preferred Date: %s
- Urgency: %s
- Address: %s

Our team will contact you at %s within 2 hours to confirm the appointment.

For emergencies, call: %s

Best regards,
SPRO Plumbing Team
`, b.CustomerName, b.Service.Name, location, b.Service.Name, location, preferred, b.Urgency, b.Address, b.Phone, emergencyPhone())

	htmlBody = fmt.Sprintf(`<h2>Thank you for choosing SPRO Plumbing!</h2>
<p>Dear %s,</p>
<p>We've received your service request for <strong>%s</strong> in <strong>%s</strong>.</p>
<ul>
<li>Service: %s</li>
<li>Location: %s</li>
<li>Preferred Date: %s</li>
<li>Urgency: %s</li>
<li>Address: %s</li>
</ul>
<p>Our team will contact you at %s within 2 hours to confirm the appointment.</p>
<p>For emergencies, call: <strong>%s</strong></p>`,
		html.EscapeString(b.CustomerName), html.EscapeString(b.Service.Name), html.EscapeString(location),
		html.EscapeString(b.Service.Name), html.EscapeString(location), preferred, b.Urgency,
		html.EscapeString(b.Address), html.EscapeString(b.Phone), emergencyPhone())
	return
}

func adminBookingAlert(b *bookingModel.Booking) adminAlertBody {
	subject := fmt.Sprintf("New Booking #%d - %s (%s)", b.ID, b.Service.Name, b.Urgency)
	text := fmt.Sprintf(`New booking received.

Customer: %s
Email: %s
Phone: %s
Service: %s
Urgency: %s
Preferred Date: %s
Address: %s

Description:
%s
`, b.CustomerName, b.Email, b.Phone, b.Service.Name, b.Urgency, b.PreferredDate.Format(dateLayout), b.Address, b.Description)
	return adminAlertBody{
		subject: subject,
		text:    text,
		html: fmt.Sprintf("<h3>New booking #%d</h3><p>%s requested <strong>%s</strong> (%s urgency).</p><p>Phone: %s<br>Email: %s</p><p>%s</p>",
			b.ID, html.EscapeString(b.CustomerName), html.EscapeString(b.Service.Name), b.Urgency,
			html.EscapeString(b.Phone), html.EscapeString(b.Email), html.EscapeString(b.Description)),
	}
}

func bookingSMS(b *bookingModel.Booking) string {
	return fmt.Sprintf("SPRO Plumbing: we received your %s request for %s. We'll call to confirm. Emergencies: %s",
		b.Service.Name, b.PreferredDate.Format("Jan 2, 3:04 PM"), emergencyPhone())
}

func contactConfirmation(msg *contactModel.ContactMessage) (subject, text, htmlBody string) {
	subject = fmt.Sprintf("Message Received - %s", msg.Subject)
	text = fmt.Sprintf(`Dear %s,

Thank you for contacting SPRO Plumbing! We've received your message about "%s" and will get back to you within 24 hours.

Your Message:
%s

For urgent emergencies, call: %s

Best regards,
SPRO Plumbing Team
`, msg.Name, msg.Subject, msg.Message, emergencyPhone())

	htmlBody = fmt.Sprintf(`<h2>Message received</h2>
<p>Dear %s,</p>
<p>Thank you for contacting SPRO Plumbing! We've received your message about "<strong>%s</strong>" and will get back to you within 24 hours.</p>
<blockquote>%s</blockquote>
<p>For urgent emergencies, call: <strong>%s</strong></p>`,
		html.EscapeString(msg.Name), html.EscapeString(msg.Subject), html.EscapeString(msg.Message), emergencyPhone())
	return
}

func adminContactAlert(msg *contactModel.ContactMessage) adminAlertBody {
	subject := fmt.Sprintf("New Contact Message #%d - %s", msg.ID, msg.Subject)
	phone := "not provided"
	if msg.Phone != nil && *msg.Phone != "" {
		phone = *msg.Phone
	}
	text := fmt.Sprintf(`New contact message received.

From: %s
Email: %s
Phone: %s
Subject: %s
Priority: %s

Message:
%s
`, msg.Name, msg.Email, phone, msg.Subject, msg.Priority, msg.Message)
	return adminAlertBody{
		subject: subject,
		text:    text,
		html: fmt.Sprintf("<h3>New contact message #%d</h3><p><strong>%s</strong> (%s, %s)</p><p>Subject: %s</p><p>%s</p>",
			msg.ID, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(phone),
			html.EscapeString(msg.Subject), html.EscapeString(msg.Message)),
	}
}

func quoteConfirmation(q *quoteModel.QuoteRequest) (subject, text, htmlBody string) {
	subject = fmt.Sprintf("Quote Request Received - %s", q.Service.Name)
	text = fmt.Sprintf(`Dear %s,

Thank you for requesting a quote from SPRO Plumbing! We've received your request for %s.

Your estimated total is $%s. This is a non-binding estimate; our team will review your request and send a final quote.

For emergencies, call: %s

Best regards,
SPRO Plumbing Team
`, q.CustomerName, q.Service.Name, q.EstimatedTotal.StringFixed(2), emergencyPhone())

	htmlBody = fmt.Sprintf(`<h2>Quote request received</h2>
<p>Dear %s,</p>
<p>We've received your quote request for <strong>%s</strong>.</p>
<p>Your estimated total is <strong>$%s</strong>. This is a non-binding estimate; our team will review your request and send a final quote.</p>
<p>For emergencies, call: <strong>%s</strong></p>`,
		html.EscapeString(q.CustomerName), html.EscapeString(q.Service.Name), q.EstimatedTotal.StringFixed(2), emergencyPhone())
	return
}

func adminQuoteAlert(q *quoteModel.QuoteRequest) adminAlertBody {
	subject := fmt.Sprintf("New Quote Request #%d - %s", q.ID, q.Service.Name)
	text := fmt.Sprintf(`New quote request received.

Customer: %s
Email: %s
Phone: %s
Service: %s
Estimated Total: $%s
Address: %s
`, q.CustomerName, q.Email, q.Phone, q.Service.Name, q.EstimatedTotal.StringFixed(2), q.Address)
	return adminAlertBody{
		subject: subject,
		text:    text,
		html: fmt.Sprintf("<h3>New quote request #%d</h3><p>%s requested a quote for <strong>%s</strong>.</p><p>Estimated total: $%s</p><p>Phone: %s<br>Email: %s</p>",
			q.ID, html.EscapeString(q.CustomerName), html.EscapeString(q.Service.Name), q.EstimatedTotal.StringFixed(2),
			html.EscapeString(q.Phone), html.EscapeString(q.Email)),
	}
}
