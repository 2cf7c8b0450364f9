package intake

// BookingCreateRequest is the booking form payload. PreferredDate arrives
// as a string so both RFC3339 and the datetime-local format are accepted.
type BookingCreateRequest struct {
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ServiceID     uint   `json:"service_id"`
	ServiceAreaID *uint  `json:"service_area_id,omitempty"`
	Urgency       string `json:"urgency"`
	PreferredDate string `json:"preferred_date"`
	Description   string `json:"description"`
}

// ContactCreateRequest is the contact form payload. Phone is optional.
type ContactCreateRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	ServiceAreaID *uint  `json:"service_area_id,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

// FeedbackCreateRequest is the customer feedback form payload. Submissions
// enter moderation unapproved.
type FeedbackCreateRequest struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Title        string `json:"title,omitempty"`
	ServiceID    *uint  `json:"service_id,omitempty"`
	LocationID   *uint  `json:"location_id,omitempty"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// SubmissionResponse reports the created record and whether the
// confirmation email went out. The record exists either way.
type SubmissionResponse struct {
	ID        uint `json:"id"`
	EmailSent bool `json:"email_sent"`
}
