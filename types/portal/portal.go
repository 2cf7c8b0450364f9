package portal

// QuickBookingRequest is the short portal booking form: a date plus a
// named time slot instead of a full datetime, with profile data filling
// the contact fields.
type QuickBookingRequest struct {
	ServiceID     uint   `json:"service_id"`
	PreferredDate string `json:"preferred_date"` // YYYY-MM-DD
	PreferredTime string `json:"preferred_time"` // morning | afternoon | evening
	Description   string `json:"description"`
	IsEmergency   bool   `json:"is_emergency"`
}

// BookFromQuoteRequest schedules a booking from an accepted quote. The
// contact fields come from the quote itself.
type BookFromQuoteRequest struct {
	PreferredDate string `json:"preferred_date"` // YYYY-MM-DD
	PreferredTime string `json:"preferred_time"` // morning | afternoon | evening
	Description   string `json:"description,omitempty"`
}

// ProfileUpdateRequest updates the user identity and profile fields
// together, the way the profile form does.
type ProfileUpdateRequest struct {
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email"`
	Phone                  *string `json:"phone,omitempty"`
	Address                *string `json:"address,omitempty"`
	City                   *string `json:"city,omitempty"`
	PostalCode             *string `json:"postal_code,omitempty"`
	ServiceAreaID          *uint   `json:"service_area_id,omitempty"`
	EmergencyContact       *string `json:"emergency_contact,omitempty"`
	EmergencyPhone         *string `json:"emergency_phone,omitempty"`
	PreferredContactMethod string  `json:"preferred_contact_method,omitempty"`
	EmailNotifications     *bool   `json:"email_notifications,omitempty"`
	SMSNotifications       *bool   `json:"sms_notifications,omitempty"`
}
