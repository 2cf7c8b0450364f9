package auth

// RegisterRequest creates a portal account plus its customer profile.
type RegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone,omitempty"`
	ServiceAreaID *uint  `json:"service_area_id,omitempty"`
}

// LoginRequest authenticates a portal user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
