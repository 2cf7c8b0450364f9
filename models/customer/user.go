package customer

import (
	"time"

	"plumber-backend/constants"
	"plumber-backend/utils"

	"gorm.io/gorm"
)

// User is a portal identity. Role is either customer or staff.
type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName string     `gorm:"type:varchar(30);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(30);not null" json:"last_name"`
	Role      string     `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate hashes the password and defaults the role.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.Role == "" {
		u.Role = constants.RoleCustomer
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// IsStaff reports whether the user may access staff endpoints.
func (u *User) IsStaff() bool {
	return u.Role == constants.RoleStaff
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	return name
}
