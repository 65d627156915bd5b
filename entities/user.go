package entities

import (
	"github.com/google/uuid"
	"time"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Phone    string    `json:"phone,omitempty"`
	Role     string    `json:"role"` // admin, donor, receptor, driver
	IsActive bool      `gorm:"default:true" json:"is_active"`

	// Pickup/delivery address (donors and receptors)
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`

	// Driver credentials
	LicenseNumber string `json:"license_number,omitempty"`
	VehiclePlate  string `json:"vehicle_plate,omitempty"`
	Availability  string `json:"availability,omitempty"` // available, en_route, inactive

	Donations []*Donation `gorm:"foreignKey:DonorID"`
	Timestamp
}
