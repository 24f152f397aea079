package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account for data transfer between layers. The
// password hash never leaves the repository layer.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Age        int       `json:"age,omitempty"`
	FarmerType string    `json:"farmerType,omitempty"`
	Location   string    `json:"location,omitempty"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
