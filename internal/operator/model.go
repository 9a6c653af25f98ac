package operator

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

type Operator struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	Role         Role      `gorm:"default:agent" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
