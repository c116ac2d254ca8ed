package models

import "time"

type User struct {
	ID         string     `json:"id" db:"id"`
	Email      string     `json:"email" db:"email"`
	FullName   string     `json:"full_name" db:"full_name"`
	Role       Role       `json:"role" db:"role"`
	Department *string    `json:"department,omitempty" db:"department"`
	Phone      *string    `json:"phone,omitempty" db:"phone"`
	IsActive   bool       `json:"is_active" db:"is_active"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
	LastLogin  *time.Time `json:"last_login,omitempty" db:"last_login"`
}
