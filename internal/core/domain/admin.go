package domain

import (
	"errors"
	"time"
)

var (
	ErrEmployeeIDTaken = errors.New("employee id already in use")
	ErrAdminNotFound   = errors.New("admin profile not found")
)

// AdminProfile is the directory entry created alongside an admin's User
// record. It duplicates name/email/role from the user for listing
// convenience and must never exist without that user.
type AdminProfile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	Role       Role      `json:"role"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
