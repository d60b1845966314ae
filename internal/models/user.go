package models

import (
	"errors"
	"strings"
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleCashier UserRole = "cashier"
)

// ValidUserRole reports whether role is one of the assignable roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	RoleID    *string    `json:"role_id"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	RoleID   *string  `json:"role_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return errors.New("username is required")
	}
	if len(r.Username) > 50 {
		return errors.New("username cannot exceed 50 characters")
	}

	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email is not valid")
	}

	if !ValidUserRole(r.Role) {
		return errors.New("role must be one of admin, manager, cashier")
	}

	return nil
}

type UpdateUserRequest struct {
	Email  *string   `json:"email,omitempty"`
	Role   *UserRole `json:"role,omitempty"`
	RoleID *string   `json:"role_id,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email == "" || !strings.Contains(email, "@") {
			return errors.New("email is not valid")
		}
		r.Email = &email
	}

	if r.Role != nil && !ValidUserRole(*r.Role) {
		return errors.New("role must be one of admin, manager, cashier")
	}

	return nil
}

// UserListRequest holds the paging and filter parameters for listing users.
type UserListRequest struct {
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Role     *UserRole `json:"role,omitempty"`
	Search   *string   `json:"search,omitempty"`
}
