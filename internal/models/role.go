package models

import (
	"errors"
	"strings"
	"time"
)

// Role is a named set of permissions assignable to back-office users.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Permissions []string  `json:"permissions"`
	IsSystem    bool      `json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission is an entry of the permission catalog, grouped by category for
// display.
type Permission struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Permissions []string `json:"permissions"`
}

func (r *CreateRoleRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Name) > 100 {
		return errors.New("name cannot exceed 100 characters")
	}

	if len(r.Permissions) == 0 {
		return errors.New("at least one permission is required")
	}
	for _, p := range r.Permissions {
		if strings.TrimSpace(p) == "" {
			return errors.New("permissions cannot contain empty entries")
		}
	}

	return nil
}

type UpdateRoleRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("name cannot be empty")
		}
		if len(name) > 100 {
			return errors.New("name cannot exceed 100 characters")
		}
		r.Name = &name
	}

	if r.Permissions != nil && len(*r.Permissions) == 0 {
		return errors.New("at least one permission is required")
	}

	return nil
}
