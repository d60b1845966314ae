package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoleRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRoleRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateRoleRequest{Name: "Shift Lead", Permissions: []string{"orders.void"}},
		},
		{
			name:    "missing name",
			req:     CreateRoleRequest{Permissions: []string{"orders.void"}},
			wantErr: "name is required",
		},
		{
			name:    "name too long",
			req:     CreateRoleRequest{Name: strings.Repeat("x", 101), Permissions: []string{"orders.void"}},
			wantErr: "name cannot exceed 100 characters",
		},
		{
			name:    "no permissions",
			req:     CreateRoleRequest{Name: "Shift Lead"},
			wantErr: "at least one permission is required",
		},
		{
			name:    "blank permission entry",
			req:     CreateRoleRequest{Name: "Shift Lead", Permissions: []string{"orders.void", " "}},
			wantErr: "permissions cannot contain empty entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateRoleRequest_Validate(t *testing.T) {
	name := "  Floor Manager  "
	req := UpdateRoleRequest{Name: &name}

	assert.NoError(t, req.Validate())
	assert.Equal(t, "Floor Manager", *req.Name)

	empty := []string{}
	req = UpdateRoleRequest{Permissions: &empty}
	assert.EqualError(t, req.Validate(), "at least one permission is required")
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateUserRequest{Username: "jordan", Email: "jordan@example.test", Role: RoleCashier},
		},
		{
			name:    "missing username",
			req:     CreateUserRequest{Email: "jordan@example.test", Role: RoleCashier},
			wantErr: "username is required",
		},
		{
			name:    "bad email",
			req:     CreateUserRequest{Username: "jordan", Email: "not-an-email", Role: RoleCashier},
			wantErr: "email is not valid",
		},
		{
			name:    "unknown role",
			req:     CreateUserRequest{Username: "jordan", Email: "jordan@example.test", Role: "superuser"},
			wantErr: "role must be one of admin, manager, cashier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateReasonCodeRequest_Validate(t *testing.T) {
	valid := CreateReasonCodeRequest{Code: "WASTE", Label: "Spoiled item", Category: ReasonCategoryVoid}
	assert.NoError(t, valid.Validate())

	badCategory := CreateReasonCodeRequest{Code: "WASTE", Label: "Spoiled item", Category: "unknown"}
	assert.EqualError(t, badCategory.Validate(), "category is not valid")

	missingLabel := CreateReasonCodeRequest{Code: "WASTE", Category: ReasonCategoryVoid}
	assert.EqualError(t, missingLabel.Validate(), "label is required")
}

func TestCreateTableRequest_Validate(t *testing.T) {
	valid := CreateTableRequest{Number: 4, Seats: 2}
	assert.NoError(t, valid.Validate())

	badNumber := CreateTableRequest{Number: 0, Seats: 2}
	assert.EqualError(t, badNumber.Validate(), "number must be positive")

	badSeats := CreateTableRequest{Number: 4, Seats: -1}
	assert.EqualError(t, badSeats.Validate(), "seats must be positive")
}
