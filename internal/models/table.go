package models

import (
	"errors"
	"strings"
	"time"
)

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusInactive  TableStatus = "inactive"
)

// Table is a dining table configured for the store floor plan.
type Table struct {
	ID        string      `json:"id"`
	Number    int         `json:"number"`
	Name      *string     `json:"name"`
	Seats     int         `json:"seats"`
	Zone      *string     `json:"zone"`
	Status    TableStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type ReservationStatus string

const (
	ReservationStatusBooked    ReservationStatus = "booked"
	ReservationStatusSeated    ReservationStatus = "seated"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

type Reservation struct {
	ID           string            `json:"id"`
	TableID      string            `json:"table_id"`
	CustomerName string            `json:"customer_name"`
	Phone        *string           `json:"phone"`
	PartySize    int               `json:"party_size"`
	ReservedAt   time.Time         `json:"reserved_at"`
	Status       ReservationStatus `json:"status"`
}

type CreateTableRequest struct {
	Number int     `json:"number"`
	Name   *string `json:"name,omitempty"`
	Seats  int     `json:"seats"`
	Zone   *string `json:"zone,omitempty"`
}

func (r *CreateTableRequest) Validate() error {
	if r.Number <= 0 {
		return errors.New("number must be positive")
	}
	if r.Seats <= 0 {
		return errors.New("seats must be positive")
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			r.Name = nil
		} else {
			r.Name = &name
		}
	}
	return nil
}

type UpdateTableRequest struct {
	Number *int         `json:"number,omitempty"`
	Name   *string      `json:"name,omitempty"`
	Seats  *int         `json:"seats,omitempty"`
	Zone   *string      `json:"zone,omitempty"`
	Status *TableStatus `json:"status,omitempty"`
}

func (r *UpdateTableRequest) Validate() error {
	if r.Number != nil && *r.Number <= 0 {
		return errors.New("number must be positive")
	}
	if r.Seats != nil && *r.Seats <= 0 {
		return errors.New("seats must be positive")
	}
	if r.Status != nil {
		switch *r.Status {
		case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusInactive:
		default:
			return errors.New("status is not valid")
		}
	}
	return nil
}
