package models

import (
	"errors"
	"strings"
	"time"
)

type ReasonCodeCategory string

const (
	ReasonCategoryVoid     ReasonCodeCategory = "void"
	ReasonCategoryRefund   ReasonCodeCategory = "refund"
	ReasonCategoryDiscount ReasonCodeCategory = "discount"
	ReasonCategoryPaidIn   ReasonCodeCategory = "paid_in"
	ReasonCategoryPaidOut  ReasonCodeCategory = "paid_out"
)

// ValidReasonCategory reports whether category is a known reason category.
func ValidReasonCategory(category ReasonCodeCategory) bool {
	switch category {
	case ReasonCategoryVoid, ReasonCategoryRefund, ReasonCategoryDiscount,
		ReasonCategoryPaidIn, ReasonCategoryPaidOut:
		return true
	}
	return false
}

// ReasonCode is a predefined justification cashiers pick when voiding,
// refunding, or discounting.
type ReasonCode struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Label     string             `json:"label"`
	Category  ReasonCodeCategory `json:"category"`
	IsActive  bool               `json:"is_active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type CreateReasonCodeRequest struct {
	Code     string             `json:"code"`
	Label    string             `json:"label"`
	Category ReasonCodeCategory `json:"category"`
}

func (r *CreateReasonCodeRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	if r.Code == "" {
		return errors.New("code is required")
	}
	if len(r.Code) > 20 {
		return errors.New("code cannot exceed 20 characters")
	}

	r.Label = strings.TrimSpace(r.Label)
	if r.Label == "" {
		return errors.New("label is required")
	}
	if len(r.Label) > 100 {
		return errors.New("label cannot exceed 100 characters")
	}

	if !ValidReasonCategory(r.Category) {
		return errors.New("category is not valid")
	}

	return nil
}

type UpdateReasonCodeRequest struct {
	Label    *string `json:"label,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateReasonCodeRequest) Validate() error {
	if r.Label != nil {
		label := strings.TrimSpace(*r.Label)
		if label == "" {
			return errors.New("label cannot be empty")
		}
		if len(label) > 100 {
			return errors.New("label cannot exceed 100 characters")
		}
		r.Label = &label
	}
	return nil
}
