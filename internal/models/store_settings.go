package models

import (
	"errors"
	"strings"
	"time"
)

// StoreSettings is the full configuration record for a store, grouped the
// way the settings screens edit it.
type StoreSettings struct {
	StoreInfo StoreInfo         `json:"store_info"`
	Receipt   ReceiptSettings   `json:"receipt"`
	Hardware  HardwareSettings  `json:"hardware"`
	Policy    OperationalPolicy `json:"policy"`
	Security  SecuritySettings  `json:"security"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type StoreInfo struct {
	Name         string  `json:"name"`
	LegalName    *string `json:"legal_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	CurrencyCode string  `json:"currency_code"`
	Timezone     string  `json:"timezone"`
}

type ReceiptSettings struct {
	HeaderText       *string `json:"header_text"`
	FooterText       *string `json:"footer_text"`
	ShowTaxBreakdown bool    `json:"show_tax_breakdown"`
	PaperSize        string  `json:"paper_size"`
	TemplateID       *string `json:"template_id"`
}

// ReceiptTemplate is a selectable receipt layout offered by the backend.
type ReceiptTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type HardwareSettings struct {
	PrinterName            *string `json:"printer_name"`
	CashDrawerPort         *string `json:"cash_drawer_port"`
	BarcodeScannerEnabled  bool    `json:"barcode_scanner_enabled"`
	CustomerDisplayEnabled bool    `json:"customer_display_enabled"`
}

type OperationalPolicy struct {
	MaxDiscountPercent float64 `json:"max_discount_percent"`
	DefaultTaxRate     float64 `json:"default_tax_rate"`
	RequireManagerVoid bool    `json:"require_manager_void"`
	AllowNegativeStock bool    `json:"allow_negative_stock"`
}

type SecuritySettings struct {
	SessionTimeoutMinutes int  `json:"session_timeout_minutes"`
	PasswordExpiryDays    int  `json:"password_expiry_days"`
	TwoFactorRequired     bool `json:"two_factor_required"`
}

// UpdateStoreSettingsRequest carries the full settings record to save.
type UpdateStoreSettingsRequest struct {
	StoreInfo StoreInfo         `json:"store_info"`
	Receipt   ReceiptSettings   `json:"receipt"`
	Hardware  HardwareSettings  `json:"hardware"`
	Policy    OperationalPolicy `json:"policy"`
	Security  SecuritySettings  `json:"security"`
}

func (r *UpdateStoreSettingsRequest) Validate() error {
	// Normalize and validate store name
	r.StoreInfo.Name = strings.TrimSpace(r.StoreInfo.Name)
	if r.StoreInfo.Name == "" {
		return errors.New("store name is required")
	}
	if len(r.StoreInfo.Name) > 255 {
		return errors.New("store name cannot exceed 255 characters")
	}

	// Currency code must be a 3-letter ISO code
	r.StoreInfo.CurrencyCode = strings.ToUpper(strings.TrimSpace(r.StoreInfo.CurrencyCode))
	if len(r.StoreInfo.CurrencyCode) != 3 {
		return errors.New("currency_code must be a 3-letter ISO code")
	}

	if r.Policy.DefaultTaxRate < 0 || r.Policy.DefaultTaxRate > 100 {
		return errors.New("default_tax_rate must be between 0 and 100")
	}
	if r.Policy.MaxDiscountPercent < 0 || r.Policy.MaxDiscountPercent > 100 {
		return errors.New("max_discount_percent must be between 0 and 100")
	}

	if r.Security.SessionTimeoutMinutes < 0 {
		return errors.New("session_timeout_minutes cannot be negative")
	}

	return nil
}
