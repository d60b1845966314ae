// Package mockdata holds the static fixtures services return when mock mode
// is enabled and the live API call fails. Development aid only; every
// fallback is logged by the calling service.
package mockdata

import (
	"time"

	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

func strPtr(s string) *string { return &s }

var fixtureTime = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func StoreSettings() *models.StoreSettings {
	return &models.StoreSettings{
		StoreInfo: models.StoreInfo{
			Name:         "Demo Coffee House",
			LegalName:    strPtr("Demo Coffee House LLC"),
			Email:        strPtr("hello@democoffee.example"),
			Phone:        strPtr("+1-555-0100"),
			Address:      "12 Market Street",
			City:         "Springfield",
			Country:      "US",
			CurrencyCode: "USD",
			Timezone:     "America/New_York",
		},
		Receipt: models.ReceiptSettings{
			HeaderText:       strPtr("Demo Coffee House"),
			FooterText:       strPtr("Thank you, come again!"),
			ShowTaxBreakdown: true,
			PaperSize:        "80mm",
			TemplateID:       strPtr("classic"),
		},
		Hardware: models.HardwareSettings{
			PrinterName:           strPtr("Epson TM-T88"),
			CashDrawerPort:        strPtr("COM1"),
			BarcodeScannerEnabled: true,
		},
		Policy: models.OperationalPolicy{
			MaxDiscountPercent: 20,
			DefaultTaxRate:     8.5,
			RequireManagerVoid: true,
		},
		Security: models.SecuritySettings{
			SessionTimeoutMinutes: 30,
			PasswordExpiryDays:    90,
		},
		UpdatedAt: fixtureTime,
	}
}

func ReceiptTemplates() []models.ReceiptTemplate {
	return []models.ReceiptTemplate{
		{ID: "classic", Name: "Classic", Description: strPtr("Logo, items, totals, footer")},
		{ID: "compact", Name: "Compact", Description: strPtr("Items and totals only")},
		{ID: "detailed", Name: "Detailed", Description: strPtr("Full tax breakdown per line")},
	}
}

func Roles() []models.Role {
	return []models.Role{
		{
			ID:          "role-admin",
			Name:        "Administrator",
			Description: strPtr("Full access to all back-office functions"),
			Permissions: []string{"settings.read", "settings.write", "users.manage", "roles.manage"},
			IsSystem:    true,
			CreatedAt:   fixtureTime,
			UpdatedAt:   fixtureTime,
		},
		{
			ID:          "role-shift-lead",
			Name:        "Shift Lead",
			Description: strPtr("Voids, refunds and end-of-day reports"),
			Permissions: []string{"orders.void", "orders.refund", "reports.read"},
			CreatedAt:   fixtureTime,
			UpdatedAt:   fixtureTime,
		},
	}
}

func Permissions() []models.Permission {
	return []models.Permission{
		{Code: "settings.read", Name: "View settings", Category: "Settings"},
		{Code: "settings.write", Name: "Edit settings", Category: "Settings"},
		{Code: "users.manage", Name: "Manage users", Category: "Users"},
		{Code: "roles.manage", Name: "Manage roles", Category: "Users"},
		{Code: "orders.void", Name: "Void orders", Category: "Orders"},
		{Code: "orders.refund", Name: "Refund orders", Category: "Orders"},
		{Code: "reports.read", Name: "View reports", Category: "Reports"},
	}
}

func Users() []models.User {
	return []models.User{
		{
			ID:        "user-1",
			Username:  "admin",
			Email:     "admin@democoffee.example",
			Role:      models.RoleAdmin,
			IsActive:  true,
			CreatedAt: fixtureTime,
			UpdatedAt: fixtureTime,
		},
		{
			ID:        "user-2",
			Username:  "jordan",
			Email:     "jordan@democoffee.example",
			Role:      models.RoleCashier,
			IsActive:  true,
			CreatedAt: fixtureTime,
			UpdatedAt: fixtureTime,
		},
	}
}

func Tables() []models.Table {
	return []models.Table{
		{ID: "table-1", Number: 1, Name: strPtr("Window"), Seats: 2, Zone: strPtr("Front"), Status: models.TableStatusAvailable, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		{ID: "table-2", Number: 2, Seats: 4, Zone: strPtr("Front"), Status: models.TableStatusOccupied, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		{ID: "table-3", Number: 3, Name: strPtr("Patio"), Seats: 6, Zone: strPtr("Outside"), Status: models.TableStatusReserved, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
	}
}

func Reservations(tableID string) []models.Reservation {
	return []models.Reservation{
		{
			ID:           "res-1",
			TableID:      tableID,
			CustomerName: "Alex Kim",
			Phone:        strPtr("+1-555-0123"),
			PartySize:    4,
			ReservedAt:   fixtureTime.Add(10 * time.Hour),
			Status:       models.ReservationStatusBooked,
		},
	}
}

func ReasonCodes() []models.ReasonCode {
	return []models.ReasonCode{
		{ID: "rc-1", Code: "WASTE", Label: "Spoiled / wasted item", Category: models.ReasonCategoryVoid, IsActive: true, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		{ID: "rc-2", Code: "CUST", Label: "Customer changed mind", Category: models.ReasonCategoryRefund, IsActive: true, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		{ID: "rc-3", Code: "EMP10", Label: "Employee discount", Category: models.ReasonCategoryDiscount, IsActive: true, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
	}
}
