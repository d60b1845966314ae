package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/auth"
	"github.com/fomopos/pos-admin-panel-sub005/internal/config"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
	"github.com/fomopos/pos-admin-panel-sub005/internal/services"
	"github.com/fomopos/pos-admin-panel-sub005/internal/session"
)

type app struct {
	cfg         *config.Config
	tokens      *auth.TokenProvider
	tenants     *session.TenantStore
	authService *services.AuthService
	settings    *services.StoreSettingsService
	roles       *services.RoleService
	users       *services.UserService
	tables      *services.TableService
	reasonCodes *services.ReasonCodeService
}

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenProvider(logger)
	if token := os.Getenv("POS_ACCESS_TOKEN"); token != "" {
		tokens.SetToken(token)
	}
	tenants := session.NewTenantStore(cfg.Tenant.ID)

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}
	client := api.NewClient(cfg.API.BaseURL, httpClient, tokens, tenants, logger)

	a := &app{
		cfg:         cfg,
		tokens:      tokens,
		tenants:     tenants,
		authService: services.NewAuthService(client, tokens, logger),
		settings:    services.NewStoreSettingsService(client, logger, cfg.API.MockMode),
		roles:       services.NewRoleService(client, logger, cfg.API.MockMode),
		users:       services.NewUserService(client, logger, cfg.API.MockMode),
		tables:      services.NewTableService(client, logger, cfg.API.MockMode),
		reasonCodes: services.NewReasonCodeService(client, logger, cfg.API.MockMode),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if apiErr, ok := api.AsError(err); ok {
			fmt.Fprintln(os.Stderr, apiErr.DisplayMessage())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "tenants":
		return a.cmdTenants(ctx)
	case "settings":
		return a.cmdSettings(ctx, args)
	case "receipts":
		return a.cmdReceipts(ctx)
	case "roles":
		return a.cmdRoles(ctx, args)
	case "permissions":
		return a.cmdPermissions(ctx)
	case "users":
		return a.cmdUsers(ctx, args)
	case "tables":
		return a.cmdTables(ctx, args)
	case "reason-codes":
		return a.cmdReasonCodes(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.authService.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in. Token expires in %d seconds.\n", resp.ExpiresIn)
	fmt.Println("Export for subsequent commands:")
	fmt.Printf("  export POS_ACCESS_TOKEN=%s\n", resp.AccessToken)
	return nil
}

func (a *app) cmdTenants(ctx context.Context) error {
	tenants, err := a.authService.Tenants(ctx)
	if err != nil {
		return err
	}
	return printJSON(tenants)
}

func (a *app) cmdSettings(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "get" {
		settings, err := a.settings.Get(ctx)
		if err != nil {
			return err
		}
		return printJSON(settings)
	}

	if args[0] == "update" {
		fs := flag.NewFlagSet("settings update", flag.ExitOnError)
		file := fs.String("file", "", "JSON file holding the full settings record")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			return fmt.Errorf("settings update requires -file")
		}

		raw, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		var req models.UpdateStoreSettingsRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("parsing %s: %w", *file, err)
		}

		updated, err := a.settings.Update(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(updated)
	}

	return fmt.Errorf("unknown settings subcommand %q", args[0])
}

func (a *app) cmdReceipts(ctx context.Context) error {
	templates, err := a.settings.ReceiptTemplates(ctx)
	if err != nil {
		return err
	}
	return printJSON(templates)
}

func (a *app) cmdRoles(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		roles, err := a.roles.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(roles)
	}

	switch args[0] {
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("roles get requires an id")
		}
		role, err := a.roles.Get(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(role)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("roles delete requires an id")
		}
		return a.roles.Delete(ctx, args[1])
	}

	return fmt.Errorf("unknown roles subcommand %q", args[0])
}

func (a *app) cmdPermissions(ctx context.Context) error {
	permissions, err := a.roles.Permissions(ctx)
	if err != nil {
		return err
	}
	return printJSON(permissions)
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	pageSize := fs.Int("page-size", 50, "results per page")
	role := fs.String("role", "", "filter by role")
	search := fs.String("search", "", "search by username or email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.UserListRequest{Page: *page, PageSize: *pageSize}
	if *role != "" {
		r := models.UserRole(*role)
		req.Role = &r
	}
	if *search != "" {
		req.Search = search
	}

	users, err := a.users.List(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(users)
}

func (a *app) cmdTables(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tables", flag.ExitOnError)
	zone := fs.String("zone", "", "filter by zone")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var zoneFilter *string
	if *zone != "" {
		zoneFilter = zone
	}

	tables, err := a.tables.List(ctx, zoneFilter)
	if err != nil {
		return err
	}
	return printJSON(tables)
}

func (a *app) cmdReasonCodes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reason-codes", flag.ExitOnError)
	category := fs.String("category", "", "filter by category (void, refund, discount, paid_in, paid_out)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var categoryFilter *models.ReasonCodeCategory
	if *category != "" {
		c := models.ReasonCodeCategory(*category)
		categoryFilter = &c
	}

	codes, err := a.reasonCodes.List(ctx, categoryFilter)
	if err != nil {
		return err
	}
	return printJSON(codes)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: posadmin <command> [flags]

Commands:
  login         -username -password   Authenticate and print the access token
  tenants                             List tenants for the authenticated user
  settings      get | update -file    Show or replace the store settings
  receipts                            List available receipt templates
  roles         list | get | delete   Manage roles
  permissions                         Show the permission catalog
  users         [-page -role -search] List back-office users
  tables        [-zone]               List floor plan tables
  reason-codes  [-category]           List reason codes

Configuration: config.yaml (searched in ., ./config, ~/.posadmin) or POS_*
environment variables (POS_API_BASE_URL, POS_TENANT_ID, POS_MOCK_MODE).`)
}
