// Package main is the entrypoint for the librarium operator CLI.
//
// The interactive front end lives elsewhere and talks to the same core
// services; this binary covers the operational surface: inspecting the
// catalog and circulation state, creating accounts, backups and resets.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/librarium/librarium/internal/auth"
	"github.com/librarium/librarium/internal/config"
	"github.com/librarium/librarium/internal/metrics"
	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/service"
	"github.com/librarium/librarium/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	stores, err := store.Open(cfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to open data stores", "error", err, "data_dir", cfg.DataDir)
		os.Exit(1)
	}

	policy := service.LoanPolicy{
		PeriodDays:   cfg.LoanPeriodDays,
		DailyPenalty: cfg.DailyPenalty,
	}
	recorder := metrics.NewNoop()
	catalog := service.NewCatalogService(stores.Books, stores.Loans, recorder)
	members := service.NewMembershipService(stores.Users)
	loans := service.NewLoanService(stores.Loans, stores.Books, policy, logger, recorder)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, os.Args[1], os.Args[2:], stores, catalog, members, loans); err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	command string,
	args []string,
	stores *store.Stores,
	catalog *service.CatalogService,
	members *service.MembershipService,
	loans *service.LoanService,
) error {
	switch command {
	case "stats":
		return runStats(ctx, catalog, loans)
	case "books":
		return runBooks(ctx, catalog)
	case "overdue":
		return runOverdue(ctx, loans)
	case "adduser":
		return runAddUser(ctx, args, members)
	case "backup":
		dir, err := stores.Backup(time.Now())
		if err != nil {
			return err
		}
		fmt.Println("backup written to", dir)
		return nil
	case "reset":
		return stores.Reset()
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runStats(ctx context.Context, catalog *service.CatalogService, loans *service.LoanService) error {
	fmt.Printf("books:         %d\n", catalog.TotalBooks(ctx))
	fmt.Printf("available:     %d\n", catalog.AvailableCount(ctx))
	fmt.Printf("active loans:  %d\n", loans.ActiveCount(ctx))
	fmt.Printf("overdue loans: %d\n", loans.OverdueCount(ctx))

	popular := catalog.MostPopular(ctx, 5)
	if len(popular) > 0 {
		fmt.Println("most popular:")
		for i, b := range popular {
			fmt.Printf("  %d. %s by %s\n", i+1, b.Title, b.Author)
		}
	}
	return nil
}

func runBooks(ctx context.Context, catalog *service.CatalogService) error {
	for _, b := range catalog.List(ctx) {
		status := "available"
		if !b.Available {
			status = "lent out"
		}
		fmt.Printf("%s  %s by %s (%d)  [%s]\n", b.ID, b.Title, b.Author, b.Year, status)
	}
	return nil
}

func runOverdue(ctx context.Context, loans *service.LoanService) error {
	for _, l := range loans.ListOverdue(ctx) {
		fmt.Printf("%s  user=%s book=%s due=%s\n",
			l.ID, l.UserID, l.BookID, l.DueDate.Format(model.DateLayout))
	}
	return nil
}

func runAddUser(ctx context.Context, args []string, members *service.MembershipService) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "login email")
	password := fs.String("password", "", "initial password")
	role := fs.String("role", string(model.RoleMember), "ADMIN, LIBRARIAN or MEMBER")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		return fmt.Errorf("-password is required")
	}

	// Operator-created accounts always store a bcrypt hash; only the legacy
	// seed accounts keep plaintext credentials.
	hashed, err := auth.HashPassword(*password)
	if err != nil {
		return err
	}

	user, err := members.Add(ctx, service.CreateUserInput{
		Name:     *name,
		Email:    *email,
		Password: hashed,
		Role:     model.Role(*role),
	})
	if err != nil {
		return err
	}

	fmt.Println("created user", user.ID)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: librarium <command> [flags]

commands:
  stats    print catalog and circulation counters
  books    list all books
  overdue  list overdue loans
  adduser  create a user account (-name -email -password -role)
  backup   copy the record files into a dated subdirectory
  reset    truncate all record files back to header-only`)
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
