package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/record"
)

// Backing file names inside the data directory.
const (
	booksFile = "books.csv"
	usersFile = "users.csv"
	loansFile = "loans.csv"
)

// Stores bundles the three entity stores over one data directory.
type Stores struct {
	Books *Store[model.Book]
	Users *Store[model.User]
	Loans *Store[model.Loan]

	dataDir string
	logger  *slog.Logger
}

// Open creates the three stores under dataDir and loads them. A missing
// directory or file is created; a new or empty users file is seeded with the
// default accounts.
func Open(dataDir string, logger *slog.Logger) (*Stores, error) {
	s := &Stores{
		Books:   New(filepath.Join(dataDir, booksFile), record.BookCodec{}, logger),
		Users:   New(filepath.Join(dataDir, usersFile), record.UserCodec{}, logger, WithSeed(DefaultUsers)),
		Loans:   New(filepath.Join(dataDir, loansFile), record.LoanCodec{}, logger),
		dataDir: dataDir,
		logger:  logger,
	}

	if err := s.Books.Load(); err != nil {
		return nil, err
	}
	if err := s.Users.Load(); err != nil {
		return nil, err
	}
	if err := s.Loans.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Backup copies the three backing files into a dated subdirectory of the
// data directory and returns its path. An existing backup for the same day
// is overwritten.
func (s *Stores) Backup(now time.Time) (string, error) {
	backupDir := filepath.Join(s.dataDir, "backup_"+now.Format(model.DateLayout))
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	for _, path := range []string{s.Books.Path(), s.Users.Path(), s.Loans.Path()} {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		dest := filepath.Join(backupDir, filepath.Base(path))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", dest, err)
		}
	}

	s.logger.Info("backup complete", "dir", backupDir)
	return backupDir, nil
}

// Reset truncates all three files back to header-only and clears the
// in-memory collections. Seeding is not re-run until the next Open.
func (s *Stores) Reset() error {
	if err := s.Books.Replace(nil); err != nil {
		return err
	}
	if err := s.Users.Replace(nil); err != nil {
		return err
	}
	if err := s.Loans.Replace(nil); err != nil {
		return err
	}

	s.logger.Info("all stores reset", "dir", s.dataDir)
	return nil
}
