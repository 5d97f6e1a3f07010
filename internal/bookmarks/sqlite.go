package bookmarks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/randomusers/internal/bookmarks/migrations"
	"github.com/dmitrijs2005/randomusers/internal/dbx"
	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/dmitrijs2005/randomusers/internal/models"
)

// SQLiteRepository implements Repository over a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the bookmarks database at dsn and applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Load implements Repository. Decode problems are logged and reported
// as an empty set so a corrupt slot never breaks startup.
func (r *SQLiteRepository) Load(ctx context.Context) ([]models.User, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM slots WHERE name = ?`, slotName).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %q: %w", slotName, err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		r.log.Warn(ctx, "discarding corrupt bookmark slot", "slot", slotName, "error", err)
		return nil, nil
	}
	return users, nil
}

// Save implements Repository.
func (r *SQLiteRepository) Save(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO slots (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		slotName, data)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", slotName, err)
	}
	return nil
}
