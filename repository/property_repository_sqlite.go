package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"home-assessment/domain"
)

// SQLitePropertyRepository persists saved properties to a SQLite database.
type SQLitePropertyRepository struct {
	db *sql.DB
}

// NewSQLitePropertyRepository opens (or creates) the database and runs migrations.
func NewSQLitePropertyRepository(dbPath string) (*SQLitePropertyRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single writer avoids SQLITE_BUSY on concurrent saves
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLitePropertyRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite property store opened: %s", dbPath)
	return r, nil
}

func (r *SQLitePropertyRepository) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saved_properties (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			address        TEXT,
			state          TEXT,
			county         TEXT,
			saved_at       INTEGER NOT NULL,
			purchase_price REAL,
			irr            REAL,
			npv            REAL,
			assumptions    TEXT NOT NULL,
			result         TEXT NOT NULL,
			recommendation TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_saved_properties_saved_at ON saved_properties(saved_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLitePropertyRepository) Save(ctx context.Context, p domain.SavedProperty) error {
	assumptions, err := json.Marshal(p.Assumptions)
	if err != nil {
		return fmt.Errorf("encode assumptions: %w", err)
	}
	result, err := json.Marshal(p.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	rec, err := json.Marshal(p.Recommendation)
	if err != nil {
		return fmt.Errorf("encode recommendation: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT OR REPLACE INTO saved_properties
		(id, name, address, state, county, saved_at, purchase_price, irr, npv,
		 assumptions, result, recommendation)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Name, p.Address, p.Location.State, p.Location.County,
		p.SavedAt.UnixNano(), p.Assumptions.PurchasePrice, p.Result.IRR, p.Result.NPV,
		string(assumptions), string(result), string(rec),
	)
	return err
}

const selectSaved = `SELECT id, name, address, state, county, saved_at,
	assumptions, result, recommendation FROM saved_properties`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSaved(row rowScanner) (domain.SavedProperty, error) {
	var (
		p                        domain.SavedProperty
		address, state, county   sql.NullString
		savedAt                  int64
		assumptions, result, rec string
	)
	if err := row.Scan(&p.ID, &p.Name, &address, &state, &county, &savedAt,
		&assumptions, &result, &rec); err != nil {
		return domain.SavedProperty{}, err
	}

	p.Address = address.String
	p.Location = domain.Location{State: state.String, County: county.String}
	p.SavedAt = time.Unix(0, savedAt).UTC()

	if err := json.Unmarshal([]byte(assumptions), &p.Assumptions); err != nil {
		return domain.SavedProperty{}, fmt.Errorf("decode assumptions of %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(result), &p.Result); err != nil {
		return domain.SavedProperty{}, fmt.Errorf("decode result of %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(rec), &p.Recommendation); err != nil {
		return domain.SavedProperty{}, fmt.Errorf("decode recommendation of %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *SQLitePropertyRepository) Get(ctx context.Context, id string) (domain.SavedProperty, error) {
	p, err := scanSaved(r.db.QueryRowContext(ctx, selectSaved+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SavedProperty{}, ErrNotFound
	}
	return p, err
}

// List returns all properties, newest first.
func (r *SQLitePropertyRepository) List(ctx context.Context) ([]domain.SavedProperty, error) {
	rows, err := r.db.QueryContext(ctx, selectSaved+` ORDER BY saved_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SavedProperty{}
	for rows.Next() {
		p, err := scanSaved(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLitePropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLitePropertyRepository) Close() error {
	log.Println("[INFO] closing sqlite property store")
	return r.db.Close()
}
