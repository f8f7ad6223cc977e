// Package store provides the SQLite-backed record store for incomes,
// deductions, and the projection day set.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an update or delete references a missing id.
var ErrNotFound = errors.New("record not found")

// Store wraps the budget database.
type Store struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "budgetflow")
}

// DefaultPath returns the full path to the budget database.
func DefaultPath() string {
	return filepath.Join(DataDir(), "budgetflow.db")
}

// Open opens or creates the budget database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateIncome validates and inserts a new income, assigning its id and
// timestamps. The passed record is updated in place.
func (s *Store) CreateIncome(in *model.Income) error {
	if in.Frequency == "" {
		in.Frequency = model.FrequencyMonthly
	}
	if err := in.Validate(); err != nil {
		return err
	}

	in.ID = uuid.NewString()
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	_, err := s.db.Exec(`INSERT INTO incomes
		(id, description, amount, frequency, income_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Description, in.Amount.StringFixed(2), string(in.Frequency),
		in.IncomeDate, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting income: %w", err)
	}
	return nil
}

// ListIncomes returns all incomes ordered by day of month, then creation time.
func (s *Store) ListIncomes() ([]model.Income, error) {
	rows, err := s.db.Query(`SELECT id, description, amount, frequency, income_date, created_at, updated_at
		FROM incomes ORDER BY income_date, created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var incomes []model.Income
	for rows.Next() {
		var in model.Income
		var amount, frequency, createdAt, updatedAt string
		if err := rows.Scan(&in.ID, &in.Description, &amount, &frequency, &in.IncomeDate, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if in.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("income %s has corrupt amount %q: %w", in.ID, amount, err)
		}
		in.Frequency = model.Frequency(frequency)
		in.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		in.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

// IncomeUpdate carries the fields of a partial income update; nil fields
// keep their current value.
type IncomeUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Frequency   *model.Frequency
	IncomeDate  *int
}

// UpdateIncome applies a partial update to the income with the given id.
// The id and created_at are immutable. Returns ErrNotFound for a missing id.
func (s *Store) UpdateIncome(id string, upd IncomeUpdate) (*model.Income, error) {
	in, err := s.getIncome(id)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		in.Description = *upd.Description
	}
	if upd.Amount != nil {
		in.Amount = *upd.Amount
	}
	if upd.Frequency != nil {
		in.Frequency = *upd.Frequency
	}
	if upd.IncomeDate != nil {
		in.IncomeDate = *upd.IncomeDate
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	in.UpdatedAt = time.Now().UTC()
	_, err = s.db.Exec(`UPDATE incomes
		SET description = ?, amount = ?, frequency = ?, income_date = ?, updated_at = ?
		WHERE id = ?`,
		in.Description, in.Amount.StringFixed(2), string(in.Frequency),
		in.IncomeDate, in.UpdatedAt.Format(time.RFC3339), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating income: %w", err)
	}
	return in, nil
}

// DeleteIncome removes an income. Returns ErrNotFound for a missing id.
func (s *Store) DeleteIncome(id string) error {
	res, err := s.db.Exec("DELETE FROM incomes WHERE id = ?", id)
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

func (s *Store) getIncome(id string) (*model.Income, error) {
	var in model.Income
	var amount, frequency, createdAt, updatedAt string
	err := s.db.QueryRow(`SELECT id, description, amount, frequency, income_date, created_at, updated_at
		FROM incomes WHERE id = ?`, id).
		Scan(&in.ID, &in.Description, &amount, &frequency, &in.IncomeDate, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if in.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("income %s has corrupt amount %q: %w", id, amount, err)
	}
	in.Frequency = model.Frequency(frequency)
	in.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	in.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &in, nil
}

// CreateDeduction validates and inserts a new deduction, assigning its id
// and timestamps. The passed record is updated in place.
func (s *Store) CreateDeduction(d *model.Deduction) error {
	if d.Category == "" {
		d.Category = model.CategoryOther
	}
	if err := d.Validate(); err != nil {
		return err
	}

	d.ID = uuid.NewString()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := s.db.Exec(`INSERT INTO deductions
		(id, description, amount, category, deduction_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Description, d.Amount.StringFixed(2), string(d.Category),
		d.DeductionDate, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting deduction: %w", err)
	}
	return nil
}

// ListDeductions returns all deductions ordered by day of month, then creation time.
func (s *Store) ListDeductions() ([]model.Deduction, error) {
	rows, err := s.db.Query(`SELECT id, description, amount, category, deduction_date, created_at, updated_at
		FROM deductions ORDER BY deduction_date, created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var deductions []model.Deduction
	for rows.Next() {
		var d model.Deduction
		var amount, category, createdAt, updatedAt string
		if err := rows.Scan(&d.ID, &d.Description, &amount, &category, &d.DeductionDate, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if d.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("deduction %s has corrupt amount %q: %w", d.ID, amount, err)
		}
		d.Category = model.Category(category)
		d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		deductions = append(deductions, d)
	}
	return deductions, rows.Err()
}

// DeductionUpdate carries the fields of a partial deduction update; nil
// fields keep their current value.
type DeductionUpdate struct {
	Description   *string
	Amount        *decimal.Decimal
	Category      *model.Category
	DeductionDate *int
}

// UpdateDeduction applies a partial update to the deduction with the given
// id. Returns ErrNotFound for a missing id.
func (s *Store) UpdateDeduction(id string, upd DeductionUpdate) (*model.Deduction, error) {
	d, err := s.getDeduction(id)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		d.Description = *upd.Description
	}
	if upd.Amount != nil {
		d.Amount = *upd.Amount
	}
	if upd.Category != nil {
		d.Category = *upd.Category
	}
	if upd.DeductionDate != nil {
		d.DeductionDate = *upd.DeductionDate
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	d.UpdatedAt = time.Now().UTC()
	_, err = s.db.Exec(`UPDATE deductions
		SET description = ?, amount = ?, category = ?, deduction_date = ?, updated_at = ?
		WHERE id = ?`,
		d.Description, d.Amount.StringFixed(2), string(d.Category),
		d.DeductionDate, d.UpdatedAt.Format(time.RFC3339), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating deduction: %w", err)
	}
	return d, nil
}

// DeleteDeduction removes a deduction. Returns ErrNotFound for a missing id.
func (s *Store) DeleteDeduction(id string) error {
	res, err := s.db.Exec("DELETE FROM deductions WHERE id = ?", id)
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

func (s *Store) getDeduction(id string) (*model.Deduction, error) {
	var d model.Deduction
	var amount, category, createdAt, updatedAt string
	err := s.db.QueryRow(`SELECT id, description, amount, category, deduction_date, created_at, updated_at
		FROM deductions WHERE id = ?`, id).
		Scan(&d.ID, &d.Description, &amount, &category, &d.DeductionDate, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if d.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("deduction %s has corrupt amount %q: %w", id, amount, err)
	}
	d.Category = model.Category(category)
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &d, nil
}

// ProjectionDays returns the stored projection day set, ascending.
func (s *Store) ProjectionDays() ([]int, error) {
	rows, err := s.db.Query("SELECT day FROM projection_days ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []int
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// AddProjectionDay inserts a day into the stored set. Out-of-range days
// and duplicates are silent no-ops, matching the in-memory set semantics.
func (s *Store) AddProjectionDay(day int) error {
	if day < 1 || day > 31 {
		return nil
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO projection_days (day) VALUES (?)", day)
	return err
}

// RemoveProjectionDay deletes a day from the stored set; absent days are a no-op.
func (s *Store) RemoveProjectionDay(day int) error {
	_, err := s.db.Exec("DELETE FROM projection_days WHERE day = ?", day)
	return err
}
