package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/amm-colonia/inscripciones-api/internal/models"
)

// RegistrationRepository stores registrations as JSONB documents.
type RegistrationRepository struct {
	db *sqlx.DB
}

type registrationRow struct {
	ID        string    `db:"id"`
	Document  []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
}

// NewRegistrationRepository creates a new instance of RegistrationRepository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts reg as a new document, assigning its ID. CreatedAt must already be stamped.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	createdAt, ok := reg.CreatedAt.Time()
	if !ok {
		return fmt.Errorf("create registration: missing creation time")
	}
	doc, err := reg.Document()
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	id := uuid.NewString()
	const query = `INSERT INTO registrations (id, document, created_at) VALUES ($1, $2::jsonb, $3)`
	if _, err := r.db.ExecContext(ctx, query, id, string(doc), createdAt.UTC()); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	reg.ID = id
	return nil
}

// List returns every registration, newest first.
func (r *RegistrationRepository) List(ctx context.Context) ([]models.Registration, error) {
	const query = `SELECT id, document, created_at FROM registrations ORDER BY created_at DESC, id DESC`
	var rows []registrationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	regs := make([]models.Registration, 0, len(rows))
	for _, row := range rows {
		regs = append(regs, models.ParseRegistration(row.ID, row.CreatedAt, row.Document))
	}
	return regs, nil
}

// Count returns the number of stored registrations.
func (r *RegistrationRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM registrations`); err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return total, nil
}
