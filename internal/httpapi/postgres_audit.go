package httpapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DispatchRecord is one caller-side audit entry. The engine itself
// stays stateless; history is owned here, by the invoking layer.
type DispatchRecord struct {
	ID          string
	Phone       string
	MessageType string
	Success     bool
	CreatedAt   time.Time
}

type AuditRepository interface {
	Record(ctx context.Context, rec DispatchRecord) error
}

const insertDispatch = `
INSERT INTO sms_dispatches (
id,
phone,
message_type,
success,
created_at
) VALUES ($1,$2,$3,$4,$5)
`

type PostgresAudit struct {
	pool *pgxpool.Pool
}

func NewPostgresAudit(pool *pgxpool.Pool) *PostgresAudit {
	return &PostgresAudit{pool: pool}
}

var ErrNotConfigured = errors.New("postgres audit requires a non-nil pool")

func MustAudit(pool *pgxpool.Pool) (*PostgresAudit, error) {
	if pool == nil {
		return nil, ErrNotConfigured
	}
	return NewPostgresAudit(pool), nil
}

func (r *PostgresAudit) Record(ctx context.Context, rec DispatchRecord) error {
	if _, err := r.pool.Exec(ctx, insertDispatch,
		rec.ID,
		rec.Phone,
		rec.MessageType,
		rec.Success,
		rec.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert dispatch record: %w", err)
	}
	return nil
}
