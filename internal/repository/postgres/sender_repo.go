package postgres

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Keep in sync with migrations/001_create_senders.sql
const createSendersTable = `
	CREATE TABLE IF NOT EXISTS senders (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		email      VARCHAR(254) NOT NULL,
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type senderRepo struct {
	db *pgxpool.Pool
}

// NewSenderRepository creates a new sender repository
func NewSenderRepository(db *pgxpool.Pool) domain.SenderRepository {
	return &senderRepo{db: db}
}

// EnsureSchema creates the senders table when it does not exist yet
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, createSendersTable); err != nil {
		return fmt.Errorf("create senders table: %w", err)
	}
	return nil
}

// Create inserts a sender and fills in its ID and CreatedAt
func (r *senderRepo) Create(ctx context.Context, sender *domain.Sender) error {
	query := `
		INSERT INTO senders (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, sender.Name, sender.Email, sender.Message).
		Scan(&sender.ID, &sender.CreatedAt)
}
