package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/togetai/feedback-api/internal/models"
)

// PostgresStore persists entries in a feedback table with a unique
// constraint on email. The constraint is the final arbiter for duplicate
// submissions racing past the pre-insert check.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to PostgreSQL and verifies the connection.
func NewPostgresStore(postgresURI string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", postgresURI)
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

// Init creates the feedback table and indexes if they don't exist
func (s *PostgresStore) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS feedback (
			id UUID PRIMARY KEY,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			role VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			instagram VARCHAR(255) NOT NULL,
			last_campaign TEXT NOT NULL,
			worst_part TEXT NOT NULL,
			one_thing TEXT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			ip_address VARCHAR(255),
			user_agent TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_role ON feedback(role)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]models.FeedbackEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, role, name, email, instagram, last_campaign, worst_part, one_thing, status, ip_address, user_agent
		FROM feedback
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.FeedbackEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.FeedbackEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, role, name, email, instagram, last_campaign, worst_part, one_thing, status, ip_address, user_agent
		FROM feedback
		WHERE LOWER(email) = $1
	`, NormalizeEmail(email))

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PostgresStore) Insert(ctx context.Context, entry models.FeedbackEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, created_at, role, name, email, instagram, last_campaign, worst_part, one_thing, status, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, entry.ID, entry.Timestamp, entry.Role, entry.Name, entry.Email, entry.Instagram,
		entry.LastCampaign, entry.WorstPart, entry.OneThing, entry.Status, entry.IPAddress, entry.UserAgent)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PostgresStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.FeedbackEntry, error) {
	var e models.FeedbackEntry
	var status, ipAddress, userAgent sql.NullString
	err := row.Scan(&e.ID, &e.Timestamp, &e.Role, &e.Name, &e.Email, &e.Instagram,
		&e.LastCampaign, &e.WorstPart, &e.OneThing, &status, &ipAddress, &userAgent)
	if err != nil {
		return e, err
	}
	e.Status = status.String
	e.IPAddress = ipAddress.String
	e.UserAgent = userAgent.String
	return e, nil
}
