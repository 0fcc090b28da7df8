package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PostgresStore implements TransitionStore with PostgreSQL persistence.
type PostgresStore struct {
	db *sql.DB
}

// PostgresConfig contains PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// ConnectionString returns the PostgreSQL connection string.
func (c *PostgresConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, sslMode)
}

// NewPostgresStore creates a new PostgreSQL-backed store.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS auction_transitions (
		id UUID PRIMARY KEY,
		record VARCHAR(64) NOT NULL,
		kind VARCHAR(16) NOT NULL,
		actor VARCHAR(64) NOT NULL,
		price BIGINT NOT NULL,
		occurred_at TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transitions_record ON auction_transitions(record);
	CREATE INDEX IF NOT EXISTS idx_transitions_occurred ON auction_transitions(occurred_at);
	`

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveTransition appends one applied transition.
func (s *PostgresStore) SaveTransition(t *Transition) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
	INSERT INTO auction_transitions (id, record, kind, actor, price, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.Record,
		t.Kind,
		t.Actor,
		int64(t.Price),
		t.OccurredAt,
	)
	return err
}

// ListTransitions returns a record's transitions in order of occurrence.
func (s *PostgresStore) ListTransitions(record string) ([]*Transition, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, record, kind, actor, price, occurred_at
		FROM auction_transitions
		WHERE record = $1
		ORDER BY occurred_at ASC
	`, record)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transition
	for rows.Next() {
		var (
			t     Transition
			id    uuid.UUID
			price int64
		)
		if err := rows.Scan(&id, &t.Record, &t.Kind, &t.Actor, &price, &t.OccurredAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		t.ID = id
		t.Price = uint64(price)
		result = append(result, &t)
	}

	return result, rows.Err()
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
