package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackstone-contractors/website/internal/db"
)

const defaultListLimit = 50

// Store persists accepted inquiries.
type Store struct {
	db *db.DB
}

// NewStore creates a new inquiry store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save records an inquiry, assigning an id and timestamp when missing.
func (s *Store) Save(ctx context.Context, inq Inquiry) (*Inquiry, error) {
	if inq.ID == "" {
		inq.ID = uuid.New().String()
	}
	if inq.CreatedAt.IsZero() {
		inq.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (id, name, email, phone, service, message, remote_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.Service, inq.Message, inq.RemoteAddr, inq.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting inquiry: %w", err)
	}
	return &inq, nil
}

// List returns the most recent inquiries first. A limit of zero or less uses
// the default.
func (s *Store) List(ctx context.Context, limit int) ([]Inquiry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, service, message, remote_addr, created_at
		 FROM inquiries ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		var inq Inquiry
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Service, &inq.Message, &inq.RemoteAddr, &inq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}
		out = append(out, inq)
	}
	return out, rows.Err()
}

// Count returns the number of stored inquiries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting inquiries: %w", err)
	}
	return n, nil
}
