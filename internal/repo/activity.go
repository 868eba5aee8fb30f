// Package repo contains all database access logic for the activities API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mergington/activities-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ActivityRepo defines the persistence operations for Activities.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows services to be unit-tested with a mock.
type ActivityRepo interface {
	// List returns every stored activity in insertion order.
	List(ctx context.Context) ([]domain.Activity, error)

	// GetByName retrieves a single activity by its unique name.
	// Returns domain.ErrNotFound if no activity with that name exists.
	GetByName(ctx context.Context, name string) (domain.Activity, error)

	// UpdateParticipants overwrites the participant list of the named activity
	// in a single statement and returns the updated record.
	// Returns domain.ErrNotFound if no activity with that name exists.
	UpdateParticipants(ctx context.Context, name string, participants []string) (domain.Activity, error)

	// Count returns the number of stored activities.
	Count(ctx context.Context) (int, error)

	// CreateAll inserts the given activities with a single multi-row INSERT,
	// so either all of them persist or none do.
	CreateAll(ctx context.Context, activities []domain.Activity) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

// List returns all activities ordered by creation time, then name, so the
// output is stable across calls.
func (r *pgActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	const q = `
		SELECT id, name, description, schedule, max_participants, participants, created_at, updated_at
		FROM activities
		ORDER BY created_at, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.List: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: rows: %w", err)
	}

	return activities, nil
}

// GetByName retrieves an activity by its unique name.
func (r *pgActivityRepo) GetByName(ctx context.Context, name string) (domain.Activity, error) {
	const q = `
		SELECT id, name, description, schedule, max_participants, participants, created_at, updated_at
		FROM activities
		WHERE name = @name`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByName: %w", err)
	}
	return result, nil
}

// UpdateParticipants replaces the participant array of the named activity.
// The single UPDATE statement is atomic, so a failure leaves the row unchanged.
func (r *pgActivityRepo) UpdateParticipants(ctx context.Context, name string, participants []string) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET participants = @participants,
		    updated_at   = now()
		WHERE name = @name
		RETURNING id, name, description, schedule, max_participants, participants, created_at, updated_at`

	if participants == nil {
		participants = []string{} // NOT NULL column
	}

	args := pgx.NamedArgs{
		"name":         name,
		"participants": participants,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.UpdateParticipants: %w", err)
	}
	return result, nil
}

// Count returns how many activities are stored.
func (r *pgActivityRepo) Count(ctx context.Context) (int, error) {
	const q = `SELECT count(*) FROM activities`

	var n int
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.ActivityRepo.Count: %w", err)
	}
	return n, nil
}

// CreateAll inserts all given activities in one multi-row INSERT statement.
func (r *pgActivityRepo) CreateAll(ctx context.Context, activities []domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`INSERT INTO activities (name, description, schedule, max_participants, participants) VALUES `)
	for i, a := range activities {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)

		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		args = append(args, a.Name, a.Description, a.Schedule, a.MaxParticipants, participants)
	}

	if _, err := r.db.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("repo.ActivityRepo.CreateAll: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanActivity to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanActivity maps a single database row into a domain.Activity.
// It handles the UUID and nullable max_participants conversions and
// normalizes a NULL or empty participants array to an empty slice.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a      domain.Activity
		id     pgtype.UUID
		maxPar pgtype.Int4
	)

	err := s.Scan(&id, &a.Name, &a.Description, &a.Schedule, &maxPar, &a.Participants, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	if maxPar.Valid {
		n := int(maxPar.Int32)
		a.MaxParticipants = &n
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}

	return a, nil
}
