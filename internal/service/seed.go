package service

import (
	"context"
	"fmt"

	"github.com/mergington/activities-api/internal/domain"
	"github.com/mergington/activities-api/internal/repo"
)

// Seeder populates an empty database with the initial set of activities.
// Run is safe to invoke on every process start: it inserts only when the
// activities table holds no rows at all, so restarts never duplicate data.
type Seeder struct {
	repo repo.ActivityRepo
}

// NewSeeder constructs a Seeder backed by the provided repo.
func NewSeeder(r repo.ActivityRepo) *Seeder {
	return &Seeder{repo: r}
}

// Run inserts the seed activities if the store is empty and returns how many
// were inserted (0 when the store already holds data).
func (s *Seeder) Run(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.Seeder.Run: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	seed := SeedActivities()
	if err := s.repo.CreateAll(ctx, seed); err != nil {
		return 0, fmt.Errorf("service.Seeder.Run: %w", err)
	}
	return len(seed), nil
}

// SeedActivities returns the fixed set of activities inserted on first run.
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: intPtr(12),
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: intPtr(20),
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: intPtr(30),
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

func intPtr(n int) *int { return &n }
