// Package service contains the business logic for the activities API.
// Services validate inputs, enforce the roster invariants, and orchestrate
// repo calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mergington/activities-api/internal/domain"
	"github.com/mergington/activities-api/internal/repo"
)

// ActivityService implements the signup, unregister, and query operations.
//
// Signup and Unregister are read-modify-write sequences over a single row.
// There is deliberately no (activity, email) uniqueness constraint backing
// them: two concurrent signups for the same email can both pass the roster
// check and admit a duplicate. That matches the behavior this service
// replaces; closing the race is a schema change, not a service change.
type ActivityService struct {
	repo repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repo.
func NewActivityService(r repo.ActivityRepo) *ActivityService {
	return &ActivityService{repo: r}
}

// GetActivities returns every activity keyed by name, each with its
// description, schedule, capacity, and participant roster in signup order.
func (s *ActivityService) GetActivities(ctx context.Context) (map[string]domain.ActivityDetail, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.GetActivities: %w", err)
	}

	out := make(map[string]domain.ActivityDetail, len(activities))
	for _, a := range activities {
		out[a.Name] = a.Detail()
	}
	return out, nil
}

// Signup adds email to the end of the named activity's roster.
// Returns domain.ErrNotFound when the activity does not exist and
// domain.ErrConflict when the email is already on the roster.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) error {
	if err := validateInput(activityName, email); err != nil {
		return fmt.Errorf("service.ActivityService.Signup: %w", err)
	}

	activity, err := s.repo.GetByName(ctx, activityName)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Signup: %w", err)
	}

	if slices.Contains(activity.Participants, email) {
		return fmt.Errorf("service.ActivityService.Signup: %w", domain.ErrConflict)
	}

	participants := append(slices.Clone(activity.Participants), email)
	if _, err := s.repo.UpdateParticipants(ctx, activityName, participants); err != nil {
		return fmt.Errorf("service.ActivityService.Signup: %w", err)
	}
	return nil
}

// Unregister removes email from the named activity's roster, preserving the
// relative order of the remaining participants.
// Returns domain.ErrNotFound when the activity does not exist and
// domain.ErrConflict when the email is not on the roster.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) error {
	if err := validateInput(activityName, email); err != nil {
		return fmt.Errorf("service.ActivityService.Unregister: %w", err)
	}

	activity, err := s.repo.GetByName(ctx, activityName)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Unregister: %w", err)
	}

	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return fmt.Errorf("service.ActivityService.Unregister: %w", domain.ErrConflict)
	}

	participants := slices.Delete(slices.Clone(activity.Participants), i, i+1)
	if _, err := s.repo.UpdateParticipants(ctx, activityName, participants); err != nil {
		return fmt.Errorf("service.ActivityService.Unregister: %w", err)
	}
	return nil
}

// validateInput rejects blank activity names and emails before any DB access.
func validateInput(activityName, email string) error {
	if strings.TrimSpace(activityName) == "" {
		return fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return nil
}
