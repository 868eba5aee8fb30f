// Package domain contains the core data types for the Mergington activities API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents one extracurricular offering students can join.
// Identity for external callers is the unique Name; the UUID is the
// surrogate key the database assigns.
type Activity struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Schedule        string    `json:"schedule"`
	MaxParticipants *int      `json:"max_participants"` // nil when no capacity is recorded
	Participants    []string  `json:"participants"`     // student emails, insertion order
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ActivityDetail is the client-facing shape of an activity, keyed by name in
// the GET /activities response. It omits the surrogate ID and timestamps.
type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants *int     `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Detail returns the client-facing view of the activity.
// Participants is never nil — an empty roster serializes as [].
func (a Activity) Detail() ActivityDetail {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityDetail{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
