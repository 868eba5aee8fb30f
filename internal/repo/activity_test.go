package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities-api/internal/domain"
	"github.com/mergington/activities-api/internal/repo"
	"github.com/mergington/activities-api/testutil"
)

// newTestRepo opens a transaction against the test database and returns an
// ActivityRepo backed by that transaction. The transaction is rolled back
// when the test finishes, giving free per-test isolation.
func newTestRepo(t *testing.T) repo.ActivityRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewActivityRepo(tx)
}

// activityFixture returns a domain.Activity with sensible defaults.
// Callers can override individual fields after calling this function.
func activityFixture() domain.Activity {
	capacity := 12
	return domain.Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: &capacity,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
}

func TestActivityRepo_CreateAll_And_GetByName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := activityFixture()
	require.NoError(t, r.CreateAll(ctx, []domain.Activity{input}))

	got, err := r.GetByName(ctx, input.Name)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Description, got.Description)
	assert.Equal(t, input.Schedule, got.Schedule)
	require.NotNil(t, got.MaxParticipants)
	assert.Equal(t, 12, *got.MaxParticipants)
	assert.Equal(t, input.Participants, got.Participants, "participants must keep insertion order")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestActivityRepo_GetByName_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByName(context.Background(), "Underwater Basket Weaving")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_CreateAll_EmptyParticipants(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := activityFixture()
	input.Name = "Debate Team"
	input.Participants = nil

	require.NoError(t, r.CreateAll(ctx, []domain.Activity{input}))

	got, err := r.GetByName(ctx, "Debate Team")

	require.NoError(t, err)
	assert.NotNil(t, got.Participants, "participants must never be nil on read")
	assert.Empty(t, got.Participants)
}

func TestActivityRepo_CreateAll_NilMaxParticipants(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := activityFixture()
	input.Name = "Open Study Hall"
	input.MaxParticipants = nil

	require.NoError(t, r.CreateAll(ctx, []domain.Activity{input}))

	got, err := r.GetByName(ctx, "Open Study Hall")

	require.NoError(t, err)
	assert.Nil(t, got.MaxParticipants)
}

func TestActivityRepo_List(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a1 := activityFixture()
	a2 := activityFixture()
	a2.Name = "Art Club"

	require.NoError(t, r.CreateAll(ctx, []domain.Activity{a1, a2}))

	activities, err := r.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(activities), 2, "should return at least the two created activities")

	var names []string
	for _, a := range activities {
		names = append(names, a.Name)
	}
	assert.Contains(t, names, "Chess Club")
	assert.Contains(t, names, "Art Club")
}

func TestActivityRepo_UpdateParticipants(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := activityFixture()
	require.NoError(t, r.CreateAll(ctx, []domain.Activity{input}))

	updated := append(input.Participants, "new@mergington.edu")
	got, err := r.UpdateParticipants(ctx, input.Name, updated)

	require.NoError(t, err)
	assert.Equal(t, updated, got.Participants, "append must preserve existing order")

	// Read back to confirm the write persisted within the transaction.
	reread, err := r.GetByName(ctx, input.Name)
	require.NoError(t, err)
	assert.Equal(t, updated, reread.Participants)
}

func TestActivityRepo_UpdateParticipants_Empty(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := activityFixture()
	require.NoError(t, r.CreateAll(ctx, []domain.Activity{input}))

	got, err := r.UpdateParticipants(ctx, input.Name, nil)

	require.NoError(t, err)
	assert.NotNil(t, got.Participants)
	assert.Empty(t, got.Participants)
}

func TestActivityRepo_UpdateParticipants_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.UpdateParticipants(context.Background(), "Ghost Club", []string{"a@mergington.edu"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_Count(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	before, err := r.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, r.CreateAll(ctx, []domain.Activity{activityFixture()}))

	after, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestActivityRepo_CreateAll_NoActivities(t *testing.T) {
	r := newTestRepo(t)

	// No-op, no error.
	require.NoError(t, r.CreateAll(context.Background(), nil))
}
