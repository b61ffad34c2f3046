package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/repository"
	"github.com/alexanderramin/recall/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_StoresFiveItems(t *testing.T) {
	items, uow, users := setupRepos(t)
	ctx := context.Background()
	svc := NewRevisionService(users, uow)

	created, err := svc.Schedule(ctx, "1", "Introduction", "2025-06-10")
	require.NoError(t, err)
	require.Len(t, created, domain.RevisionCount)

	stored, err := items.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, created, repository.Items(stored))

	batchID := stored[0].BatchID
	assert.NotEmpty(t, batchID)
	for _, s := range stored {
		assert.Equal(t, batchID, s.BatchID, "one scheduling call is one batch")
	}
}

func TestSchedule_AppendsAcrossCalls(t *testing.T) {
	items, uow, users := setupRepos(t)
	ctx := context.Background()
	svc := NewRevisionService(users, uow)

	_, err := svc.Schedule(ctx, "1", "Go", "2025-01-31")
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, "1", "Go", "2025-01-31")
	require.NoError(t, err)

	n, err := items.CountByUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10, n, "storage appends without deduplication")
}

func TestSchedule_ReturnsCommittedBatch(t *testing.T) {
	items, uow, users := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewRevisionService(users, uow, obs)

	_, err := svc.Schedule(ctx, "1", "First", "2025-01-31")
	require.NoError(t, err)
	second, err := svc.Schedule(ctx, "1", "Second", "2025-03-31")
	require.NoError(t, err)

	batchID, ok := obs.last().Fields["batch"].(string)
	require.True(t, ok)
	stored, err := items.ListBatch(ctx, batchID)
	require.NoError(t, err)
	assert.Equal(t, repository.Items(stored), second)
	for _, it := range second {
		assert.Equal(t, "Second", it.Topic, "only the new batch is returned")
	}
	assert.Equal(t, "2025-04-30", second[1].Date.String())
}

func TestSchedule_InvalidDate_StoresNothing(t *testing.T) {
	items, uow, users := setupRepos(t)
	ctx := context.Background()
	svc := NewRevisionService(users, uow)

	created, err := svc.Schedule(ctx, "1", "Go", "2025-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	assert.Nil(t, created)

	n, err := items.CountByUser(ctx, "1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSchedule_UnknownUser(t *testing.T) {
	_, uow, users := setupRepos(t)
	svc := NewRevisionService(users, uow)

	_, err := svc.Schedule(context.Background(), "99", "Go", "2025-06-10")
	assert.ErrorIs(t, err, domain.ErrUnknownUser)
}

func TestSchedule_WriteFailure_IsAtomic(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	injected := errors.New("injected write failure")

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: injected}
	svc := NewRevisionService(NewUserService(testUsers), uow)

	created, err := svc.Schedule(ctx, "1", "Go", "2025-06-10")
	require.ErrorIs(t, err, injected)
	assert.Nil(t, created)

	n, err := repository.NewSQLiteItemRepo(database).CountByUser(ctx, "1")
	require.NoError(t, err)
	assert.Zero(t, n, "no partial batch after a failed insert")
}

func TestSchedule_ReportsUseCase(t *testing.T) {
	_, uow, users := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewRevisionService(users, uow, obs)

	_, err := svc.Schedule(context.Background(), "2", "Go", "2025-06-10")
	require.NoError(t, err)

	ev := obs.last()
	assert.Equal(t, "schedule-revisions", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "2", ev.Fields["user"])
	assert.Equal(t, 5, ev.Fields["item_count"])

	_, err = svc.Schedule(context.Background(), "2", "Go", "bad")
	require.Error(t, err)
	ev = obs.last()
	assert.False(t, ev.Success)
	assert.ErrorIs(t, ev.Err, domain.ErrInvalidDateFormat)
}
