package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/recall/internal/db"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemTestSetup(t *testing.T) *SQLiteItemRepo {
	t.Helper()
	return NewSQLiteItemRepo(testutil.NewTestDB(t))
}

func TestItemRepo_AddBatchAndListByUser(t *testing.T) {
	repo := itemTestSetup(t)
	ctx := context.Background()

	items := []domain.Item{
		testutil.NewTestItem("2025-06-17", testutil.WithTopic("Intro")),
		testutil.NewTestItem("2025-07-10", testutil.WithTopic("Intro")),
	}
	stored, err := repo.AddBatch(ctx, "1", "batch-1", items)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.NotEmpty(t, stored[0].ID)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
	assert.Equal(t, "1", stored[0].UserID)
	assert.Equal(t, "batch-1", stored[1].BatchID)

	list, err := repo.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, items, Items(list))
}

func TestItemRepo_ListByUser_Unknown(t *testing.T) {
	repo := itemTestSetup(t)

	list, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestItemRepo_ListByUser_InsertionOrder(t *testing.T) {
	repo := itemTestSetup(t)
	ctx := context.Background()

	// Later dates inserted first: storage keeps insertion order, sorting is
	// the agenda's job.
	testutil.SeedItems(t, repo, "1", testutil.NewTestItem("2025-12-01", testutil.WithTopic("b")))
	testutil.SeedItems(t, repo, "1", testutil.NewTestItem("2025-06-01", testutil.WithTopic("a")))

	list, err := repo.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Topic)
	assert.Equal(t, "a", list[1].Topic)
}

func TestItemRepo_UsersAreIsolated(t *testing.T) {
	repo := itemTestSetup(t)
	ctx := context.Background()

	testutil.SeedItems(t, repo, "1", testutil.NewTestItem("2025-06-01"))
	testutil.SeedItems(t, repo, "2", testutil.NewTestItem("2025-06-02"), testutil.NewTestItem("2025-06-03"))

	n1, err := repo.CountByUser(ctx, "1")
	require.NoError(t, err)
	n2, err := repo.CountByUser(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, n1)
	assert.Equal(t, 2, n2)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, users)
}

func TestItemRepo_NoDeduplication(t *testing.T) {
	repo := itemTestSetup(t)
	ctx := context.Background()

	it := testutil.NewTestItem("2025-06-01", testutil.WithTopic("same"))
	testutil.SeedItems(t, repo, "1", it)
	testutil.SeedItems(t, repo, "1", it)

	n, err := repo.CountByUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestItemRepo_EmptyTopicPreserved(t *testing.T) {
	repo := itemTestSetup(t)
	ctx := context.Background()

	testutil.SeedItems(t, repo, "1", testutil.NewTestItem("2025-06-01", testutil.WithTopic("")))

	list, err := repo.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "", list[0].Topic)
}

func TestItemRepo_ListBatch(t *testing.T) {
	repo := itemTestSetup(t)
	ctx := context.Background()

	batch := testutil.SeedItems(t, repo, "1",
		testutil.NewTestItem("2025-06-01"),
		testutil.NewTestItem("2025-07-01"),
	)
	testutil.SeedItems(t, repo, "1", testutil.NewTestItem("2025-08-01"))

	list, err := repo.ListBatch(ctx, batch)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-07-01", list[1].Date.String())
	assert.Equal(t, batch, list[1].BatchID)

	none, err := repo.ListBatch(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestItemRepo_AddBatch_RejectsZeroDate(t *testing.T) {
	repo := itemTestSetup(t)

	_, err := repo.AddBatch(context.Background(), "1", "b", []domain.Item{{Topic: "x"}})
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}

func TestItemRepo_CorruptStoredDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO revision_items (id, user_id, topic, date, created_at)
		VALUES ('bad', '1', 't', '2025-13-01', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = repo.ListByUser(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}

func TestItemRepo_AddBatch_RollbackInsideTx(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	injected := errors.New("disk full")

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := NewSQLiteItemRepo(tx).AddBatch(ctx, "1", "b", []domain.Item{
			testutil.NewTestItem("2025-06-01"),
			testutil.NewTestItem("2025-07-01"),
			testutil.NewTestItem("2025-08-01"),
		})
		return err
	})
	require.ErrorIs(t, err, injected)

	n, err := NewSQLiteItemRepo(database).CountByUser(ctx, "1")
	require.NoError(t, err)
	assert.Zero(t, n, "partial batch must not be visible")
}
