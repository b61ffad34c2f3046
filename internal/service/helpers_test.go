package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/recall/internal/db"
	"github.com/alexanderramin/recall/internal/repository"
	"github.com/alexanderramin/recall/internal/testutil"
)

var testUsers = []string{"1", "2", "3", "4", "5"}

func setupRepos(t *testing.T) (repository.ItemRepo, db.UnitOfWork, UserService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteItemRepo(database),
		testutil.NewTestUoW(database),
		NewUserService(testUsers)
}

// recordingObserver keeps every use-case event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
