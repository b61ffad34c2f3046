package reminder

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alexanderramin/recall/internal/domain"
)

// Notifier delivers one due item to one user.
type Notifier interface {
	Notify(ctx context.Context, userID string, item domain.Item) error
}

// WriterNotifier prints reminders as plain lines, one per item.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, userID string, item domain.Item) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := fmt.Fprintf(n.w, "User %s: %s (review due today)\n", userID, item.Topic)
	return err
}
