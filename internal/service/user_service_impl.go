package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/recall/internal/domain"
)

type userService struct {
	ids []string
}

// NewUserService serves the fixed identity list. The list is copied.
func NewUserService(ids []string) UserService {
	cp := make([]string, len(ids))
	copy(cp, ids)
	return &userService{ids: cp}
}

func (s *userService) List(context.Context) ([]string, error) {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out, nil
}

func (s *userService) Validate(_ context.Context, userID string) error {
	for _, id := range s.ids {
		if id == userID {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownUser, userID)
}
