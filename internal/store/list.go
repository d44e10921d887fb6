package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskerhq/tasker-api/internal/domain"
)

// BoardListStore defines persistence operations for board lists.
type BoardListStore interface {
	// Create saves a new list. Returns ErrInvalidReference when the
	// board does not exist and ErrDuplicate when the position is
	// already taken on the board.
	Create(ctx context.Context, list *domain.BoardList) error

	// Get retrieves a list by ID. Returns ErrListNotFound when the
	// list does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.BoardList, error)

	// ListByBoard returns all lists of a board ordered by position.
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.BoardList, error)

	// Update persists changes to an existing list. Returns
	// ErrListNotFound when the list does not exist.
	Update(ctx context.Context, list *domain.BoardList) error

	// Delete removes a list and, via cascade, its cards. Returns
	// ErrListNotFound when the list does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
