package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskerhq/tasker-api/internal/domain"
)

// ListParams describes one page of a list query. Page is 1-indexed.
type ListParams struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// BoardStore defines persistence operations for boards.
type BoardStore interface {
	// Create saves a new board. Returns ErrDuplicate on uniqueness
	// violations.
	Create(ctx context.Context, board *domain.Board) error

	// Get retrieves a board by ID. Returns ErrBoardNotFound when the
	// board does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Board, error)

	// List returns one page of boards ordered by creation time,
	// newest first, along with the total board count.
	List(ctx context.Context, params ListParams) ([]domain.Board, int, error)

	// Update persists changes to an existing board. Returns
	// ErrBoardNotFound when the board does not exist.
	Update(ctx context.Context, board *domain.Board) error

	// Delete removes a board and, via cascade, its lists and cards.
	// Returns ErrBoardNotFound when the board does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
