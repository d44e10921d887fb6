package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskerhq/tasker-api/internal/domain"
)

// CardStore defines persistence operations for cards.
type CardStore interface {
	// Create saves a new card. Returns ErrInvalidReference when the
	// list does not exist and ErrDuplicate when the position is
	// already taken in the list.
	Create(ctx context.Context, card *domain.Card) error

	// Get retrieves a card by ID. Returns ErrCardNotFound when the
	// card does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByList returns one page of a list's cards ordered by
	// position, along with the total card count for the list.
	ListByList(ctx context.Context, listID uuid.UUID, params ListParams) ([]domain.Card, int, error)

	// Update persists changes to an existing card. Returns
	// ErrCardNotFound when the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card. Returns ErrCardNotFound when the card
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
