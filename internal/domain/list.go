package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxListNameLength = 255

// BoardList is an ordered column of cards within a board.
type BoardList struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"board_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBoardList creates a list with generated ID and validation
// performed.
func NewBoardList(boardID uuid.UUID, name string, position int) (*BoardList, error) {
	now := time.Now().UTC()

	list := &BoardList{
		ID:        uuid.New(),
		BoardID:   boardID,
		Name:      strings.TrimSpace(name),
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}
	return list, nil
}

// Validate checks the list's intrinsic invariants.
func (l *BoardList) Validate() error {
	if l.BoardID == uuid.Nil {
		return newFieldError("board_id", "board is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return newFieldError("name", "list name cannot be empty")
	}
	if len(l.Name) > maxListNameLength {
		return newFieldError("name", "list name cannot exceed 255 characters")
	}
	if l.Position < 0 {
		return newFieldError("position", "position cannot be negative")
	}
	return nil
}
