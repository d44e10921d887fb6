package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BoardStatus describes the lifecycle state of a board.
type BoardStatus string

const (
	BoardStatusActive   BoardStatus = "active"
	BoardStatusArchived BoardStatus = "archived"
)

// BoardVisibility controls who can see a board.
type BoardVisibility string

const (
	BoardVisibilityPrivate BoardVisibility = "private"
	BoardVisibilityTeam    BoardVisibility = "team"
	BoardVisibilityPublic  BoardVisibility = "public"
)

const (
	maxBoardNameLength        = 255
	maxBoardDescriptionLength = 5000

	// DefaultBoardColor is the hex color assigned when none is given.
	DefaultBoardColor = "#0079bf"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Board is a top-level container for lists of cards.
type Board struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Color       string          `json:"color"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Status      BoardStatus     `json:"status"`
	Visibility  BoardVisibility `json:"visibility"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewBoard creates a board with generated ID, defaults applied, and
// validation performed. The name is trimmed of surrounding whitespace.
func NewBoard(name, description, color string, ownerID uuid.UUID) (*Board, error) {
	now := time.Now().UTC()
	if color == "" {
		color = DefaultBoardColor
	}

	board := &Board{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Color:       color,
		OwnerID:     ownerID,
		Status:      BoardStatusActive,
		Visibility:  BoardVisibilityTeam,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}
	return board, nil
}

// Validate checks the board's intrinsic invariants.
func (b *Board) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return newFieldError("name", "board name cannot be empty")
	}
	if len(b.Name) > maxBoardNameLength {
		return newFieldError("name", "board name cannot exceed 255 characters")
	}
	if len(b.Description) > maxBoardDescriptionLength {
		return newFieldError("description", "description cannot exceed 5000 characters")
	}
	if !hexColorPattern.MatchString(b.Color) {
		return newFieldError("color", "color must be a valid hex code (e.g. #0079bf)")
	}
	if b.OwnerID == uuid.Nil {
		return newFieldError("owner_id", "owner is required")
	}
	switch b.Status {
	case BoardStatusActive, BoardStatusArchived:
	default:
		return newFieldError("status", "invalid board status")
	}
	switch b.Visibility {
	case BoardVisibilityPrivate, BoardVisibilityTeam, BoardVisibilityPublic:
	default:
		return newFieldError("visibility", "invalid board visibility")
	}
	return nil
}
