package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardStatus describes the lifecycle state of a card.
type CardStatus string

const (
	CardStatusOpen       CardStatus = "open"
	CardStatusInProgress CardStatus = "in_progress"
	CardStatusDone       CardStatus = "done"
)

// Priority ranks the urgency of a card.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

const (
	maxCardTitleLength       = 500
	maxCardDescriptionLength = 5000
)

// Card is a single task within a board list.
type Card struct {
	ID          uuid.UUID  `json:"id"`
	ListID      uuid.UUID  `json:"list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Position    int        `json:"position"`
	Status      CardStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewCard creates a card with generated ID, defaults applied, and
// validation performed.
func NewCard(listID uuid.UUID, title, description string, position int) (*Card, error) {
	now := time.Now().UTC()

	card := &Card{
		ID:          uuid.New(),
		ListID:      listID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Position:    position,
		Status:      CardStatusOpen,
		Priority:    PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// Validate checks the card's intrinsic invariants.
func (c *Card) Validate() error {
	if c.ListID == uuid.Nil {
		return newFieldError("list_id", "list is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return newFieldError("title", "card title cannot be empty")
	}
	if len(c.Title) > maxCardTitleLength {
		return newFieldError("title", "card title cannot exceed 500 characters")
	}
	if len(c.Description) > maxCardDescriptionLength {
		return newFieldError("description", "description cannot exceed 5000 characters")
	}
	if c.Position < 0 {
		return newFieldError("position", "position cannot be negative")
	}
	switch c.Status {
	case CardStatusOpen, CardStatusInProgress, CardStatusDone:
	default:
		return newFieldError("status", "invalid card status")
	}
	switch c.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
	default:
		return newFieldError("priority", "invalid card priority")
	}
	return nil
}

// IsOverdue reports whether the card has a due date in the past and is
// not yet done.
func (c *Card) IsOverdue() bool {
	return c.DueDate != nil && c.DueDate.Before(time.Now().UTC()) && c.Status != CardStatusDone
}
