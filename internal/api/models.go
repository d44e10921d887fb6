package api

import "time"

// CreateBoardRequest is the request body for POST /api/boards.
type CreateBoardRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Color       string `json:"color"       validate:"omitempty,hexcolor"`
	OwnerID     string `json:"owner_id"    validate:"required,uuid"`
}

// UpdateBoardRequest is the request body for PUT /api/boards/{id}.
// Nil fields are left unchanged.
type UpdateBoardRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Color       *string `json:"color"       validate:"omitempty,hexcolor"`
	Status      *string `json:"status"      validate:"omitempty,oneof=active archived"`
	Visibility  *string `json:"visibility"  validate:"omitempty,oneof=private team public"`
}

// CreateListRequest is the request body for POST /api/boards/{boardID}/lists.
type CreateListRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=255"`
	Position int    `json:"position" validate:"gte=0"`
}

// UpdateListRequest is the request body for PUT /api/lists/{id}.
type UpdateListRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=255"`
	Position *int    `json:"position" validate:"omitempty,gte=0"`
}

// CreateCardRequest is the request body for POST /api/lists/{listID}/cards.
type CreateCardRequest struct {
	Title       string     `json:"title"       validate:"required,min=1,max=500"`
	Description string     `json:"description" validate:"omitempty,max=5000"`
	Position    int        `json:"position"    validate:"gte=0"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  *string    `json:"assignee_id" validate:"omitempty,uuid"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateCardRequest is the request body for PUT /api/cards/{id}.
type UpdateCardRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1,max=500"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Position    *int       `json:"position"    validate:"omitempty,gte=0"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=open in_progress done"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  *string    `json:"assignee_id" validate:"omitempty,uuid"`
	DueDate     *time.Time `json:"due_date"`
}
