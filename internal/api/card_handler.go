package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	cards  store.CardStore
	logger *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards store.CardStore, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}
	return &CardHandler{
		cards:  cards,
		logger: logger.With(slog.String("component", "card_handler")),
	}
}

// Create handles POST /api/lists/{listID}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) error {
	listID, err := pathID(r, "listID", "List")
	if err != nil {
		return err
	}

	var req CreateCardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return err
	}

	card, err := domain.NewCard(listID, req.Title, req.Description, req.Position)
	if err != nil {
		return mapDomainError(err)
	}
	if req.Priority != "" {
		card.Priority = domain.Priority(req.Priority)
	}
	if req.AssigneeID != nil {
		assigneeID := uuid.MustParse(*req.AssigneeID)
		card.AssigneeID = &assigneeID
	}
	card.DueDate = req.DueDate

	if err := h.cards.Create(r.Context(), card); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return shared.NewNotFoundError("List not found", "list")
		}
		return mapStoreError(err, "card", "Card")
	}

	h.logger.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("list_id", listID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated,
		shared.SuccessBody("Card created successfully", card))
	return nil
}

// ListByList handles GET /api/lists/{listID}/cards with pagination.
func (h *CardHandler) ListByList(w http.ResponseWriter, r *http.Request) error {
	listID, err := pathID(r, "listID", "List")
	if err != nil {
		return err
	}

	params, err := paginationParams(r)
	if err != nil {
		return err
	}

	cards, total, err := h.cards.ListByList(r.Context(), listID, params)
	if err != nil {
		return mapStoreError(err, "card", "Card")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.PaginatedBody(cards, total, params.Page, params.PerPage, "Cards retrieved successfully"))
	return nil
}

// Get handles GET /api/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "Card")
	if err != nil {
		return err
	}

	card, err := h.cards.Get(r.Context(), id)
	if err != nil {
		return mapStoreError(err, "card", "Card")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Card retrieved successfully", card))
	return nil
}

// Update handles PUT /api/cards/{id}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "Card")
	if err != nil {
		return err
	}

	var req UpdateCardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return err
	}

	card, err := h.cards.Get(r.Context(), id)
	if err != nil {
		return mapStoreError(err, "card", "Card")
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.Position != nil {
		card.Position = *req.Position
	}
	if req.Status != nil {
		card.Status = domain.CardStatus(*req.Status)
	}
	if req.Priority != nil {
		card.Priority = domain.Priority(*req.Priority)
	}
	if req.AssigneeID != nil {
		assigneeID := uuid.MustParse(*req.AssigneeID)
		card.AssigneeID = &assigneeID
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}
	card.UpdatedAt = time.Now().UTC()

	if err := card.Validate(); err != nil {
		return mapDomainError(err)
	}

	if err := h.cards.Update(r.Context(), card); err != nil {
		return mapStoreError(err, "card", "Card")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Card updated successfully", card))
	return nil
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "Card")
	if err != nil {
		return err
	}

	if err := h.cards.Delete(r.Context(), id); err != nil {
		return mapStoreError(err, "card", "Card")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Card deleted successfully", nil))
	return nil
}
