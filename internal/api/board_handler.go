package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

// BoardHandler handles board-related HTTP requests.
type BoardHandler struct {
	boards store.BoardStore
	logger *slog.Logger
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boards store.BoardStore, logger *slog.Logger) *BoardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BoardHandler")
	}
	return &BoardHandler{
		boards: boards,
		logger: logger.With(slog.String("component", "board_handler")),
	}
}

// Create handles POST /api/boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req CreateBoardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return err
	}

	// Already validated by the uuid tag.
	ownerID := uuid.MustParse(req.OwnerID)

	board, err := domain.NewBoard(req.Name, req.Description, req.Color, ownerID)
	if err != nil {
		return mapDomainError(err)
	}

	if err := h.boards.Create(r.Context(), board); err != nil {
		return mapStoreError(err, "board", "Board")
	}

	h.logger.Debug("board created", slog.String("board_id", board.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated,
		shared.SuccessBody("Board created successfully", board))
	return nil
}

// List handles GET /api/boards with pagination.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) error {
	params, err := paginationParams(r)
	if err != nil {
		return err
	}

	boards, total, err := h.boards.List(r.Context(), params)
	if err != nil {
		return mapStoreError(err, "board", "Board")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.PaginatedBody(boards, total, params.Page, params.PerPage, "Boards retrieved successfully"))
	return nil
}

// Get handles GET /api/boards/{id}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "Board")
	if err != nil {
		return err
	}

	board, err := h.boards.Get(r.Context(), id)
	if err != nil {
		return mapStoreError(err, "board", "Board")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Board retrieved successfully", board))
	return nil
}

// Update handles PUT /api/boards/{id}. Absent fields keep their
// current values.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "Board")
	if err != nil {
		return err
	}

	var req UpdateBoardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return err
	}

	board, err := h.boards.Get(r.Context(), id)
	if err != nil {
		return mapStoreError(err, "board", "Board")
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if req.Color != nil {
		board.Color = *req.Color
	}
	if req.Status != nil {
		board.Status = domain.BoardStatus(*req.Status)
	}
	if req.Visibility != nil {
		board.Visibility = domain.BoardVisibility(*req.Visibility)
	}
	board.UpdatedAt = time.Now().UTC()

	if err := board.Validate(); err != nil {
		return mapDomainError(err)
	}

	if err := h.boards.Update(r.Context(), board); err != nil {
		return mapStoreError(err, "board", "Board")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Board updated successfully", board))
	return nil
}

// Delete handles DELETE /api/boards/{id}.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "Board")
	if err != nil {
		return err
	}

	if err := h.boards.Delete(r.Context(), id); err != nil {
		return mapStoreError(err, "board", "Board")
	}

	h.logger.Debug("board deleted", slog.String("board_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Board deleted successfully", nil))
	return nil
}
