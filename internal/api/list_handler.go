package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

// ListHandler handles board list HTTP requests.
type ListHandler struct {
	lists  store.BoardListStore
	logger *slog.Logger
}

// NewListHandler creates a new ListHandler.
func NewListHandler(lists store.BoardListStore, logger *slog.Logger) *ListHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ListHandler")
	}
	return &ListHandler{
		lists:  lists,
		logger: logger.With(slog.String("component", "list_handler")),
	}
}

// Create handles POST /api/boards/{boardID}/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) error {
	boardID, err := pathID(r, "boardID", "Board")
	if err != nil {
		return err
	}

	var req CreateListRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return err
	}

	list, err := domain.NewBoardList(boardID, req.Name, req.Position)
	if err != nil {
		return mapDomainError(err)
	}

	if err := h.lists.Create(r.Context(), list); err != nil {
		// A broken board reference means the parent is gone.
		if errors.Is(err, store.ErrInvalidReference) {
			return shared.NewNotFoundError("Board not found", "board")
		}
		return mapStoreError(err, "list", "List")
	}

	h.logger.Debug("list created",
		slog.String("list_id", list.ID.String()),
		slog.String("board_id", boardID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated,
		shared.SuccessBody("List created successfully", list))
	return nil
}

// ListByBoard handles GET /api/boards/{boardID}/lists.
func (h *ListHandler) ListByBoard(w http.ResponseWriter, r *http.Request) error {
	boardID, err := pathID(r, "boardID", "Board")
	if err != nil {
		return err
	}

	lists, err := h.lists.ListByBoard(r.Context(), boardID)
	if err != nil {
		return mapStoreError(err, "list", "List")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Lists retrieved successfully", lists))
	return nil
}

// Update handles PUT /api/lists/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "List")
	if err != nil {
		return err
	}

	var req UpdateListRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return err
	}

	list, err := h.lists.Get(r.Context(), id)
	if err != nil {
		return mapStoreError(err, "list", "List")
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Position != nil {
		list.Position = *req.Position
	}
	list.UpdatedAt = time.Now().UTC()

	if err := list.Validate(); err != nil {
		return mapDomainError(err)
	}

	if err := h.lists.Update(r.Context(), list); err != nil {
		return mapStoreError(err, "list", "List")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("List updated successfully", list))
	return nil
}

// Delete handles DELETE /api/lists/{id}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", "List")
	if err != nil {
		return err
	}

	if err := h.lists.Delete(r.Context(), id); err != nil {
		return mapStoreError(err, "list", "List")
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("List deleted successfully", nil))
	return nil
}
