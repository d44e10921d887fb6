package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

type stubListStore struct {
	createFn      func(ctx context.Context, list *domain.BoardList) error
	getFn         func(ctx context.Context, id uuid.UUID) (*domain.BoardList, error)
	listByBoardFn func(ctx context.Context, boardID uuid.UUID) ([]domain.BoardList, error)
	updateFn      func(ctx context.Context, list *domain.BoardList) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (s *stubListStore) Create(ctx context.Context, list *domain.BoardList) error {
	return s.createFn(ctx, list)
}

func (s *stubListStore) Get(ctx context.Context, id uuid.UUID) (*domain.BoardList, error) {
	return s.getFn(ctx, id)
}

func (s *stubListStore) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.BoardList, error) {
	return s.listByBoardFn(ctx, boardID)
}

func (s *stubListStore) Update(ctx context.Context, list *domain.BoardList) error {
	return s.updateFn(ctx, list)
}

func (s *stubListStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

var _ store.BoardListStore = (*stubListStore)(nil)

func TestListHandlerCreate(t *testing.T) {
	boardID := uuid.New()
	var created *domain.BoardList
	lists := &stubListStore{
		createFn: func(ctx context.Context, list *domain.BoardList) error {
			created = list
			return nil
		},
	}
	h := NewListHandler(lists, discardLogger())

	req := withPathID(
		httptest.NewRequest(http.MethodPost, "/api/boards/x/lists",
			strings.NewReader(`{"name":"Backlog","position":1}`)),
		"boardID", boardID.String())
	w := httptest.NewRecorder()
	require.NoError(t, h.Create(w, req))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, boardID, created.BoardID)
	assert.Equal(t, "Backlog", created.Name)
	assert.Equal(t, 1, created.Position)
}

func TestListHandlerCreateMissingBoard(t *testing.T) {
	lists := &stubListStore{
		createFn: func(ctx context.Context, list *domain.BoardList) error {
			return store.ErrInvalidReference
		},
	}
	h := NewListHandler(lists, discardLogger())

	req := withPathID(
		httptest.NewRequest(http.MethodPost, "/api/boards/x/lists",
			strings.NewReader(`{"name":"Backlog"}`)),
		"boardID", uuid.NewString())
	err := h.Create(httptest.NewRecorder(), req)

	// A dangling board reference reads as the parent being gone.
	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Board not found", apiErr.Message)
	assert.Equal(t, map[string]any{"resource": "board"}, apiErr.Details)
}

func TestListHandlerCreatePositionTaken(t *testing.T) {
	lists := &stubListStore{
		createFn: func(ctx context.Context, list *domain.BoardList) error {
			return store.ErrDuplicate
		},
	}
	h := NewListHandler(lists, discardLogger())

	req := withPathID(
		httptest.NewRequest(http.MethodPost, "/api/boards/x/lists",
			strings.NewReader(`{"name":"Backlog","position":1}`)),
		"boardID", uuid.NewString())
	err := h.Create(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestListHandlerListByBoard(t *testing.T) {
	boardID := uuid.New()
	backlog, err := domain.NewBoardList(boardID, "Backlog", 0)
	require.NoError(t, err)

	lists := &stubListStore{
		listByBoardFn: func(ctx context.Context, id uuid.UUID) ([]domain.BoardList, error) {
			assert.Equal(t, boardID, id)
			return []domain.BoardList{*backlog}, nil
		},
	}
	h := NewListHandler(lists, discardLogger())

	req := withPathID(httptest.NewRequest(http.MethodGet, "/api/boards/x/lists", nil),
		"boardID", boardID.String())
	w := httptest.NewRecorder()
	require.NoError(t, h.ListByBoard(w, req))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backlog")
}

func TestListHandlerUpdateNotFound(t *testing.T) {
	lists := &stubListStore{
		getFn: func(ctx context.Context, id uuid.UUID) (*domain.BoardList, error) {
			return nil, store.ErrListNotFound
		},
	}
	h := NewListHandler(lists, discardLogger())

	req := withPathID(
		httptest.NewRequest(http.MethodPut, "/api/lists/x", strings.NewReader(`{"name":"Renamed"}`)),
		"id", uuid.NewString())
	err := h.Update(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "List not found", apiErr.Message)
}
