package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

// stubBoardStore implements store.BoardStore with per-test behavior.
type stubBoardStore struct {
	createFn func(ctx context.Context, board *domain.Board) error
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	listFn   func(ctx context.Context, params store.ListParams) ([]domain.Board, int, error)
	updateFn func(ctx context.Context, board *domain.Board) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubBoardStore) Create(ctx context.Context, board *domain.Board) error {
	return s.createFn(ctx, board)
}

func (s *stubBoardStore) Get(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	return s.getFn(ctx, id)
}

func (s *stubBoardStore) List(ctx context.Context, params store.ListParams) ([]domain.Board, int, error) {
	return s.listFn(ctx, params)
}

func (s *stubBoardStore) Update(ctx context.Context, board *domain.Board) error {
	return s.updateFn(ctx, board)
}

func (s *stubBoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

var _ store.BoardStore = (*stubBoardStore)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withPathID attaches a chi route parameter to the request context.
func withPathID(r *http.Request, name, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestBoardHandlerCreate(t *testing.T) {
	ownerID := uuid.New()
	var created *domain.Board
	boards := &stubBoardStore{
		createFn: func(ctx context.Context, board *domain.Board) error {
			created = board
			return nil
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	body := `{"name":"Roadmap","description":"Q3 planning","owner_id":"` + ownerID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(body))
	w := httptest.NewRecorder()

	require.NoError(t, h.Create(w, req))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "Roadmap", created.Name)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Equal(t, domain.DefaultBoardColor, created.Color)
	assert.NotEqual(t, uuid.Nil, created.ID)

	assert.Contains(t, w.Body.String(), "Board created successfully")
}

func TestBoardHandlerCreateMalformedBody(t *testing.T) {
	h := NewBoardHandler(&stubBoardStore{}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader("{not json"))
	err := h.Create(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestBoardHandlerCreateValidationFailure(t *testing.T) {
	h := NewBoardHandler(&stubBoardStore{}, discardLogger())

	// Missing owner_id.
	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"name":"Roadmap"}`))
	err := h.Create(httptest.NewRecorder(), req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs,
		"raw validator errors must reach the dispatcher untranslated")
}

func TestBoardHandlerCreateDuplicate(t *testing.T) {
	boards := &stubBoardStore{
		createFn: func(ctx context.Context, board *domain.Board) error {
			return store.ErrDuplicate
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	body := `{"name":"Roadmap","owner_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(body))
	err := h.Create(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestBoardHandlerList(t *testing.T) {
	ownerID := uuid.New()
	board, err := domain.NewBoard("Roadmap", "", "", ownerID)
	require.NoError(t, err)

	var gotParams store.ListParams
	boards := &stubBoardStore{
		listFn: func(ctx context.Context, params store.ListParams) ([]domain.Board, int, error) {
			gotParams = params
			return []domain.Board{*board}, 42, nil
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/boards?page=3&per_page=20", nil)
	w := httptest.NewRecorder()
	require.NoError(t, h.List(w, req))

	assert.Equal(t, store.ListParams{Page: 3, PerPage: 20}, gotParams)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	pagination, ok := resp["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), pagination["total"])
	assert.Equal(t, float64(3), pagination["page"])
	assert.Equal(t, float64(3), pagination["total_pages"])
}

func TestBoardHandlerListRejectsBadPage(t *testing.T) {
	h := NewBoardHandler(&stubBoardStore{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/boards?page=zero", nil)
	err := h.List(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestBoardHandlerGetNotFound(t *testing.T) {
	boards := &stubBoardStore{
		getFn: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return nil, store.ErrBoardNotFound
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	req := withPathID(httptest.NewRequest(http.MethodGet, "/api/boards/x", nil), "id", uuid.NewString())
	err := h.Get(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Board not found", apiErr.Message)
	assert.Equal(t, map[string]any{"resource": "board"}, apiErr.Details)
}

func TestBoardHandlerGetInvalidID(t *testing.T) {
	h := NewBoardHandler(&stubBoardStore{}, discardLogger())

	req := withPathID(httptest.NewRequest(http.MethodGet, "/api/boards/nope", nil), "id", "nope")
	err := h.Get(httptest.NewRecorder(), req)

	var apiErr *shared.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid Board ID format", apiErr.Message)
}

func TestBoardHandlerUpdatePartial(t *testing.T) {
	ownerID := uuid.New()
	existing, err := domain.NewBoard("Roadmap", "old description", "", ownerID)
	require.NoError(t, err)

	var updated *domain.Board
	boards := &stubBoardStore{
		getFn: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			clone := *existing
			return &clone, nil
		},
		updateFn: func(ctx context.Context, board *domain.Board) error {
			updated = board
			return nil
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	body := `{"name":"Renamed","status":"archived"}`
	req := withPathID(
		httptest.NewRequest(http.MethodPut, "/api/boards/x", strings.NewReader(body)),
		"id", existing.ID.String())
	w := httptest.NewRecorder()
	require.NoError(t, h.Update(w, req))

	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, domain.BoardStatusArchived, updated.Status)
	// Absent fields keep their values.
	assert.Equal(t, "old description", updated.Description)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBoardHandlerDelete(t *testing.T) {
	targetID := uuid.New()
	var deleted uuid.UUID
	boards := &stubBoardStore{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	req := withPathID(httptest.NewRequest(http.MethodDelete, "/api/boards/x", nil), "id", targetID.String())
	w := httptest.NewRecorder()
	require.NoError(t, h.Delete(w, req))

	assert.Equal(t, targetID, deleted)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Board deleted successfully")
}

func TestBoardHandlerDeleteStorageFailurePassesThrough(t *testing.T) {
	driverErr := errors.New("connection refused")
	boards := &stubBoardStore{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return store.NewStorageError("board", "delete", driverErr)
		},
	}
	h := NewBoardHandler(boards, discardLogger())

	req := withPathID(httptest.NewRequest(http.MethodDelete, "/api/boards/x", nil), "id", uuid.NewString())
	err := h.Delete(httptest.NewRecorder(), req)

	var storageErr *store.StorageError
	require.ErrorAs(t, err, &storageErr,
		"infrastructure failures must reach the dispatcher untranslated")
}
