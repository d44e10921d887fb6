package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

// BoardStore implements store.BoardStore using PostgreSQL.
type BoardStore struct {
	pool *pgxpool.Pool
}

// Compile-time check that BoardStore satisfies the interface.
var _ store.BoardStore = (*BoardStore)(nil)

// NewBoardStore creates a BoardStore backed by the given pool.
func NewBoardStore(pool *pgxpool.Pool) *BoardStore {
	return &BoardStore{pool: pool}
}

// Create implements store.BoardStore.Create.
func (s *BoardStore) Create(ctx context.Context, board *domain.Board) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO boards (id, name, description, color, owner_id, status, visibility, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		board.ID, board.Name, board.Description, board.Color, board.OwnerID,
		board.Status, board.Visibility, board.CreatedAt, board.UpdatedAt)
	if err != nil {
		return MapError(err, "board", "create")
	}
	return nil
}

// Get implements store.BoardStore.Get.
func (s *BoardStore) Get(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, description, color, owner_id, status, visibility, created_at, updated_at
		 FROM boards WHERE id = $1`, id)

	board, err := scanBoard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrBoardNotFound
		}
		return nil, MapError(err, "board", "get")
	}
	return board, nil
}

// List implements store.BoardStore.List.
func (s *BoardStore) List(ctx context.Context, params store.ListParams) ([]domain.Board, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM boards`).Scan(&total); err != nil {
		return nil, 0, MapError(err, "board", "count")
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name, description, color, owner_id, status, visibility, created_at, updated_at
		 FROM boards ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, MapError(err, "board", "list")
	}
	defer rows.Close()

	boards := make([]domain.Board, 0, params.PerPage)
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, 0, MapError(err, "board", "list")
		}
		boards = append(boards, *board)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err, "board", "list")
	}

	return boards, total, nil
}

// Update implements store.BoardStore.Update.
func (s *BoardStore) Update(ctx context.Context, board *domain.Board) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE boards
		 SET name = $2, description = $3, color = $4, status = $5, visibility = $6, updated_at = $7
		 WHERE id = $1`,
		board.ID, board.Name, board.Description, board.Color,
		board.Status, board.Visibility, board.UpdatedAt)
	if err != nil {
		return MapError(err, "board", "update")
	}
	return checkRowsAffected(tag, store.ErrBoardNotFound)
}

// Delete implements store.BoardStore.Delete. Lists and cards are
// removed by the schema's ON DELETE CASCADE.
func (s *BoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return MapError(err, "board", "delete")
	}
	return checkRowsAffected(tag, store.ErrBoardNotFound)
}

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var board domain.Board
	err := row.Scan(&board.ID, &board.Name, &board.Description, &board.Color,
		&board.OwnerID, &board.Status, &board.Visibility, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning board row: %w", err)
	}
	return &board, nil
}
