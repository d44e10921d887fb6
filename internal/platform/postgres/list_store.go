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

// BoardListStore implements store.BoardListStore using PostgreSQL.
type BoardListStore struct {
	pool *pgxpool.Pool
}

var _ store.BoardListStore = (*BoardListStore)(nil)

// NewBoardListStore creates a BoardListStore backed by the given pool.
func NewBoardListStore(pool *pgxpool.Pool) *BoardListStore {
	return &BoardListStore{pool: pool}
}

// Create implements store.BoardListStore.Create.
func (s *BoardListStore) Create(ctx context.Context, list *domain.BoardList) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO board_lists (id, board_id, name, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		list.ID, list.BoardID, list.Name, list.Position, list.CreatedAt, list.UpdatedAt)
	if err != nil {
		return MapError(err, "list", "create")
	}
	return nil
}

// Get implements store.BoardListStore.Get.
func (s *BoardListStore) Get(ctx context.Context, id uuid.UUID) (*domain.BoardList, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, board_id, name, position, created_at, updated_at
		 FROM board_lists WHERE id = $1`, id)

	list, err := scanBoardList(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrListNotFound
		}
		return nil, MapError(err, "list", "get")
	}
	return list, nil
}

// ListByBoard implements store.BoardListStore.ListByBoard.
func (s *BoardListStore) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.BoardList, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, board_id, name, position, created_at, updated_at
		 FROM board_lists WHERE board_id = $1 ORDER BY position ASC`, boardID)
	if err != nil {
		return nil, MapError(err, "list", "list_by_board")
	}
	defer rows.Close()

	var lists []domain.BoardList
	for rows.Next() {
		list, err := scanBoardList(rows)
		if err != nil {
			return nil, MapError(err, "list", "list_by_board")
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, "list", "list_by_board")
	}

	return lists, nil
}

// Update implements store.BoardListStore.Update.
func (s *BoardListStore) Update(ctx context.Context, list *domain.BoardList) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE board_lists SET name = $2, position = $3, updated_at = $4 WHERE id = $1`,
		list.ID, list.Name, list.Position, list.UpdatedAt)
	if err != nil {
		return MapError(err, "list", "update")
	}
	return checkRowsAffected(tag, store.ErrListNotFound)
}

// Delete implements store.BoardListStore.Delete. Cards are removed by
// the schema's ON DELETE CASCADE.
func (s *BoardListStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM board_lists WHERE id = $1`, id)
	if err != nil {
		return MapError(err, "list", "delete")
	}
	return checkRowsAffected(tag, store.ErrListNotFound)
}

func scanBoardList(row pgx.Row) (*domain.BoardList, error) {
	var list domain.BoardList
	err := row.Scan(&list.ID, &list.BoardID, &list.Name, &list.Position,
		&list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning board list row: %w", err)
	}
	return &list, nil
}
