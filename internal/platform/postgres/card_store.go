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

// CardStore implements store.CardStore using PostgreSQL.
type CardStore struct {
	pool *pgxpool.Pool
}

var _ store.CardStore = (*CardStore)(nil)

// NewCardStore creates a CardStore backed by the given pool.
func NewCardStore(pool *pgxpool.Pool) *CardStore {
	return &CardStore{pool: pool}
}

// Create implements store.CardStore.Create.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cards (id, list_id, title, description, position, status, priority, assignee_id, due_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		card.ID, card.ListID, card.Title, card.Description, card.Position,
		card.Status, card.Priority, card.AssigneeID, card.DueDate,
		card.CreatedAt, card.UpdatedAt)
	if err != nil {
		return MapError(err, "card", "create")
	}
	return nil
}

// Get implements store.CardStore.Get.
func (s *CardStore) Get(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, list_id, title, description, position, status, priority, assignee_id, due_date, created_at, updated_at
		 FROM cards WHERE id = $1`, id)

	card, err := scanCard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		return nil, MapError(err, "card", "get")
	}
	return card, nil
}

// ListByList implements store.CardStore.ListByList.
func (s *CardStore) ListByList(ctx context.Context, listID uuid.UUID, params store.ListParams) ([]domain.Card, int, error) {
	var total int
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM cards WHERE list_id = $1`, listID).Scan(&total)
	if err != nil {
		return nil, 0, MapError(err, "card", "count")
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, list_id, title, description, position, status, priority, assignee_id, due_date, created_at, updated_at
		 FROM cards WHERE list_id = $1 ORDER BY position ASC LIMIT $2 OFFSET $3`,
		listID, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, MapError(err, "card", "list_by_list")
	}
	defer rows.Close()

	cards := make([]domain.Card, 0, params.PerPage)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, 0, MapError(err, "card", "list_by_list")
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err, "card", "list_by_list")
	}

	return cards, total, nil
}

// Update implements store.CardStore.Update.
func (s *CardStore) Update(ctx context.Context, card *domain.Card) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE cards
		 SET title = $2, description = $3, position = $4, status = $5, priority = $6, assignee_id = $7, due_date = $8, updated_at = $9
		 WHERE id = $1`,
		card.ID, card.Title, card.Description, card.Position, card.Status,
		card.Priority, card.AssigneeID, card.DueDate, card.UpdatedAt)
	if err != nil {
		return MapError(err, "card", "update")
	}
	return checkRowsAffected(tag, store.ErrCardNotFound)
}

// Delete implements store.CardStore.Delete.
func (s *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return MapError(err, "card", "delete")
	}
	return checkRowsAffected(tag, store.ErrCardNotFound)
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(&card.ID, &card.ListID, &card.Title, &card.Description,
		&card.Position, &card.Status, &card.Priority, &card.AssigneeID,
		&card.DueDate, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning card row: %w", err)
	}
	return &card, nil
}
