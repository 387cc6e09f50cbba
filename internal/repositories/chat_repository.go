package repositories

import (
	"database/sql"

	"saferide/internal/models"
)

type ChatRepository interface {
	FindOrCreate(memberA, memberB int) (*models.Chat, error)
	FindByMembers(memberA, memberB int) (*models.Chat, error)
	GetByID(id int) (*models.Chat, error)
	ListByUser(userID int) ([]*models.Chat, error)
	ListAll(limit, offset int) ([]*models.Chat, error)
}

type chatRepository struct {
	DB *sql.DB
}

func NewChatRepository(db *sql.DB) ChatRepository {
	return &chatRepository{DB: db}
}

// canonicalPair orders the two member ids so that every chat for a pair
// maps to the same (member_low, member_high) row regardless of who
// initiated it.
func canonicalPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// FindOrCreate is a single atomic upsert against the
// UNIQUE (member_low, member_high) constraint, so concurrent callers for
// the same pair always converge on one row. The no-op DO UPDATE is what
// makes RETURNING yield the existing row on conflict.
func (r *chatRepository) FindOrCreate(memberA, memberB int) (*models.Chat, error) {
	low, high := canonicalPair(memberA, memberB)
	const q = `
                INSERT INTO chats (member_low, member_high)
                VALUES ($1, $2)
                ON CONFLICT (member_low, member_high)
                DO UPDATE SET updated_at = chats.updated_at
                RETURNING id, member_low, member_high, created_at, updated_at
        `
	return r.scanChat(r.DB.QueryRow(q, low, high))
}

// FindByMembers queries the exact canonical pair, not containment.
func (r *chatRepository) FindByMembers(memberA, memberB int) (*models.Chat, error) {
	low, high := canonicalPair(memberA, memberB)
	const q = `
                SELECT id, member_low, member_high, created_at, updated_at
                FROM chats
                WHERE member_low = $1 AND member_high = $2
        `
	chat, err := r.scanChat(r.DB.QueryRow(q, low, high))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *chatRepository) GetByID(id int) (*models.Chat, error) {
	const q = `
                SELECT id, member_low, member_high, created_at, updated_at
                FROM chats
                WHERE id = $1
        `
	chat, err := r.scanChat(r.DB.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *chatRepository) ListByUser(userID int) ([]*models.Chat, error) {
	const q = `
                SELECT id, member_low, member_high, created_at, updated_at
                FROM chats
                WHERE member_low = $1 OR member_high = $1
                ORDER BY id
        `
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanChats(rows)
}

func (r *chatRepository) ListAll(limit, offset int) ([]*models.Chat, error) {
	const q = `
                SELECT id, member_low, member_high, created_at, updated_at
                FROM chats
                ORDER BY id
                LIMIT $1 OFFSET $2
        `
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanChats(rows)
}

func (r *chatRepository) scanChat(row *sql.Row) (*models.Chat, error) {
	chat := &models.Chat{}
	var low, high int
	if err := row.Scan(&chat.ID, &low, &high, &chat.CreatedAt, &chat.UpdatedAt); err != nil {
		return nil, err
	}
	chat.Members = []int{low, high}
	return chat, nil
}

func (r *chatRepository) scanChats(rows *sql.Rows) ([]*models.Chat, error) {
	var chats []*models.Chat
	for rows.Next() {
		chat := &models.Chat{}
		var low, high int
		if err := rows.Scan(&chat.ID, &low, &high, &chat.CreatedAt, &chat.UpdatedAt); err != nil {
			return nil, err
		}
		chat.Members = []int{low, high}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}
