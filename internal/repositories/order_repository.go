package repositories

import (
	"database/sql"

	"saferide/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id int) (*models.Order, error)
	ListAll(limit, offset int) ([]*models.Order, error)
	Delete(id int) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	const q = `
        INSERT INTO orders (sender_id, receiver_id, sender_name, receiver_name, origin, destination, is_complete)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	return r.DB.QueryRow(q,
		order.SenderID,
		order.ReceiverID,
		order.SenderName,
		nullString(order.ReceiverName),
		order.Origin,
		order.Destination,
		order.IsComplete,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetByID(id int) (*models.Order, error) {
	const q = `
        SELECT id, sender_id, receiver_id, sender_name, receiver_name, origin, destination, is_complete, created_at, updated_at
        FROM orders
        WHERE id = $1
    `
	o := &models.Order{}
	var receiverName sql.NullString
	err := r.DB.QueryRow(q, id).Scan(
		&o.ID, &o.SenderID, &o.ReceiverID, &o.SenderName, &receiverName,
		&o.Origin, &o.Destination, &o.IsComplete, &o.CreatedAt, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if receiverName.Valid {
		o.ReceiverName = receiverName.String
	}
	return o, nil
}

func (r *orderRepository) ListAll(limit, offset int) ([]*models.Order, error) {
	const q = `
        SELECT id, sender_id, receiver_id, sender_name, receiver_name, origin, destination, is_complete, created_at, updated_at
        FROM orders
        ORDER BY id
        LIMIT $1 OFFSET $2
    `
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		o := &models.Order{}
		var receiverName sql.NullString
		if err := rows.Scan(
			&o.ID, &o.SenderID, &o.ReceiverID, &o.SenderName, &receiverName,
			&o.Origin, &o.Destination, &o.IsComplete, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if receiverName.Valid {
			o.ReceiverName = receiverName.String
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM orders WHERE id=$1`, id)
	return err
}
