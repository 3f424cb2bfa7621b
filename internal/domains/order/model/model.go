package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eljardin/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldItems       = "items"
	FieldOrderDate   = "order_date"
	FieldTotalAmount = "total_amount"
	FieldStatus      = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type OrderItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// OrderItems is stored as a JSON column. MySQL returns JSON values as []byte,
// older drivers as string; both are accepted on scan.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}

	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}

	return data, nil
}

func (o *OrderItems) Scan(src any) error {
	if src == nil {
		*o = nil
		return nil
	}

	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for order items")
	}

	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return nil
}

type Order struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Items       OrderItems `db:"items"`
	OrderDate   time.Time  `db:"order_date"`
	TotalAmount float64    `db:"total_amount"`
	Status      string     `db:"status"`
	UserName    *string    `db:"name"    table:"users"`
	UserEmail   *string    `db:"email"   table:"users"`
	UserPhone   *string    `db:"phone"   table:"users"`
	UserAddress *string    `db:"address" table:"users"`
	model.Metadata
}

func (Order) GetJoinQuery() string {
	return "LEFT JOIN users ON orders.user_id = users.id"
}
