package model

import (
	"time"

	"eljardin/shared/model"
)

const (
	BookingLogTableName  = "booking_log"
	BookingLogEntityName = "booking_log"
	OrderLogTableName    = "order_log"
	OrderLogEntityName   = "order_log"
	UserLogTableName     = "user_log"
	UserLogEntityName    = "user_log"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldAction = "action"
)

// Audit trail actions. The log tables are append-only; rows are never
// updated or deleted.
const (
	ActionSignup            = "signup"
	ActionLogin             = "login"
	ActionBookingCreated    = "booking_created"
	ActionBookingCancelled  = "booking_cancelled"
	ActionOrderCreated      = "order_created"
	ActionOrderCancelled    = "order_cancelled"
	ActionOrderItemsUpdated = "order_items_updated"
)

type BookingLog struct {
	ID             string     `db:"id"`
	UserID         string     `db:"user_id"`
	BookingID      *string    `db:"booking_id"`
	Action         string     `db:"action"`
	BookingDate    *time.Time `db:"booking_date"`
	NumberOfGuests *int       `db:"number_of_guests"`
	Status         *string    `db:"status"`
	UserName       *string    `db:"name"  table:"users"`
	UserEmail      *string    `db:"email" table:"users"`
	model.Metadata
}

func (BookingLog) GetJoinQuery() string {
	return "LEFT JOIN users ON booking_log.user_id = users.id"
}

type OrderLog struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	OrderID   *string `db:"order_id"`
	Action    string  `db:"action"`
	Details   *string `db:"details"`
	UserName  *string `db:"name"  table:"users"`
	UserEmail *string `db:"email" table:"users"`
	model.Metadata
}

func (OrderLog) GetJoinQuery() string {
	return "LEFT JOIN users ON order_log.user_id = users.id"
}

type UserLog struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	Action    string  `db:"action"`
	UserName  *string `db:"name"  table:"users"`
	UserEmail *string `db:"email" table:"users"`
	model.Metadata
}

func (UserLog) GetJoinQuery() string {
	return "LEFT JOIN users ON user_log.user_id = users.id"
}
