package model

import (
	"time"

	"eljardin/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldBookingDate        = "booking_date"
	FieldNumberOfGuests     = "number_of_guests"
	FieldTableNumber        = "table_number"
	FieldSpecialRequests    = "special_requests"
	FieldCancellationReason = "cancellation_reason"
	FieldStatus             = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	BookingDate        time.Time `db:"booking_date"`
	NumberOfGuests     int       `db:"number_of_guests"`
	TableNumber        *int      `db:"table_number"`
	SpecialRequests    *string   `db:"special_requests"`
	CancellationReason *string   `db:"cancellation_reason"`
	Status             string    `db:"status"`
	UserName           *string   `db:"name"  table:"users"`
	UserEmail          *string   `db:"email" table:"users"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN users ON bookings.user_id = users.id"
}
