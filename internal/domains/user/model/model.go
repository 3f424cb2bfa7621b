package model

import (
	"time"

	"eljardin/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldRole      = "role"
	FieldUpdatedAt = "updated_at"
)

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Phone     *string   `db:"phone"`
	Address   *string   `db:"address"`
	Role      string    `db:"role"`
	UpdatedAt time.Time `db:"updated_at"`
	model.Metadata
}
