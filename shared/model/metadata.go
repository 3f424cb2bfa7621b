package model

import "time"

// Metadata holds the row creation timestamp shared by every table.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
