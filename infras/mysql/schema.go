package mysql

import (
	"context"
	"errors"
	"fmt"

	"eljardin/shared/constant"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

// createStatements are idempotent and ordered so foreign key targets exist
// before their referencing tables.
var createStatements = []struct {
	table string
	ddl   string
}{
	{
		table: "users",
		ddl: `CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			address TEXT,
			role ENUM('user', 'admin', 'chef', 'staff') DEFAULT 'user',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
	},
	{
		table: "bookings",
		ddl: `CREATE TABLE IF NOT EXISTS bookings (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			booking_date DATETIME NOT NULL,
			number_of_guests INT NOT NULL,
			table_number INT,
			special_requests TEXT,
			cancellation_reason TEXT,
			status ENUM('pending', 'confirmed', 'cancelled') DEFAULT 'pending',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
	},
	{
		table: "booking_log",
		ddl: `CREATE TABLE IF NOT EXISTS booking_log (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			booking_id CHAR(36),
			action VARCHAR(50) NOT NULL,
			booking_date DATETIME,
			number_of_guests INT,
			status VARCHAR(20),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		table: "orders",
		ddl: `CREATE TABLE IF NOT EXISTS orders (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			items JSON,
			order_date DATETIME NOT NULL,
			total_amount DECIMAL(10,2) NOT NULL,
			status ENUM('pending', 'confirmed', 'delivered', 'cancelled') DEFAULT 'pending',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
	},
	{
		table: "order_log",
		ddl: `CREATE TABLE IF NOT EXISTS order_log (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			order_id CHAR(36),
			action VARCHAR(50) NOT NULL,
			details TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		table: "user_log",
		ddl: `CREATE TABLE IF NOT EXISTS user_log (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			action VARCHAR(50) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// additiveStatements upgrade databases created by earlier releases. MySQL has
// no ADD COLUMN IF NOT EXISTS, so a duplicate column error means the column
// is already in place and the statement is treated as a success.
var additiveStatements = []struct {
	table string
	ddl   string
}{
	{table: "users", ddl: "ALTER TABLE users ADD COLUMN phone VARCHAR(20)"},
	{table: "users", ddl: "ALTER TABLE users ADD COLUMN address TEXT"},
	{table: "orders", ddl: "ALTER TABLE orders ADD COLUMN items JSON"},
	{table: "bookings", ddl: "ALTER TABLE bookings ADD COLUMN table_number INT"},
	{table: "bookings", ddl: "ALTER TABLE bookings ADD COLUMN cancellation_reason TEXT"},
}

// EnsureSchema creates the tables the service depends on. Failure to create a
// primary table is returned to the caller; additive column upgrades are
// best-effort and only logged.
func EnsureSchema(ctx context.Context, conn *Connection) error {
	for _, stmt := range createStatements {
		if _, err := conn.DB.ExecContext(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", stmt.table, err)
		}
	}

	for _, stmt := range additiveStatements {
		_, err := conn.DB.ExecContext(ctx, stmt.ddl)
		if err == nil {
			continue
		}

		if isDuplicateColumn(err) {
			log.Debug().Str("table", stmt.table).Msg("Column already exists, skipping additive migration")

			continue
		}

		log.Warn().Err(err).Str("table", stmt.table).Msg("Additive migration failed, continuing")
	}

	log.Info().Msg("Database schema ensured")

	return nil
}

func isDuplicateColumn(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == constant.MySQLErrDuplicateColumn
	}

	return false
}
