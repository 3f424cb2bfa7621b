package mysql

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"time"

	"eljardin/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	mysqlMaxIdleConnection = 10
	mysqlMaxOpenConnection = 10
)

type Connection struct {
	DB *sqlx.DB
}

// New connects to MySQL and ensures the schema exists. A missing primary
// table is fatal; the service cannot run without its tables.
func New(config *config.Config) *Connection {
	conn := &Connection{
		DB: Connect(*config),
	}

	if conn.DB == nil {
		log.Fatal().Msg("Could not establish a MySQL connection after retries")
	}

	if err := EnsureSchema(context.Background(), conn); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	return conn
}

// Connect creates the database connection pool, retrying per configuration.
func Connect(config config.Config) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4",
		config.DB.MySQL.Username,
		config.DB.MySQL.Password,
		net.JoinHostPort(config.DB.MySQL.Host, config.DB.MySQL.Port),
		config.DB.MySQL.Name,
	)

	for retry := range config.DB.MySQL.MaxRetry {
		sqlDB, err := sqlx.Connect("mysql", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", config.DB.MySQL.Host).
				Str("port", config.DB.MySQL.Port).
				Str("dbName", config.DB.MySQL.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(mysqlMaxIdleConnection)
			sqlDB.SetMaxOpenConns(mysqlMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", config.DB.MySQL.Host).
			Str("port", config.DB.MySQL.Port).
			Str("dbName", config.DB.MySQL.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.MySQL.RetryWaitTime) * time.Second)
	}

	return nil
}
