package main

import (
	"context"

	"eljardin/config"
	"eljardin/infras/mysql"
	"eljardin/shared/logger"

	"github.com/rs/zerolog/log"
)

// Applies the schema without starting the server. Useful for provisioning a
// fresh database ahead of a deploy.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := mysql.Connect(*cfg)
	if db == nil {
		log.Fatal().Msg("Could not establish a MySQL connection after retries")
	}

	conn := &mysql.Connection{DB: db}

	if err := mysql.EnsureSchema(context.Background(), conn); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	log.Info().Msg("Schema migration completed")
}
