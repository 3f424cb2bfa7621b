package main

import (
	"eljardin/config"
	"eljardin/di"
	"eljardin/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
