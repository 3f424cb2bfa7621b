package status

import (
	"net/http"

	"eljardin/config"
	"eljardin/infras/mysql"
	"eljardin/shared/constant"
	"eljardin/shared/failure"
	"eljardin/shared/timezone"
	"eljardin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db  *mysql.Connection
	cfg *config.Config
}

func New(db *mysql.Connection, cfg *config.Config) Handler {
	return Handler{
		db:  db,
		cfg: cfg,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/test", handler.Test)
}

// Test reports backend and database connectivity.
// @Summary Connectivity test
// @Description Verify the backend is reachable and connected to its database.
// @Tags Status
// @Produce json
// @Success 200 {object} response.Data[any] "Connectivity details"
// @Failure 500 {object} response.Error
// @Router /api/test [get]
func (handler *Handler) Test(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.DB.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("database ping failed")

		response.WithError(w, failure.InternalError(err))

		return
	}

	response.WithJSON(w, http.StatusOK, map[string]any{
		"message":  "backend connected successfully",
		"database": "MySQL",
		"db_name":  handler.cfg.DB.MySQL.Name,
		"status":   "active",
	})
}

// Health serves the liveness probe.
// @Summary Health check
// @Description Report server health and current time.
// @Tags Status
// @Produce json
// @Success 200 {object} response.Data[any] "Health details"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"database":  "MySQL",
		"timestamp": timezone.Format(timezone.Now(), constant.DateFormat),
	})
}
