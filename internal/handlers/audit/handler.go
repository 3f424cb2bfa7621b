package audit

import (
	"net/http"

	"eljardin/infras/otel"
	"eljardin/internal/domains/audit/model"
	"eljardin/internal/domains/audit/service"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/logs", func(routerGroup chi.Router) {
		routerGroup.Get("/booking", handler.GetBookingLogs)
		routerGroup.Get("/order", handler.GetOrderLogs)
		routerGroup.Get("/user", handler.GetUserLogs)
	})
}

// GetBookingLogs retrieves the booking audit trail.
// @Summary Get booking logs
// @Description Retrieve the booking audit trail joined with the acting user's name and email.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user ID"
// @Param action query string false "Filter by action"
// @Success 200 {object} response.Data[dto.GetBookingLogsResponse] "Booking audit entries"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/logs/booking [get]
// @Security BearerAuth
func (handler *Handler) GetBookingLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.GetBookingLogs(ctx, queryParams, logFilter(r, model.BookingLogTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetOrderLogs retrieves the order audit trail.
// @Summary Get order logs
// @Description Retrieve the order audit trail joined with the acting user's name and email.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user ID"
// @Param action query string false "Filter by action"
// @Success 200 {object} response.Data[dto.GetOrderLogsResponse] "Order audit entries"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/logs/order [get]
// @Security BearerAuth
func (handler *Handler) GetOrderLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.GetOrderLogs(ctx, queryParams, logFilter(r, model.OrderLogTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetUserLogs retrieves the user account audit trail.
// @Summary Get user logs
// @Description Retrieve signup and login activity joined with the acting user's name and email.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user ID"
// @Param action query string false "Filter by action"
// @Success 200 {object} response.Data[dto.GetUserLogsResponse] "User audit entries"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/logs/user [get]
// @Security BearerAuth
func (handler *Handler) GetUserLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.GetUserLogs(ctx, queryParams, logFilter(r, model.UserLogTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

func logFilter(r *http.Request, table string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID := r.URL.Query().Get(model.FieldUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    table,
		})
	}

	if action := r.URL.Query().Get(model.FieldAction); action != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAction,
			Operator: gDto.FilterOperatorEq,
			Value:    action,
			Table:    table,
		})
	}

	return filterGroup
}
