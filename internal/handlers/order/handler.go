package order

import (
	"net/http"

	"eljardin/infras/otel"
	"eljardin/internal/domains/order/model"
	"eljardin/internal/domains/order/model/dto"
	"eljardin/internal/domains/order/service"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/validator"
	"eljardin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Patch("/{id}", handler.UpdateOrder)
		routerGroup.Patch("/{id}/cancel", handler.CancelOrder)
	})
}

// CreateOrder handles the creation of a new food order.
// @Summary Create a new order
// @Description Create a new food order with line items and a payment method.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} response.Data[dto.CreateOrderResponse] "Order created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/orders [post]
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order created successfully for user " + req.UserID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOrders retrieves all orders based on query parameters.
// @Summary Get all orders
// @Description Retrieve all orders with customer details, optional filtering and pagination.
// @Tags Order
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user ID"
// @Param status query string false "Filter by status (pending, confirmed, delivered, cancelled)"
// @Success 200 {object} response.Data[dto.GetOrdersResponse] "List of orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/orders [get]
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID := r.URL.Query().Get(model.FieldUserID)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// UpdateOrder updates the line items and total of an existing order.
// @Summary Update an order
// @Description Replace the line items and total amount of an order that is still open.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderRequest true "Update Order Request"
// @Success 200 {object} response.Message "Order updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/orders/{id} [patch]
func (handler *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order updated successfully")

	response.WithMessage(w, http.StatusOK, "Order updated successfully")
}

// CancelOrder cancels an order by its ID.
// @Summary Cancel an order
// @Description Cancel an order and record the reason. Cancelling an already cancelled order succeeds without changes.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.CancelOrderRequest true "Cancel Order Request"
// @Success 200 {object} response.Message "Order cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/orders/{id}/cancel [patch]
func (handler *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Order cancelled successfully")
}
