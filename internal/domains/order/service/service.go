package service

import (
	"context"
	"fmt"

	"eljardin/config"
	"eljardin/infras/otel"
	auditModel "eljardin/internal/domains/audit/model"
	auditService "eljardin/internal/domains/audit/service"
	"eljardin/internal/domains/order/model"
	"eljardin/internal/domains/order/model/dto"
	"eljardin/internal/domains/order/repository"
	userModel "eljardin/internal/domains/user/model"
	userRepository "eljardin/internal/domains/user/repository"
	"eljardin/shared"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/failure"

	"github.com/rs/zerolog/log"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelOrderRequest) error
	Update(ctx context.Context, id string, req dto.UpdateOrderRequest) error
}

type serviceImpl struct {
	repo     repository.Order
	userRepo userRepository.User
	audit    auditService.Audit
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Order, userRepo userRepository.User, audit auditService.Audit, cfg *config.Config, otel otel.Otel) Order {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		audit:    audit,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return res, fmt.Errorf("failed to check user existence: %w", err)
	}

	if !exist {
		return res, failure.BadRequestFromString("user does not exist")
	}

	order := req.ToModel()

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to insert order")

		return res, fmt.Errorf("failed to insert order: %w", err)
	}

	details := fmt.Sprintf("Payment method: %s", req.PaymentMethod)
	s.audit.RecordOrder(ctx, auditModel.OrderLog{
		UserID:  order.UserID,
		OrderID: &order.ID,
		Action:  auditModel.ActionOrderCreated,
		Details: &details,
	})

	res.OrderID = order.ID
	res.Items = order.Items
	res.PaymentMethod = req.PaymentMethod
	res.Status = order.Status

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + model.FieldOrderDate
		req.SortDir = constant.DefaultValueSortDir
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(orders, total, req.Limit)

	return res, nil
}

// Cancel marks an order cancelled. Cancelling an already cancelled order is a
// no-op success.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelOrderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("order not found")
	}

	if order.Status == model.StatusCancelled {
		return nil
	}

	updates := map[string]any{
		model.FieldStatus: model.StatusCancelled,
	}

	if err = s.repo.Update(ctx, updates, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel order")

		return fmt.Errorf("failed to cancel order: %w", err)
	}

	details := fmt.Sprintf("Reason: %s", req.Reason)
	s.audit.RecordOrder(ctx, auditModel.OrderLog{
		UserID:  order.UserID,
		OrderID: &order.ID,
		Action:  auditModel.ActionOrderCancelled,
		Details: &details,
	})

	return nil
}

// Update replaces the order's line items and total. A cancelled or delivered
// order can no longer be edited.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateOrderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("order not found")
	}

	if order.Status == model.StatusCancelled || order.Status == model.StatusDelivered {
		return failure.BadRequestFromString("order can no longer be updated")
	}

	updates := shared.TransformFields(req)
	if items := req.ToItems(); items != nil {
		updates[model.FieldItems] = items
	}

	if len(updates) == 0 {
		return failure.BadRequestFromString("no fields to update")
	}

	if err = s.repo.Update(ctx, updates, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update order")

		return fmt.Errorf("failed to update order: %w", err)
	}

	details := fmt.Sprintf("New total: %.2f", req.Total)
	s.audit.RecordOrder(ctx, auditModel.OrderLog{
		UserID:  order.UserID,
		OrderID: &order.ID,
		Action:  auditModel.ActionOrderItemsUpdated,
		Details: &details,
	})

	return nil
}
