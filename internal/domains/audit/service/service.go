package service

import (
	"context"
	"fmt"

	"eljardin/config"
	"eljardin/infras/otel"
	"eljardin/internal/domains/audit/model"
	"eljardin/internal/domains/audit/model/dto"
	"eljardin/internal/domains/audit/repository"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	gModel "eljardin/shared/model"
	"eljardin/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Audit records domain events and serves the reporting reads over the log
// tables. Record methods are called only after the triggering write has
// succeeded and are best-effort: a failed audit insert is logged and
// swallowed, it never fails the parent operation. The insert happens on the
// caller's goroutine so the entry is durable before the response goes out.
type Audit interface {
	RecordBooking(ctx context.Context, entry model.BookingLog)
	RecordOrder(ctx context.Context, entry model.OrderLog)
	RecordUser(ctx context.Context, userID, action string)
	GetBookingLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingLogsResponse, error)
	GetOrderLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrderLogsResponse, error)
	GetUserLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUserLogsResponse, error)
}

type serviceImpl struct {
	repo repository.Log
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Log, cfg *config.Config, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) RecordBooking(ctx context.Context, entry model.BookingLog) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordBooking")
	defer scope.End()

	entry.ID = uuid.NewString()
	entry.Metadata = gModel.Metadata{CreatedAt: timezone.Now()}

	if err := s.repo.InsertBookingLog(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("action", entry.Action).Str("user_id", entry.UserID).Msg("failed to write booking log entry")
	}
}

func (s *serviceImpl) RecordOrder(ctx context.Context, entry model.OrderLog) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordOrder")
	defer scope.End()

	entry.ID = uuid.NewString()
	entry.Metadata = gModel.Metadata{CreatedAt: timezone.Now()}

	if err := s.repo.InsertOrderLog(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("action", entry.Action).Str("user_id", entry.UserID).Msg("failed to write order log entry")
	}
}

func (s *serviceImpl) RecordUser(ctx context.Context, userID, action string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordUser")
	defer scope.End()

	entry := model.UserLog{
		ID:       uuid.NewString(),
		UserID:   userID,
		Action:   action,
		Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
	}

	if err := s.repo.InsertUserLog(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("action", action).Str("user_id", userID).Msg("failed to write user log entry")
	}
}

func (s *serviceImpl) GetBookingLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	applyLogDefaults(&req, model.BookingLogTableName)

	total, err := s.repo.CountBookingLogs(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking logs")

		return res, fmt.Errorf("failed to count booking logs: %w", err)
	}

	models, err := s.repo.GetBookingLogs(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking logs")

		return res, fmt.Errorf("failed to get booking logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetOrderLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrderLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrderLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	applyLogDefaults(&req, model.OrderLogTableName)

	total, err := s.repo.CountOrderLogs(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count order logs")

		return res, fmt.Errorf("failed to count order logs: %w", err)
	}

	models, err := s.repo.GetOrderLogs(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order logs")

		return res, fmt.Errorf("failed to get order logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetUserLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUserLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	applyLogDefaults(&req, model.UserLogTableName)

	total, err := s.repo.CountUserLogs(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count user logs")

		return res, fmt.Errorf("failed to count user logs: %w", err)
	}

	models, err := s.repo.GetUserLogs(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user logs")

		return res, fmt.Errorf("failed to get user logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// applyLogDefaults qualifies the sort column with the log table name; the
// users join also carries a created_at column.
func applyLogDefaults(req *gDto.QueryParams, table string) {
	if req.SortBy == constant.Empty {
		req.SortBy = table + "." + constant.FieldCreatedAt
		req.SortDir = constant.DefaultValueSortDir
	}
}
