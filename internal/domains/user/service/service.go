package service

import (
	"context"
	"fmt"

	"eljardin/config"
	"eljardin/infras/otel"
	"eljardin/internal/domains/user/model"
	"eljardin/internal/domains/user/model/dto"
	"eljardin/internal/domains/user/repository"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"

	"github.com/rs/zerolog/log"
)

type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	// The password column is excluded from the select list on purpose.
	models, err := s.repo.GetAll(ctx, req, filter,
		model.FieldID,
		model.FieldName,
		model.FieldEmail,
		model.FieldPhone,
		model.FieldAddress,
		model.FieldRole,
		constant.FieldCreatedAt,
		model.FieldUpdatedAt,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	return res, nil
}
