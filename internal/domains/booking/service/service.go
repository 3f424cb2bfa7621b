package service

import (
	"context"
	"fmt"

	"eljardin/config"
	"eljardin/infras/otel"
	auditModel "eljardin/internal/domains/audit/model"
	auditService "eljardin/internal/domains/audit/service"
	"eljardin/internal/domains/booking/model"
	"eljardin/internal/domains/booking/model/dto"
	"eljardin/internal/domains/booking/repository"
	userModel "eljardin/internal/domains/user/model"
	userRepository "eljardin/internal/domains/user/repository"
	"eljardin/shared"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepository.User
	audit    auditService.Audit
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, userRepo userRepository.User, audit auditService.Audit, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		audit:    audit,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
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

	booking, err := req.ToModel()
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	s.audit.RecordBooking(ctx, auditModel.BookingLog{
		UserID:         booking.UserID,
		BookingID:      &booking.ID,
		Action:         auditModel.ActionBookingCreated,
		BookingDate:    &booking.BookingDate,
		NumberOfGuests: &booking.NumberOfGuests,
		Status:         &booking.Status,
	})

	res.BookingID = booking.ID
	res.Status = booking.Status

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + model.FieldBookingDate
		req.SortDir = constant.DefaultValueSortDir
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	return res, nil
}

// Cancel marks a booking cancelled and records the reason. Cancelling an
// already cancelled booking is a no-op success.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.Status == model.StatusCancelled {
		return nil
	}

	updates := map[string]any{
		model.FieldStatus:             model.StatusCancelled,
		model.FieldCancellationReason: req.Reason,
	}

	if err = s.repo.Update(ctx, updates, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	status := model.StatusCancelled
	s.audit.RecordBooking(ctx, auditModel.BookingLog{
		UserID:         booking.UserID,
		BookingID:      &booking.ID,
		Action:         auditModel.ActionBookingCancelled,
		BookingDate:    &booking.BookingDate,
		NumberOfGuests: &booking.NumberOfGuests,
		Status:         &status,
	})

	return nil
}
