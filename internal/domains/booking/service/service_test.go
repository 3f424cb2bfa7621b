package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eljardin/config"
	"eljardin/infras/otel/mocks"
	auditMocks "eljardin/internal/domains/audit/mocks"
	auditService "eljardin/internal/domains/audit/service"
	bookingMocks "eljardin/internal/domains/booking/mocks"
	"eljardin/internal/domains/booking/model"
	"eljardin/internal/domains/booking/model/dto"
	"eljardin/internal/domains/booking/service"
	userMocks "eljardin/internal/domains/user/mocks"
	gDto "eljardin/shared/dto"
	"eljardin/shared/failure"
	"eljardin/shared/timezone"
)

type bookingServiceMocks struct {
	repo      *bookingMocks.MockBooking
	userRepo  *userMocks.MockUser
	auditRepo *auditMocks.MockLog
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingServiceMocks{
		repo:      bookingMocks.NewMockBooking(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		auditRepo: auditMocks.NewMockLog(ctrl),
	}

	cfg := &config.Config{}
	audit := auditService.New(m.auditRepo, cfg, mocks.NewOtel())
	svc := service.New(m.repo, m.userRepo, audit, cfg, mocks.NewOtel())

	return svc, m
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		UserID:         "11111111-1111-4111-8111-111111111111",
		BookingDate:    "2026-09-15",
		BookingTime:    "19:30",
		TableNumber:    4,
		NumberOfGuests: 2,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditRepo.EXPECT().
					InsertBookingLog(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown user",
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "audit failure does not fail creation",
			req:  validReq,
			setupMock: func(m bookingServiceMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditRepo.EXPECT().
					InsertBookingLog(gomock.Any(), gomock.Any()).
					Return(errors.New("log table unavailable"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.BookingID)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	svc, m := newBookingService(t)

	bookings := []model.Booking{
		{
			ID:             "booking-1",
			UserID:         "user-1",
			BookingDate:    timezone.Now(),
			NumberOfGuests: 2,
			Status:         model.StatusPending,
		},
	}

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookings, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, "booking-1", res.Bookings[0].ID)
}

func TestBookingService_GetAll_CountError(t *testing.T) {
	svc, m := newBookingService(t)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("database error"))

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.Error(t, err)
}

func TestBookingService_Cancel(t *testing.T) {
	storedBooking := model.Booking{
		ID:             "booking-1",
		UserID:         "user-1",
		BookingDate:    timezone.Now(),
		NumberOfGuests: 2,
		Status:         model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditRepo.EXPECT().
					InsertBookingLog(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "already cancelled is a no-op",
			setupMock: func(m bookingServiceMocks) {
				cancelled := storedBooking
				cancelled.Status = model.StatusCancelled

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: false,
		},
		{
			name: "update error",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			err := svc.Cancel(context.Background(), "booking-1", dto.CancelBookingRequest{Reason: "change of plans"})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
