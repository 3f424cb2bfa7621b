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
	orderMocks "eljardin/internal/domains/order/mocks"
	"eljardin/internal/domains/order/model"
	"eljardin/internal/domains/order/model/dto"
	"eljardin/internal/domains/order/service"
	userMocks "eljardin/internal/domains/user/mocks"
	gDto "eljardin/shared/dto"
	"eljardin/shared/failure"
	"eljardin/shared/timezone"
)

type orderServiceMocks struct {
	repo      *orderMocks.MockOrder
	userRepo  *userMocks.MockUser
	auditRepo *auditMocks.MockLog
}

func newOrderService(t *testing.T) (service.Order, orderServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := orderServiceMocks{
		repo:      orderMocks.NewMockOrder(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		auditRepo: auditMocks.NewMockLog(ctrl),
	}

	cfg := &config.Config{}
	audit := auditService.New(m.auditRepo, cfg, mocks.NewOtel())
	svc := service.New(m.repo, m.userRepo, audit, cfg, mocks.NewOtel())

	return svc, m
}

func TestOrderService_Create(t *testing.T) {
	validReq := dto.CreateOrderRequest{
		UserID: "11111111-1111-4111-8111-111111111111",
		Items: []dto.OrderItemRequest{
			{Name: "Paella", Price: 18.50, Category: "main"},
			{Name: "Sangría", Price: 6.00, Category: "drink"},
		},
		Total:         24.50,
		PaymentMethod: "card",
	}

	tests := []struct {
		name      string
		req       dto.CreateOrderRequest
		setupMock func(m orderServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(m orderServiceMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditRepo.EXPECT().
					InsertOrderLog(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown user",
			req:  validReq,
			setupMock: func(m orderServiceMocks) {
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
			setupMock: func(m orderServiceMocks) {
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
			setupMock: func(m orderServiceMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditRepo.EXPECT().
					InsertOrderLog(gomock.Any(), gomock.Any()).
					Return(errors.New("log table unavailable"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newOrderService(t)
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
			assert.NotEmpty(t, res.OrderID)
			assert.Len(t, res.Items, 2)
			assert.Equal(t, "card", res.PaymentMethod)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestOrderService_GetAll(t *testing.T) {
	svc, m := newOrderService(t)

	orders := []model.Order{
		{
			ID:     "order-1",
			UserID: "user-1",
			Items: model.OrderItems{
				{Name: "Paella", Price: 18.50},
			},
			OrderDate:   timezone.Now(),
			TotalAmount: 18.50,
			Status:      model.StatusPending,
		},
	}

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(orders, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Orders, 1)
	assert.Equal(t, "order-1", res.Orders[0].ID)
}

func TestOrderService_Cancel(t *testing.T) {
	storedOrder := model.Order{
		ID:          "order-1",
		UserID:      "user-1",
		OrderDate:   timezone.Now(),
		TotalAmount: 18.50,
		Status:      model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func(m orderServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			setupMock: func(m orderServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOrder, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditRepo.EXPECT().
					InsertOrderLog(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "order not found",
			setupMock: func(m orderServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "already cancelled is a no-op",
			setupMock: func(m orderServiceMocks) {
				cancelled := storedOrder
				cancelled.Status = model.StatusCancelled

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tt.setupMock(m)

			err := svc.Cancel(context.Background(), "order-1", dto.CancelOrderRequest{Reason: "changed my mind"})

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

func TestOrderService_Update(t *testing.T) {
	storedOrder := model.Order{
		ID:          "order-1",
		UserID:      "user-1",
		OrderDate:   timezone.Now(),
		TotalAmount: 18.50,
		Status:      model.StatusPending,
	}

	validReq := dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{
			{Name: "Paella", Price: 18.50},
			{Name: "Flan", Price: 4.50},
		},
		Total: 23.00,
	}

	tests := []struct {
		name      string
		req       dto.UpdateOrderRequest
		setupMock func(m orderServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  validReq,
			setupMock: func(m orderServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOrder, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updates map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, updates, model.FieldItems)
						assert.Contains(t, updates, model.FieldTotalAmount)

						return nil
					})
				m.auditRepo.EXPECT().
					InsertOrderLog(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "order not found",
			req:  validReq,
			setupMock: func(m orderServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled order cannot be updated",
			req:  validReq,
			setupMock: func(m orderServiceMocks) {
				cancelled := storedOrder
				cancelled.Status = model.StatusCancelled

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "empty update is rejected",
			req:  dto.UpdateOrderRequest{},
			setupMock: func(m orderServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOrder, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tt.setupMock(m)

			err := svc.Update(context.Background(), "order-1", tt.req)

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
