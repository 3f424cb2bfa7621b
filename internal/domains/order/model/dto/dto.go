package dto

import (
	"eljardin/internal/domains/order/model"
	"eljardin/shared"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/timezone"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty"`
	Category    string  `json:"category" validate:"omitempty"`
}

type CreateOrderRequest struct {
	UserID        string             `json:"user_id" validate:"required,uuid4"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total         float64            `json:"total" validate:"required,gt=0"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
}

func (r CreateOrderRequest) ToModel() model.Order {
	order := model.Order{
		ID:          uuid.NewString(),
		UserID:      r.UserID,
		Items:       make(model.OrderItems, len(r.Items)),
		OrderDate:   timezone.Now(),
		TotalAmount: r.Total,
		Status:      model.StatusPending,
	}
	order.CreatedAt = order.OrderDate

	for i, item := range r.Items {
		order.Items[i] = model.OrderItem{
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Category:    item.Category,
		}
	}

	return order
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// UpdateOrderRequest carries the editable order columns. The db tags drive
// shared.TransformFields so only the provided fields reach the update.
type UpdateOrderRequest struct {
	Items []OrderItemRequest `json:"items" db:"-" validate:"omitempty,min=1,dive"`
	Total float64            `json:"total" db:"total_amount" validate:"omitempty,gt=0"`
}

func (r UpdateOrderRequest) ToItems() model.OrderItems {
	if len(r.Items) == 0 {
		return nil
	}

	items := make(model.OrderItems, len(r.Items))
	for i, item := range r.Items {
		items[i] = model.OrderItem{
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Category:    item.Category,
		}
	}

	return items
}

type OrderResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Items       model.OrderItems `json:"items"`
	OrderDate   string           `json:"order_date"`
	TotalAmount float64          `json:"total_amount"`
	Status      string           `json:"status"`
	UserName    string           `json:"user_name,omitempty"`
	UserEmail   string           `json:"user_email,omitempty"`
	UserPhone   string           `json:"user_phone,omitempty"`
	UserAddress string           `json:"user_address,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Items = model.Items
	r.OrderDate = timezone.Format(model.OrderDate, constant.DateTimeFormat)
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status

	if model.UserName != nil {
		r.UserName = *model.UserName
	}

	if model.UserEmail != nil {
		r.UserEmail = *model.UserEmail
	}

	if model.UserPhone != nil {
		r.UserPhone = *model.UserPhone
	}

	if model.UserAddress != nil {
		r.UserAddress = *model.UserAddress
	}

	r.Metadata.FromModel(model.Metadata)
}

type CreateOrderResponse struct {
	OrderID       string           `json:"order_id"`
	Items         model.OrderItems `json:"items"`
	PaymentMethod string           `json:"payment_method"`
	Status        string           `json:"status"`
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
