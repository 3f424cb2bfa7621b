package dto

import (
	"eljardin/internal/domains/audit/model"
	"eljardin/shared"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/timezone"
)

type BookingLogResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	BookingID      string `json:"booking_id,omitempty"`
	Action         string `json:"action"`
	BookingDate    string `json:"booking_date,omitempty"`
	NumberOfGuests int    `json:"number_of_guests,omitempty"`
	Status         string `json:"status,omitempty"`
	UserName       string `json:"user_name,omitempty"`
	UserEmail      string `json:"user_email,omitempty"`
	gDto.Metadata
}

func (r *BookingLogResponse) FromModel(model model.BookingLog) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Action = model.Action

	if model.BookingID != nil {
		r.BookingID = *model.BookingID
	}

	if model.BookingDate != nil {
		r.BookingDate = timezone.Format(*model.BookingDate, constant.DateTimeFormat)
	}

	if model.NumberOfGuests != nil {
		r.NumberOfGuests = *model.NumberOfGuests
	}

	if model.Status != nil {
		r.Status = *model.Status
	}

	if model.UserName != nil {
		r.UserName = *model.UserName
	}

	if model.UserEmail != nil {
		r.UserEmail = *model.UserEmail
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingLogsResponse struct {
	Logs      []BookingLogResponse `json:"logs"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetBookingLogsResponse) FromModels(models []model.BookingLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]BookingLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

type OrderLogResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	OrderID   string `json:"order_id,omitempty"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	gDto.Metadata
}

func (r *OrderLogResponse) FromModel(model model.OrderLog) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Action = model.Action

	if model.OrderID != nil {
		r.OrderID = *model.OrderID
	}

	if model.Details != nil {
		r.Details = *model.Details
	}

	if model.UserName != nil {
		r.UserName = *model.UserName
	}

	if model.UserEmail != nil {
		r.UserEmail = *model.UserEmail
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetOrderLogsResponse struct {
	Logs      []OrderLogResponse `json:"logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetOrderLogsResponse) FromModels(models []model.OrderLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]OrderLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

type UserLogResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	gDto.Metadata
}

func (r *UserLogResponse) FromModel(model model.UserLog) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Action = model.Action

	if model.UserName != nil {
		r.UserName = *model.UserName
	}

	if model.UserEmail != nil {
		r.UserEmail = *model.UserEmail
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUserLogsResponse struct {
	Logs      []UserLogResponse `json:"logs"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetUserLogsResponse) FromModels(models []model.UserLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]UserLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
