package dto

import (
	"time"

	"eljardin/internal/domains/booking/model"
	"eljardin/shared"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/failure"
	"eljardin/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UserID          string `json:"user_id" validate:"required,uuid4"`
	BookingDate     string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime     string `json:"booking_time" validate:"required,datetime=15:04"`
	TableNumber     int    `json:"table_number" validate:"required,gt=0"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"required,gt=0"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

// ToModel combines the separate date and time fields into a single booking
// timestamp in the application timezone.
func (r CreateBookingRequest) ToModel() (model.Booking, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, r.BookingDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid booking date")
	}

	clock, err := timezone.Parse(constant.TimeOnlyFormat, r.BookingTime)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid booking time")
	}

	bookingDate := time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		timezone.GetLocation(),
	)

	booking := model.Booking{
		ID:             uuid.NewString(),
		UserID:         r.UserID,
		BookingDate:    bookingDate,
		NumberOfGuests: r.NumberOfGuests,
		TableNumber:    &r.TableNumber,
		Status:         model.StatusPending,
	}
	booking.CreatedAt = timezone.Now()

	if r.SpecialRequests != "" {
		booking.SpecialRequests = &r.SpecialRequests
	}

	return booking, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	BookingDate        string `json:"booking_date"`
	NumberOfGuests     int    `json:"number_of_guests"`
	TableNumber        int    `json:"table_number,omitempty"`
	SpecialRequests    string `json:"special_requests,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	Status             string `json:"status"`
	UserName           string `json:"user_name,omitempty"`
	UserEmail          string `json:"user_email,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateTimeFormat)
	r.NumberOfGuests = model.NumberOfGuests
	r.Status = model.Status

	if model.TableNumber != nil {
		r.TableNumber = *model.TableNumber
	}

	if model.SpecialRequests != nil {
		r.SpecialRequests = *model.SpecialRequests
	}

	if model.CancellationReason != nil {
		r.CancellationReason = *model.CancellationReason
	}

	if model.UserName != nil {
		r.UserName = *model.UserName
	}

	if model.UserEmail != nil {
		r.UserEmail = *model.UserEmail
	}

	r.Metadata.FromModel(model.Metadata)
}

type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
