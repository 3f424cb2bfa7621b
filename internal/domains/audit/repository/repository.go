package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"eljardin/infras/mysql"
	"eljardin/infras/otel"
	"eljardin/internal/domains/audit/model"
	gDto "eljardin/shared/dto"
	gRepo "eljardin/shared/repository"
)

// Log is the gateway to the three append-only audit tables. Rows are only
// ever inserted and read, never updated or deleted.
type Log interface {
	InsertBookingLog(ctx context.Context, entry model.BookingLog) error
	InsertOrderLog(ctx context.Context, entry model.OrderLog) error
	InsertUserLog(ctx context.Context, entry model.UserLog) error
	GetBookingLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingLog, error)
	CountBookingLogs(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetOrderLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrderLog, error)
	CountOrderLogs(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetUserLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserLog, error)
	CountUserLogs(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	bookingLogs gRepo.Repository[model.BookingLog]
	orderLogs   gRepo.Repository[model.OrderLog]
	userLogs    gRepo.Repository[model.UserLog]
	db          *mysql.Connection
	otel        otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Log {
	return &repositoryImpl{
		bookingLogs: gRepo.NewRepository[model.BookingLog](model.BookingLogEntityName, model.BookingLogTableName, model.FieldID, db, otel),
		orderLogs:   gRepo.NewRepository[model.OrderLog](model.OrderLogEntityName, model.OrderLogTableName, model.FieldID, db, otel),
		userLogs:    gRepo.NewRepository[model.UserLog](model.UserLogEntityName, model.UserLogTableName, model.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

func (repo *repositoryImpl) InsertBookingLog(ctx context.Context, entry model.BookingLog) error {
	return repo.bookingLogs.Insert(ctx, entry) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertOrderLog(ctx context.Context, entry model.OrderLog) error {
	return repo.orderLogs.Insert(ctx, entry) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertUserLog(ctx context.Context, entry model.UserLog) error {
	return repo.userLogs.Insert(ctx, entry) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBookingLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingLog, error) {
	return repo.bookingLogs.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountBookingLogs(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.bookingLogs.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetOrderLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrderLog, error) {
	return repo.orderLogs.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountOrderLogs(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.orderLogs.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetUserLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserLog, error) {
	return repo.userLogs.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountUserLogs(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.userLogs.Count(ctx, filter) //nolint:wrapcheck
}
