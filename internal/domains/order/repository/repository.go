package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"eljardin/infras/mysql"
	"eljardin/infras/otel"
	"eljardin/internal/domains/order/model"
	gDto "eljardin/shared/dto"
	gRepo "eljardin/shared/repository"
)

type Order interface {
	Insert(ctx context.Context, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
