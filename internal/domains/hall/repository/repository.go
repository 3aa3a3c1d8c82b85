package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/hall/model"
	gDto "inn/shared/dto"
	gRepo "inn/shared/repository"
)

type HallType interface {
	Insert(ctx context.Context, model model.HallType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HallType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HallType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Hall interface {
	Insert(ctx context.Context, model model.Hall) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HallDetail, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HallDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type hallTypeImpl struct {
	gRepo.Repository[model.HallType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewHallType(db *postgres.Connection, otel otel.Otel) HallType {
	return &hallTypeImpl{
		Repository: gRepo.NewRepository[model.HallType](model.TypeEntityName, model.TypeTableName, model.TypeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type hallImpl struct {
	gRepo.Repository[model.HallDetail]
	writeRepo gRepo.Repository[model.Hall]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hall {
	return &hallImpl{
		Repository: gRepo.NewRepository[model.HallDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		writeRepo:  gRepo.NewRepository[model.Hall](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert writes through the plain hall repository so join columns stay out of
// the insert statement.
func (r *hallImpl) Insert(ctx context.Context, hall model.Hall) error {
	return r.writeRepo.Insert(ctx, hall) //nolint:wrapcheck
}

func (r *hallImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.writeRepo.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *hallImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	return r.writeRepo.Delete(ctx, filter) //nolint:wrapcheck
}
