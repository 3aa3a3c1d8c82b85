package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/room/model"
	gDto "inn/shared/dto"
	gRepo "inn/shared/repository"
)

type RoomType interface {
	Insert(ctx context.Context, model model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomDetail, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type roomTypeImpl struct {
	gRepo.Repository[model.RoomType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRoomType(db *postgres.Connection, otel otel.Otel) RoomType {
	return &roomTypeImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.TypeEntityName, model.TypeTableName, model.TypeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type roomImpl struct {
	gRepo.Repository[model.RoomDetail]
	writeRepo gRepo.Repository[model.Room]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &roomImpl{
		Repository: gRepo.NewRepository[model.RoomDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		writeRepo:  gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert writes through the plain room repository so join columns stay out of
// the insert statement.
func (r *roomImpl) Insert(ctx context.Context, room model.Room) error {
	return r.writeRepo.Insert(ctx, room) //nolint:wrapcheck
}

func (r *roomImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.writeRepo.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *roomImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	return r.writeRepo.Delete(ctx, filter) //nolint:wrapcheck
}
