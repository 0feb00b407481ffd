package cabin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	"github.com/m04kA/SMC-CabinReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CabinReservationService/pkg/psqlbuilder"
)

// Repository репозиторий домиков (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория домиков
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает домик по ID
// Цены хранятся в минимальных единицах валюты
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cabin, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"max_capacity",
		"regular_price",
		"discount",
		"image",
	).
		From("cabins").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cabin             domain.Cabin
		regular, discount int64
		image             sql.NullString
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&cabin.ID,
		&cabin.Name,
		&cabin.MaxCapacity,
		&regular,
		&discount,
		&image,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCabinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cabin: %v", ErrScanRow, err)
	}

	cabin.RegularPrice = domain.Money(regular)
	cabin.Discount = domain.Money(discount)
	cabin.Image = image.String

	return &cabin, nil
}
