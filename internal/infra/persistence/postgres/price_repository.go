package postgres

import (
	"context"

	"salespulse/internal/domain/entity"
	domainerrors "salespulse/internal/domain/errors"
	"salespulse/internal/domain/repository"
	"salespulse/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// priceRepository implements the domain's PriceRepository interface using GORM.
type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository is the constructor for priceRepository.
func NewPriceRepository(db *gorm.DB) repository.PriceRepository {
	return &priceRepository{db: db}
}

// Upsert inserts the price or, when the product already exists, refreshes its
// price. The persisted row's id and timestamps are written back to the entity.
func (repo *priceRepository) Upsert(ctx context.Context, price *entity.Price) error {
	priceM := fromPriceDomain(price)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "product"}},
				DoUpdates: clause.Assignments(map[string]any{"price": priceM.Price}),
			},
			clause.Returning{},
		).
		Create(priceM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrImportFailed.WrapMessage("missing required price fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert price")
	}

	price.ID = priceM.ID
	price.CreatedAt = priceM.CreatedAt
	price.UpdatedAt = priceM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func fromPriceDomain(data *entity.Price) *model.PriceModel {
	if data == nil {
		return nil
	}

	return &model.PriceModel{
		ID:      data.ID,
		Product: data.Product,
		Price:   data.Price,
	}
}
