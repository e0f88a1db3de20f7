package postgres

import (
	"context"

	"salespulse/internal/domain/entity"
	domainerrors "salespulse/internal/domain/errors"
	"salespulse/internal/domain/repository"
	"salespulse/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// saleRepository implements the domain's SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// Insert persists one sale line and writes the generated id and timestamps
// back to the entity.
func (repo *saleRepository) Insert(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrImportFailed.WrapMessage("sale references unknown manager")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrImportFailed.WrapMessage("missing required sale fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert sale")
	}

	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt
	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Date:          data.Date,
		Product:       data.Product,
		Quantity:      data.Quantity,
		PurchaseType:  data.PurchaseType,
		PaymentMethod: data.PaymentMethod,
		ManagerID:     data.ManagerID,
		City:          data.City,
	}
}
