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

// managerRepository implements the domain's ManagerRepository interface using GORM.
type managerRepository struct {
	db *gorm.DB
}

// NewManagerRepository is the constructor for managerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewManagerRepository(db *gorm.DB) repository.ManagerRepository {
	return &managerRepository{db: db}
}

// Upsert inserts the manager or, when the name already exists, refreshes its
// city. Either way the persisted row's id and timestamps are written back to
// the entity, so repeated imports keep stable manager ids.
func (repo *managerRepository) Upsert(ctx context.Context, manager *entity.Manager) error {
	managerM := fromManagerDomain(manager)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.Assignments(map[string]any{"city": managerM.City}),
			},
			clause.Returning{},
		).
		Create(managerM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrImportFailed.WrapMessage("missing required manager fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert manager")
	}

	manager.ID = managerM.ID
	manager.CreatedAt = managerM.CreatedAt
	manager.UpdatedAt = managerM.UpdatedAt

	return nil
}

// FindAll retrieves the whole roster ordered by name.
func (repo *managerRepository) FindAll(ctx context.Context) ([]*entity.Manager, error) {
	var managerMs []*model.ManagerModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&managerMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list managers")
	}

	managers := make([]*entity.Manager, 0, len(managerMs))
	for _, managerM := range managerMs {
		managers = append(managers, toManagerDomain(managerM))
	}

	return managers, nil
}

// --- Mapper Functions ---

func toManagerDomain(data *model.ManagerModel) *entity.Manager {
	if data == nil {
		return nil
	}

	return &entity.Manager{
		ID:        data.ID,
		Name:      data.Name,
		City:      data.City,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromManagerDomain(data *entity.Manager) *model.ManagerModel {
	if data == nil {
		return nil
	}

	return &model.ManagerModel{
		ID:   data.ID,
		Name: data.Name,
		City: data.City,
	}
}
