// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"context"
	"io"
	"log/slog"

	"salespulse/config"
	"salespulse/internal/domain/entity"
	domainerrors "salespulse/internal/domain/errors"
	"salespulse/internal/domain/repository"
	"salespulse/internal/domain/service"
	"salespulse/internal/importer"
	"salespulse/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// managerRef is one roster join target: the persisted manager row plus the
// city attributed to the order.
type managerRef struct {
	managerID int64
	city      string
}

type importService struct {
	txManager repository.TransactionManager
	cache     service.AnalyticsCache
	policy    string
	logger    *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(
	txManager repository.TransactionManager,
	cache service.AnalyticsCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ImportUsecase {
	return &importService{
		txManager: txManager,
		cache:     cache,
		policy:    cfg.Import.OnUnmatchedSale,
		logger:    logger,
	}
}

// ImportCSV runs the full import pipeline. The three datasets are parsed,
// validated and normalized concurrently; any failure rejects the whole batch
// with zero counts. Persistence runs in one transaction in dependency order:
// prices, then managers, then sales cross-referenced through the roster.
func (s *importService) ImportCSV(ctx context.Context, input *usecase.ImportInput) (*entity.ImportResult, error) {
	if input == nil || input.Sales == nil || input.Managers == nil || input.Prices == nil {
		return nil, domainerrors.ErrCSVFilesRequired
	}

	var (
		sales    []importer.NormalizedSale
		managers []importer.NormalizedManager
		prices   []importer.NormalizedPrice
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		sales, err = prepareSales(groupCtx, input.Sales)

		return err
	})
	group.Go(func() error {
		var err error
		managers, err = prepareManagers(groupCtx, input.Managers)

		return err
	})
	group.Go(func() error {
		var err error
		prices, err = preparePrices(groupCtx, input.Prices)

		return err
	})

	if err := group.Wait(); err != nil {
		return &entity.ImportResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, nil
	}

	result := &entity.ImportResult{}
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		priceRepo := repoFactory.NewPriceRepository()
		for _, price := range prices {
			if err := priceRepo.Upsert(ctx, &entity.Price{Product: price.Product, Price: price.Price}); err != nil {
				return err
			}
			result.ImportedPrices++
		}

		managerRepo := repoFactory.NewManagerRepository()
		refs, imported, err := s.upsertRoster(ctx, managerRepo, managers)
		if err != nil {
			return err
		}
		result.ImportedManagers = imported

		saleRepo := repoFactory.NewSaleRepository()
		inserted, err := s.insertSales(ctx, saleRepo, sales, refs)
		if err != nil {
			return err
		}
		result.ImportedSales = inserted

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Persisted data changed, so every cached aggregate is stale. A cache
	// failure here must not fail the import.
	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate analytics cache after import",
			slog.String("error", err.Error()))
	}

	result.Success = true

	return result, nil
}

// upsertRoster persists the manager roster and builds the order join map.
// Each manager name is written once; when several roster records share an
// order id, the last record's manager wins and the first record's city wins.
func (s *importService) upsertRoster(
	ctx context.Context,
	managerRepo repository.ManagerRepository,
	roster []importer.NormalizedManager,
) (map[string]managerRef, int, error) {
	byName := make(map[string]*entity.Manager)
	imported := 0
	refs := make(map[string]managerRef, len(roster))

	for _, record := range roster {
		manager, seen := byName[record.Name]
		if !seen {
			manager = &entity.Manager{Name: record.Name, City: record.City}
			if err := managerRepo.Upsert(ctx, manager); err != nil {
				return nil, 0, err
			}
			byName[record.Name] = manager
			imported++
		}

		if existing, ok := refs[record.OrderID]; ok {
			refs[record.OrderID] = managerRef{managerID: manager.ID, city: existing.city}
		} else {
			refs[record.OrderID] = managerRef{managerID: manager.ID, city: record.City}
		}
	}

	return refs, imported, nil
}

// insertSales persists the sale lines that resolve to a roster entry and
// applies the configured policy to the ones that do not.
func (s *importService) insertSales(
	ctx context.Context,
	saleRepo repository.SaleRepository,
	sales []importer.NormalizedSale,
	refs map[string]managerRef,
) (int, error) {
	inserted := 0
	for _, sale := range sales {
		ref, ok := refs[sale.OrderID]
		if !ok {
			switch s.policy {
			case config.UnmatchedSaleFail:
				return 0, domainerrors.ErrImportFailed.WrapMessage(
					"sale order " + sale.OrderID + " has no manager roster entry")
			case config.UnmatchedSaleWarn:
				s.logger.WarnContext(ctx, "dropping sale without manager roster entry",
					slog.String("orderID", sale.OrderID))
			}

			continue
		}

		err := saleRepo.Insert(ctx, &entity.Sale{
			OrderID:       sale.OrderID,
			Date:          sale.Date,
			Product:       sale.Product,
			Quantity:      sale.Quantity,
			PurchaseType:  sale.PurchaseType,
			PaymentMethod: sale.PaymentMethod,
			ManagerID:     ref.managerID,
			City:          ref.city,
		})
		if err != nil {
			return 0, err
		}
		inserted++
	}

	return inserted, nil
}

// --- Dataset pipelines ---

func prepareSales(ctx context.Context, r io.Reader) ([]importer.NormalizedSale, error) {
	records, err := runPipeline(ctx, r, importer.SalesSchema)
	if err != nil {
		return nil, err
	}

	sales, err := importer.NormalizeSales(records)
	if err != nil {
		return nil, datasetError(importer.SalesSchema.Name, err)
	}

	return sales, nil
}

func prepareManagers(ctx context.Context, r io.Reader) ([]importer.NormalizedManager, error) {
	records, err := runPipeline(ctx, r, importer.ManagersSchema)
	if err != nil {
		return nil, err
	}

	return importer.NormalizeManagers(records), nil
}

func preparePrices(ctx context.Context, r io.Reader) ([]importer.NormalizedPrice, error) {
	records, err := runPipeline(ctx, r, importer.PricesSchema)
	if err != nil {
		return nil, err
	}

	return importer.NormalizePrices(records), nil
}

func runPipeline(ctx context.Context, r io.Reader, schema importer.Schema) ([]importer.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := importer.ParseCSV(r)
	if err != nil {
		return nil, datasetError(schema.Name, err)
	}

	if err := schema.Validate(records); err != nil {
		return nil, datasetError(schema.Name, err)
	}

	return records, nil
}

func datasetError(dataset string, err error) error {
	return &datasetPipelineError{dataset: dataset, err: err}
}

// datasetPipelineError prefixes a pipeline failure with the dataset it came
// from, so the caller can tell which of the three files was rejected.
type datasetPipelineError struct {
	dataset string
	err     error
}

func (e *datasetPipelineError) Error() string {
	return e.dataset + ": " + e.err.Error()
}

func (e *datasetPipelineError) Unwrap() error {
	return e.err
}
