package impl

import (
	"context"
	"io"
	"log/slog"

	"salespulse/internal/domain/repository"
)

// fakeRepositoryFactory hands out the repositories prepared by the test.
type fakeRepositoryFactory struct {
	managerRepo repository.ManagerRepository
	priceRepo   repository.PriceRepository
	saleRepo    repository.SaleRepository
}

func (f *fakeRepositoryFactory) NewManagerRepository() repository.ManagerRepository {
	return f.managerRepo
}

func (f *fakeRepositoryFactory) NewPriceRepository() repository.PriceRepository {
	return f.priceRepo
}

func (f *fakeRepositoryFactory) NewSaleRepository() repository.SaleRepository {
	return f.saleRepo
}

// fakeTransactionManager runs the callback directly against the fake factory.
// A non-nil beginErr simulates a transaction that cannot start.
type fakeTransactionManager struct {
	factory  repository.RepositoryFactory
	beginErr error

	executed bool
}

func (m *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.executed = true

	return fn(m.factory)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
