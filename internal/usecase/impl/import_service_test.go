package impl

import (
	"context"
	"strings"
	"testing"

	"salespulse/config"
	"salespulse/internal/domain/entity"
	mockRepo "salespulse/internal/mocks/repository"
	mockService "salespulse/internal/mocks/service"
	"salespulse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	salesCSV = "ID заказа,Дата,Продукт,Количество,Тип покупки,Способ оплаты\n" +
		"1001,15.03.2024,Widget,3,online,card\n" +
		"1002,16/03/2024,Gadget,2,offline,cash\n"

	managersCSV = "ID заказа,Менеджер,Город\n" +
		"1001,Иван Петров,Москва\n" +
		"1002,Анна Сидорова,Казань\n"

	pricesCSV = "Продукт,Цена\n" +
		"Widget,\"1 500,50\"\n" +
		"Gadget,200\n"
)

// importServiceFixtures holds all test dependencies for import service tests.
type importServiceFixtures struct {
	service     usecase.ImportUsecase
	txManager   *fakeTransactionManager
	managerRepo *mockRepo.MockManagerRepository
	priceRepo   *mockRepo.MockPriceRepository
	saleRepo    *mockRepo.MockSaleRepository
	cache       *mockService.MockAnalyticsCache
}

func createTestImportService(t *testing.T, policy string) importServiceFixtures {
	managerRepo := mockRepo.NewMockManagerRepository(t)
	priceRepo := mockRepo.NewMockPriceRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	cache := mockService.NewMockAnalyticsCache(t)

	txManager := &fakeTransactionManager{
		factory: &fakeRepositoryFactory{
			managerRepo: managerRepo,
			priceRepo:   priceRepo,
			saleRepo:    saleRepo,
		},
	}

	cfg := &config.Config{}
	cfg.Import = &config.ImportConfig{OnUnmatchedSale: policy}

	service := NewImportService(txManager, cache, cfg, discardLogger())

	return importServiceFixtures{
		service:     service,
		txManager:   txManager,
		managerRepo: managerRepo,
		priceRepo:   priceRepo,
		saleRepo:    saleRepo,
		cache:       cache,
	}
}

func importInput(sales, managers, prices string) *usecase.ImportInput {
	return &usecase.ImportInput{
		Sales:    strings.NewReader(sales),
		Managers: strings.NewReader(managers),
		Prices:   strings.NewReader(prices),
	}
}

func TestImportService_ImportCSV_Success(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)
	ctx := context.Background()

	fixtures.priceRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Price")).
		Return(nil).
		Twice()

	nextManagerID := int64(0)
	fixtures.managerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Manager")).
		Run(func(_ context.Context, manager *entity.Manager) {
			nextManagerID++
			manager.ID = nextManagerID
		}).
		Return(nil).
		Twice()

	var insertedSales []entity.Sale
	fixtures.saleRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Run(func(_ context.Context, sale *entity.Sale) {
			insertedSales = append(insertedSales, *sale)
		}).
		Return(nil).
		Twice()

	fixtures.cache.EXPECT().InvalidateAll(mock.Anything).Return(nil)

	result, err := fixtures.service.ImportCSV(ctx, importInput(salesCSV, managersCSV, pricesCSV))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ImportedSales)
	assert.Equal(t, 2, result.ImportedManagers)
	assert.Equal(t, 2, result.ImportedPrices)
	assert.Empty(t, result.Errors)

	require.Len(t, insertedSales, 2)
	assert.Equal(t, "1001", insertedSales[0].OrderID)
	assert.Equal(t, int64(1), insertedSales[0].ManagerID)
	assert.Equal(t, "Москва", insertedSales[0].City)
	assert.Equal(t, "15.03.2024", insertedSales[0].Date.Format("02.01.2006"))
	assert.Equal(t, 3, insertedSales[0].Quantity)
	// Mixed separator in the source file still lands on one calendar date.
	assert.Equal(t, "16.03.2024", insertedSales[1].Date.Format("02.01.2006"))
}

func TestImportService_ImportCSV_NormalizesManagerNames(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)
	ctx := context.Background()

	fixtures.priceRepo.EXPECT().
		Upsert(mock.Anything, mock.Anything).
		Return(nil)

	var upsertedNames []string
	fixtures.managerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Manager")).
		Run(func(_ context.Context, manager *entity.Manager) {
			manager.ID = 1
			upsertedNames = append(upsertedNames, manager.Name)
		}).
		Return(nil)

	fixtures.saleRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	fixtures.cache.EXPECT().InvalidateAll(mock.Anything).Return(nil)

	sales := "ID заказа,Дата,Продукт,Количество,Тип покупки,Способ оплаты\n1001,01.01.2024,Widget,1,,\n"
	managers := "ID заказа,Менеджер,Город\n1001,Иван Петров,Москва\n"
	prices := "Продукт,Цена\nWidget,100\n"

	result, err := fixtures.service.ImportCSV(ctx, importInput(sales, managers, prices))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"Иван П."}, upsertedNames)
}

func TestImportService_ImportCSV_MissingFile(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)

	input := &usecase.ImportInput{
		Sales:    strings.NewReader(salesCSV),
		Managers: nil,
		Prices:   strings.NewReader(pricesCSV),
	}

	_, err := fixtures.service.ImportCSV(context.Background(), input)
	require.Error(t, err)
	assert.False(t, fixtures.txManager.executed)
}

func TestImportService_ImportCSV_ValidationFailureRejectsBatch(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)

	// Second sale row has an empty quantity; nothing may reach the store.
	badSales := "ID заказа,Дата,Продукт,Количество,Тип покупки,Способ оплаты\n" +
		"1001,15.03.2024,Widget,3,online,card\n" +
		"1002,16.03.2024,Gadget,,offline,cash\n"

	result, err := fixtures.service.ImportCSV(context.Background(), importInput(badSales, managersCSV, pricesCSV))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Success)
	assert.Zero(t, result.ImportedSales)
	assert.Zero(t, result.ImportedManagers)
	assert.Zero(t, result.ImportedPrices)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "sales")
	assert.Contains(t, result.Errors[0], "row 2")
	assert.False(t, fixtures.txManager.executed)
}

func TestImportService_ImportCSV_UnrecognizedDateRejectsBatch(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)

	badSales := "ID заказа,Дата,Продукт,Количество,Тип покупки,Способ оплаты\n" +
		"1001,20240315,Widget,3,online,card\n"

	result, err := fixtures.service.ImportCSV(context.Background(), importInput(badSales, managersCSV, pricesCSV))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "date")
	assert.False(t, fixtures.txManager.executed)
}

func TestImportService_ImportCSV_UnmatchedSaleDropped(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)
	ctx := context.Background()

	fixtures.priceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Twice()
	fixtures.managerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Manager")).
		Run(func(_ context.Context, manager *entity.Manager) { manager.ID = 1 }).
		Return(nil)
	fixtures.saleRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()
	fixtures.cache.EXPECT().InvalidateAll(mock.Anything).Return(nil)

	// Order 1002 has no roster entry.
	managers := "ID заказа,Менеджер,Город\n1001,Иван Петров,Москва\n"

	result, err := fixtures.service.ImportCSV(ctx, importInput(salesCSV, managers, pricesCSV))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ImportedSales)
	assert.Equal(t, 1, result.ImportedManagers)
}

func TestImportService_ImportCSV_UnmatchedSaleFailPolicy(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleFail)
	ctx := context.Background()

	fixtures.priceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Twice()
	fixtures.managerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Manager")).
		Run(func(_ context.Context, manager *entity.Manager) { manager.ID = 1 }).
		Return(nil)
	fixtures.saleRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Maybe()

	managers := "ID заказа,Менеджер,Город\n1001,Иван Петров,Москва\n"

	_, err := fixtures.service.ImportCSV(ctx, importInput(salesCSV, managers, pricesCSV))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1002")
}

func TestImportService_ImportCSV_SharedOrderKeepsFirstCity(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)
	ctx := context.Background()

	fixtures.priceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	nextManagerID := int64(0)
	fixtures.managerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Manager")).
		Run(func(_ context.Context, manager *entity.Manager) {
			nextManagerID++
			manager.ID = nextManagerID
		}).
		Return(nil).
		Twice()

	var inserted entity.Sale
	fixtures.saleRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Run(func(_ context.Context, sale *entity.Sale) { inserted = *sale }).
		Return(nil)

	fixtures.cache.EXPECT().InvalidateAll(mock.Anything).Return(nil)

	sales := "ID заказа,Дата,Продукт,Количество,Тип покупки,Способ оплаты\n1001,01.01.2024,Widget,1,,\n"
	// Two roster records share the order: the later manager wins, the first city sticks.
	managers := "ID заказа,Менеджер,Город\n" +
		"1001,Иван Петров,Москва\n" +
		"1001,Анна Сидорова,Казань\n"
	prices := "Продукт,Цена\nWidget,100\n"

	result, err := fixtures.service.ImportCSV(ctx, importInput(sales, managers, prices))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ImportedManagers)
	assert.Equal(t, int64(2), inserted.ManagerID)
	assert.Equal(t, "Москва", inserted.City)
}

func TestImportService_ImportCSV_CacheInvalidationFailureIsSwallowed(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)
	ctx := context.Background()

	fixtures.priceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Twice()
	fixtures.managerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Manager")).
		Run(func(_ context.Context, manager *entity.Manager) { manager.ID = 1 }).
		Return(nil).
		Twice()
	fixtures.saleRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Twice()
	fixtures.cache.EXPECT().InvalidateAll(mock.Anything).Return(assert.AnError)

	result, err := fixtures.service.ImportCSV(ctx, importInput(salesCSV, managersCSV, pricesCSV))
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestImportService_ImportCSV_StoreFailureAborts(t *testing.T) {
	fixtures := createTestImportService(t, config.UnmatchedSaleDrop)

	fixtures.priceRepo.EXPECT().
		Upsert(mock.Anything, mock.Anything).
		Return(assert.AnError)

	_, err := fixtures.service.ImportCSV(context.Background(), importInput(salesCSV, managersCSV, pricesCSV))
	require.Error(t, err)
}
