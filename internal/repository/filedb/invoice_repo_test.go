package filedb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb/converter"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/stretchr/testify/require"
)

type stores struct {
	catalog   *CatalogRepo
	customers *CustomerRepo
	invoices  *InvoiceRepo
}

func newStores(t *testing.T, dir string) *stores {
	t.Helper()
	log := logger.NewSlogLogger()

	catalog := NewCatalogRepo(filepath.Join(dir, "products.txt"), converter.NewProductConverter(), log)
	customers := NewCustomerRepo(filepath.Join(dir, "customers.txt"), converter.NewCustomerConverter(), log)
	invoices := NewInvoiceRepo(filepath.Join(dir, "invoices.txt"), converter.NewInvoiceConverter(), catalog, customers, log)

	return &stores{catalog: catalog, customers: customers, invoices: invoices}
}

func (s *stores) seed(t *testing.T, ctx context.Context) {
	t.Helper()

	_, err := s.catalog.Add(ctx, "Chicken Biryani", 26000, domain.CategoryFood)
	require.NoError(t, err)
	_, err = s.catalog.Add(ctx, "2.5 Litre Coke", 22750, domain.CategoryBeverage)
	require.NoError(t, err)
	_, err = s.customers.Add(ctx, "Asha")
	require.NoError(t, err)
}

// saveAll и loadAll ходят по хранилищам в том же порядке, что и приложение.
func (s *stores) saveAll(t *testing.T, ctx context.Context) {
	t.Helper()
	require.NoError(t, s.catalog.Save(ctx))
	require.NoError(t, s.customers.Save(ctx))
	require.NoError(t, s.invoices.Save(ctx))
}

func (s *stores) loadAll(t *testing.T, ctx context.Context) {
	t.Helper()
	require.NoError(t, s.catalog.Load(ctx))
	require.NoError(t, s.customers.Load(ctx))
	require.NoError(t, s.invoices.Load(ctx))
}

func TestInvoiceRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := newStores(t, dir)
	s.seed(t, ctx)

	customer, err := s.customers.FindByName(ctx, "Asha")
	require.NoError(t, err)

	first, err := s.invoices.Append(ctx, customer, "2025-01-15", []domain.InvoiceItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	second, err := s.invoices.Append(ctx, customer, "2025-01-16", nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	s.saveAll(t, ctx)

	reloaded := newStores(t, dir)
	reloaded.loadAll(t, ctx)

	invoices, err := reloaded.invoices.All(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	require.Equal(t, int64(1), invoices[0].ID)
	require.Equal(t, "Asha", invoices[0].Customer.Name)
	require.Equal(t, int64(1), invoices[0].Customer.ID)
	require.Equal(t, "2025-01-15", invoices[0].Date)
	require.Equal(t, []domain.InvoiceItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}, invoices[0].Items)

	require.Equal(t, int64(2), invoices[1].ID)
	require.Empty(t, invoices[1].Items)

	// Счётчик идентификаторов продолжает с места загрузки.
	third, err := reloaded.invoices.Append(ctx, customer, "2025-01-17", nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), third.ID)
}

func TestInvoiceRepo_LoadUnknownCustomerPlaceholder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := newStores(t, dir)
	s.seed(t, ctx)

	// Счёт ссылается на клиента, которого нет в справочнике.
	content := "1,Ravi,2025-01-15\n1,2\nEND\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoices.txt"), []byte(content), 0o644))

	require.NoError(t, s.invoices.Load(ctx))

	invoices, err := s.invoices.All(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	require.Equal(t, int64(0), invoices[0].Customer.ID)
	require.Equal(t, "Ravi", invoices[0].Customer.Name)
}

func TestInvoiceRepo_LoadDropsDanglingItems(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := newStores(t, dir)
	s.seed(t, ctx)

	content := "1,Asha,2025-01-15\n" +
		"1,2\n" +
		"99,1\n" + // продукта 99 нет в каталоге
		"2,0\n" + // неположительное количество
		"broken\n" +
		"END\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoices.txt"), []byte(content), 0o644))

	require.NoError(t, s.invoices.Load(ctx))

	invoices, err := s.invoices.All(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	require.Equal(t, []domain.InvoiceItem{{ProductID: 1, Quantity: 2}}, invoices[0].Items)
}

func TestInvoiceRepo_LoadUnterminatedBlock(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := newStores(t, dir)
	s.seed(t, ctx)

	// Последний блок без сентинела END загружается как есть.
	content := "1,Asha,2025-01-15\n1,2\nEND\n2,Asha,2025-01-16\n2,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoices.txt"), []byte(content), 0o644))

	require.NoError(t, s.invoices.Load(ctx))

	invoices, err := s.invoices.All(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	require.Equal(t, []domain.InvoiceItem{{ProductID: 2, Quantity: 1}}, invoices[1].Items)
}

func TestInvoiceRepo_FindByCustomerName(t *testing.T) {
	ctx := context.Background()

	s := newStores(t, t.TempDir())
	s.seed(t, ctx)

	customer, err := s.customers.FindByName(ctx, "Asha")
	require.NoError(t, err)

	_, err = s.invoices.Append(ctx, customer, "2025-01-15", []domain.InvoiceItem{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	found, err := s.invoices.FindByCustomerName(ctx, "Asha")
	require.NoError(t, err)
	require.Len(t, found, 1)

	// Отсутствие счетов — пустой список, не ошибка.
	none, err := s.invoices.FindByCustomerName(ctx, "Ravi")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

// Полный цикл: сохранить, поднять с диска в чистые хранилища и убедиться,
// что все три набора записей совпадают.
func TestStores_SaveReloadParity(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := newStores(t, dir)
	s.seed(t, ctx)

	customer, err := s.customers.FindByName(ctx, "Asha")
	require.NoError(t, err)
	_, err = s.invoices.Append(ctx, customer, "2025-01-15", []domain.InvoiceItem{{ProductID: 2, Quantity: 3}})
	require.NoError(t, err)

	s.saveAll(t, ctx)

	reloaded := newStores(t, dir)
	reloaded.loadAll(t, ctx)

	wantProducts, err := s.catalog.All(ctx)
	require.NoError(t, err)
	gotProducts, err := reloaded.catalog.All(ctx)
	require.NoError(t, err)
	require.Equal(t, wantProducts, gotProducts)

	wantCustomers, err := s.customers.All(ctx)
	require.NoError(t, err)
	gotCustomers, err := reloaded.customers.All(ctx)
	require.NoError(t, err)
	require.Equal(t, wantCustomers, gotCustomers)

	wantInvoices, err := s.invoices.All(ctx)
	require.NoError(t, err)
	gotInvoices, err := reloaded.invoices.All(ctx)
	require.NoError(t, err)
	require.Equal(t, wantInvoices, gotInvoices)
}
