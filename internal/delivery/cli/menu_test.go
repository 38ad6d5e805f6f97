package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	config "github.com/DRSN-tech/restaurant-billing/internal/cfg"
	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb/converter"
	"github.com/DRSN-tech/restaurant-billing/internal/usecase"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newTestMenu(t *testing.T, input string) (*Menu, *bytes.Buffer) {
	t.Helper()

	log := logger.NewSlogLogger()
	dir := t.TempDir()

	catalog := filedb.NewCatalogRepo(filepath.Join(dir, "products.txt"), converter.NewProductConverter(), log)
	customers := filedb.NewCustomerRepo(filepath.Join(dir, "customers.txt"), converter.NewCustomerConverter(), log)
	invoices := filedb.NewInvoiceRepo(filepath.Join(dir, "invoices.txt"), converter.NewInvoiceConverter(), catalog, customers, log)

	ctx := context.Background()
	_, err := catalog.Add(ctx, "Chicken Biryani", 26000, domain.CategoryFood)
	require.NoError(t, err)
	_, err = catalog.Add(ctx, "2.5 Litre Coke", 22750, domain.CategoryBeverage)
	require.NoError(t, err)

	billing := usecase.NewBillingUC(catalog, customers, invoices, log)

	app := config.AppCfg{RestaurantName: "ITP Restaurant", CurrencySymbol: "₹"}
	out := &bytes.Buffer{}

	return NewMenu(billing, app, log, strings.NewReader(input), out), out
}

// Сценарий полного прохода: добавить клиента, выписать счёт на две позиции,
// подтвердить сохранение, найти счёт по имени и выйти.
func TestMenu_InvoiceFlow(t *testing.T) {
	input := strings.Join([]string{
		"2",    // Add Customer
		"Asha", //
		"",     // Press Enter
		"3",    // Generate Invoice
		"Asha", //
		"2",    // две позиции
		"1",    // Chicken Biryani
		"2",    //
		"2",    // 2.5 Litre Coke
		"1",    //
		"y",    // Save invoice?
		"",     // Press Enter
		"7",    // Search Invoice
		"Asha", //
		"",     // Press Enter
		"8",    // Exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, input)
	require.NoError(t, menu.Run(context.Background()))

	text := out.String()
	require.Contains(t, text, "Customer added!")
	require.Contains(t, text, "Invoice saved!")
	require.Contains(t, text, "Invoice To: Asha")
	require.Contains(t, text, "₹747.50")
	require.Contains(t, text, "₹63.38")
	require.Contains(t, text, "₹684.13")
	require.Contains(t, text, "Thank You for Visiting ITP Restaurant :)")
}

func TestMenu_InvoiceUnknownCustomer(t *testing.T) {
	input := strings.Join([]string{
		"3",    // Generate Invoice
		"Ravi", // такого клиента нет
		"",     // Press Enter
		"8",    // Exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, input)
	require.NoError(t, menu.Run(context.Background()))

	require.Contains(t, out.String(), "Customer not found! Please add customer first.")
}

func TestMenu_SearchNoInvoices(t *testing.T) {
	input := strings.Join([]string{
		"2",    // Add Customer
		"Asha", //
		"",     // Press Enter
		"7",    // Search Invoice
		"Asha", //
		"",     // Press Enter
		"8",    // Exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, input)
	require.NoError(t, menu.Run(context.Background()))

	require.Contains(t, out.String(), "No invoices found for Asha.")
}

func TestMenu_EOFExits(t *testing.T) {
	menu, _ := newTestMenu(t, "")
	require.NoError(t, menu.Run(context.Background()))
}
