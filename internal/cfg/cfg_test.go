package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/stretchr/testify/require"
)

// clearEnv снимает переменные конфигурации на время теста; t.Setenv
// регистрирует откат к исходным значениям.
func clearEnv(t *testing.T) {
	t.Helper()

	keys := []string{
		"STORAGE_DIR", "PRODUCTS_FILE", "CUSTOMERS_FILE", "INVOICES_FILE",
		"RESTAURANT_NAME", "CURRENCY_SYMBOL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	require.Equal(t, "products.txt", cfg.Storage.ProductsFile)
	require.Equal(t, "customers.txt", cfg.Storage.CustomersFile)
	require.Equal(t, "invoices.txt", cfg.Storage.InvoicesFile)
	require.Equal(t, "ITP Restaurant", cfg.App.RestaurantName)
	require.Equal(t, "₹", cfg.App.CurrencySymbol)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DIR", "/var/lib/billing")
	t.Setenv("PRODUCTS_FILE", "menu.txt")
	t.Setenv("RESTAURANT_NAME", "Cafe 42")

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	require.Equal(t, filepath.Join("/var/lib/billing", "menu.txt"), cfg.Storage.ProductsPath())
	require.Equal(t, filepath.Join("/var/lib/billing", "customers.txt"), cfg.Storage.CustomersPath())
	require.Equal(t, filepath.Join("/var/lib/billing", "invoices.txt"), cfg.Storage.InvoicesPath())
	require.Equal(t, "Cafe 42", cfg.App.RestaurantName)
}
