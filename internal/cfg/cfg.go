package cfg

import (
	"path/filepath"

	"github.com/DRSN-tech/restaurant-billing/pkg/e"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jimlawless/whereami"
)

// Config — корневая конфигурация приложения.
type Config struct {
	Storage StorageCfg
	App     AppCfg
}

// StorageCfg задаёт расположение файлов хранилища.
type StorageCfg struct {
	Dir           string `env:"STORAGE_DIR" env-default:"."`
	ProductsFile  string `env:"PRODUCTS_FILE" env-default:"products.txt"`
	CustomersFile string `env:"CUSTOMERS_FILE" env-default:"customers.txt"`
	InvoicesFile  string `env:"INVOICES_FILE" env-default:"invoices.txt"`
}

// AppCfg задаёт параметры отображения.
type AppCfg struct {
	RestaurantName string `env:"RESTAURANT_NAME" env-default:"ITP Restaurant"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" env-default:"₹"`
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Errorf(err, "failed to read environment")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &cfg, nil
}

// ProductsPath возвращает полный путь к файлу продуктов.
func (s StorageCfg) ProductsPath() string {
	return filepath.Join(s.Dir, s.ProductsFile)
}

// CustomersPath возвращает полный путь к файлу клиентов.
func (s StorageCfg) CustomersPath() string {
	return filepath.Join(s.Dir, s.CustomersFile)
}

// InvoicesPath возвращает полный путь к файлу счетов.
func (s StorageCfg) InvoicesPath() string {
	return filepath.Join(s.Dir, s.InvoicesFile)
}
