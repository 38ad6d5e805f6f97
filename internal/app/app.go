package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/restaurant-billing/internal/cfg"
	"github.com/DRSN-tech/restaurant-billing/internal/delivery/cli"
	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb/converter"
	"github.com/DRSN-tech/restaurant-billing/internal/usecase"
	"github.com/DRSN-tech/restaurant-billing/pkg/closer"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
)

const flushTimeout = 5 * time.Second

// seedProduct — продукт меню, создаваемый при первом запуске.
type seedProduct struct {
	name     string
	cents    int64
	category domain.Category
}

// Каталог по умолчанию. Применяется только когда каталог загрузился пустым.
var defaultCatalog = []seedProduct{
	{"Chicken Biryani", 26000, domain.CategoryFood},
	{"Chicken Palao", 19500, domain.CategoryFood},
	{"Chinese Rice", 32500, domain.CategoryFood},
	{"Chicken Burger", 13000, domain.CategoryFood},
	{"Nawabi Pizza", 58500, domain.CategoryFood},
	{"2.5 Litre Coke", 22750, domain.CategoryBeverage},
}

// App связывает хранилища, бизнес-логику и интерактивное меню.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	catalog   *filedb.CatalogRepo
	customers *filedb.CustomerRepo
	invoices  *filedb.InvoiceRepo
	menu      *cli.Menu
	closer    *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	prConv := converter.NewProductConverter()
	custConv := converter.NewCustomerConverter()
	invConv := converter.NewInvoiceConverter()

	catalog := filedb.NewCatalogRepo(cfg.Storage.ProductsPath(), prConv, log)
	customers := filedb.NewCustomerRepo(cfg.Storage.CustomersPath(), custConv, log)
	invoices := filedb.NewInvoiceRepo(cfg.Storage.InvoicesPath(), invConv, catalog, customers, log)

	billingUC := usecase.NewBillingUC(catalog, customers, invoices, log)
	menu := cli.NewMenu(billingUC, cfg.App, log, os.Stdin, os.Stdout)

	c := closer.New()
	c.Add(catalog.Save)
	c.Add(customers.Save)
	c.Add(invoices.Save)

	return &App{
		cfg:       cfg,
		logger:    log,
		catalog:   catalog,
		customers: customers,
		invoices:  invoices,
		menu:      menu,
		closer:    c,
	}, nil
}

// Run загружает хранилища, при необходимости заполняет каталог значениями
// по умолчанию, крутит интерактивное меню и при выходе (или по сигналу)
// сбрасывает все три хранилища на диск. Ошибка сохранения одного хранилища
// не мешает остальным.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.loadStores(ctx)
	a.seedCatalog(ctx)

	menuDone := make(chan error, 1)
	go func() {
		menuDone <- a.menu.Run(ctx)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-menuDone:
		if err != nil {
			a.logger.Errorf(err, "menu loop failed")
		}
	case <-shutdown:
		a.logger.Infof("received shutdown signal, flushing stores")
		cancel()
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), flushTimeout)
	defer flushCancel()

	if err := a.closer.Close(flushCtx); err != nil {
		a.logger.Errorf(err, "failed to flush stores")
	} else {
		a.logger.Infof("stores flushed")
	}

	return nil
}

// loadStores загружает три хранилища в фиксированном порядке: счета
// разрешают ссылки по значению через каталог и справочник, поэтому
// загружаются последними. Ошибки загрузки не валят процесс.
func (a *App) loadStores(ctx context.Context) {
	if err := a.catalog.Load(ctx); err != nil {
		a.logger.Errorf(err, "failed to load catalog")
	}

	if err := a.customers.Load(ctx); err != nil {
		a.logger.Errorf(err, "failed to load customers")
	}

	if err := a.invoices.Load(ctx); err != nil {
		a.logger.Errorf(err, "failed to load invoices")
	}
}

// seedCatalog заполняет пустой каталог продуктами по умолчанию.
func (a *App) seedCatalog(ctx context.Context) {
	products, err := a.catalog.All(ctx)
	if err != nil || len(products) > 0 {
		return
	}

	for _, seed := range defaultCatalog {
		if _, err := a.catalog.Add(ctx, seed.name, seed.cents, seed.category); err != nil {
			a.logger.Warnf("failed to seed product %q: %v", seed.name, err)
		}
	}

	a.logger.Infof("catalog seeded with %d default products", len(defaultCatalog))
}
