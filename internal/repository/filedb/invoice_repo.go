package filedb

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb/converter"
	"github.com/DRSN-tech/restaurant-billing/internal/usecase"
	"github.com/DRSN-tech/restaurant-billing/pkg/e"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/jimlawless/whereami"
)

// endSentinel завершает блок счёта в файле.
const endSentinel = "END"

// InvoiceRepo реализует коллекцию счетов поверх текстового файла.
// Коллекция только пополняется. При загрузке ссылки счёта разрешаются
// по значению через уже загруженные каталог и справочник клиентов,
// поэтому каталог и справочник должны быть загружены раньше.
type InvoiceRepo struct {
	path      string
	conv      converter.InvoiceConverter
	catalog   usecase.CatalogRepository
	customers usecase.CustomerRepository
	logger    logger.Logger

	invoices []*domain.Invoice
	nextID   int64
}

func NewInvoiceRepo(
	path string,
	conv converter.InvoiceConverter,
	catalog usecase.CatalogRepository,
	customers usecase.CustomerRepository,
	logger logger.Logger,
) *InvoiceRepo {
	return &InvoiceRepo{
		path:      path,
		conv:      conv,
		catalog:   catalog,
		customers: customers,
		logger:    logger,
		nextID:    1,
	}
}

// Append сохраняет подтверждённый счёт под следующим свободным идентификатором.
func (r *InvoiceRepo) Append(_ context.Context, customer domain.Customer, date string, items []domain.InvoiceItem) (*domain.Invoice, error) {
	invoice := domain.NewInvoice(r.nextID, customer, date)
	invoice.Items = append(invoice.Items, items...)

	r.invoices = append(r.invoices, invoice)
	r.nextID++

	return invoice, nil
}

// All возвращает счета в порядке добавления.
func (r *InvoiceRepo) All(_ context.Context) ([]*domain.Invoice, error) {
	return append([]*domain.Invoice(nil), r.invoices...), nil
}

// FindByCustomerName возвращает счета с точным совпадением имени клиента.
// Отсутствие совпадений — пустой список.
func (r *InvoiceRepo) FindByCustomerName(_ context.Context, name string) ([]*domain.Invoice, error) {
	result := make([]*domain.Invoice, 0)
	for _, inv := range r.invoices {
		if inv.Customer.Name == name {
			result = append(result, inv)
		}
	}

	return result, nil
}

// Load читает файл счетов блоками: заголовок, строки позиций, сентинел END.
// Неизвестное имя клиента подменяется заглушкой (id 0, имя из файла);
// позиция с неразрешимым продуктом отбрасывается. Обе ситуации логируются.
// Незавершённый последний блок (EOF без END) загружается как есть.
func (r *InvoiceRepo) Load(ctx context.Context) error {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer file.Close()

	var current *domain.Invoice

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if current == nil {
			current = r.loadHeader(ctx, line)
			continue
		}

		if line == endSentinel {
			r.store(current)
			current = nil
			continue
		}

		r.loadItem(ctx, current, line)
	}

	if err := scanner.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if current != nil {
		r.store(current)
	}

	return nil
}

// Save записывает счета блоками с сентинелом END в порядке коллекции.
func (r *InvoiceRepo) Save(_ context.Context) error {
	file, err := os.Create(r.path)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrStorageUnavailable))
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, inv := range r.invoices {
		if _, err := w.WriteString(r.conv.EncodeHeader(inv) + "\n"); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		for _, item := range inv.Items {
			if _, err := w.WriteString(r.conv.EncodeItem(item) + "\n"); err != nil {
				return e.Wrap(whereami.WhereAmI(), err)
			}
		}

		if _, err := w.WriteString(endSentinel + "\n"); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := w.Flush(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// loadHeader разбирает заголовок блока и разрешает клиента по имени.
func (r *InvoiceRepo) loadHeader(ctx context.Context, line string) *domain.Invoice {
	rec, err := r.conv.DecodeHeader(line)
	if err != nil {
		r.logger.Warnf("skipping malformed invoice header: %v", err)
		return nil
	}

	customer, err := r.customers.FindByName(ctx, rec.CustomerName)
	if err != nil {
		// Переименованный или отсутствующий клиент не валит загрузку:
		// счёт получает заглушку с id 0 и именем из файла.
		r.logger.Warnf("invoice %d references unknown customer %q, using placeholder", rec.ID, rec.CustomerName)
		customer = domain.NewCustomer(0, rec.CustomerName)
	}

	return domain.NewInvoice(rec.ID, customer, rec.Date)
}

// loadItem разбирает строку позиции и разрешает продукт по идентификатору.
func (r *InvoiceRepo) loadItem(ctx context.Context, invoice *domain.Invoice, line string) {
	rec, err := r.conv.DecodeItem(line)
	if err != nil {
		r.logger.Warnf("skipping malformed invoice item: %v", err)
		return
	}

	if rec.Quantity < 1 {
		r.logger.Warnf("skipping invoice %d item with non-positive quantity %d", invoice.ID, rec.Quantity)
		return
	}

	if _, err := r.catalog.FindByID(ctx, rec.ProductID); err != nil {
		r.logger.Warnf("invoice %d references unknown product %d, item dropped", invoice.ID, rec.ProductID)
		return
	}

	invoice.SetItem(rec.ProductID, rec.Quantity)
}

func (r *InvoiceRepo) store(invoice *domain.Invoice) {
	if invoice == nil {
		return
	}

	r.invoices = append(r.invoices, invoice)
	if invoice.ID >= r.nextID {
		r.nextID = invoice.ID + 1
	}
}
