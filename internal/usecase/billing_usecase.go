package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/pkg/e"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// BillingUseCase реализует бизнес-логику биллинга ресторана:
// ведение каталога и справочника клиентов, расчёт счетов со скидками.
type BillingUseCase struct {
	catalog   CatalogRepository
	customers CustomerRepository
	invoices  InvoiceRepository
	logger    logger.Logger
}

func NewBillingUC(
	catalog CatalogRepository,
	customers CustomerRepository,
	invoices InvoiceRepository,
	logger logger.Logger,
) *BillingUseCase {
	return &BillingUseCase{
		catalog:   catalog,
		customers: customers,
		invoices:  invoices,
		logger:    logger,
	}
}

// AddProduct валидирует и регистрирует новый продукт меню.
func (b *BillingUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*ProductInfo, error) {
	const op = "BillingUseCase.AddProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}
	if req.Price < 0 {
		return nil, e.Wrap(op, e.ErrNegativePrice)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := b.catalog.Add(ctx, req.Name, req.Price, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductInfo(product), nil
}

// AddCustomer регистрирует нового клиента. Уникальность имени не проверяется:
// при дублях поиск по имени возвращает первую запись.
func (b *BillingUseCase) AddCustomer(ctx context.Context, req *AddCustomerReq) (*CustomerInfo, error) {
	const op = "BillingUseCase.AddCustomer"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCustomerNameRequired)
	}

	customer, err := b.customers.Add(ctx, req.Name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCustomerInfo(customer), nil
}

// ListProducts возвращает продукты меню в порядке добавления.
func (b *BillingUseCase) ListProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "BillingUseCase.ListProducts"

	products, err := b.catalog.All(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ProductInfo, 0, len(products))
	for _, p := range products {
		result = append(result, *NewProductInfo(p))
	}

	return result, nil
}

// ListCustomers возвращает клиентов в порядке добавления.
func (b *BillingUseCase) ListCustomers(ctx context.Context) ([]CustomerInfo, error) {
	const op = "BillingUseCase.ListCustomers"

	customers, err := b.customers.All(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CustomerInfo, 0, len(customers))
	for _, c := range customers {
		result = append(result, *NewCustomerInfo(c))
	}

	return result, nil
}

// FindProduct ищет продукт по идентификатору.
func (b *BillingUseCase) FindProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "BillingUseCase.FindProduct"

	product, err := b.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductInfo(product), nil
}

// FindCustomer ищет клиента по точному имени.
func (b *BillingUseCase) FindCustomer(ctx context.Context, name string) (*CustomerInfo, error) {
	const op = "BillingUseCase.FindCustomer"

	customer, err := b.customers.FindByName(ctx, name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCustomerInfo(customer), nil
}

// PreviewInvoice собирает счёт без сохранения: строки разрешаются через каталог,
// итоги считаются по действующим ставкам скидок. Используется для показа чека
// до подтверждения.
func (b *BillingUseCase) PreviewInvoice(ctx context.Context, req *CreateInvoiceReq) (*InvoiceView, error) {
	const op = "BillingUseCase.PreviewInvoice"

	customer, date, items, err := b.buildInvoice(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	draft := domain.NewInvoice(0, customer, date)
	draft.Items = items

	return b.viewOf(ctx, draft), nil
}

// CreateInvoice собирает счёт и сохраняет его в коллекции счетов.
// Вызывается только после явного подтверждения пользователем.
func (b *BillingUseCase) CreateInvoice(ctx context.Context, req *CreateInvoiceReq) (*InvoiceView, error) {
	const op = "BillingUseCase.CreateInvoice"

	customer, date, items, err := b.buildInvoice(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	invoice, err := b.invoices.Append(ctx, customer, date, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return b.viewOf(ctx, invoice), nil
}

// SearchInvoices возвращает счета клиента по точному имени.
// Отсутствие совпадений — пустой список, не ошибка.
func (b *BillingUseCase) SearchInvoices(ctx context.Context, customerName string) ([]*InvoiceView, error) {
	const op = "BillingUseCase.SearchInvoices"

	invoices, err := b.invoices.FindByCustomerName(ctx, customerName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return b.viewsOf(ctx, invoices), nil
}

// AllInvoices возвращает все сохранённые счета в порядке добавления.
func (b *BillingUseCase) AllInvoices(ctx context.Context) ([]*InvoiceView, error) {
	const op = "BillingUseCase.AllInvoices"

	invoices, err := b.invoices.All(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return b.viewsOf(ctx, invoices), nil
}

// buildInvoice разрешает клиента и собирает строки счёта из запроса.
// Повторное указание продукта заменяет количество строки, а не добавляет дубль.
func (b *BillingUseCase) buildInvoice(ctx context.Context, req *CreateInvoiceReq) (domain.Customer, string, []domain.InvoiceItem, error) {
	customer, err := b.customers.FindByName(ctx, req.CustomerName)
	if err != nil {
		return domain.Customer{}, "", nil, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	draft := domain.NewInvoice(0, customer, date)
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return domain.Customer{}, "", nil, e.ErrInvalidQuantity
		}

		if _, err := b.catalog.FindByID(ctx, line.ProductID); err != nil {
			return domain.Customer{}, "", nil, err
		}

		draft.SetItem(line.ProductID, line.Quantity)
	}

	return customer, date, draft.Items, nil
}

// viewOf разрешает строки счёта через каталог и считает итоги.
// Строка с неразрешимым продуктом пропускается с предупреждением,
// поэтому расчёт представления не может завершиться ошибкой.
func (b *BillingUseCase) viewOf(ctx context.Context, invoice *domain.Invoice) *InvoiceView {
	view := &InvoiceView{
		ID:           invoice.ID,
		CustomerName: invoice.Customer.Name,
		Date:         invoice.Date,
		Lines:        make([]LineView, 0, len(invoice.Items)),
	}

	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, item := range invoice.Items {
		product, err := b.catalog.FindByID(ctx, item.ProductID)
		if err != nil {
			b.logger.Warnf("invoice %d references unknown product %d, line skipped", invoice.ID, item.ProductID)
			continue
		}

		unit := decimal.New(product.UnitPrice(), -2)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))

		subtotal = subtotal.Add(lineTotal)
		discount = discount.Add(DiscountRate(product.Name).Mul(lineTotal))

		view.Lines = append(view.Lines, LineView{
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
	}

	view.Totals = Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		GrandTotal: subtotal.Sub(discount),
	}

	return view
}

func (b *BillingUseCase) viewsOf(ctx context.Context, invoices []*domain.Invoice) []*InvoiceView {
	views := make([]*InvoiceView, 0, len(invoices))
	for _, invoice := range invoices {
		views = append(views, b.viewOf(ctx, invoice))
	}

	return views
}
