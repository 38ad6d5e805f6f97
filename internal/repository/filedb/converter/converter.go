package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/pkg/e"
	"github.com/shopspring/decimal"
)

// ProductConverter преобразует продукты между domain и строками файла.
type ProductConverter interface {
	ToModel(p *domain.Product) *ProductRecord
	ToEntity(rec *ProductRecord) (*domain.Product, error)
	EncodeLine(rec *ProductRecord) string
	DecodeLine(line string) (*ProductRecord, error)
}

// CustomerConverter преобразует клиентов между domain и строками файла.
type CustomerConverter interface {
	ToModel(c domain.Customer) *CustomerRecord
	ToEntity(rec *CustomerRecord) domain.Customer
	EncodeLine(rec *CustomerRecord) string
	DecodeLine(line string) (*CustomerRecord, error)
}

// InvoiceConverter преобразует блоки счетов между domain и строками файла.
type InvoiceConverter interface {
	EncodeHeader(inv *domain.Invoice) string
	DecodeHeader(line string) (*InvoiceHeaderRecord, error)
	EncodeItem(item domain.InvoiceItem) string
	DecodeItem(line string) (*InvoiceItemRecord, error)
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return &productConverter{}
}

func (productConverter) ToModel(p *domain.Product) *ProductRecord {
	return &ProductRecord{
		Category: string(p.Category),
		ID:       p.ID,
		Name:     p.Name,
		Price:    centsToPrice(p.Price),
	}
}

// ToEntity собирает продукт из записи файла. Неизвестная категория или
// нечитаемая цена делают запись некорректной.
func (productConverter) ToEntity(rec *ProductRecord) (*domain.Product, error) {
	category, err := domain.ParseCategory(rec.Category)
	if err != nil {
		return nil, e.Wrap(err.Error(), e.ErrMalformedRecord)
	}

	cents, err := priceToCents(rec.Price)
	if err != nil {
		return nil, e.Wrap(err.Error(), e.ErrMalformedRecord)
	}

	return domain.NewProduct(rec.ID, rec.Name, cents, category), nil
}

func (productConverter) EncodeLine(rec *ProductRecord) string {
	return fmt.Sprintf("%s,%d,%s,%s", rec.Category, rec.ID, rec.Name, rec.Price)
}

// DecodeLine разбирает строку формата category,id,name,price.
// Запятые внутри имени не экранируются и ломают разбор — документированное
// ограничение формата.
func (productConverter) DecodeLine(line string) (*ProductRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	return &ProductRecord{
		Category: parts[0],
		ID:       id,
		Name:     parts[2],
		Price:    parts[3],
	}, nil
}

type customerConverter struct{}

func NewCustomerConverter() CustomerConverter {
	return &customerConverter{}
}

func (customerConverter) ToModel(c domain.Customer) *CustomerRecord {
	return &CustomerRecord{
		ID:   c.ID,
		Name: c.Name,
	}
}

func (customerConverter) ToEntity(rec *CustomerRecord) domain.Customer {
	return domain.NewCustomer(rec.ID, rec.Name)
}

func (customerConverter) EncodeLine(rec *CustomerRecord) string {
	return fmt.Sprintf("%d,%s", rec.ID, rec.Name)
}

// DecodeLine разбирает строку формата id,name. Имя — остаток строки,
// поэтому запятые внутри имени клиента разбор переживает.
func (customerConverter) DecodeLine(line string) (*CustomerRecord, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	return &CustomerRecord{
		ID:   id,
		Name: parts[1],
	}, nil
}

type invoiceConverter struct{}

func NewInvoiceConverter() InvoiceConverter {
	return &invoiceConverter{}
}

func (invoiceConverter) EncodeHeader(inv *domain.Invoice) string {
	return fmt.Sprintf("%d,%s,%s", inv.ID, inv.Customer.Name, inv.Date)
}

// DecodeHeader разбирает заголовок блока id,customerName,date.
// Дата — остаток строки после второй запятой.
func (invoiceConverter) DecodeHeader(line string) (*InvoiceHeaderRecord, error) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	return &InvoiceHeaderRecord{
		ID:           id,
		CustomerName: parts[1],
		Date:         parts[2],
	}, nil
}

func (invoiceConverter) EncodeItem(item domain.InvoiceItem) string {
	return fmt.Sprintf("%d,%d", item.ProductID, item.Quantity)
}

func (invoiceConverter) DecodeItem(line string) (*InvoiceItemRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	productID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	quantity, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, e.Wrap(line, e.ErrMalformedRecord)
	}

	return &InvoiceItemRecord{
		ProductID: productID,
		Quantity:  quantity,
	}, nil
}

// centsToPrice переводит минорные единицы в десятичную запись файла
// ("227.5", "260" — без хвостовых нулей, как писал исходный формат).
func centsToPrice(cents int64) string {
	return decimal.New(cents, -2).String()
}

// priceToCents разбирает десятичную цену файла в минорные единицы.
// Дробная часть мельче 1/100 не представима и считается некорректной.
func priceToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("price %s is not representable in cents", s)
	}

	return cents.IntPart(), nil
}
