package usecase

import (
	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/shopspring/decimal"
)

// AddProductReq — запрос на добавление продукта меню.
type AddProductReq struct {
	Name     string
	Category string
	Price    int64 // в минорных единицах
}

// AddCustomerReq — запрос на добавление клиента.
type AddCustomerReq struct {
	Name string
}

// InvoiceLine — строка счёта на входе. Количество валидируется
// вызывающей стороной до передачи в движок.
type InvoiceLine struct {
	ProductID int64
	Quantity  int
}

// CreateInvoiceReq — запрос на формирование счёта.
// Пустая дата означает текущую календарную дату.
type CreateInvoiceReq struct {
	CustomerName string
	Date         string
	Lines        []InvoiceLine
}

// ProductInfo — DTO продукта для внешнего использования.
type ProductInfo struct {
	ID       int64
	Name     string
	Category string
	Price    decimal.Decimal
}

// CustomerInfo — DTO клиента для внешнего использования.
type CustomerInfo struct {
	ID   int64
	Name string
}

// LineView — строка счёта с разрешённым продуктом и посчитанной суммой.
type LineView struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Totals — итоги счёта. Значения точные, округление только при отображении.
type Totals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// InvoiceView — счёт, подготовленный к отображению.
type InvoiceView struct {
	ID           int64
	CustomerName string
	Date         string
	Lines        []LineView
	Totals       Totals
}

// MAPPERS

func NewProductInfo(p *domain.Product) *ProductInfo {
	return &ProductInfo{
		ID:       p.ID,
		Name:     p.Name,
		Category: string(p.Category),
		Price:    decimal.New(p.Price, -2),
	}
}

func NewCustomerInfo(c domain.Customer) *CustomerInfo {
	return &CustomerInfo{
		ID:   c.ID,
		Name: c.Name,
	}
}
