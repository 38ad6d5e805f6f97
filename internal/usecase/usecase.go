package usecase

import "context"

// Billing описывает операции биллинга, доступные уровню доставки.
type Billing interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*ProductInfo, error)
	AddCustomer(ctx context.Context, req *AddCustomerReq) (*CustomerInfo, error)
	ListProducts(ctx context.Context) ([]ProductInfo, error)
	ListCustomers(ctx context.Context) ([]CustomerInfo, error)
	FindProduct(ctx context.Context, id int64) (*ProductInfo, error)
	FindCustomer(ctx context.Context, name string) (*CustomerInfo, error)
	PreviewInvoice(ctx context.Context, req *CreateInvoiceReq) (*InvoiceView, error)
	CreateInvoice(ctx context.Context, req *CreateInvoiceReq) (*InvoiceView, error)
	SearchInvoices(ctx context.Context, customerName string) ([]*InvoiceView, error)
	AllInvoices(ctx context.Context) ([]*InvoiceView, error)
}
