package usecase

import (
	"context"

	"github.com/DRSN-tech/restaurant-billing/internal/domain"
)

// CatalogRepository хранит продукты меню и выдаёт им последовательные идентификаторы.
type CatalogRepository interface {
	Add(ctx context.Context, name string, priceCents int64, category domain.Category) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	All(ctx context.Context) ([]*domain.Product, error)
}

// CustomerRepository хранит клиентов ресторана.
type CustomerRepository interface {
	Add(ctx context.Context, name string) (domain.Customer, error)
	FindByName(ctx context.Context, name string) (domain.Customer, error)
	All(ctx context.Context) ([]domain.Customer, error)
}

// InvoiceRepository хранит подтверждённые счета. Коллекция только пополняется:
// операций изменения и удаления нет.
type InvoiceRepository interface {
	Append(ctx context.Context, customer domain.Customer, date string, items []domain.InvoiceItem) (*domain.Invoice, error)
	All(ctx context.Context) ([]*domain.Invoice, error)
	FindByCustomerName(ctx context.Context, name string) ([]*domain.Invoice, error)
}
