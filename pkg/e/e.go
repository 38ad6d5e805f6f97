package e

import "fmt"

var (
	// Ошибки каталога и справочника клиентов
	ErrInvalidCategory  = fmt.Errorf("invalid product category")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCustomerNotFound = fmt.Errorf("customer not found")

	// Ошибки валидации ввода
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrCustomerNameRequired = fmt.Errorf("customer name is required")
	ErrNegativePrice        = fmt.Errorf("price must not be negative")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")

	// Ошибки файлового хранилища
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
	ErrMalformedRecord    = fmt.Errorf("malformed record")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
