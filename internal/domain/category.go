package domain

import "github.com/DRSN-tech/restaurant-billing/pkg/e"

// Category описывает закрытый набор категорий продуктов меню.
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryBeverage Category = "Beverage"
)

// ParseCategory проверяет строковое значение и возвращает категорию.
// Значения вне закрытого набора отклоняются.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFood, CategoryBeverage:
		return Category(s), nil
	default:
		return "", e.ErrInvalidCategory
	}
}

// UnitPrice — ценовой хук категории. Обе категории пока возвращают цену
// без изменений; хук оставлен для будущих категорийных правил (например, налога).
func (c Category) UnitPrice(priceCents int64) int64 {
	return priceCents
}
