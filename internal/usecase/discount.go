package usecase

import "github.com/shopspring/decimal"

// Блюда с повышенной скидкой. Таблица ключуется точным именем продукта,
// а не категорией: сравнение чувствительно к регистру и пробелам.
var specialDiscountDishes = map[string]struct{}{
	"Chicken Biryani": {},
	"Chinese Rice":    {},
	"Chicken Palao":   {},
}

var (
	rateStandard = decimal.NewFromFloat(0.05)
	rateSpecial  = decimal.NewFromFloat(0.10)
)

// DiscountRate возвращает ставку скидки по имени продукта:
// 0.10 для блюд из specialDiscountDishes, иначе 0.05.
func DiscountRate(productName string) decimal.Decimal {
	if _, ok := specialDiscountDishes[productName]; ok {
		return rateSpecial
	}

	return rateStandard
}
