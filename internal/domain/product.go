package domain

// Product описывает продукт меню. Запись неизменяема после создания
// и никогда не удаляется.
type Product struct {
	ID       int64
	Name     string
	Price    int64 // Цена хранится в минорных единицах (1/100)
	Category Category
}

func NewProduct(id int64, name string, price int64, category Category) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
	}
}

// UnitPrice возвращает цену единицы через категорийный хук.
func (p *Product) UnitPrice() int64 {
	return p.Category.UnitPrice(p.Price)
}
