package domain

// InvoiceItem описывает строку счёта: продукт по идентификатору и количество.
// Продукт разрешается через каталог в момент расчёта или отображения.
type InvoiceItem struct {
	ProductID int64
	Quantity  int
}

// Invoice описывает счёт. Данные клиента зафиксированы копией на момент
// создания, поэтому последующие правки клиента счёт не меняют.
type Invoice struct {
	ID       int64
	Customer Customer
	Date     string // формат YYYY-MM-DD
	Items    []InvoiceItem
}

func NewInvoice(id int64, customer Customer, date string) *Invoice {
	return &Invoice{
		ID:       id,
		Customer: customer,
		Date:     date,
	}
}

// SetItem добавляет строку счёта или заменяет количество существующей строки
// того же продукта. Порядок строк соответствует порядку добавления.
// Количество должно быть валидировано вызывающей стороной (>= 1).
func (i *Invoice) SetItem(productID int64, quantity int) {
	for idx := range i.Items {
		if i.Items[idx].ProductID == productID {
			i.Items[idx].Quantity = quantity
			return
		}
	}

	i.Items = append(i.Items, InvoiceItem{ProductID: productID, Quantity: quantity})
}
