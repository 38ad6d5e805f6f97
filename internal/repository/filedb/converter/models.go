package converter

// ProductRecord представляет строку файла продуктов:
// category,id,name,price.
type ProductRecord struct {
	Category string
	ID       int64
	Name     string
	Price    string // десятичная цена, как в файле
}

// CustomerRecord представляет строку файла клиентов: id,name.
type CustomerRecord struct {
	ID   int64
	Name string
}

// InvoiceHeaderRecord представляет заголовочную строку блока счёта:
// id,customerName,date. Блок завершается строкой-сентинелом END.
type InvoiceHeaderRecord struct {
	ID           int64
	CustomerName string
	Date         string
}

// InvoiceItemRecord представляет строку позиции счёта: productId,quantity.
type InvoiceItemRecord struct {
	ProductID int64
	Quantity  int
}
