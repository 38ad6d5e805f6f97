package domain

// Customer описывает клиента ресторана. Передаётся по значению:
// счёт хранит копию клиента на момент создания, а не живую ссылку.
type Customer struct {
	ID   int64
	Name string
}

func NewCustomer(id int64, name string) Customer {
	return Customer{
		ID:   id,
		Name: name,
	}
}
