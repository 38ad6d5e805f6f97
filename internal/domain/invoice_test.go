package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvoice_SetItem(t *testing.T) {
	inv := NewInvoice(1, NewCustomer(1, "Asha"), "2025-01-15")

	inv.SetItem(1, 2)
	inv.SetItem(6, 1)
	require.Equal(t, []InvoiceItem{{ProductID: 1, Quantity: 2}, {ProductID: 6, Quantity: 1}}, inv.Items)

	// Повторное добавление продукта заменяет количество, не создавая дубль.
	inv.SetItem(1, 5)
	require.Equal(t, []InvoiceItem{{ProductID: 1, Quantity: 5}, {ProductID: 6, Quantity: 1}}, inv.Items)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "Food", want: CategoryFood},
		{input: "Beverage", want: CategoryBeverage},
		{input: "Dessert", wantErr: true},
		{input: "food", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_UnitPrice(t *testing.T) {
	// Ценовой хук пока тождественный для обеих категорий.
	require.Equal(t, int64(26000), CategoryFood.UnitPrice(26000))
	require.Equal(t, int64(22750), CategoryBeverage.UnitPrice(22750))
}
