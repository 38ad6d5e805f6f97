package usecase

import (
	"fmt"
	"strings"
)

const receiptDivider = "---------------------------------------"

// RenderReceipt форматирует счёт в печатный чек фиксированной ширины:
// шапка, строки позиций (имя, количество, сумма строки), затем подытог,
// скидка и общий итог. Денежные значения показываются с двумя знаками
// после запятой; точные значения хранятся в view.Totals.
func RenderReceipt(view *InvoiceView, restaurant, currency string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n\t    %s\n", restaurant))
	sb.WriteString(fmt.Sprintf("\t   %s\n", strings.Repeat("-", len(restaurant)+2)))
	sb.WriteString(fmt.Sprintf("Date: %s\n", view.Date))
	sb.WriteString(fmt.Sprintf("Invoice To: %s\n", view.CustomerName))
	sb.WriteString(receiptDivider + "\n")
	sb.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Items", "Qty", "Total"))
	sb.WriteString(receiptDivider + "\n\n")

	for _, line := range view.Lines {
		sb.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", line.Name, line.Quantity, line.LineTotal.StringFixed(2)))
	}

	sb.WriteString("\n" + receiptDivider + "\n")
	sb.WriteString(fmt.Sprintf("%-29s%s%s\n", "Sub Total", currency, view.Totals.Subtotal.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-29s%s%s\n", "Discount", currency, view.Totals.Discount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-29s%s\n", "", "-------"))
	sb.WriteString(fmt.Sprintf("%-29s%s%s\n", "Grand Total", currency, view.Totals.GrandTotal.StringFixed(2)))
	sb.WriteString(receiptDivider + "\n")

	return sb.String()
}
