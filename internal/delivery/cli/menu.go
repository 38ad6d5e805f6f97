package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	config "github.com/DRSN-tech/restaurant-billing/internal/cfg"
	"github.com/DRSN-tech/restaurant-billing/internal/usecase"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
)

// Menu реализует интерактивное меню биллинга. Весь пользовательский ввод
// (идентификаторы, количества, цены) валидируется здесь, до обращения
// к бизнес-логике: движок счетов рассчитывает на проверенные значения.
type Menu struct {
	billing usecase.Billing
	app     config.AppCfg
	logger  logger.Logger
	in      *bufio.Reader
	out     io.Writer
}

func NewMenu(billing usecase.Billing, app config.AppCfg, logger logger.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		billing: billing,
		app:     app,
		logger:  logger,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run крутит цикл меню до выбора выхода, конца ввода или отмены контекста.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m.clearScreen()
		fmt.Fprintf(m.out, "\t============%s============\n\n", strings.ToUpper(m.app.RestaurantName))
		fmt.Fprintln(m.out, "1. Add Product")
		fmt.Fprintln(m.out, "2. Add Customer")
		fmt.Fprintln(m.out, "3. Generate Invoice")
		fmt.Fprintln(m.out, "4. Show Products")
		fmt.Fprintln(m.out, "5. Show Customers")
		fmt.Fprintln(m.out, "6. Show All Invoices")
		fmt.Fprintln(m.out, "7. Search Invoice")
		fmt.Fprintln(m.out, "8. Exit")

		choice, err := m.promptInt("Choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(m.out, "Invalid option!")
			continue
		}

		switch choice {
		case 1:
			m.addProduct(ctx)
		case 2:
			m.addCustomer(ctx)
		case 3:
			m.generateInvoice(ctx)
		case 4:
			m.showProducts(ctx)
		case 5:
			m.showCustomers(ctx)
		case 6:
			m.showAllInvoices(ctx)
		case 7:
			m.searchInvoice(ctx)
		case 8:
			fmt.Fprintf(m.out, "\n\t\tThank You for Visiting %s :)\n\n", m.app.RestaurantName)
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}

		if err := m.pause(); err != nil {
			return nil
		}
	}
}

func (m *Menu) addProduct(ctx context.Context) {
	kind, err := m.promptInt("Enter product type (1: Food, 2: Beverage): ")
	if err != nil || (kind != 1 && kind != 2) {
		fmt.Fprintln(m.out, "Invalid type!")
		return
	}

	category := "Food"
	if kind == 2 {
		category = "Beverage"
	}

	name, err := m.promptLine("Enter product name: ")
	if err != nil || strings.TrimSpace(name) == "" {
		fmt.Fprintln(m.out, "Invalid name!")
		return
	}

	priceStr, err := m.promptLine("Enter price: ")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid price!")
		return
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid price: %v\n", err)
		return
	}

	if _, err := m.billing.AddProduct(ctx, &usecase.AddProductReq{
		Name:     name,
		Category: category,
		Price:    priceCents,
	}); err != nil {
		m.logger.Errorf(err, "failed to add product")
		fmt.Fprintln(m.out, "Failed to add product!")
		return
	}

	fmt.Fprintln(m.out, "Product added!")
}

func (m *Menu) addCustomer(ctx context.Context) {
	name, err := m.promptLine("Enter customer name: ")
	if err != nil || strings.TrimSpace(name) == "" {
		fmt.Fprintln(m.out, "Invalid name!")
		return
	}

	if _, err := m.billing.AddCustomer(ctx, &usecase.AddCustomerReq{Name: name}); err != nil {
		m.logger.Errorf(err, "failed to add customer")
		fmt.Fprintln(m.out, "Failed to add customer!")
		return
	}

	fmt.Fprintln(m.out, "Customer added!")
}

// generateInvoice собирает счёт позиция за позицией, показывает чек
// и сохраняет счёт только после подтверждения пользователем.
func (m *Menu) generateInvoice(ctx context.Context) {
	custName, err := m.promptLine("Enter customer name: ")
	if err != nil {
		return
	}

	if _, err := m.billing.FindCustomer(ctx, custName); err != nil {
		fmt.Fprintln(m.out, "Customer not found! Please add customer first.")
		return
	}

	n, err := m.promptInt("Enter number of items: ")
	if err != nil || n < 1 {
		fmt.Fprintln(m.out, "Invalid number of items!")
		return
	}

	req := &usecase.CreateInvoiceReq{CustomerName: custName}
	for i := 0; i < n; i++ {
		fmt.Fprintf(m.out, "\nItem %d:\n", i+1)

		prodID, err := m.promptInt("Enter product ID (0 to list products): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(m.out, "Invalid product ID!")
			i--
			continue
		}

		if prodID == 0 {
			m.showProducts(ctx)
			prodID, err = m.promptInt("Enter product ID: ")
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				fmt.Fprintln(m.out, "Invalid product ID!")
				i--
				continue
			}
		}

		if _, err := m.billing.FindProduct(ctx, int64(prodID)); err != nil {
			fmt.Fprintln(m.out, "Product not found!")
			i--
			continue
		}

		qty, err := m.promptInt("Enter quantity: ")
		if err != nil || qty <= 0 {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(m.out, "Invalid quantity!")
			i--
			continue
		}

		req.Lines = append(req.Lines, usecase.InvoiceLine{ProductID: int64(prodID), Quantity: qty})
	}

	preview, err := m.billing.PreviewInvoice(ctx, req)
	if err != nil {
		m.logger.Errorf(err, "failed to build invoice")
		fmt.Fprintln(m.out, "Failed to build invoice!")
		return
	}

	fmt.Fprint(m.out, usecase.RenderReceipt(preview, m.app.RestaurantName, m.app.CurrencySymbol))

	answer, err := m.promptLine("Save invoice? [y/n]: ")
	if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return
	}

	if _, err := m.billing.CreateInvoice(ctx, req); err != nil {
		m.logger.Errorf(err, "failed to save invoice")
		fmt.Fprintln(m.out, "Failed to save invoice!")
		return
	}

	fmt.Fprintln(m.out, "Invoice saved!")
}

func (m *Menu) showProducts(ctx context.Context) {
	products, err := m.billing.ListProducts(ctx)
	if err != nil {
		m.logger.Errorf(err, "failed to list products")
		return
	}

	fmt.Fprintln(m.out, "\nProducts:")
	for _, p := range products {
		fmt.Fprintf(m.out, "ID: %d, %s, %s%s (%s)\n", p.ID, p.Name, m.app.CurrencySymbol, p.Price.StringFixed(2), p.Category)
	}
}

func (m *Menu) showCustomers(ctx context.Context) {
	customers, err := m.billing.ListCustomers(ctx)
	if err != nil {
		m.logger.Errorf(err, "failed to list customers")
		return
	}

	fmt.Fprintln(m.out, "\nCustomers:")
	for _, c := range customers {
		fmt.Fprintf(m.out, "ID: %d, Name: %s\n", c.ID, c.Name)
	}
}

func (m *Menu) showAllInvoices(ctx context.Context) {
	invoices, err := m.billing.AllInvoices(ctx)
	if err != nil {
		m.logger.Errorf(err, "failed to list invoices")
		return
	}

	fmt.Fprintln(m.out, "\nAll Invoices:")
	if len(invoices) == 0 {
		fmt.Fprintln(m.out, "No invoices found.")
		return
	}

	for _, view := range invoices {
		fmt.Fprint(m.out, usecase.RenderReceipt(view, m.app.RestaurantName, m.app.CurrencySymbol))
	}
}

func (m *Menu) searchInvoice(ctx context.Context) {
	name, err := m.promptLine("Enter customer name: ")
	if err != nil {
		return
	}

	invoices, err := m.billing.SearchInvoices(ctx, name)
	if err != nil {
		m.logger.Errorf(err, "failed to search invoices")
		return
	}

	if len(invoices) == 0 {
		fmt.Fprintf(m.out, "No invoices found for %s.\n", name)
		return
	}

	for _, view := range invoices {
		fmt.Fprint(m.out, usecase.RenderReceipt(view, m.app.RestaurantName, m.app.CurrencySymbol))
	}
}

func (m *Menu) promptLine(label string) (string, error) {
	fmt.Fprint(m.out, label)

	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	line, err := m.promptLine(label)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(line))
}

func (m *Menu) pause() error {
	_, err := m.promptLine("Press Enter to continue...")
	return err
}

func (m *Menu) clearScreen() {
	fmt.Fprint(m.out, "\033[2J\033[H")
}
