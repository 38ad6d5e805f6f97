package filedb

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/DRSN-tech/restaurant-billing/internal/domain"
	"github.com/DRSN-tech/restaurant-billing/internal/repository/filedb/converter"
	"github.com/DRSN-tech/restaurant-billing/pkg/e"
	"github.com/DRSN-tech/restaurant-billing/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует справочник клиентов поверх текстового файла.
type CustomerRepo struct {
	path   string
	conv   converter.CustomerConverter
	logger logger.Logger

	customers []domain.Customer
	nextID    int64
}

func NewCustomerRepo(path string, conv converter.CustomerConverter, logger logger.Logger) *CustomerRepo {
	return &CustomerRepo{
		path:   path,
		conv:   conv,
		logger: logger,
		nextID: 1,
	}
}

// Add регистрирует клиента под следующим свободным идентификатором.
// Уникальность имени не проверяется.
func (r *CustomerRepo) Add(_ context.Context, name string) (domain.Customer, error) {
	customer := domain.NewCustomer(r.nextID, name)
	r.customers = append(r.customers, customer)
	r.nextID++

	return customer, nil
}

// FindByName возвращает первого клиента с точным совпадением имени
// в порядке добавления.
func (r *CustomerRepo) FindByName(_ context.Context, name string) (domain.Customer, error) {
	for _, c := range r.customers {
		if c.Name == name {
			return c, nil
		}
	}

	return domain.Customer{}, e.ErrCustomerNotFound
}

// All возвращает клиентов в порядке добавления.
func (r *CustomerRepo) All(_ context.Context) ([]domain.Customer, error) {
	return append([]domain.Customer(nil), r.customers...), nil
}

// Load читает файл клиентов. Отсутствующий файл — пустое хранилище.
// Некорректные строки пропускаются с предупреждением.
func (r *CustomerRepo) Load(_ context.Context) error {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		rec, err := r.conv.DecodeLine(line)
		if err != nil {
			r.logger.Warnf("skipping malformed customer record: %v", err)
			continue
		}

		customer := r.conv.ToEntity(rec)
		r.customers = append(r.customers, customer)
		if customer.ID >= r.nextID {
			r.nextID = customer.ID + 1
		}
	}

	if err := scanner.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Save записывает справочник клиентов в файл, по записи на строку.
func (r *CustomerRepo) Save(_ context.Context) error {
	file, err := os.Create(r.path)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrStorageUnavailable))
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, c := range r.customers {
		if _, err := w.WriteString(r.conv.EncodeLine(r.conv.ToModel(c)) + "\n"); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := w.Flush(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
