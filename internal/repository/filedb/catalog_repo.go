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

// CatalogRepo реализует хранилище продуктов меню поверх текстового файла.
// Записи живут в памяти на протяжении запуска; Load и Save — единственные
// операции обмена с диском.
type CatalogRepo struct {
	path   string
	conv   converter.ProductConverter
	logger logger.Logger

	products []*domain.Product
	nextID   int64
}

func NewCatalogRepo(path string, conv converter.ProductConverter, logger logger.Logger) *CatalogRepo {
	return &CatalogRepo{
		path:   path,
		conv:   conv,
		logger: logger,
		nextID: 1,
	}
}

// Add регистрирует продукт под следующим свободным идентификатором.
func (r *CatalogRepo) Add(_ context.Context, name string, priceCents int64, category domain.Category) (*domain.Product, error) {
	product := domain.NewProduct(r.nextID, name, priceCents, category)
	r.products = append(r.products, product)
	r.nextID++

	return product, nil
}

// FindByID ищет продукт линейным проходом по каталогу.
func (r *CatalogRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, e.ErrProductNotFound
}

// All возвращает продукты в порядке добавления.
func (r *CatalogRepo) All(_ context.Context) ([]*domain.Product, error) {
	return append([]*domain.Product(nil), r.products...), nil
}

// Load читает файл продуктов. Отсутствующий файл — чистое пустое хранилище
// (первый запуск). Некорректные записи пропускаются с предупреждением.
// После загрузки счётчик идентификаторов продвигается за максимальный
// загруженный id.
func (r *CatalogRepo) Load(_ context.Context) error {
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
			r.logger.Warnf("skipping malformed product record: %v", err)
			continue
		}

		product, err := r.conv.ToEntity(rec)
		if err != nil {
			r.logger.Warnf("skipping malformed product record: %v", err)
			continue
		}

		r.products = append(r.products, product)
		if product.ID >= r.nextID {
			r.nextID = product.ID + 1
		}
	}

	if err := scanner.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Save записывает каталог в файл, по записи на строку, в порядке каталога.
func (r *CatalogRepo) Save(_ context.Context) error {
	file, err := os.Create(r.path)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrStorageUnavailable))
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, p := range r.products {
		if _, err := w.WriteString(r.conv.EncodeLine(r.conv.ToModel(p)) + "\n"); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := w.Flush(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
