package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Closer обеспечивает однократное закрытие зарегистрированных ресурсов.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []Func
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// New создает новый экземпляр Closer.
func New() *Closer {
	return &Closer{}
}

// Add добавляет функцию в список закрытия
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно запускает закрытие всех зарегистрированных функций (LIFO).
// Ошибки отдельных функций накапливаются и не прерывают обход; отмена контекста
// прерывает обход, оставшиеся функции не вызываются.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			if ctx.Err() != nil {
				msgs = append(msgs, fmt.Sprintf("[!] interrupted with %d/%d func(s) remaining: %v", i+1, len(funcs), ctx.Err()))
				break
			}

			if ferr := funcs[i](ctx); ferr != nil {
				msgs = append(msgs, fmt.Sprintf("[!] %v", ferr))
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}
