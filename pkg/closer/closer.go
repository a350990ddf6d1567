package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer обеспечивает потокобезопасное закрытие ресурсов в порядке LIFO.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []Func
	names []string
}

func New() *Closer {
	return &Closer{}
}

// Add регистрирует функцию закрытия ресурса под заданным именем.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
	c.names = append(c.names, name)
}

// Close закрывает все зарегистрированные ресурсы в обратном порядке.
// Закрытие не прерывается на первой ошибке: ошибки собираются и возвращаются вместе.
// Если контекст отменяется, оставшиеся ресурсы не закрываются.
func (c *Closer) Close(ctx context.Context) error {
	var errs []error
	c.once.Do(func() {
		c.mu.Lock()
		funcs, names := c.funcs, c.names
		c.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				errs = append(errs, fmt.Errorf("%s: %w", names[i], ctx.Err()))
				return
			default:
			}

			if err := funcs[i](ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", names[i], err))
			}
		}
	})

	return errors.Join(errs...)
}
