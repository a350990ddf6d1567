package closer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseOrderIsLIFO(t *testing.T) {
	c := New()

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		c.Add(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCloseAggregatesErrors(t *testing.T) {
	c := New()

	c.Add("ok", func(context.Context) error { return nil })
	c.Add("db", func(context.Context) error { return fmt.Errorf("db close failed") })
	c.Add("cache", func(context.Context) error { return fmt.Errorf("cache close failed") })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db: db close failed")
	assert.Contains(t, err.Error(), "cache: cache close failed")
}

func TestCloseRunsOnce(t *testing.T) {
	c := New()

	var calls int
	c.Add("resource", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseAbortsOnCanceledContext(t *testing.T) {
	c := New()

	var called bool
	c.Add("resource", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.False(t, called)
}
