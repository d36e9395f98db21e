package closer_test

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/amp-labs/amp-approx/closer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) closer(name string, err error) io.Closer {
	return closer.CustomCloser(func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.order = append(r.order, name)

		return err
	})
}

func TestCustomCloser(t *testing.T) {
	t.Parallel()

	assert.Nil(t, closer.CustomCloser(nil))

	called := 0
	c := closer.CustomCloser(func() error {
		called++

		return errFirst
	})

	require.ErrorIs(t, c.Close(), errFirst)
	require.ErrorIs(t, c.Close(), errFirst)
	assert.Equal(t, 2, called)
}

func TestCloser_Order(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	multi := closer.NewCloser(rec.closer("decoder", nil), nil)
	multi.Add(rec.closer("file", nil))

	require.NoError(t, multi.Close())
	assert.Equal(t, []string{"decoder", "file"}, rec.order)
}

func TestCloser_Errors(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	multi := closer.NewCloser(
		rec.closer("a", errFirst),
		rec.closer("b", nil),
		rec.closer("c", errSecond),
	)

	err := multi.Close()
	require.ErrorIs(t, err, errFirst)
	require.ErrorIs(t, err, errSecond)
	assert.Equal(t, []string{"a", "b", "c"}, rec.order)

	require.NoError(t, closer.NewCloser().Close())
}

func TestCloseOnce(t *testing.T) {
	t.Parallel()

	assert.Nil(t, closer.CloseOnce(nil))

	rec := &recorder{}
	once := closer.CloseOnce(rec.closer("x", errFirst))

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.ErrorIs(t, once.Close(), errFirst)
		}()
	}

	wg.Wait()
	assert.Equal(t, []string{"x"}, rec.order)
}

func TestReadCloser(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	rc := closer.ReadCloser(strings.NewReader("1 2 3"), rec.closer("decoder", nil), rec.closer("file", nil))

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3", string(data))

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())
	assert.Equal(t, []string{"decoder", "file"}, rec.order)
}
