// Package closer combines io.Closer values so that layered readers, such
// as a decompressor over a file, can be released with a single Close.
package closer

import (
	"io"
	"sync"

	"github.com/amp-labs/amp-approx/errors"
)

type customCloser struct {
	closeFn func() error
}

// CustomCloser creates an io.Closer from a cleanup function. It returns nil
// if closeFn is nil.
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return &customCloser{closeFn: closeFn}
}

func (c *customCloser) Close() error {
	return c.closeFn()
}

// Closer closes a list of io.Closer values in the order they were added.
// Nil entries are skipped.
//
//	multi := closer.NewCloser(decoder, file)
//	defer multi.Close()
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a Closer with zero or more initial closers.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add appends closer. Add is not safe for concurrent use.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close closes every closer, even after a failure, and returns all errors
// joined.
func (c *Closer) Close() error {
	var errs errors.Collection

	for _, closer := range c.closers {
		if closer != nil {
			errs.Add(closer.Close())
		}
	}

	return errs.GetError()
}

type closeOnce struct {
	closer io.Closer
	once   sync.Once
	err    error
}

// CloseOnce wraps closer so that only the first Close reaches it. Later
// calls return the first result. It returns nil if closer is nil.
func CloseOnce(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	return &closeOnce{closer: closer}
}

func (c *closeOnce) Close() error {
	c.once.Do(func() {
		c.err = c.closer.Close()
	})

	return c.err
}

type readCloser struct {
	io.Reader
	io.Closer
}

// ReadCloser pairs reader with the closers that release it. Closing the
// result closes every closer once, in order.
func ReadCloser(reader io.Reader, closers ...io.Closer) io.ReadCloser {
	return readCloser{
		Reader: reader,
		Closer: CloseOnce(NewCloser(closers...)),
	}
}
