package mock

import "github.com/fwojciec/hnthread"

var _ hnthread.Converter = (*Converter)(nil)

// Converter is a mock implementation of hnthread.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
