package mock

import "github.com/mstanek/scout"

var _ scout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scout.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*scout.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*scout.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ scout.Converter = (*Converter)(nil)

// Converter is a mock implementation of scout.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
