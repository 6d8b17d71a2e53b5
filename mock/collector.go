package mock

import "github.com/mstanek/scout"

var _ scout.SignalCollector = (*SignalCollector)(nil)

// SignalCollector is a mock implementation of scout.SignalCollector.
type SignalCollector struct {
	CollectFn func(html string) (*scout.PageSignal, error)
}

func (c *SignalCollector) Collect(html string) (*scout.PageSignal, error) {
	return c.CollectFn(html)
}

var _ scout.ChannelReader = (*ChannelReader)(nil)

// ChannelReader is a mock implementation of scout.ChannelReader.
type ChannelReader struct {
	ReadChannelFn func(html string) (*scout.Channel, error)
}

func (r *ChannelReader) ReadChannel(html string) (*scout.Channel, error) {
	return r.ReadChannelFn(html)
}
