package blob

import (
	"context"
	"time"
)

// WithLatency wraps a store so every Get and Set waits for a fixed
// delay before taking effect, approximating the storage latency the
// interactive flows were written against. A zero delay returns the
// store unchanged.
func WithLatency(s Store, delay time.Duration) Store {
	if delay <= 0 {
		return s
	}
	return &delayed{inner: s, delay: delay}
}

type delayed struct {
	inner Store
	delay time.Duration
}

func (d *delayed) wait(ctx context.Context) error {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *delayed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := d.wait(ctx); err != nil {
		return nil, false, err
	}
	return d.inner.Get(ctx, key)
}

func (d *delayed) Set(ctx context.Context, key string, value []byte) error {
	if err := d.wait(ctx); err != nil {
		return err
	}
	return d.inner.Set(ctx, key, value)
}

func (d *delayed) Delete(ctx context.Context, key string) error {
	return d.inner.Delete(ctx, key)
}

func (d *delayed) Close() error { return d.inner.Close() }
