package mock

import (
	"context"

	"github.com/fwojciec/invoicefmt"
)

var _ invoicefmt.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of invoicefmt.SettingsService.
type SettingsService struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, key, value string) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *SettingsService) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}
