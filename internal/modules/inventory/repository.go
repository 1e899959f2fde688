package inventory

import "context"

// Repository persists the configuration and the product list as two whole documents.
// Loads never fail: anything missing or unreadable comes back as the default.
type Repository interface {
	LoadConfig(ctx context.Context) Configuration
	SaveConfig(ctx context.Context, cfg Configuration) error
	LoadProducts(ctx context.Context) []Product
	SaveProducts(ctx context.Context, products []Product) error
}
