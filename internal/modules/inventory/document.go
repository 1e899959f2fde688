package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/georgemunganga/pcstore/internal/modules/storage"
	"github.com/georgemunganga/pcstore/internal/platform/logx"
)

const (
	configDocument   = "config"
	productsDocument = "products"
)

type documentRepository struct {
	store       storage.Store
	configKey   string
	productsKey string
}

// NewDocumentRepository stores both documents in store under cfg's namespace.
func NewDocumentRepository(store storage.Store, cfg storage.Config) Repository {
	return &documentRepository{
		store:       store,
		configKey:   cfg.Key(configDocument),
		productsKey: cfg.Key(productsDocument),
	}
}

func (r *documentRepository) LoadConfig(ctx context.Context) Configuration {
	raw, ok := r.read(ctx, r.configKey)
	if !ok {
		return DefaultConfiguration()
	}
	cfg, err := decodeConfig(raw)
	if err != nil {
		logx.Warn().Err(err).Str("key", r.configKey).Msg("discarding unreadable configuration")
		return DefaultConfiguration()
	}
	return cfg
}

func (r *documentRepository) SaveConfig(ctx context.Context, cfg Configuration) error {
	return r.write(ctx, r.configKey, cfg)
}

func (r *documentRepository) LoadProducts(ctx context.Context) []Product {
	raw, ok := r.read(ctx, r.productsKey)
	if !ok {
		return []Product{}
	}
	products, err := decodeProducts(raw)
	if err != nil {
		logx.Warn().Err(err).Str("key", r.productsKey).Msg("discarding unreadable product list")
		return []Product{}
	}
	return products
}

func (r *documentRepository) SaveProducts(ctx context.Context, products []Product) error {
	if products == nil {
		products = []Product{}
	}
	return r.write(ctx, r.productsKey, products)
}

func (r *documentRepository) read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("document read failed, using default")
		return nil, false
	}
	return raw, true
}

func (r *documentRepository) write(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Put(ctx, key, raw)
}

func decodeConfig(raw []byte) (Configuration, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return Configuration{}, errors.New("configuration is not a JSON object")
	}
	var cfg Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// decodeProducts decodes the list row by row. Rows that are not product
// objects are skipped so one bad entry does not hide the rest.
func decodeProducts(raw []byte) ([]Product, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errors.New("product list is not a JSON array")
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(rows))
	for i, row := range rows {
		row = bytes.TrimSpace(row)
		if len(row) == 0 || row[0] != '{' {
			logx.Warn().Int("row", i).Msg("skipping product that is not an object")
			continue
		}
		var p Product
		if err := json.Unmarshal(row, &p); err != nil {
			logx.Warn().Err(err).Int("row", i).Msg("skipping unreadable product")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
