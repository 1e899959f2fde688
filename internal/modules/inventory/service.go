package inventory

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/georgemunganga/pcstore/internal/platform/errx"
)

var (
	ErrNameRequired = errx.Validation("Please enter a product name")
	ErrInvalidPrice = errx.Validation("Please enter a valid price")
)

// Service defines the inventory actions. Every action reads the current
// documents from the repository; nothing is cached between calls.
type Service interface {
	Snapshot(ctx context.Context) Snapshot

	SaveConfig(ctx context.Context, in ConfigInput) (Configuration, error)
	ResetConfig(ctx context.Context) (Configuration, error)

	AddProduct(ctx context.Context, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, index, id string) (bool, error)
	ClearProducts(ctx context.Context) error
}

// Snapshot is the state read at the start of a render.
type Snapshot struct {
	Config   Configuration
	Products []Product
}

func (s Snapshot) Stats() Stats {
	return ComputeStats(s.Products, s.Config.TaxRate.Float())
}

// ConfigInput holds the configuration form as submitted.
// Categories are newline separated.
type ConfigInput struct {
	StoreName  string `json:"storeName"`
	StoreEmail string `json:"storeEmail"`
	Currency   string `json:"currency"`
	TaxRate    string `json:"taxRate"`
	Categories string `json:"categories"`
}

// ProductInput holds the add-product form as submitted.
type ProductInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	SKU      string `json:"sku"`
	Price    string `json:"price"`
	Stock    string `json:"stock"`
}

type service struct {
	repo Repository
	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Snapshot(ctx context.Context) Snapshot {
	return Snapshot{
		Config:   s.repo.LoadConfig(ctx),
		Products: s.repo.LoadProducts(ctx),
	}
}

func (s *service) SaveConfig(ctx context.Context, in ConfigInput) (Configuration, error) {
	cfg := ConfigFromInput(in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return Configuration{}, errx.WrapStorage(err)
	}
	return cfg, nil
}

func (s *service) ResetConfig(ctx context.Context) (Configuration, error) {
	cfg := DefaultConfiguration()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return Configuration{}, errx.WrapStorage(err)
	}
	return cfg, nil
}

func (s *service) AddProduct(ctx context.Context, in ProductInput) (*Product, error) {
	p, err := ProductFromInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.repo.LoadProducts(ctx)
	products = append(products, *p)
	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return nil, errx.WrapStorage(err)
	}
	return p, nil
}

// DeleteProduct removes the product at position index. An unparseable or
// out-of-range index, or an id that no longer matches that position, is
// ignored and reported as false.
func (s *service) DeleteProduct(ctx context.Context, index, id string) (bool, error) {
	i, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.repo.LoadProducts(ctx)
	if i < 0 || i >= len(products) {
		return false, nil
	}
	if id != "" && products[i].ID != id {
		return false, nil
	}
	products = append(products[:i], products[i+1:]...)
	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return false, errx.WrapStorage(err)
	}
	return true, nil
}

func (s *service) ClearProducts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.SaveProducts(ctx, []Product{}); err != nil {
		return errx.WrapStorage(err)
	}
	return nil
}

// ConfigFromInput applies the load-path defaults field by field.
func ConfigFromInput(in ConfigInput) Configuration {
	taxRate, ok := ParseNumber(in.TaxRate)
	if !ok || taxRate < 0 {
		taxRate = 0
	}
	return Configuration{
		StoreName:  fallback(strings.TrimSpace(in.StoreName), DefaultStoreName),
		StoreEmail: strings.TrimSpace(in.StoreEmail),
		Currency:   fallback(strings.TrimSpace(in.Currency), DefaultCurrency),
		TaxRate:    Number(taxRate),
		Categories: SplitCategories(in.Categories),
	}
}

// SplitCategories splits newline separated categories, dropping blank lines.
// The result is never empty.
func SplitCategories(text string) []string {
	var categories []string
	for _, line := range strings.Split(text, "\n") {
		if c := strings.TrimSpace(line); c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		return []string{FallbackCategory}
	}
	return categories
}

// ProductFromInput validates the add-product form.
func ProductFromInput(in ProductInput) (*Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	price, ok := ParseNumber(in.Price)
	if !ok || price < 0 {
		return nil, ErrInvalidPrice
	}
	stock, ok := ParseNumber(in.Stock)
	if !ok || stock <= 0 {
		stock = 1
	}
	if math.IsInf(price*stock, 0) {
		return nil, ErrInvalidPrice
	}
	return &Product{
		Name:     name,
		SKU:      strings.TrimSpace(in.SKU),
		Category: strings.TrimSpace(in.Category),
		Price:    Number(price),
		Stock:    Number(stock),
	}, nil
}
