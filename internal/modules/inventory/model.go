package inventory

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultStoreName = "PC Store"
	DefaultCurrency  = "$"
	DefaultTaxRate   = 18
	FallbackCategory = "General"
)

// DefaultCategories is the category list of a fresh store.
var DefaultCategories = []string{"Desktop", "Laptop", "Components", "Peripherals"}

// Configuration is the singleton store settings record.
type Configuration struct {
	StoreName  string   `json:"storeName" yaml:"storeName"`
	StoreEmail string   `json:"storeEmail" yaml:"storeEmail"`
	Currency   string   `json:"currency" yaml:"currency"`
	TaxRate    Number   `json:"taxRate" yaml:"taxRate"`
	Categories []string `json:"categories" yaml:"categories"`
}

// DefaultConfiguration returns a fresh copy of the default settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		StoreName:  DefaultStoreName,
		StoreEmail: "",
		Currency:   DefaultCurrency,
		TaxRate:    DefaultTaxRate,
		Categories: append([]string(nil), DefaultCategories...),
	}
}

// Product is one inventory line. Products are identified by their position in
// the list; ID only detects rows that moved since a page was rendered.
type Product struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	SKU      string `json:"sku" yaml:"sku"`
	Category string `json:"category" yaml:"category"`
	Price    Number `json:"price" yaml:"price"`
	Stock    Number `json:"stock" yaml:"stock"`
}

// Number is a float64 that decodes leniently: numeric strings are parsed,
// true is 1, and anything else that is not a finite number, including
// literals out of float64 range, becomes 0.
type Number float64

func (n Number) Float() float64 { return float64(n) }

func (n *Number) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		*n = 0
		return nil
	}
	switch x := v.(type) {
	case float64:
		*n = Number(x)
	case string:
		f, ok := ParseNumber(x)
		if !ok {
			f = 0
		}
		*n = Number(f)
	case bool:
		if x {
			*n = 1
		} else {
			*n = 0
		}
	default:
		*n = 0
	}
	return nil
}

// ParseNumber parses a user-entered decimal. Blank, NaN and infinite values are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
