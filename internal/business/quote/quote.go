// Package quote holds the calculator's quote configuration model and its
// derivation rules. All operations are pure: they return a new value and
// never mutate the receiver, so UI consumers can share configurations freely.
package quote

import (
	"fmt"
	"math"

	"github.com/mashtab-ss/okna-backend/pkg/model"
)

// Default configuration values applied by New.
const (
	DefaultWidth      = 100
	DefaultHeight     = 100
	DefaultWindowType = "standard"
	DefaultMaterial   = "vinyl"
	DefaultGlazing    = "double"
)

// Config is one calculator configuration. Width and height are in
// centimeters. AdditionalFeatures is a set: membership matters, order does
// not, and codes never repeat.
type Config struct {
	Width              float64                `json:"width"`
	Height             float64                `json:"height"`
	WindowType         string                 `json:"windowType"`
	Material           string                 `json:"material"`
	GlazingType        string                 `json:"glazingType"`
	AdditionalFeatures []string               `json:"additionalFeatures"`
	Quantity           int                    `json:"quantity"`
	SelectedProduct    *model.SelectedProduct `json:"selectedProduct,omitempty"`
}

// New returns a configuration with the calculator defaults. When a product is
// linked, its category becomes the default material and the reference is kept
// for display.
func New(selected *model.SelectedProduct) Config {
	cfg := Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		WindowType:  DefaultWindowType,
		Material:    DefaultMaterial,
		GlazingType: DefaultGlazing,
		Quantity:    1,
	}
	if selected != nil {
		ref := *selected
		cfg.SelectedProduct = &ref
		if ref.Category != "" {
			cfg.Material = ref.Category
		}
	}
	return cfg
}

// Area converts window dimensions in centimeters to square meters, formatted
// with exactly two fractional digits. Ties round away from zero, the same
// rounding already-stored snapshots were formatted with. Non-positive
// dimensions are clamped to zero, yielding "0.00".
func Area(width, height float64) string {
	if width <= 0 || height <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", math.Round(width*height/100)/100)
}

// Area returns the derived area of this configuration.
func (c Config) Area() string {
	return Area(c.Width, c.Height)
}

// ToggleFeature returns a copy with code removed if present, added if absent.
func (c Config) ToggleFeature(code string) Config {
	out := c.clone()
	features := make([]string, 0, len(out.AdditionalFeatures)+1)
	found := false
	for _, f := range out.AdditionalFeatures {
		if f == code {
			found = true
			continue
		}
		features = append(features, f)
	}
	if !found {
		features = append(features, code)
	}
	out.AdditionalFeatures = features
	return out
}

// NormalizeFeatures drops duplicate codes, keeping first-seen order. The
// feature set is membership-based, so a stored snapshot must never carry the
// same code twice.
func NormalizeFeatures(codes []string) []string {
	if len(codes) == 0 {
		return codes
	}
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// HasFeature reports whether code is currently selected.
func (c Config) HasFeature(code string) bool {
	for _, f := range c.AdditionalFeatures {
		if f == code {
			return true
		}
	}
	return false
}

// WithQuantity returns a copy with the quantity set to n, clamped to a
// minimum of 1.
func (c Config) WithQuantity(n int) Config {
	out := c.clone()
	if n < 1 {
		n = 1
	}
	out.Quantity = n
	return out
}

// Snapshot freezes the configuration, including its derived area, into the
// form embedded in a customer request.
func (c Config) Snapshot() model.CalculatorData {
	data := model.CalculatorData{
		Width:       c.Width,
		Height:      c.Height,
		Area:        c.Area(),
		WindowType:  c.WindowType,
		Material:    c.Material,
		GlazingType: c.GlazingType,
		Quantity:    c.Quantity,
	}
	if len(c.AdditionalFeatures) > 0 {
		data.AdditionalFeatures = append([]string(nil), c.AdditionalFeatures...)
	}
	if c.SelectedProduct != nil {
		ref := *c.SelectedProduct
		data.SelectedProduct = &ref
	}
	return data
}

func (c Config) clone() Config {
	out := c
	out.AdditionalFeatures = append([]string(nil), c.AdditionalFeatures...)
	if c.SelectedProduct != nil {
		ref := *c.SelectedProduct
		out.SelectedProduct = &ref
	}
	return out
}
