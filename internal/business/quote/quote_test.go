package quote

import (
	"reflect"
	"testing"

	"github.com/mashtab-ss/okna-backend/pkg/model"
)

func TestNewDefaults(t *testing.T) {
	cfg := New(nil)
	if cfg.Width != 100 || cfg.Height != 100 {
		t.Fatalf("expected 100x100 default, got %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.WindowType != "standard" || cfg.GlazingType != "double" {
		t.Fatalf("unexpected type defaults: %s/%s", cfg.WindowType, cfg.GlazingType)
	}
	if cfg.Material != "vinyl" {
		t.Fatalf("expected vinyl default material, got %s", cfg.Material)
	}
	if cfg.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", cfg.Quantity)
	}
	if len(cfg.AdditionalFeatures) != 0 {
		t.Fatalf("expected no features, got %v", cfg.AdditionalFeatures)
	}
	if cfg.SelectedProduct != nil {
		t.Fatalf("expected no selected product")
	}
}

func TestNewWithLinkedProduct(t *testing.T) {
	product := model.Product{ID: "p1", Name: "Wooden Frame Window", Category: "wooden"}
	ref := product.Ref()
	cfg := New(&ref)
	if cfg.Material != "wooden" {
		t.Fatalf("expected material from product category, got %s", cfg.Material)
	}
	if cfg.SelectedProduct == nil || cfg.SelectedProduct.ID != "p1" {
		t.Fatalf("expected selected product kept, got %+v", cfg.SelectedProduct)
	}
}

func TestArea(t *testing.T) {
	cases := []struct {
		width, height float64
		want          string
	}{
		{150, 180, "2.70"},
		{100, 100, "1.00"},
		{30, 30, "0.09"},
		{300, 300, "9.00"},
		{55, 77, "0.42"},
		{250, 25, "0.63"}, // exact .5 tie rounds away from zero
		{1, 1, "0.00"},
	}
	for _, tc := range cases {
		if got := Area(tc.width, tc.height); got != tc.want {
			t.Errorf("Area(%v, %v) = %q, want %q", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestAreaNonPositiveClamps(t *testing.T) {
	for _, tc := range [][2]float64{{0, 100}, {100, 0}, {-50, 100}, {-1, -1}} {
		if got := Area(tc[0], tc[1]); got != "0.00" {
			t.Errorf("Area(%v, %v) = %q, want \"0.00\"", tc[0], tc[1], got)
		}
	}
}

func TestToggleFeatureRoundTrip(t *testing.T) {
	cfg := New(nil)
	once := cfg.ToggleFeature("uv-protection")
	if !once.HasFeature("uv-protection") {
		t.Fatalf("expected feature added")
	}
	twice := once.ToggleFeature("uv-protection")
	if len(twice.AdditionalFeatures) != 0 {
		t.Fatalf("toggle twice should restore original, got %v", twice.AdditionalFeatures)
	}
}

func TestToggleFeatureNoDuplicates(t *testing.T) {
	cfg := New(nil).
		ToggleFeature("soundproof").
		ToggleFeature("tinted").
		ToggleFeature("soundproof").
		ToggleFeature("soundproof")
	count := 0
	for _, f := range cfg.AdditionalFeatures {
		if f == "soundproof" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected soundproof exactly once, got %d in %v", count, cfg.AdditionalFeatures)
	}
}

func TestNormalizeFeatures(t *testing.T) {
	got := NormalizeFeatures([]string{"uv-protection", "soundproof", "uv-protection", "tinted", "soundproof"})
	want := []string{"uv-protection", "soundproof", "tinted"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeFeatures = %v, want %v", got, want)
	}
	if out := NormalizeFeatures(nil); out != nil {
		t.Fatalf("expected nil passthrough, got %v", out)
	}
}

func TestToggleFeatureDoesNotMutate(t *testing.T) {
	cfg := New(nil).ToggleFeature("tinted")
	_ = cfg.ToggleFeature("soundproof")
	if !reflect.DeepEqual(cfg.AdditionalFeatures, []string{"tinted"}) {
		t.Fatalf("original mutated: %v", cfg.AdditionalFeatures)
	}
}

func TestWithQuantity(t *testing.T) {
	cfg := New(nil)
	for _, n := range []int{0, -1, -100} {
		if got := cfg.WithQuantity(n).Quantity; got != 1 {
			t.Errorf("WithQuantity(%d) = %d, want 1", n, got)
		}
	}
	if got := cfg.WithQuantity(7).Quantity; got != 7 {
		t.Errorf("WithQuantity(7) = %d, want 7", got)
	}
	if cfg.Quantity != 1 {
		t.Fatalf("original mutated: %d", cfg.Quantity)
	}
}

func TestSnapshot(t *testing.T) {
	cfg := New(&model.SelectedProduct{ID: "p2", Name: "Aluminum Sliding Window", Category: "aluminum"})
	cfg.Width = 150
	cfg.Height = 180
	cfg = cfg.ToggleFeature("uv-protection").WithQuantity(2)

	snap := cfg.Snapshot()
	if snap.Area != "2.70" {
		t.Fatalf("expected derived area 2.70, got %s", snap.Area)
	}
	if snap.Material != "aluminum" || snap.Quantity != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.SelectedProduct == nil || snap.SelectedProduct.Name != "Aluminum Sliding Window" {
		t.Fatalf("expected selected product in snapshot, got %+v", snap.SelectedProduct)
	}

	// Snapshot must be detached from the configuration.
	snap.AdditionalFeatures[0] = "changed"
	if cfg.AdditionalFeatures[0] != "uv-protection" {
		t.Fatalf("snapshot shares feature slice with config")
	}
}
