package quote

import (
	"reflect"
	"testing"
)

func TestLabelFor(t *testing.T) {
	cases := []struct {
		dict, code, want string
	}{
		{DictMaterial, "vinyl", "ПВХ (Винил)"},
		{DictMaterial, "aluminum", "Алюминий"},
		{DictMaterial, "wooden", "Дерево"},
		{DictMaterial, "fiberglass", "Стекловолокно"},
		{DictMaterial, "composite", "Композитный материал"},
		{DictWindowType, "standard", "Стандартное"},
		{DictWindowType, "bay-window", "Эркерное"},
		{DictWindowType, "picture-window", "Панорамное"},
		{DictGlazing, "low-e", "Энергосберегающее"},
		{DictGlazing, "triple", "Тройное"},
		{DictFeature, "uv-protection", "UV-защита"},
		{DictFeature, "security-glass", "Ударопрочное стекло"},
		{DictStatus, "new", "Новая"},
		{DictStatus, "rejected", "Отклонена"},
	}
	for _, tc := range cases {
		if got := LabelFor(tc.dict, tc.code); got != tc.want {
			t.Errorf("LabelFor(%s, %s) = %q, want %q", tc.dict, tc.code, got, tc.want)
		}
	}
}

func TestLabelForPassthrough(t *testing.T) {
	if got := LabelFor(DictMaterial, "unknown-code"); got != "unknown-code" {
		t.Fatalf("expected passthrough for unknown code, got %q", got)
	}
	if got := LabelFor("no-such-dictionary", "vinyl"); got != "vinyl" {
		t.Fatalf("expected passthrough for unknown dictionary, got %q", got)
	}
	if got := LabelFor(DictGlazing, ""); got != "" {
		t.Fatalf("expected empty code to pass through, got %q", got)
	}
}

func TestFeatureLabels(t *testing.T) {
	got := FeatureLabels([]string{"soundproof", "tinted", "custom-extra"})
	want := []string{"Шумоизоляция", "Тонировка", "custom-extra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FeatureLabels = %v, want %v", got, want)
	}
}
