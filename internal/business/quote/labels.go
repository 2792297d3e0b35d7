package quote

// Dictionary names accepted by LabelFor.
const (
	DictWindowType = "windowType"
	DictMaterial   = "material"
	DictGlazing    = "glazing"
	DictFeature    = "feature"
	DictStatus     = "status"
)

// Display strings for the enumeration codes stored in calculator snapshots.
// The codes and translations must stay byte-identical to what existing
// documents already contain.
var (
	windowTypeLabels = map[string]string{
		"standard":       "Стандартное",
		"casement":       "Створчатое",
		"sliding":        "Раздвижное",
		"awning":         "Откидное",
		"bay-window":     "Эркерное",
		"picture-window": "Панорамное",
	}

	materialLabels = map[string]string{
		"vinyl":      "ПВХ (Винил)",
		"aluminum":   "Алюминий",
		"wooden":     "Дерево",
		"fiberglass": "Стекловолокно",
		"composite":  "Композитный материал",
	}

	glazingLabels = map[string]string{
		"single": "Одинарное",
		"double": "Двойное",
		"triple": "Тройное",
		"low-e":  "Энергосберегающее",
	}

	featureLabels = map[string]string{
		"uv-protection":  "UV-защита",
		"soundproof":     "Шумоизоляция",
		"security-glass": "Ударопрочное стекло",
		"tinted":         "Тонировка",
	}

	statusLabels = map[string]string{
		"new":        "Новая",
		"processing": "В обработке",
		"completed":  "Завершена",
		"rejected":   "Отклонена",
	}

	dictionaries = map[string]map[string]string{
		DictWindowType: windowTypeLabels,
		DictMaterial:   materialLabels,
		DictGlazing:    glazingLabels,
		DictFeature:    featureLabels,
		DictStatus:     statusLabels,
	}
)

// LabelFor translates an enumeration code into its display string. Unknown
// codes and unknown dictionaries pass through unchanged, so free-form values
// (custom categories, legacy codes) still render.
func LabelFor(dict, code string) string {
	if m, ok := dictionaries[dict]; ok {
		if label, ok := m[code]; ok {
			return label
		}
	}
	return code
}

// FeatureLabels translates a feature code set, preserving order.
func FeatureLabels(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = LabelFor(DictFeature, c)
	}
	return out
}
