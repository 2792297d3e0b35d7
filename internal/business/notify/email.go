package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mashtab-ss/okna-backend/internal/business/quote"
	"github.com/mashtab-ss/okna-backend/pkg/model"
)

var emailTmpl = template.Must(template.New("request-email").Parse(`<h2>Новая заявка</h2>
<p><strong>ID:</strong> {{.ID}}</p>
<p><strong>Имя:</strong> {{.Name}}</p>
<p><strong>Телефон:</strong> {{.Phone}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Сообщение:</strong> {{.Message}}</p>
<p><strong>Дата:</strong> {{.Date}}</p>
<p><strong>Статус:</strong> {{.Status}}</p>
{{if .Calculator}}<h3>Данные калькулятора</h3>
<p><strong>Выбранный товар:</strong> {{.Calculator.Product}}</p>
<p><strong>Размер:</strong> {{.Calculator.Size}}</p>
<p><strong>Площадь:</strong> {{.Calculator.Area}}</p>
<p><strong>Тип окна:</strong> {{.Calculator.WindowType}}</p>
<p><strong>Материал:</strong> {{.Calculator.Material}}</p>
<p><strong>Остекление:</strong> {{.Calculator.Glazing}}</p>
<p><strong>Доп. функции:</strong> {{.Calculator.Features}}</p>
<p><strong>Количество:</strong> {{.Calculator.Quantity}}</p>
{{else}}<p>Данные калькулятора отсутствуют</p>
{{end}}`))

type calculatorView struct {
	Product    string
	Size       string
	Area       string
	WindowType string
	Material   string
	Glazing    string
	Features   string
	Quantity   string
}

type emailView struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	Message    string
	Date       string
	Status     string
	Calculator *calculatorView
}

// RenderEmail produces the notification subject and HTML body for a created
// request, translating all enumeration codes through the label dictionaries.
func RenderEmail(req model.CustomerRequest) (subject, html string, err error) {
	subject = fmt.Sprintf("Новая заявка #%s от %s", req.ID, req.Name)

	view := emailView{
		ID:      req.ID,
		Name:    req.Name,
		Phone:   orDash(req.Phone),
		Email:   orDash(req.Email),
		Message: orDash(req.Message),
		Date:    formatDate(req.Date),
		Status:  quote.LabelFor(quote.DictStatus, req.Status),
	}
	if cd := req.CalculatorData; cd != nil {
		calc := &calculatorView{
			Product:    "-",
			Size:       "-",
			Area:       "-",
			WindowType: "-",
			Material:   "-",
			Glazing:    "-",
			Features:   "-",
			Quantity:   "-",
		}
		if cd.SelectedProduct != nil && cd.SelectedProduct.Name != "" {
			calc.Product = cd.SelectedProduct.Name
		}
		if cd.Width > 0 && cd.Height > 0 {
			calc.Size = fmt.Sprintf("%.0f × %.0f см", cd.Width, cd.Height)
		}
		if cd.Area != "" {
			calc.Area = cd.Area + " м²"
		}
		if cd.WindowType != "" {
			calc.WindowType = quote.LabelFor(quote.DictWindowType, cd.WindowType)
		}
		if cd.Material != "" {
			calc.Material = quote.LabelFor(quote.DictMaterial, cd.Material)
		}
		if cd.GlazingType != "" {
			calc.Glazing = quote.LabelFor(quote.DictGlazing, cd.GlazingType)
		}
		if len(cd.AdditionalFeatures) > 0 {
			calc.Features = strings.Join(quote.FeatureLabels(cd.AdditionalFeatures), ", ")
		}
		if cd.Quantity > 0 {
			calc.Quantity = fmt.Sprintf("%d шт.", cd.Quantity)
		}
		view.Calculator = calc
	}

	var b strings.Builder
	if err := emailTmpl.Execute(&b, view); err != nil {
		return "", "", fmt.Errorf("execute email template: %w", err)
	}
	return subject, b.String(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatDate renders a stored RFC3339 date the way the admin panel shows it.
// Unparseable values pass through unchanged.
func formatDate(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006, 15:04")
}
