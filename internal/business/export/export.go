// Package export renders the admin request list as an xlsx workbook, one row
// per request with all enumeration codes translated to their display labels.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mashtab-ss/okna-backend/internal/business/quote"
	"github.com/mashtab-ss/okna-backend/pkg/model"
)

// SheetName is the single sheet holding the exported rows.
const SheetName = "Заявки"

var headers = []string{
	"ID",
	"Клиент",
	"Email",
	"Телефон",
	"Сообщение",
	"Дата",
	"Статус",
	"Выбранный товар",
	"Размер",
	"Площадь",
	"Тип окна",
	"Материал",
	"Остекление",
	"Доп. функции",
	"Количество",
}

// Filename returns the download name for an export generated at now, stamped
// with the current date.
func Filename(now time.Time) string {
	return fmt.Sprintf("Заявки_%s.xlsx", now.Format("2006-01-02"))
}

// Workbook builds an xlsx file from the given (already filtered and sorted)
// requests. The caller owns closing the returned file.
func Workbook(requests []model.CustomerRequest) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}
	for i, req := range requests {
		if err := writeRow(f, i+2, row(req)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func row(req model.CustomerRequest) []string {
	cells := []string{
		req.ID,
		req.Name,
		req.Email,
		req.Phone,
		req.Message,
		formatDate(req.Date),
		quote.LabelFor(quote.DictStatus, req.Status),
	}

	cd := req.CalculatorData
	if cd == nil {
		for len(cells) < len(headers) {
			cells = append(cells, "-")
		}
		return cells
	}

	product := "-"
	if cd.SelectedProduct != nil && cd.SelectedProduct.Name != "" {
		product = cd.SelectedProduct.Name
	}
	size := "-"
	if cd.Width > 0 && cd.Height > 0 {
		size = fmt.Sprintf("%.0f × %.0f см", cd.Width, cd.Height)
	}
	area := "-"
	if cd.Area != "" {
		area = cd.Area + " м²"
	}
	features := "-"
	if len(cd.AdditionalFeatures) > 0 {
		features = strings.Join(quote.FeatureLabels(cd.AdditionalFeatures), ", ")
	}
	quantity := "-"
	if cd.Quantity > 0 {
		quantity = fmt.Sprintf("%d шт.", cd.Quantity)
	}

	return append(cells,
		product,
		size,
		area,
		quote.LabelFor(quote.DictWindowType, cd.WindowType),
		quote.LabelFor(quote.DictMaterial, cd.Material),
		quote.LabelFor(quote.DictGlazing, cd.GlazingType),
		features,
		quantity,
	)
}

func formatDate(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006, 15:04")
}
