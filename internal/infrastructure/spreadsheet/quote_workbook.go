// Package spreadsheet renders a single quote as an .xlsx workbook.
package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Orçamento"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// excelize built-in number format "#,##0.00"
	moneyNumFmt = 4
)

var itemHeader = []interface{}{"Serviço", "Categoria", "Qtd", "Unidade", "Valor unitário", "Subtotal"}

// ItemsHeaderRow is the row holding itemHeader; items start right below it.
const ItemsHeaderRow = 11

type workbook struct {
	f     *excelize.File
	bold  int
	money int
}

// QuoteWorkbook builds the workbook for q with the company header on top.
// Item subtotals and totals are printed as stored on the quote.
func QuoteWorkbook(company entities.Company, q entities.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return nil, err
	}
	w := &workbook{f: f, bold: bold, money: money}

	if err := w.write(company, q); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *workbook) write(company entities.Company, q entities.Quote) error {
	contact := strings.Join(nonEmpty(company.Owner, company.Phone, company.Email), " | ")
	rows := map[int][]interface{}{
		1: {company.Name},
		2: {contact},
		3: {company.Address},
		5: {"Orçamento", q.OSNumber, "", "Data", quoting.FormatDate(q)},
		7: {"Cliente", q.Client.Name},
		8: {"Telefone", q.Client.Phone},
		9: {"Documento", q.Client.Document, "", "Endereço", q.Client.Address},
	}
	for row, values := range rows {
		if err := w.setRow(row, values); err != nil {
			return err
		}
	}
	if err := w.f.MergeCell(SheetName, "A1", "F1"); err != nil {
		return err
	}
	for _, cell := range []string{"A1", "A5", "D5", "A7", "A8", "A9", "D9"} {
		if err := w.f.SetCellStyle(SheetName, cell, cell, w.bold); err != nil {
			return err
		}
	}

	if err := w.setRow(ItemsHeaderRow, itemHeader); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(SheetName, "A11", "F11", w.bold); err != nil {
		return err
	}

	row := ItemsHeaderRow + 1
	for _, it := range q.Items {
		values := []interface{}{it.ServiceName, it.Category, it.Qty, it.Unit, it.UnitPrice, it.Subtotal}
		if err := w.setRow(row, values); err != nil {
			return err
		}
		if err := w.moneyCells(fmt.Sprintf("E%d", row), fmt.Sprintf("F%d", row)); err != nil {
			return err
		}
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", q.Subtotal},
		{"Desconto", quoting.DiscountAmount(q.Subtotal, q.Discount, q.DiscountType)},
		{"Taxas", q.Taxes},
		{"Deslocamento", q.TravelFee},
		{"Total", q.Total},
	}
	for _, line := range totals {
		if err := w.setRow(row, []interface{}{"", "", "", "", line.label, line.value}); err != nil {
			return err
		}
		if err := w.moneyCells(fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row)); err != nil {
			return err
		}
		row++
	}
	last := fmt.Sprintf("E%d", row-1)
	if err := w.f.SetCellStyle(SheetName, last, last, w.bold); err != nil {
		return err
	}

	row++
	if obs := strings.TrimSpace(q.Observations); obs != "" {
		if err := w.setRow(row, []interface{}{"Observações", obs}); err != nil {
			return err
		}
		row++
	}
	return w.setRow(row, []interface{}{"Validade", fmt.Sprintf("%d dias", q.Validity)})
}

func (w *workbook) setRow(row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(SheetName, cell, &values)
}

func (w *workbook) moneyCells(from, to string) error {
	return w.f.SetCellStyle(SheetName, from, to, w.money)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
