// Package report renders a computed payroll for people: a plain text listing
// and a one-page PDF sheet.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// Options control amount formatting.
type Options struct {
	// Symbol is appended to amounts in the text listing.
	Symbol string
	// Code is used where the symbol cannot be rendered (PDF core fonts).
	Code  string
	Title string
}

var DefaultOptions = Options{
	Symbol: "₸",
	Code:   "KZT",
	Title:  "Payroll",
}

// FormatAmount rounds to whole units, halves to even, and groups thousands:
// 550000 -> "550,000". Amounts of any size keep every digit.
func FormatAmount(d decimal.Decimal) string {
	digits := d.RoundBank(0).String()
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// WriteText writes one line per employee:
//
//	Alice (Manager): 550,000₸
func WriteText(w io.Writer, p payroll.Payroll, opts Options) error {
	for _, l := range p.Lines {
		_, err := fmt.Fprintf(w, "%s (%s): %s%s\n",
			l.Employee.Name(), l.Employee.Position(), FormatAmount(l.Amount), opts.Symbol)
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePDF writes an A4 table of the payroll with a total row. Text goes
// through the cp1252 core fonts, so characters outside that code page
// (Cyrillic names, the tenge sign) render as dots.
func WritePDF(w io.Writer, p payroll.Payroll, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr(opts.Title))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(10, 8, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 8, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Position", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Pay ("+opts.Code+")", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for i, l := range p.Lines {
		pdf.CellFormat(10, 8, fmt.Sprint(i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 8, tr(l.Employee.Name()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, tr(l.Employee.Position()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, FormatAmount(l.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, FormatAmount(p.Total()), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
