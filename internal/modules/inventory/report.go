package inventory

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextReport is a plain-text Presenter for terminals. The first write error
// is kept and later calls become no-ops.
type TextReport struct {
	w   io.Writer
	err error
}

func NewTextReport(w io.Writer) *TextReport {
	return &TextReport{w: w}
}

func (r *TextReport) Err() error { return r.err }

func (r *TextReport) RenderConfigSummary(s ConfigSummary) {
	r.printf("%s\n", s.Title)
	r.printf("Email:      %s\n", s.StoreEmail)
	r.printf("Currency:   %s\n", s.Currency)
	r.printf("Tax rate:   %s\n", s.TaxRate)
}

func (r *TextReport) RenderCategoryOptions(categories []string) {
	r.printf("Categories: %s\n\n", strings.Join(categories, ", "))
}

func (r *TextReport) RenderProductTable(t ProductTable) {
	if r.err != nil {
		return
	}
	if t.Empty() {
		r.printf("%s\n\n", EmptyTableMessage)
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSKU\tCATEGORY\tPRICE\tWITH TAX\tSTOCK\tVALUE")
	for _, row := range t.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Index, row.Name, row.SKU, row.Category,
			row.Price, row.PriceWithTax, row.Stock, row.Value)
	}
	if err := tw.Flush(); err != nil {
		r.err = err
		return
	}
	r.printf("\n")
}

func (r *TextReport) RenderStats(s StatsView) {
	r.printf("Products: %s  Stock: %s  Value: %s\n", s.TotalProducts, s.TotalStock, s.TotalValue)
}

func (r *TextReport) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
