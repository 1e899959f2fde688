package inventory

import (
	"html/template"
	"strconv"
	"strings"
)

// EmptyTableMessage is shown in place of product rows when the list is empty.
const EmptyTableMessage = "No products added yet. Add one to get started!"

// tableColumns is the number of columns in the product table, delete control included.
const tableColumns = 8

// Presenter receives a fully derived view. Each call replaces whatever the
// presenter showed before for that region.
type Presenter interface {
	RenderConfigSummary(ConfigSummary)
	RenderCategoryOptions(categories []string)
	RenderProductTable(ProductTable)
	RenderStats(StatsView)
}

// ConfigSummary is a Configuration with display fallbacks applied.
type ConfigSummary struct {
	Title      string
	StoreName  string
	StoreEmail string
	Currency   string
	TaxRate    string
	Categories string
}

// ProductRow holds one product ready for display. Text fields are raw;
// presenters escape them for their medium.
type ProductRow struct {
	Index        int
	ID           string
	Name         string
	SKU          string
	Category     string
	Price        string
	PriceWithTax string
	Stock        string
	Value        string
}

type ProductTable struct {
	Rows []ProductRow
}

func (t ProductTable) Empty() bool { return len(t.Rows) == 0 }

type StatsView struct {
	TotalProducts string `json:"totalProducts"`
	TotalStock    string `json:"totalStock"`
	TotalValue    string `json:"totalValue"`
}

// Render derives every region from cfg and products and hands them to p.
// Statistics are always rendered after the table.
func Render(cfg Configuration, products []Product, p Presenter) {
	p.RenderConfigSummary(Summarize(cfg))
	p.RenderCategoryOptions(CategoryOptions(cfg.Categories))
	p.RenderProductTable(BuildProductTable(products, cfg))
	p.RenderStats(BuildStats(products, cfg))
}

func Summarize(cfg Configuration) ConfigSummary {
	name := fallback(cfg.StoreName, DefaultStoreName)
	categories := strings.Join(cfg.Categories, ", ")
	return ConfigSummary{
		Title:      name + " - PC Store",
		StoreName:  name,
		StoreEmail: fallback(cfg.StoreEmail, "-"),
		Currency:   currencyOf(cfg),
		TaxRate:    FormatNumber(cfg.TaxRate.Float()) + "%",
		Categories: fallback(categories, "None"),
	}
}

// CategoryOptions returns the selectable categories, never empty.
func CategoryOptions(categories []string) []string {
	if len(categories) == 0 {
		return []string{FallbackCategory}
	}
	return append([]string(nil), categories...)
}

func BuildProductTable(products []Product, cfg Configuration) ProductTable {
	currency := currencyOf(cfg)
	taxRate := cfg.TaxRate.Float()
	rows := make([]ProductRow, 0, len(products))
	for i, p := range products {
		price, stock := p.Price.Float(), p.Stock.Float()
		rows = append(rows, ProductRow{
			Index:        i,
			ID:           p.ID,
			Name:         p.Name,
			SKU:          fallback(p.SKU, "-"),
			Category:     p.Category,
			Price:        FormatMoney(price, currency),
			PriceWithTax: FormatMoney(PriceWithTax(price, taxRate), currency),
			Stock:        FormatNumber(stock),
			Value:        FormatMoney(LineValue(price, taxRate, stock), currency),
		})
	}
	return ProductTable{Rows: rows}
}

func BuildStats(products []Product, cfg Configuration) StatsView {
	st := ComputeStats(products, cfg.TaxRate.Float())
	return StatsView{
		TotalProducts: strconv.Itoa(st.TotalProducts),
		TotalStock:    FormatNumber(st.TotalStock),
		TotalValue:    FormatMoney(st.TotalValue, currencyOf(cfg)),
	}
}

// TableMarkup renders the rows of the product table body. User text is
// escaped with EscapeHTML before it is embedded.
func TableMarkup(t ProductTable) template.HTML {
	var b strings.Builder
	if t.Empty() {
		b.WriteString(`<tr class="empty-row"><td colspan="` + strconv.Itoa(tableColumns) + `">`)
		b.WriteString(EmptyTableMessage)
		b.WriteString("</td></tr>\n")
		return template.HTML(b.String())
	}
	for _, row := range t.Rows {
		index := strconv.Itoa(row.Index)
		b.WriteString("<tr>\n")
		cell(&b, EscapeHTML(row.Name))
		cell(&b, EscapeHTML(row.SKU))
		cell(&b, EscapeHTML(row.Category))
		cell(&b, EscapeHTML(row.Price))
		cell(&b, EscapeHTML(row.PriceWithTax))
		cell(&b, row.Stock)
		cell(&b, EscapeHTML(row.Value))
		b.WriteString(`  <td><form method="post" action="/products/` + index + `/delete">`)
		if row.ID != "" {
			b.WriteString(`<input type="hidden" name="id" value="` + EscapeHTML(row.ID) + `">`)
		}
		b.WriteString(`<button type="submit" class="btn-delete" data-index="` + index + `">Delete</button></form></td>` + "\n")
		b.WriteString("</tr>\n")
	}
	return template.HTML(b.String())
}

func cell(b *strings.Builder, content string) {
	b.WriteString("  <td>")
	b.WriteString(content)
	b.WriteString("</td>\n")
}

func currencyOf(cfg Configuration) string {
	return fallback(cfg.Currency, DefaultCurrency)
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
