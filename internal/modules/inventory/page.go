package inventory

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Notice codes carried in the redirect after a successful form post.
const (
	NoticeConfigSaved     = "config-saved"
	NoticeConfigReset     = "config-reset"
	NoticeProductAdded    = "product-added"
	NoticeProductsCleared = "products-cleared"
)

var successNotices = map[string]string{
	NoticeConfigSaved:     "✓ Configuration saved successfully!",
	NoticeConfigReset:     "✓ Configuration reset to defaults!",
	NoticeProductAdded:    "✓ Product added successfully!",
	NoticeProductsCleared: "✓ All products cleared!",
}

// Notice is a one-shot message shown at the top of the page.
type Notice struct {
	Error   bool
	Message string
}

// SuccessNotice returns the notice for code, or nil for unknown codes.
func SuccessNotice(code string) *Notice {
	msg, ok := successNotices[code]
	if !ok {
		return nil
	}
	return &Notice{Message: msg}
}

// ConfigForm is the configuration edit form. Categories are newline separated.
type ConfigForm struct {
	StoreName  string
	StoreEmail string
	Currency   string
	TaxRate    string
	Categories string
}

// ConfigFormFrom fills the edit form from the stored configuration. The tax
// rate field shows the stored value as is: a saved 0 stays 0 and is not
// replaced by the 18% default.
func ConfigFormFrom(cfg Configuration) ConfigForm {
	return ConfigForm{
		StoreName:  cfg.StoreName,
		StoreEmail: cfg.StoreEmail,
		Currency:   currencyOf(cfg),
		TaxRate:    FormatNumber(cfg.TaxRate.Float()),
		Categories: strings.Join(cfg.Categories, "\n"),
	}
}

// Page is the HTML Presenter. It collects every region and writes the whole
// document at once.
type Page struct {
	Summary     ConfigSummary
	Categories  []string
	Table       ProductTable
	Stats       StatsView
	ConfigForm  ConfigForm
	ProductForm ProductInput
	Notice      *Notice
}

// NewPage renders snap into a page with both forms in their initial state.
func NewPage(snap Snapshot) *Page {
	p := &Page{
		ConfigForm:  ConfigFormFrom(snap.Config),
		ProductForm: ProductInput{Stock: "1"},
	}
	Render(snap.Config, snap.Products, p)
	return p
}

func (p *Page) RenderConfigSummary(s ConfigSummary) { p.Summary = s }
func (p *Page) RenderCategoryOptions(cats []string) { p.Categories = cats }
func (p *Page) RenderProductTable(t ProductTable) { p.Table = t }
func (p *Page) RenderStats(s StatsView) { p.Stats = s }

// TableBody is the escaped markup of the product table rows.
func (p *Page) TableBody() template.HTML {
	return TableMarkup(p.Table)
}

func (p *Page) Write(w io.Writer) error {
	return pageTemplate.Execute(w, p)
}
