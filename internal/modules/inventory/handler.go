package inventory

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/pcstore/internal/platform/errx"
	"github.com/georgemunganga/pcstore/internal/platform/logx"
)

// Handler serves the inventory page, its form posts and the JSON API.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.index)
	r.Post("/config", h.saveConfig)
	r.Post("/config/reset", h.resetConfig)
	r.Post("/products", h.addProduct)
	r.Post("/products/clear", h.clearProducts)
	r.Post("/products/{index}/delete", h.deleteProduct)

	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Get("/config", h.apiGetConfig)
		r.Put("/config", h.apiSaveConfig)
		r.Post("/config/reset", h.apiResetConfig)

		r.Get("/products", h.apiListProducts)
		r.Post("/products", h.apiAddProduct)
		r.Delete("/products", h.apiClearProducts)
		r.Delete("/products/{index}", h.apiDeleteProduct)

		r.Get("/stats", h.apiStats)
	})
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page := NewPage(h.service.Snapshot(r.Context()))
	page.Notice = SuccessNotice(r.URL.Query().Get("notice"))
	renderPage(w, http.StatusOK, page)
}

func (h *Handler) saveConfig(w http.ResponseWriter, r *http.Request) {
	in := ConfigInput{
		StoreName:  r.PostFormValue("storeName"),
		StoreEmail: r.PostFormValue("storeEmail"),
		Currency:   r.PostFormValue("currency"),
		TaxRate:    r.PostFormValue("taxRate"),
		Categories: r.PostFormValue("categories"),
	}
	if _, err := h.service.SaveConfig(r.Context(), in); err != nil {
		h.renderError(w, r, err, nil)
		return
	}
	redirectWithNotice(w, r, NoticeConfigSaved)
}

func (h *Handler) resetConfig(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if _, err := h.service.ResetConfig(r.Context()); err != nil {
		h.renderError(w, r, err, nil)
		return
	}
	redirectWithNotice(w, r, NoticeConfigReset)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	in := ProductInput{
		Name:     r.PostFormValue("name"),
		Category: r.PostFormValue("category"),
		SKU:      r.PostFormValue("sku"),
		Price:    r.PostFormValue("price"),
		Stock:    r.PostFormValue("stock"),
	}
	if _, err := h.service.AddProduct(r.Context(), in); err != nil {
		h.renderError(w, r, err, &in)
		return
	}
	redirectWithNotice(w, r, NoticeProductAdded)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	index := chi.URLParam(r, "index")
	if _, err := h.service.DeleteProduct(r.Context(), index, r.PostFormValue("id")); err != nil {
		h.renderError(w, r, err, nil)
		return
	}
	http.Redirect(w, r, "/#inventory", http.StatusSeeOther)
}

func (h *Handler) clearProducts(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := h.service.ClearProducts(r.Context()); err != nil {
		h.renderError(w, r, err, nil)
		return
	}
	redirectWithNotice(w, r, NoticeProductsCleared)
}

// renderError re-renders the page from a fresh read with err as the notice.
// A rejected product form keeps the submitted values.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error, form *ProductInput) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", r.URL.Path).Msg("inventory action failed")
	}
	page := NewPage(h.service.Snapshot(r.Context()))
	if form != nil {
		page.ProductForm = *form
	}
	page.Notice = &Notice{Error: true, Message: errx.MessageOf(err)}
	renderPage(w, status, page)
}

func confirmed(r *http.Request) bool {
	return r.PostFormValue("confirm") == "yes"
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/?notice="+code, http.StatusSeeOther)
}

func renderPage(w http.ResponseWriter, status int, page *Page) {
	var buf bytes.Buffer
	if err := page.Write(&buf); err != nil {
		logx.Error().Err(err).Msg("render page")
		http.Error(w, errx.SystemErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// isValidation reports whether err is a user-facing validation failure.
func isValidation(err error) bool {
	var appErr *errx.AppError
	return errors.As(err, &appErr) && appErr.Status == http.StatusUnprocessableEntity
}
