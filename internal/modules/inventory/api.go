package inventory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/pcstore/internal/platform/errx"
	"github.com/georgemunganga/pcstore/internal/platform/logx"
)

// configRequest is the JSON form of a configuration update.
type configRequest struct {
	StoreName  string   `json:"storeName"`
	StoreEmail string   `json:"storeEmail"`
	Currency   string   `json:"currency"`
	TaxRate    Number   `json:"taxRate"`
	Categories []string `json:"categories"`
}

// productRequest is the JSON form of a new product. Price and stock may be
// numbers or numeric strings.
type productRequest struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	SKU      string      `json:"sku"`
	Price    json.Number `json:"price"`
	Stock    json.Number `json:"stock"`
}

type statsResponse struct {
	Stats
	Formatted StatsView `json:"formatted"`
}

func (h *Handler) apiGetConfig(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Snapshot(r.Context()).Config)
}

func (h *Handler) apiSaveConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	cfg, err := h.service.SaveConfig(r.Context(), ConfigInput{
		StoreName:  req.StoreName,
		StoreEmail: req.StoreEmail,
		Currency:   req.Currency,
		TaxRate:    FormatNumber(req.TaxRate.Float()),
		Categories: strings.Join(req.Categories, "\n"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, cfg)
}

func (h *Handler) apiResetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.ResetConfig(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, cfg)
}

func (h *Handler) apiListProducts(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Snapshot(r.Context()).Products)
}

func (h *Handler) apiAddProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.AddProduct(r.Context(), ProductInput{
		Name:     req.Name,
		Category: req.Category,
		SKU:      req.SKU,
		Price:    req.Price.String(),
		Stock:    req.Stock.String(),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) apiDeleteProduct(w http.ResponseWriter, r *http.Request) {
	index := chi.URLParam(r, "index")
	deleted, err := h.service.DeleteProduct(r.Context(), index, r.URL.Query().Get("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if !deleted {
		respond(w, http.StatusNotFound, map[string]string{"error": "no product at index " + index})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) apiClearProducts(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearProducts(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) apiStats(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot(r.Context())
	respond(w, http.StatusOK, statsResponse{
		Stats:     snap.Stats(),
		Formatted: BuildStats(snap.Products, snap.Config),
	})
}

func respondError(w http.ResponseWriter, err error) {
	if !isValidation(err) {
		logx.Error().Err(err).Msg("inventory api request failed")
	}
	respond(w, errx.StatusOf(err), map[string]string{"error": errx.MessageOf(err)})
}

// respond encodes body before writing the header so an encoding failure
// still reaches the client as a 500.
func respond(w http.ResponseWriter, status int, body interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logx.Error().Err(err).Msg("encode api response")
		buf.Reset()
		buf.WriteString(`{"error":"` + errx.SystemErrorMessage + `"}` + "\n")
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
