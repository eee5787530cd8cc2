package handler

import "net/http"

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondFromError(w, h.log, "listProducts", err)
		return
	}

	type productResponse struct {
		ID         int64   `json:"id"`
		Name       string  `json:"name"`
		Brand      string  `json:"brand"`
		WindowType string  `json:"windowType"`
		Material   string  `json:"material"`
		Series     string  `json:"series,omitempty"`
		UnitPrice  float64 `json:"unitPrice"`
	}
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID: p.ID, Name: p.Name, Brand: p.Brand, WindowType: p.WindowType,
			Material: p.Material, Series: p.Series, UnitPrice: p.UnitPrice,
		})
	}
	respondOK(w, map[string]any{"products": out, "count": len(out)}, "Product catalog retrieved successfully")
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.ListBrands(r.Context())
	if err != nil {
		respondFromError(w, h.log, "listBrands", err)
		return
	}

	type brandResponse struct {
		ID         int64   `json:"id"`
		Name       string  `json:"name"`
		Multiplier float64 `json:"multiplier"`
	}
	out := make([]brandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, brandResponse{ID: b.ID, Name: b.Name, Multiplier: b.Multiplier})
	}
	respondOK(w, map[string]any{"brands": out, "count": len(out)}, "Window brands retrieved successfully")
}

func (h *Handler) listWindowTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.ListWindowTypes(r.Context())
	if err != nil {
		respondFromError(w, h.log, "listWindowTypes", err)
		return
	}

	type typeResponse struct {
		ID          int64   `json:"id"`
		Key         string  `json:"key"`
		DisplayName string  `json:"displayName"`
		Multiplier  float64 `json:"multiplier"`
	}
	out := make([]typeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, typeResponse{ID: t.ID, Key: t.Key, DisplayName: t.DisplayName, Multiplier: t.Multiplier})
	}
	respondOK(w, map[string]any{"windowTypes": out, "count": len(out)}, "Window types retrieved successfully")
}
