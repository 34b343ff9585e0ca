package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/techhardware/storefront/internal/catalog"
	"github.com/techhardware/storefront/internal/models"
)

// cartTokenHeader carries the opaque token identifying a client's
// ledgers. A client without one gets a fresh token; the response always
// echoes the token in use so the client can persist it.
const cartTokenHeader = "X-Cart-Token"

func clientToken(w http.ResponseWriter, r *http.Request) string {
	token := r.Header.Get(cartTokenHeader)
	if token == "" {
		token = uuid.NewString()
	}
	w.Header().Set(cartTokenHeader, token)
	return token
}

func productResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		Id:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		EffectivePrice: catalog.EffectivePrice(p.Price, p.Discount),
		Image:          p.Image,
		Category:       p.Category,
		Discount:       p.Discount,
		Stock:          p.Stock,
		StockMinimum:   p.StockMinimum,
		LowStock:       p.LowStock(),
	}
	if p.Specs != nil {
		resp.Specs = p.Specs
	}
	return resp
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
