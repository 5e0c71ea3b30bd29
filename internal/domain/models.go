package domain

import "math"

// Product is a catalog record as returned by the backend
type Product struct {
	ID         string `json:"id"`
	Marka      string `json:"marka"`
	Kod        string `json:"kod,omitempty"`
	Aciklama   string `json:"aciklama"`
	Fiyat      string `json:"fiyat"`
	UploadDate string `json:"upload_date,omitempty"`
}

// SearchResult pairs a product with its backend-computed relevance
type SearchResult struct {
	Product        Product `json:"product"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Percent returns the relevance score as a rounded percentage in [0,100]
func (r SearchResult) Percent() int {
	p := int(math.Round(r.RelevanceScore * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	TotalCount int            `json:"total_count"`
	Query      string         `json:"query"`
}

// UploadResponse is the body of a successful spreadsheet upload
type UploadResponse struct {
	Message       string `json:"message"`
	ProductsCount int    `json:"products_count"`
	UploadDate    string `json:"upload_date,omitempty"`
}

// CountResponse is the body of the product count endpoint
type CountResponse struct {
	Count int `json:"count"`
}

// ClearResponse is the body of a successful catalog wipe
type ClearResponse struct {
	Message string `json:"message"`
}
