package models

type Review struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	Helpful   int    `json:"helpful"`
	CreatedAt string `json:"created_at,omitempty"`
}
