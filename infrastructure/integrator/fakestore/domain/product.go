package domain

// Product é o formato de produto retornado pela Fake Store API.
// Campos extras da API (rating, image) são ignorados na decodificação.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}
