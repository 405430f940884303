package domain

// CartProduct é uma linha de carrinho no formato da Fake Store API
type CartProduct struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart é o formato de carrinho retornado pela Fake Store API.
// Date vem como string ISO 8601, ex: "2020-03-02T00:00:00.000Z".
type Cart struct {
	ID       int           `json:"id"`
	UserID   int           `json:"userId"`
	Date     string        `json:"date"`
	Products []CartProduct `json:"products"`
}
