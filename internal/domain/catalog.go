package domain

import "time"

// Product representa um produto do catálogo externo. Dados de referência
// imutáveis: o núcleo de agregação nunca os modifica.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// CartLine é um item de um carrinho referenciando um produto pelo ID
type CartLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart representa um pedido/atendimento vindo da fonte externa
type Cart struct {
	ID        int        `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Lines     []CartLine `json:"lines"`
}

// DateRange é um intervalo de datas inclusivo nas duas pontas.
// Se From > To o intervalo não casa com nenhum carrinho (não é erro).
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains verifica se o instante está dentro do intervalo (inclusivo)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}
