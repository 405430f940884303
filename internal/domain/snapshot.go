package domain

import (
	"time"
)

// CatalogSnapshot representa uma foto do catálogo externo (produtos +
// carrinhos) armazenada no banco. Usada como fallback quando a fonte
// externa está indisponível. Guarda apenas os dados brutos, nunca
// analytics computados.
type CatalogSnapshot struct {
	ID        int64      `json:"id"`
	Day       time.Time  `json:"day"`
	Products  []*Product `json:"products"`
	Carts     []*Cart    `json:"carts"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
