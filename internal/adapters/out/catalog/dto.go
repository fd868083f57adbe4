package catalog

import "pedido/internal/core/ports"

// productDTO mirrors the catalog service's wire format for a product.
type productDTO struct {
	ID    int64   `json:"id"`
	Name  string  `json:"nome"`
	Price float64 `json:"preco"`
}

func (d productDTO) toPort() ports.Product {
	return ports.Product{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
	}
}
