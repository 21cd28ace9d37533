package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity y MinQuantity inician en 0 si no se envían; Active inicia en true.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	CategoryID  string          `json:"category_id"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Name/Description/SKU/precios son reemplazo total; Quantity, MinQuantity y
// Active solo se sobreescriben si vienen en el body (nil = dejar igual).
// CategoryID vacío desasocia la categoría (reemplazo, no merge).
type UpdateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Quantity    *int            `json:"quantity"`
	MinQuantity *int            `json:"min_quantity"`
	Active      *bool           `json:"active"`
	CategoryID  string          `json:"category_id"`
}

// ProductResponse salida de un producto. LowStock siempre se recalcula.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"min_quantity"`
	Active       bool            `json:"active"`
	LowStock     bool            `json:"low_stock"`
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
