package dto

import "inventory-api/models"

type OrderRequest struct {
	OrderNumber string `json:"order_number" validate:"required,min=3,max=45"`
	ProductIDs  []uint `json:"product_ids" validate:"required"`
}

type OrderResponse struct {
	Order      models.OrderSummary `json:"order"`
	ProductIDs []uint              `json:"product_ids"`
}

// ChartData feeds the orders-per-day chart.
type ChartData struct {
	Month          []string `json:"month"`
	OrderCountData []int64  `json:"order_count_data"`
	Max            int64    `json:"max"`
}
