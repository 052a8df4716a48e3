package dto

type CreateProductRequest struct {
	SupplierID  uint   `json:"supplier_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=3,max=45"`
	Description string `json:"description" validate:"required,min=3,max=45"`
	Quantity    int    `json:"quantity" validate:"required,min=1,max=1000000000"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=45"`
	Description string `json:"description" validate:"required,min=3,max=45"`
	Quantity    int    `json:"quantity" validate:"required,min=1,max=1000000000"`
}
