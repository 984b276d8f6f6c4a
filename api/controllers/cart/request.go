package cart

type addItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

// Quantity is a pointer so zero can be sent explicitly; setting a line
// to zero removes it.
type updateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
