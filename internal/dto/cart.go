package dto

type AddToCartRequestDTO struct {
	ProductID int `json:"productId" example:"1"`
	Qty       int `json:"qty" example:"3"`
}

type CartLineDTO struct {
	ProductID int `json:"productId" example:"1"`
	Qty       int `json:"qty" example:"3"`
}

type CheckoutResponseDTO struct {
	Message string `json:"message" example:"checked out"`
	Total   int    `json:"total" example:"300"`
	Points  int    `json:"points" example:"30"`
}
