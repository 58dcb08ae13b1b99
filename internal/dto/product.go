package dto

type ProductDTO struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Example Product"`
	Price int    `json:"price" example:"100"`
	Cost  int    `json:"cost" example:"80"`
	Stock int    `json:"stock" example:"10"`
}

type CreateProductRequestDTO struct {
	Name  string `json:"name" example:"Example Product"`
	Price int    `json:"price" example:"100"`
	Cost  int    `json:"cost" example:"80"`
	Stock int    `json:"stock" example:"10"`
}

// Pointer fields distinguish an absent field from an explicit zero:
// nil is skipped, a present zero is applied.
type UpdateProductRequestDTO struct {
	ID    int  `json:"id" example:"1"`
	Price *int `json:"price,omitempty" example:"120"`
	Cost  *int `json:"cost,omitempty" example:"90"`
	Stock *int `json:"stock,omitempty" example:"5"`
}
