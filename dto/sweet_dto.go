package dto

// CreateSweetInput quantityは0を許可するためポインタにする（requiredとの両立）
type CreateSweetInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity *int    `json:"quantity" binding:"required,gte=0"`
}

type UpdateSweetInput struct {
	Name     *string  `json:"name" binding:"omitempty,min=1"`
	Category *string  `json:"category" binding:"omitempty,min=1"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gte=0"`
}

type StockInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// SearchSweetQuery 未指定のフィールドは条件なしとして扱う
type SearchSweetQuery struct {
	Name     string   `form:"name"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}
