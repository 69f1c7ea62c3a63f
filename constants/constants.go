package constants

// ユーザーロール
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// エラーメッセージ
const (
	ErrSweetNotFound        = "Sweet not found"
	ErrInsufficientQuantity = "Insufficient quantity"
	ErrInvalidRestock       = "Restock quantity must be greater than 0"
	ErrUserExists           = "User already exists"
	ErrInvalidCredentials   = "Invalid email or password"
	ErrUnexpected           = "Unexpected error"
	ErrInvalidID            = "Invalid id"
)
