package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OperatorResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Operator OperatorResponse `json:"operator"`
}
