package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued auth token, under the exact key the
// client contract expects.
type LoginResponse struct {
	JWT string `json:"jwt"`
}

type CreateUserRequest struct {
	Type     string `json:"type" validate:"required,oneof=Employee Admin"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
