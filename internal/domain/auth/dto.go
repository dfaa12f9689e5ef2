package auth

// RegisterVendorRequest creates a user account and its vendor profile
type RegisterVendorRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Name        string   `json:"name" validate:"required"`
	CompanyName string   `json:"company_name" validate:"required"`
	Phone       string   `json:"phone"`
	City        string   `json:"city"`
	Services    []string `json:"services" validate:"required,min=1,dive,oneof=photocopiers telecoms cctv it"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
