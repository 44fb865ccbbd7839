package schemas

// SignupSchema struct
type SignupSchema struct {
	Name         string `json:"name" validate:"required,max=50"`
	EmailOrPhone string `json:"emailOrPhone" validate:"required,max=100"`
	Password     string `json:"password" validate:"required,min=8"`
}

// LoginSchema struct
type LoginSchema struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"required,max=100"`
	Password     string `json:"password" validate:"required"`
}

// GoogleLoginSchema struct
type GoogleLoginSchema struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AuthResponse struct is the session payload returned by login/signup
type AuthResponse struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user" validate:"required"`
}

// ForgotPasswordSchema struct
type ForgotPasswordSchema struct {
	Email string `json:"email" validate:"required,email,max=100"`
}

// RequestOTPSchema struct
type RequestOTPSchema struct {
	Phone string `json:"phone" validate:"required,max=20"`
}

// VerifyOTPSchema struct
type VerifyOTPSchema struct {
	Phone string `json:"phone" validate:"required,max=20"`
	Code  string `json:"code" validate:"required,len=6"`
}

// ResetPasswordSchema struct
type ResetPasswordSchema struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
