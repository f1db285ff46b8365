package dto

// SendOTPRequest solicitud de código OTP por teléfono.
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// SendOTPResponse respuesta al envío de OTP. DevOTP solo se llena en
// desarrollo, mientras no haya gateway SMS conectado.
type SendOTPResponse struct {
	Message string `json:"message"`
	DevOTP  string `json:"devOtp,omitempty"`
}

// VerifyOTPRequest verificación de OTP. Name y ProfileType solo se usan
// cuando el teléfono no está registrado (alta de usuario nuevo).
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
	Name        string `json:"name,omitempty"`
	ProfileType string `json:"profileType,omitempty"`
}

// AdminLoginRequest login de administrador por email y password.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
