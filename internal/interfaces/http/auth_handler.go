package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printhub-api/internal/application/auth"
	"github.com/jhoicas/printhub-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SendOTP godoc
// @Summary      Solicitar código OTP por teléfono
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendOTPRequest  true  "Teléfono"
// @Success      200   {object}  dto.SendOTPResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var in dto.SendOTPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PhoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phoneNumber es requerido"})
	}
	out, err := h.uc.SendOTP(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// VerifyOTP godoc
// @Summary      Verificar OTP y obtener token (registra al usuario si el teléfono es nuevo)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOTPRequest  true  "Teléfono y código"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.VerifyOTPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PhoneNumber == "" || in.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phoneNumber y otp son requeridos"})
	}
	out, err := h.uc.VerifyOTP(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AdminLogin godoc
// @Summary      Login de administrador por email y contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.AdminLogin(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
