package auth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/pricing"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
	"github.com/jhoicas/printhub-api/pkg/jwt"
	"github.com/jhoicas/printhub-api/pkg/logger"
)

// Vigencia del OTP, igual que el flujo original de registro por teléfono.
const otpTTL = 5 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: OTP por teléfono para clientes
// y login con password para administradores.
type AuthUseCase struct {
	userRepo repository.UserRepository
	otpStore OTPStore
	jwtCfg   JWTConfig
	devMode  bool // en desarrollo el OTP se incluye en la respuesta
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, otpStore OTPStore, jwtCfg JWTConfig, devMode bool, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, otpStore: otpStore, jwtCfg: jwtCfg, devMode: devMode, log: log}
}

// SendOTP genera un código de 6 dígitos, lo guarda con TTL de 5 minutos y lo
// entrega al canal SMS. Mientras no haya gateway SMS conectado el código se
// registra en el log, y en desarrollo además se devuelve en la respuesta.
// TODO: integrar gateway SMS (MSG91/Twilio) y dejar de loguear el código.
func (uc *AuthUseCase) SendOTP(ctx context.Context, in dto.SendOTPRequest) (*dto.SendOTPResponse, error) {
	if in.PhoneNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	code := fmt.Sprintf("%06d", 100000+rand.IntN(900000))
	if err := uc.otpStore.Set(ctx, in.PhoneNumber, code, otpTTL); err != nil {
		return nil, fmt.Errorf("guardar OTP: %w", err)
	}
	uc.log.Info().Str("phone", in.PhoneNumber).Str("otp", code).Msg("OTP generado")

	out := &dto.SendOTPResponse{Message: "OTP enviado"}
	if uc.devMode {
		out.DevOTP = code
	}
	return out, nil
}

// VerifyOTP verifica y consume el código. Si el teléfono ya está registrado es
// un login; si no y viene Name, se da de alta el usuario con su perfil de
// precio normalizado. En ambos casos se emite un JWT con rol y tier.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.VerifyOTPRequest) (*dto.LoginResponse, error) {
	if in.PhoneNumber == "" || in.OTP == "" {
		return nil, domain.ErrInvalidInput
	}
	stored, err := uc.otpStore.Get(ctx, in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if stored != in.OTP {
		return nil, domain.ErrOTPMismatch
	}
	// OTP verificado: consumirlo antes de cualquier otra cosa.
	_ = uc.otpStore.Delete(ctx, in.PhoneNumber)

	user, err := uc.userRepo.GetByPhone(in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	message := "login exitoso"
	if user == nil {
		if in.Name == "" {
			return nil, domain.ErrUserNotFound
		}
		user = newUser(in)
		if err := uc.userRepo.Create(user); err != nil {
			return nil, err
		}
		message = "registro exitoso"
	} else {
		user.LastActive = time.Now()
		if err := uc.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.ProfileType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Message: message, Token: token, User: *ToUserResponse(user)}, nil
}

// AdminLogin autentica a un administrador por email y password (bcrypt).
func (uc *AuthUseCase) AdminLogin(in dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	user.LastActive = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.ProfileType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Message: "login exitoso", Token: token, User: *ToUserResponse(user)}, nil
}

// newUser construye un usuario nuevo a partir de la verificación de OTP.
// El perfil se normaliza a la enumeración cerrada en este borde.
func newUser(in dto.VerifyOTPRequest) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Phone:       in.PhoneNumber,
		ProfileType: CanonicalProfile(in.ProfileType),
		Role:        entity.RoleUser,
		Status:      "active",
		Orders:      0,
		TotalSpent:  decimal.Zero,
		CreatedAt:   now,
		LastActive:  now,
	}
}

// CanonicalProfile mapea un perfil libre al valor canónico persistido.
func CanonicalProfile(profileType string) string {
	switch pricing.NormalizeTier(profileType) {
	case pricing.TierStudent:
		return entity.ProfileStudent
	case pricing.TierInstitute:
		return entity.ProfileInstitute
	default:
		return entity.ProfileRegular
	}
}

// ToUserResponse convierte la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Phone:       u.Phone,
		Email:       u.Email,
		ProfileType: u.ProfileType,
		Role:        u.Role,
		Status:      u.Status,
		Orders:      u.Orders,
		TotalSpent:  u.TotalSpent,
		CreatedAt:   u.CreatedAt,
		LastActive:  u.LastActive,
	}
}
