package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(u *entity.User) error { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) GetByID(id string) (*entity.User, error) {
	return s.users[id], nil
}
func (s *stubUserRepo) GetByPhone(string) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) Update(u *entity.User) error             { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }
func (s *stubUserRepo) Delete(string) error                     { return nil }

type stubOrderRepo struct {
	orders []*entity.Order
}

func (s *stubOrderRepo) Create(o *entity.Order) error { s.orders = append(s.orders, o); return nil }
func (s *stubOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (s *stubOrderRepo) ListByUser(string, int, int) ([]*entity.Order, error) { return s.orders, nil }
func (s *stubOrderRepo) ListAll(int, int) ([]*entity.Order, error)            { return s.orders, nil }
func (s *stubOrderRepo) UpdateStatus(string, string) error                    { return nil }

type stubRuleRepo struct {
	rules []*entity.PricingRule
}

func (s *stubRuleRepo) Create(r *entity.PricingRule) error          { s.rules = append(s.rules, r); return nil }
func (s *stubRuleRepo) GetByID(string) (*entity.PricingRule, error) { return nil, nil }
func (s *stubRuleRepo) ListAll() ([]*entity.PricingRule, error)     { return s.rules, nil }
func (s *stubRuleRepo) Update(*entity.PricingRule) error            { return nil }
func (s *stubRuleRepo) Delete(string) error                         { return nil }

type stubBindingRepo struct {
	bindings map[string]*entity.BindingType
}

func (s *stubBindingRepo) Create(b *entity.BindingType) error { s.bindings[b.ID] = b; return nil }
func (s *stubBindingRepo) GetByID(id string) (*entity.BindingType, error) {
	return s.bindings[id], nil
}
func (s *stubBindingRepo) ListAll() ([]*entity.BindingType, error) { return nil, nil }
func (s *stubBindingRepo) Update(*entity.BindingType) error        { return nil }
func (s *stubBindingRepo) Delete(string) error                     { return nil }

func buildOrderUC(rules []*entity.PricingRule, users ...*entity.User) (*OrderUseCase, *stubOrderRepo, *stubUserRepo) {
	userRepo := &stubUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		userRepo.users[u.ID] = u
	}
	orderRepo := &stubOrderRepo{}
	quoteUC := NewQuoteUseCase(&stubRuleRepo{rules: rules}, &stubBindingRepo{bindings: map[string]*entity.BindingType{}})
	return NewOrderUseCase(orderRepo, userRepo, quoteUC, nil), orderRepo, userRepo
}

func studentUser(id string) *entity.User {
	return &entity.User{
		ID:          id,
		Name:        "Ana",
		Phone:       "+573001112233",
		ProfileType: entity.ProfileStudent,
		Role:        entity.RoleUser,
		Status:      "active",
	}
}

func orderReq() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		FileName:      "tesis.pdf",
		StoredPath:    "a1b2c3.pdf",
		TotalPages:    10,
		ColorType:     entity.ColorBW,
		SideType:      entity.SideSingle,
		PagesPerSheet: 1,
		Copies:        2,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de creación de órdenes
// ──────────────────────────────────────────────────────────────────────────────

// La cotización se recalcula en el servidor con el perfil del usuario y queda
// congelada en la orden con estado pending.
func TestOrderCreate_CongelaCotizacionConPerfilDelUsuario(t *testing.T) {
	rules := []*entity.PricingRule{{
		ID: "r1", ColorType: entity.ColorBW, SideType: entity.SideSingle,
		FromPage: 1, ToPage: 9999,
		StudentPrice:   decimal.NewFromFloat(1.0),
		InstitutePrice: decimal.NewFromFloat(0.8),
		RegularPrice:   decimal.NewFromFloat(1.5),
	}}
	uc, orderRepo, userRepo := buildOrderUC(rules, studentUser("u1"))

	out, err := uc.Create("u1", orderReq())
	require.NoError(t, err)

	// 10 páginas x 1.0 (Student) x 2 copias
	assert.Equal(t, 10, out.Quote.ActivePages)
	assert.Equal(t, 10, out.Quote.SheetsNeeded)
	assert.True(t, out.Quote.GrandTotal.Equal(decimal.NewFromFloat(20.0)),
		"grandTotal esperado 20.0, fue %s", out.Quote.GrandTotal)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	require.Len(t, orderRepo.orders, 1)

	// Estadísticas del usuario actualizadas
	u := userRepo.users["u1"]
	assert.Equal(t, 1, u.Orders)
	assert.True(t, u.TotalSpent.Equal(decimal.NewFromFloat(20.0)))
}

// Sin reglas que apliquen al trabajo, el total queda en cero y la orden se
// rechaza: el cliente no puede ordenar una impresión gratis por accidente.
func TestOrderCreate_RechazaTotalEnCero(t *testing.T) {
	// Catálogo no vacío pero sin regla para color (sin fallback posible).
	rules := []*entity.PricingRule{{
		ID: "r1", ColorType: entity.ColorBW, SideType: entity.SideSingle,
		FromPage: 1, ToPage: 9999,
		StudentPrice: decimal.NewFromFloat(1.0),
	}}
	uc, orderRepo, _ := buildOrderUC(rules, studentUser("u1"))

	req := orderReq()
	req.ColorType = entity.ColorFull

	_, err := uc.Create("u1", req)
	require.ErrorIs(t, err, domain.ErrZeroPricedOrder)
	assert.Empty(t, orderRepo.orders, "no debe persistirse ninguna orden")
}

// Un rango que no selecciona ninguna página no tiene nada que imprimir.
func TestOrderCreate_RechazaRangoVacio(t *testing.T) {
	uc, _, _ := buildOrderUC(nil, studentUser("u1"))

	req := orderReq()
	req.PageRange = "abc"

	_, err := uc.Create("u1", req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Con el catálogo vacío se cotiza con las reglas de respaldo incorporadas.
func TestOrderCreate_CatalogoVacioUsaRespaldo(t *testing.T) {
	uc, _, _ := buildOrderUC(nil, studentUser("u1"))

	out, err := uc.Create("u1", orderReq())
	require.NoError(t, err)
	// Respaldo bw/single Student = 1.0 por hoja
	assert.True(t, out.Quote.GrandTotal.Equal(decimal.NewFromFloat(20.0)),
		"grandTotal esperado 20.0, fue %s", out.Quote.GrandTotal)
}

// Un usuario solo ve sus propias órdenes; el admin ve cualquiera.
func TestOrderGetByID_ControlDeAcceso(t *testing.T) {
	uc, _, _ := buildOrderUC(nil, studentUser("u1"))

	out, err := uc.Create("u1", orderReq())
	require.NoError(t, err)

	_, err = uc.GetByID(out.ID, "otro-usuario", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.GetByID(out.ID, "otro-usuario", true)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
}

// Solo estados conocidos son aceptados al actualizar.
func TestOrderUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _, _ := buildOrderUC(nil, studentUser("u1"))

	_, err := uc.UpdateStatus("cualquiera", dto.UpdateOrderStatusRequest{Status: "enviado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
