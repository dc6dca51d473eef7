package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/application/usecase"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]*entity.Product{}}
}

func (m *memProductRepo) Create(p *entity.Product) error {
	if _, ok := m.byID[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}
func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (m *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}
func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
func (m *memProductRepo) Delete(id string) error {
	delete(m.byID, id)
	return nil
}

type memUserRepo struct {
	byID map[string]*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error { m.byID[u.ID] = u; return nil }
func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	return m.byID[id], nil
}
func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) Update(u *entity.User) error { m.byID[u.ID] = u; return nil }
func (m *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

// memNotificationRepo guarda las notificaciones creadas para inspección.
type memNotificationRepo struct {
	created []*entity.Notification
}

func (m *memNotificationRepo) Create(n *entity.Notification) error {
	m.created = append(m.created, n)
	return nil
}
func (m *memNotificationRepo) GetByID(id string) (*entity.Notification, error) { return nil, nil }
func (m *memNotificationRepo) Update(n *entity.Notification) error             { return nil }
func (m *memNotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	return m.created, nil
}
func (m *memNotificationRepo) Delete(id string) error { return nil }

const ownerID = "owner-1"

func buildProductUC(t *testing.T) (*usecase.ProductUseCase, *memProductRepo, *memNotificationRepo) {
	t.Helper()
	products := newMemProductRepo()
	users := &memUserRepo{byID: map[string]*entity.User{
		ownerID: {ID: ownerID, Email: "owner@test.local", IsActive: true},
	}}
	notifications := &memNotificationRepo{}
	uc := usecase.NewProductUseCase(products, users, notifications, 10)
	return uc, products, notifications
}

func seedProduct(t *testing.T, uc *usecase.ProductUseCase, name string, stock int) string {
	t.Helper()
	created, err := uc.Create(dto.CreateProductRequest{
		Name:          name,
		Price:         decimal.NewFromInt(100),
		StockQuantity: stock,
		UserID:        ownerID,
	})
	require.NoError(t, err)
	return created.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / Get / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_DuenoInexistente(t *testing.T) {
	uc, _, _ := buildProductUC(t)
	_, err := uc.Create(dto.CreateProductRequest{
		Name:   "Laptop",
		Price:  decimal.NewFromInt(900),
		UserID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc, _, _ := buildProductUC(t)
	_, err := uc.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc, _, _ := buildProductUC(t)
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de alerta de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_StockBajoGeneraNotificacion(t *testing.T) {
	uc, _, notifications := buildProductUC(t)
	id := seedProduct(t, uc, "iPhone 21", 50)

	stock := 5
	_, err := uc.Update(id, dto.UpdateProductRequest{StockQuantity: &stock})
	require.NoError(t, err)

	require.Len(t, notifications.created, 1, "se esperaba exactamente una notificación")
	n := notifications.created[0]
	assert.Equal(t, ownerID, n.UserID)
	assert.Equal(t, "Low stock alert for iPhone 21. Only 5 left.", n.Message)
	assert.False(t, n.IsRead)
	assert.WithinDuration(t, time.Now(), n.CreatedAt, time.Minute)
}

func TestProductUpdate_StockSuficienteNoNotifica(t *testing.T) {
	uc, _, notifications := buildProductUC(t)
	id := seedProduct(t, uc, "Samsung Galaxy", 50)

	stock := 10 // en el umbral exacto no hay alerta
	_, err := uc.Update(id, dto.UpdateProductRequest{StockQuantity: &stock})
	require.NoError(t, err)

	assert.Empty(t, notifications.created)
}

// El chequeo corre en cada update aunque no se toque stock_quantity:
// dos updates seguidos sobre un producto bajo de stock producen dos alertas.
func TestProductUpdate_SinDeduplicacion(t *testing.T) {
	uc, _, notifications := buildProductUC(t)
	id := seedProduct(t, uc, "Google Pixel", 3)

	name := "Google Pixel 9"
	_, err := uc.Update(id, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	price := decimal.NewFromInt(750)
	_, err = uc.Update(id, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	require.Len(t, notifications.created, 2)
	assert.Equal(t, "Low stock alert for Google Pixel 9. Only 3 left.", notifications.created[0].Message)
	assert.Equal(t, notifications.created[0].Message, notifications.created[1].Message)
}

func TestProductUpdate_ParcialConservaCampos(t *testing.T) {
	uc, products, _ := buildProductUC(t)
	id := seedProduct(t, uc, "Monitor", 30)

	price := decimal.NewFromInt(250)
	updated, err := uc.Update(id, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Monitor", updated.Name)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, 30, updated.StockQuantity)

	stored, err := products.GetByID(id)
	require.NoError(t, err)
	assert.True(t, price.Equal(stored.Price))
}

func TestProductUpdate_NombreVacioRechazado(t *testing.T) {
	uc, _, _ := buildProductUC(t)
	id := seedProduct(t, uc, "Teclado", 40)

	empty := ""
	_, err := uc.Update(id, dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
