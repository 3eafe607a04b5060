package purchasing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/purchasing"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func newOrderFixture() (*purchasing.PurchaseOrderUseCase, *fakePORepo) {
	poRepo := &fakePORepo{state: newPurchaseState()}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Proveedor Uno", IsActive: true},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		prodA: {ID: prodA, SKU: "SKU-A", Name: "Producto A", IsActive: true},
	}}
	return purchasing.NewPurchaseOrderUseCase(poRepo, supplierRepo, productRepo), poRepo
}

func TestCreateOrder_NaceOpen(t *testing.T) {
	uc, _ := newOrderFixture()

	order, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusOpen, order.Status)
	assert.Equal(t, "sup-1", order.SupplierID)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrder_ProveedorInexistente(t *testing.T) {
	uc, _ := newOrderFixture()
	_, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddLine_AgregaALaOrden(t *testing.T) {
	uc, _ := newOrderFixture()
	order, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	cost := decimal.NewFromInt(25)
	line, err := uc.AddLine(order.ID, dto.AddOrderLineRequest{
		ProductID: prodA, QtyOrdered: d(10), UnitCost: &cost,
	})
	require.NoError(t, err)
	assert.True(t, line.QtyOrdered.Equal(d(10)))
	assert.True(t, line.QtyReceived.IsZero())

	full, err := uc.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, full.Lines, 1)
	assert.Equal(t, line.ID, full.Lines[0].ID)
}

func TestAddLine_ValidaEntradas(t *testing.T) {
	uc, _ := newOrderFixture()
	order, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	_, err = uc.AddLine(order.ID, dto.AddOrderLineRequest{ProductID: prodA, QtyOrdered: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty_ordered debe ser positiva")

	negativo := decimal.NewFromInt(-1)
	_, err = uc.AddLine(order.ID, dto.AddOrderLineRequest{ProductID: prodA, QtyOrdered: d(1), UnitCost: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unit_cost no puede ser negativo")

	_, err = uc.AddLine(order.ID, dto.AddOrderLineRequest{ProductID: "prod-fantasma", QtyOrdered: d(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddLine_OrdenCerradaFalla(t *testing.T) {
	uc, poRepo := newOrderFixture()
	order, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)
	require.NoError(t, poRepo.UpdateStatus(order.ID, entity.POStatusCancelled))

	_, err = uc.AddLine(order.ID, dto.AddOrderLineRequest{ProductID: prodA, QtyOrdered: d(1)})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestCancel_EsTerminal(t *testing.T) {
	uc, poRepo := newOrderFixture()
	order, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(order.ID))
	assert.Equal(t, entity.POStatusCancelled, poRepo.state.orders[order.ID].Status)

	// Cancelar dos veces falla: CANCELLED es terminal.
	err = uc.Cancel(order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestCancel_OrdenRecibidaFalla(t *testing.T) {
	uc, poRepo := newOrderFixture()
	order, err := uc.Create(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)
	require.NoError(t, poRepo.UpdateStatus(order.ID, entity.POStatusReceived))

	assert.ErrorIs(t, uc.Cancel(order.ID), domain.ErrOrderClosed)
}

func TestGetByID_OrdenInexistente(t *testing.T) {
	uc, _ := newOrderFixture()
	_, err := uc.GetByID("po-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
