package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el ledger. El fakeTxRunner emula la semántica de
// una transacción real: serializa los Run con un mutex (como lo harían
// los bloqueos de fila) y restaura el estado completo si fn falla.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	stock     map[string]*entity.StockItem // key: productID|locationID
	movements []*entity.Movement
}

func newMemState() *memState {
	return &memState{stock: make(map[string]*entity.StockItem)}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.stock {
		copia := *v
		c.stock[k] = &copia
	}
	c.movements = append([]*entity.Movement(nil), s.movements...)
	return c
}

func stockKey(productID, locationID string) string {
	return productID + "|" + locationID
}

type fakeStockRepo struct {
	state *memState
	// si >= 0, el Save número failSaveAt (contando desde 0) falla
	failSaveAt int
	saves      int
}

var _ repository.StockItemRepository = (*fakeStockRepo)(nil)

var errSaveInyectado = errors.New("fallo inyectado en save")

func (r *fakeStockRepo) Get(productID, locationID string) (*entity.StockItem, error) {
	if it, ok := r.state.stock[stockKey(productID, locationID)]; ok {
		copia := *it
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) EnsureAndLock(productID, locationID string) (*entity.StockItem, error) {
	key := stockKey(productID, locationID)
	if it, ok := r.state.stock[key]; ok {
		copia := *it
		return &copia, nil
	}
	it := &entity.StockItem{
		ID:         key,
		ProductID:  productID,
		LocationID: locationID,
		Version:    1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	r.state.stock[key] = it
	copia := *it
	return &copia, nil
}

func (r *fakeStockRepo) Save(item *entity.StockItem) error {
	if r.failSaveAt >= 0 && r.saves == r.failSaveAt {
		return errSaveInyectado
	}
	r.saves++
	copia := *item
	r.state.stock[stockKey(item.ProductID, item.LocationID)] = &copia
	return nil
}

func (r *fakeStockRepo) List(productID, locationID string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.state.stock {
		if productID != "" && it.ProductID != productID {
			continue
		}
		if locationID != "" && it.LocationID != locationID {
			continue
		}
		copia := *it
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeStockRepo) ListDetailed(productID, locationID string) ([]*repository.StockItemDetail, error) {
	items, _ := r.List(productID, locationID)
	out := make([]*repository.StockItemDetail, 0, len(items))
	for _, it := range items {
		out = append(out, &repository.StockItemDetail{
			Item:         *it,
			SKU:          "SKU-" + it.ProductID,
			ProductName:  "Producto " + it.ProductID,
			LocationCode: it.LocationID,
			LocationName: "Ubicación " + it.LocationID,
		})
	}
	return out, nil
}

type fakeMovementRepo struct {
	state *memState
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	copia := *m
	r.state.movements = append(r.state.movements, &copia)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.state.movements {
		if m.ID == id {
			copia := *m
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, _, _ *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.state.movements {
		if m.ProductID == productID {
			copia := *m
			out = append(out, &copia)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeMovementRepo) ListByLocation(locationID string, _, _ *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.state.movements {
		if (m.FromLocationID != nil && *m.FromLocationID == locationID) ||
			(m.ToLocationID != nil && *m.ToLocationID == locationID) {
			copia := *m
			out = append(out, &copia)
		}
	}
	return paginate(out, limit, offset), nil
}

func paginate(list []*entity.Movement, limit, offset int) []*entity.Movement {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// fakeTxRunner ejecuta fn contra el estado compartido bajo mutex y
// deshace todo si fn retorna error.
type fakeTxRunner struct {
	mu    sync.Mutex
	state *memState
	// failSaveAt se propaga al fakeStockRepo de cada transacción
	failSaveAt int
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{state: newMemState(), failSaveAt: -1}
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	backup := r.state.clone()
	stockRepo := &fakeStockRepo{state: r.state, failSaveAt: r.failSaveAt}
	movRepo := &fakeMovementRepo{state: r.state}
	if err := fn(stockRepo, movRepo); err != nil {
		r.state.stock = backup.stock
		r.state.movements = backup.movements
		return err
	}
	return nil
}

// item devuelve el estado confirmado de un saldo (para asserts).
func (r *fakeTxRunner) item(productID, locationID string) *entity.StockItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.stock[stockKey(productID, locationID)]
}

// movementCount cuenta los movimientos confirmados.
func (r *fakeTxRunner) movementCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.state.movements)
}

// lastMovement devuelve el último movimiento confirmado o nil.
func (r *fakeTxRunner) lastMovement() *entity.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.state.movements) == 0 {
		return nil
	}
	return r.state.movements[len(r.state.movements)-1]
}
