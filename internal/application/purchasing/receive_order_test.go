package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appinventory "github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/purchasing"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

const (
	poID  = "po-1"
	lineA = "line-a"
	lineB = "line-b"
	prodA = "prod-a"
	prodB = "prod-b"
	locA  = "loc-a"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// newReceiveFixture arma una orden OPEN con dos líneas: 10 de prodA y
// 5 de prodB.
func newReceiveFixture() (*purchasing.ReceiveOrderUseCase, *fakePurchaseTxRunner) {
	runner := newFakePurchaseTxRunner()
	runner.state.orders[poID] = &entity.PurchaseOrder{
		ID: poID, SupplierID: "sup-1", Status: entity.POStatusOpen,
	}
	runner.state.lines[lineA] = &entity.PurchaseOrderLine{
		ID: lineA, PurchaseOrderID: poID, ProductID: prodA,
		QtyOrdered: d(10), QtyReceived: decimal.Zero,
	}
	runner.state.lines[lineB] = &entity.PurchaseOrderLine{
		ID: lineB, PurchaseOrderID: poID, ProductID: prodB,
		QtyOrdered: d(5), QtyReceived: decimal.Zero,
	}
	runner.state.lineOrder = []string{lineA, lineB}

	ledger := appinventory.NewStockLedgerUseCase(nil) // la recepción solo usa AdjustInTx
	return purchasing.NewReceiveOrderUseCase(runner, ledger), runner
}

func TestReceive_ParcialActualizaLineaYStock(t *testing.T) {
	uc, runner := newReceiveFixture()

	err := uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
		{LineID: lineA, Qty: d(4), LocationID: locA},
	})
	require.NoError(t, err)

	line := runner.state.lines[lineA]
	assert.True(t, line.QtyReceived.Equal(d(4)))

	// La orden sigue abierta: la línea A está parcial y la B sin tocar.
	assert.Equal(t, entity.POStatusOpen, runner.state.orders[poID].Status)

	// Stock entró a la ubicación indicada con un movimiento ADJUSTMENT.
	it := runner.state.stock[stockKey(prodA, locA)]
	require.NotNil(t, it)
	assert.True(t, it.OnHand.Equal(d(4)))
	require.Len(t, runner.state.movements, 1)
	assert.Equal(t, entity.MovementTypeADJUSTMENT, runner.state.movements[0].Type)
	assert.Equal(t, "PO "+poID, runner.state.movements[0].Reason)
}

func TestReceive_CompletaCierraLaOrden(t *testing.T) {
	uc, runner := newReceiveFixture()

	// Dos recepciones: la segunda completa ambas líneas.
	err := uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
		{LineID: lineA, Qty: d(6), LocationID: locA},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusOpen, runner.state.orders[poID].Status)

	err = uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
		{LineID: lineA, Qty: d(4), LocationID: locA},
		{LineID: lineB, Qty: d(5), LocationID: locA},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.POStatusReceived, runner.state.orders[poID].Status,
		"con todas las líneas completas la orden pasa a RECEIVED")
	assert.True(t, runner.state.stock[stockKey(prodA, locA)].OnHand.Equal(d(10)))
	assert.True(t, runner.state.stock[stockKey(prodB, locA)].OnHand.Equal(d(5)))
}

func TestReceive_SobreRecepcionNoAplicaNada(t *testing.T) {
	uc, runner := newReceiveFixture()

	// La primera línea del request es válida; la segunda excede lo
	// pendiente. Todo-o-nada: ni la válida queda aplicada.
	err := uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
		{LineID: lineA, Qty: d(3), LocationID: locA},
		{LineID: lineB, Qty: d(6), LocationID: locA},
	})
	require.ErrorIs(t, err, domain.ErrOverReceipt)

	assert.True(t, runner.state.lines[lineA].QtyReceived.IsZero(),
		"la línea válida del request también se revirtió")
	assert.Nil(t, runner.state.stock[stockKey(prodA, locA)], "sin stock aplicado")
	assert.Empty(t, runner.state.movements, "sin movimientos huérfanos")
	assert.Equal(t, entity.POStatusOpen, runner.state.orders[poID].Status)
}

func TestReceive_LineaDeOtraOrdenEsInvalida(t *testing.T) {
	uc, runner := newReceiveFixture()
	runner.state.orders["po-2"] = &entity.PurchaseOrder{
		ID: "po-2", SupplierID: "sup-1", Status: entity.POStatusOpen,
	}
	runner.state.lines["line-x"] = &entity.PurchaseOrderLine{
		ID: "line-x", PurchaseOrderID: "po-2", ProductID: prodA, QtyOrdered: d(1),
	}
	runner.state.lineOrder = append(runner.state.lineOrder, "line-x")

	err := uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
		{LineID: "line-x", Qty: d(1), LocationID: locA},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
}

func TestReceive_LineaInexistenteEsInvalida(t *testing.T) {
	uc, _ := newReceiveFixture()
	err := uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
		{LineID: "no-existe", Qty: d(1), LocationID: locA},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
}

func TestReceive_OrdenCerradaFalla(t *testing.T) {
	uc, runner := newReceiveFixture()

	for _, status := range []string{entity.POStatusReceived, entity.POStatusCancelled} {
		runner.state.orders[poID].Status = status
		err := uc.Receive(context.Background(), poID, []dto.ReceiveLineRequest{
			{LineID: lineA, Qty: d(1), LocationID: locA},
		})
		assert.ErrorIs(t, err, domain.ErrOrderClosed, "estado %s", status)
	}
}

func TestReceive_OrdenInexistente(t *testing.T) {
	uc, _ := newReceiveFixture()
	err := uc.Receive(context.Background(), "po-fantasma", []dto.ReceiveLineRequest{
		{LineID: lineA, Qty: d(1), LocationID: locA},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceive_EntradasInvalidas(t *testing.T) {
	uc, _ := newReceiveFixture()
	ctx := context.Background()

	assert.ErrorIs(t, uc.Receive(ctx, "", []dto.ReceiveLineRequest{{LineID: lineA, Qty: d(1), LocationID: locA}}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Receive(ctx, poID, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Receive(ctx, poID, []dto.ReceiveLineRequest{{LineID: lineA, Qty: decimal.Zero, LocationID: locA}}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Receive(ctx, poID, []dto.ReceiveLineRequest{{LineID: lineA, Qty: d(-1), LocationID: locA}}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Receive(ctx, poID, []dto.ReceiveLineRequest{{LineID: lineA, Qty: d(1), LocationID: ""}}), domain.ErrInvalidInput)
}

func TestReceive_RecepcionExactaPorPartes(t *testing.T) {
	uc, runner := newReceiveFixture()
	ctx := context.Background()

	// 10 en tres partes contra la línea A y 5 de una contra la B.
	for _, qty := range []int64{3, 3, 4} {
		require.NoError(t, uc.Receive(ctx, poID, []dto.ReceiveLineRequest{
			{LineID: lineA, Qty: d(qty), LocationID: locA},
		}))
	}
	require.NoError(t, uc.Receive(ctx, poID, []dto.ReceiveLineRequest{
		{LineID: lineB, Qty: d(5), LocationID: locA},
	}))

	assert.Equal(t, entity.POStatusReceived, runner.state.orders[poID].Status)

	// Recibir de más sobre una orden ya cerrada falla por estado.
	err := uc.Receive(ctx, poID, []dto.ReceiveLineRequest{
		{LineID: lineA, Qty: d(1), LocationID: locA},
	})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}
