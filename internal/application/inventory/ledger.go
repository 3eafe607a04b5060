package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	dominv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockLedgerUseCase es la única autoridad sobre los saldos de stock.
// Cada operación (Adjust, Move, Reserve, Release, ShipReserved) corre en
// una transacción propia, bloquea con SELECT FOR UPDATE todas las filas
// que va a tocar antes de mutar cualquiera, y escribe exactamente un
// Movement en la misma transacción. Ante cualquier error la transacción
// completa se revierte: ni saldo parcial ni movimiento huérfano.
//
// Las variantes *InTx reciben repositorios ya atados a una transacción
// del caller (las usa el flujo de recepción de órdenes de compra).
type StockLedgerUseCase struct {
	txRunner TxRunner
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner}
}

// AdjustInput entrada para Adjust. Delta positivo o negativo, nunca cero.
type AdjustInput struct {
	ProductID  string
	LocationID string
	Delta      decimal.Decimal
	Reason     string
}

// MoveInput entrada para Move.
type MoveInput struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Qty            decimal.Decimal
	Reason         string
}

// ReserveInput entrada para Reserve, Release y ShipReserved.
type ReserveInput struct {
	ProductID  string
	LocationID string
	Qty        decimal.Decimal
	Reference  string
}

// Adjust suma o resta Delta al on_hand de (producto, ubicación).
// Falla con ErrInsufficientStock si el resultado sería negativo.
func (uc *StockLedgerUseCase) Adjust(ctx context.Context, in AdjustInput) (*entity.StockItem, error) {
	if in.ProductID == "" || in.LocationID == "" || in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var item *entity.StockItem
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		var err error
		item, err = uc.AdjustInTx(stockRepo, movRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustInTx ejecuta el ajuste con repositorios de la transacción del caller.
func (uc *StockLedgerUseCase) AdjustInTx(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	in AdjustInput,
) (*entity.StockItem, error) {
	// Crea la fila si falta y la bloquea (FOR UPDATE) antes de mutar
	item, err := stockRepo.EnsureAndLock(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}
	newOnHand := item.OnHand.Add(in.Delta)
	if newOnHand.IsNegative() {
		return nil, fmt.Errorf("%w: el ajuste dejaría on_hand en %s", domain.ErrInsufficientStock, newOnHand)
	}
	item.OnHand = newOnHand
	item.Version++
	if err := stockRepo.Save(item); err != nil {
		return nil, err
	}
	// El signo del delta decide qué lado del movimiento se llena:
	// entrada -> to_location, consumo -> from_location.
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Qty:       in.Delta.Abs(),
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    in.Reason,
		CreatedAt: time.Now(),
	}
	locationID := in.LocationID
	if in.Delta.IsPositive() {
		mov.ToLocationID = &locationID
	} else {
		mov.FromLocationID = &locationID
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return item, nil
}

// Move traslada Qty de una ubicación a otra. El on_hand total del
// producto entre ambas filas se conserva.
func (uc *StockLedgerUseCase) Move(ctx context.Context, in MoveInput) error {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
		return domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID || !in.Qty.IsPositive() {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		return uc.MoveInTx(stockRepo, movRepo, in)
	})
}

// MoveInTx ejecuta el traslado con repositorios de la transacción del caller.
func (uc *StockLedgerUseCase) MoveInTx(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	in MoveInput,
) error {
	// Bloquea ambas filas en orden total por ID de ubicación, sin
	// importar cuál es origen: evita deadlocks entre traslados cruzados.
	first, second := dominv.OrderLocations(in.FromLocationID, in.ToLocationID)
	a, err := stockRepo.EnsureAndLock(in.ProductID, first)
	if err != nil {
		return err
	}
	b, err := stockRepo.EnsureAndLock(in.ProductID, second)
	if err != nil {
		return err
	}
	src, dst := a, b
	if first != in.FromLocationID {
		src, dst = b, a
	}

	if in.Qty.GreaterThan(src.Available()) {
		return fmt.Errorf("%w: disponible %s, solicitado %s", domain.ErrInsufficientAvailable, src.Available(), in.Qty)
	}
	src.OnHand = src.OnHand.Sub(in.Qty)
	dst.OnHand = dst.OnHand.Add(in.Qty)
	src.Version++
	dst.Version++
	if err := stockRepo.Save(src); err != nil {
		return err
	}
	if err := stockRepo.Save(dst); err != nil {
		return err
	}
	from, to := in.FromLocationID, in.ToLocationID
	return movRepo.Create(&entity.Movement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		FromLocationID: &from,
		ToLocationID:   &to,
		Qty:            in.Qty,
		Type:           entity.MovementTypeTRANSFER,
		Reason:         in.Reason,
		CreatedAt:      time.Now(),
	})
}

// Reserve aparta Qty del disponible (on_hand - reserved).
func (uc *StockLedgerUseCase) Reserve(ctx context.Context, in ReserveInput) (*entity.StockItem, error) {
	if in.ProductID == "" || in.LocationID == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var item *entity.StockItem
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		var err error
		item, err = uc.reserveInTx(stockRepo, movRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *StockLedgerUseCase) reserveInTx(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	in ReserveInput,
) (*entity.StockItem, error) {
	item, err := stockRepo.EnsureAndLock(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if in.Qty.GreaterThan(item.Available()) {
		return nil, fmt.Errorf("%w: disponible %s, solicitado %s", domain.ErrInsufficientAvailable, item.Available(), in.Qty)
	}
	item.Reserved = item.Reserved.Add(in.Qty)
	item.Version++
	if err := stockRepo.Save(item); err != nil {
		return nil, err
	}
	locationID := in.LocationID
	if err := movRepo.Create(&entity.Movement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		FromLocationID: &locationID,
		Qty:            in.Qty,
		Type:           entity.MovementTypeRESERVE,
		Reference:      in.Reference,
		CreatedAt:      time.Now(),
	}); err != nil {
		return nil, err
	}
	return item, nil
}

// Release devuelve Qty del reservado al disponible.
// Falla con ErrOverRelease si Qty supera lo reservado.
func (uc *StockLedgerUseCase) Release(ctx context.Context, in ReserveInput) (*entity.StockItem, error) {
	if in.ProductID == "" || in.LocationID == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var item *entity.StockItem
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		var err error
		item, err = uc.releaseInTx(stockRepo, movRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *StockLedgerUseCase) releaseInTx(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	in ReserveInput,
) (*entity.StockItem, error) {
	item, err := stockRepo.EnsureAndLock(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if in.Qty.GreaterThan(item.Reserved) {
		return nil, fmt.Errorf("%w: reservado %s, solicitado %s", domain.ErrOverRelease, item.Reserved, in.Qty)
	}
	item.Reserved = item.Reserved.Sub(in.Qty)
	item.Version++
	if err := stockRepo.Save(item); err != nil {
		return nil, err
	}
	locationID := in.LocationID
	if err := movRepo.Create(&entity.Movement{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		ToLocationID: &locationID,
		Qty:          in.Qty,
		Type:         entity.MovementTypeRELEASE,
		Reference:    in.Reference,
		CreatedAt:    time.Now(),
	}); err != nil {
		return nil, err
	}
	return item, nil
}

// ShipReserved despacha Qty previamente reservada: decrementa reserved y
// on_hand en la misma cantidad. Verifica los dos estados previos antes
// de mutar cualquiera: si reserved alcanza pero on_hand no, el dato
// persistido ya rompía reserved <= on_hand y se retorna el error fatal
// ErrInvariantViolation (la transacción se revierte y la fila queda
// intacta para investigación).
func (uc *StockLedgerUseCase) ShipReserved(ctx context.Context, in ReserveInput) (*entity.StockItem, error) {
	if in.ProductID == "" || in.LocationID == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var item *entity.StockItem
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		var err error
		item, err = uc.shipReservedInTx(stockRepo, movRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *StockLedgerUseCase) shipReservedInTx(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	in ReserveInput,
) (*entity.StockItem, error) {
	item, err := stockRepo.EnsureAndLock(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if in.Qty.GreaterThan(item.Reserved) {
		return nil, fmt.Errorf("%w: reservado %s, solicitado %s", domain.ErrOverRelease, item.Reserved, in.Qty)
	}
	if in.Qty.GreaterThan(item.OnHand) {
		return nil, fmt.Errorf("%w: reserved %s supera on_hand %s en %s/%s",
			domain.ErrInvariantViolation, item.Reserved, item.OnHand, in.ProductID, in.LocationID)
	}
	item.Reserved = item.Reserved.Sub(in.Qty)
	item.OnHand = item.OnHand.Sub(in.Qty)
	item.Version++
	if err := stockRepo.Save(item); err != nil {
		return nil, err
	}
	locationID := in.LocationID
	if err := movRepo.Create(&entity.Movement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		FromLocationID: &locationID,
		Qty:            in.Qty,
		Type:           entity.MovementTypeOUT,
		Reference:      in.Reference,
		CreatedAt:      time.Now(),
	}); err != nil {
		return nil, err
	}
	return item, nil
}
