package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del ledger de stock:
// mutaciones (adjust, move, reserve, release, ship) y consultas
// (snapshot, movements, reporte PDF).
type InventoryHandler struct {
	ledger  *inventory.StockLedgerUseCase
	queries *inventory.InventoryQueryUseCase
	report  *inventory.SnapshotReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	ledger *inventory.StockLedgerUseCase,
	queries *inventory.InventoryQueryUseCase,
	report *inventory.SnapshotReportUseCase,
) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, queries: queries, report: report}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  Suma o resta delta al saldo físico de (producto, ubicación).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, location_id, delta (≠0), reason"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.ledger.Adjust(c.Context(), inventory.AdjustInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Delta:      in.Delta,
		Reason:     in.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(inventory.ToStockItemResponse(item))
}

// Move godoc
// @Summary      Trasladar stock entre ubicaciones
// @Description  Mueve qty del disponible de una ubicación a otra. El total
//
//	físico del producto se conserva.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveStockRequest  true  "product_id, from_location_id, to_location_id, qty > 0"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/move [post]
func (h *InventoryHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledger.Move(c.Context(), inventory.MoveInput{
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Qty:            in.Qty,
		Reason:         in.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "traslado registrado"})
}

// Reserve godoc
// @Summary      Reservar stock
// @Description  Aparta qty del disponible (on_hand - reserved) sin moverlo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReserveStockRequest  true  "product_id, location_id, qty > 0, reference"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/reserve [post]
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	return h.reserveLike(c, h.ledger.Reserve)
}

// Release godoc
// @Summary      Liberar reserva
// @Description  Devuelve qty del reservado al disponible.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReserveStockRequest  true  "product_id, location_id, qty > 0, reference"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/release [post]
func (h *InventoryHandler) Release(c *fiber.Ctx) error {
	return h.reserveLike(c, h.ledger.Release)
}

// Ship godoc
// @Summary      Despachar stock reservado
// @Description  Decrementa reserved y on_hand en la misma cantidad.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReserveStockRequest  true  "product_id, location_id, qty > 0, reference"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/ship [post]
func (h *InventoryHandler) Ship(c *fiber.Ctx) error {
	return h.reserveLike(c, h.ledger.ShipReserved)
}

// Snapshot godoc
// @Summary      Snapshot de existencias
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Success      200  {array}   dto.StockItemResponse
// @Router       /api/inventory/snapshot [get]
func (h *InventoryHandler) Snapshot(c *fiber.Ctx) error {
	var q dto.SnapshotQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	items, err := h.queries.Snapshot(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// SnapshotPDF godoc
// @Summary      Snapshot de existencias en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Success      200  {file}    binary
// @Router       /api/inventory/snapshot.pdf [get]
func (h *InventoryHandler) SnapshotPDF(c *fiber.Ctx) error {
	var q dto.SnapshotQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	pdfBytes, err := h.report.GeneratePDF(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="existencias.pdf"`)
	return c.Send(pdfBytes)
}

// Movements godoc
// @Summary      Log de movimientos
// @Description  Requiere exactamente un filtro: product_id o location_id.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación (origen o destino)"
// @Param        from    query  string  false  "Fecha mínima (RFC3339)"
// @Param        to      query  string  false  "Fecha máxima (RFC3339)"
// @Param        limit   query  int     false  "default 50"
// @Param        offset  query  int     false  "default 0"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var q dto.MovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	list, err := h.queries.Movements(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}

// reserveLike factoriza reserve/release/ship: mismo body, misma respuesta.
func (h *InventoryHandler) reserveLike(
	c *fiber.Ctx,
	op func(ctx context.Context, in inventory.ReserveInput) (*entity.StockItem, error),
) error {
	var in dto.ReserveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := op(c.Context(), inventory.ReserveInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Qty:        in.Qty,
		Reference:  in.Reference,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(inventory.ToStockItemResponse(item))
}
