package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/purchasing"
)

// PurchaseHandler maneja las peticiones HTTP de órdenes de compra y su
// recepción.
type PurchaseHandler struct {
	orderUC   *purchasing.PurchaseOrderUseCase
	receiveUC *purchasing.ReceiveOrderUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(orderUC *purchasing.PurchaseOrderUseCase, receiveUC *purchasing.ReceiveOrderUseCase) *PurchaseHandler {
	return &PurchaseHandler{orderUC: orderUC, receiveUC: receiveUC}
}

// CreateOrder godoc
// @Summary      Crear orden de compra
// @Description  Crea una orden en estado OPEN para un proveedor existente.
// @Tags         purchase
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "supplier_id"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase/orders [post]
func (h *PurchaseHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.orderUC.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// AddLine godoc
// @Summary      Agregar línea a la orden
// @Tags         purchase
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.AddOrderLineRequest  true  "product_id, qty_ordered, unit_cost"
// @Success      201   {object}  dto.OrderLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase/orders/{id}/lines [post]
func (h *PurchaseHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddOrderLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.orderUC.AddLine(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// GetOrder godoc
// @Summary      Orden de compra por ID (con líneas)
// @Tags         purchase
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase/orders/{id} [get]
func (h *PurchaseHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orderUC.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

// ListOrders godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/purchase/orders [get]
func (h *PurchaseHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.orderUC.List(page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CancelOrder godoc
// @Summary      Cancelar orden de compra
// @Description  Solo órdenes DRAFT u OPEN; RECEIVED y CANCELLED son terminales.
// @Tags         purchase
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase/orders/{id}/cancel [post]
func (h *PurchaseHandler) CancelOrder(c *fiber.Ctx) error {
	if err := h.orderUC.Cancel(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden cancelada"})
}

// ReceiveOrder godoc
// @Summary      Recibir mercancía contra la orden
// @Description  Aplica recepciones (parciales o totales) línea por línea en una
//
//	sola transacción: sube qty_received y entra el stock a la ubicación
//	indicada. Si alguna línea falla, ninguna queda aplicada. Cuando
//	todas las líneas quedan completas la orden pasa a RECEIVED.
//
// @Tags         purchase
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.ReceiveOrderRequest  true  "lines: [{line_id, qty, location_id}]"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase/orders/{id}/receive [post]
func (h *PurchaseHandler) ReceiveOrder(c *fiber.Ctx) error {
	var in dto.ReceiveOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	poID := c.Params("id")
	if err := h.receiveUC.Receive(c.Context(), poID, in.Lines); err != nil {
		return writeError(c, err)
	}
	order, err := h.orderUC.GetByID(poID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}
