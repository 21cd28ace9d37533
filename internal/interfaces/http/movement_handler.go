package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/inventory"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/pkg/metrics"
)

// MovementHandler maneja registro y consultas del libro de movimientos
// (protegido). Los contadores Prometheus se incrementan aquí, no en el caso de
// uso: el núcleo no sabe de métricas.
type MovementHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	queryUC    *inventory.MovementQueryUseCase
	exportUC   *inventory.ExportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(registerUC *inventory.RegisterMovementUseCase, queryUC *inventory.MovementQueryUseCase, exportUC *inventory.ExportUseCase) *MovementHandler {
	return &MovementHandler{registerUC: registerUC, queryUC: queryUC, exportUC: exportUC}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de stock (IN)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Entrada"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/in [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.RegisterEntry(c.UserContext(), in.ProductID, in.Quantity, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementTypeIN).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterIssue godoc
// @Summary      Registrar salida de stock (OUT)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Salida"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente, incluye available"
// @Router       /api/movements/out [post]
func (h *MovementHandler) RegisterIssue(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.RegisterIssue(c.UserContext(), in.ProductID, in.Quantity, in.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockTotal.Inc()
		}
		return respondError(c, err)
	}
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementTypeOUT).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterAdjustment godoc
// @Summary      Registrar ajuste absoluto de stock (ADJUSTMENT)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdjustmentRequest  true  "Ajuste"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/adjustment [post]
func (h *MovementHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.RegisterAdjustment(c.UserContext(), in.ProductID, in.NewQuantity, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementTypeADJUSTMENT).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más reciente primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar movimientos como XLSX
// @Tags         movements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/movements/export [get]
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	data, err := h.exportUC.ExportMovements()
	if err != nil {
		return respondError(c, err)
	}
	filename := "movimientos_" + time.Now().Format("20060102_150405") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ListByPeriod godoc
// @Summary      Listar movimientos por rango de fechas (inclusivo)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Inicio RFC3339"
// @Param        to    query  string  true  "Fin RFC3339"
// @Success      200   {array}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/period [get]
func (h *MovementHandler) ListByPeriod(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, usar RFC3339"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, usar RFC3339"})
	}
	out, err := h.queryUC.ListByPeriod(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByType godoc
// @Summary      Listar movimientos por tipo
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "IN | OUT | ADJUSTMENT"
// @Success      200   {array}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/type/{type} [get]
func (h *MovementHandler) ListByType(c *fiber.Ctx) error {
	out, err := h.queryUC.ListByType(c.Params("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar movimientos de un producto
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/product/{productId} [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.queryUC.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
