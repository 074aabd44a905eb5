package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/aishwaryaxerox/print_shop/internal/events"
	"github.com/aishwaryaxerox/print_shop/internal/logging"
	"github.com/aishwaryaxerox/print_shop/internal/models"
	"github.com/aishwaryaxerox/print_shop/internal/service"
	"github.com/aishwaryaxerox/print_shop/internal/service/search"
	"github.com/aishwaryaxerox/print_shop/internal/transport"
)

type OrderHandler struct {
	Orders   *service.OrderService
	Producer *events.Producer      // optional, nil when eventing is disabled
	ES       *elasticsearch.Client // optional, nil when search is disabled
	Index    string
}

// publish sends a lifecycle event, best effort. Delivery failures are logged
// and never fail the request.
func (h *OrderHandler) publish(c echo.Context, key string, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

// indexOrder mirrors the order into the search index, best effort.
func (h *OrderHandler) indexOrder(c echo.Context, order models.Order) {
	if h.ES == nil {
		return
	}
	if err := search.IndexOrder(c.Request().Context(), h.ES, h.Index, order); err != nil {
		logging.FromContext(c.Request().Context()).Error("order indexing failed", "order_id", order.OrderID, "error", err)
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	order := models.Order{
		OrderID:             req.OrderID,
		FullName:            req.FullName,
		PhoneNumber:         req.PhoneNumber,
		PrintType:           req.PrintType,
		BindingColorType:    req.BindingColorType,
		Copies:              req.Copies,
		PaperSize:           req.PaperSize,
		PrintSide:           req.PrintSide,
		SelectedPages:       req.SelectedPages,
		ColorPages:          req.ColorPages,
		BWPages:             req.BWPages,
		SpecialInstructions: req.SpecialInstructions,
		OrderDate:           req.OrderDate,
		Status:              req.Status,
		TotalCost:           req.TotalCost,
	}

	files := make([]models.OrderFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, models.OrderFile{
			FileName: f.Name,
			FileSize: f.Size,
			FileType: f.Type,
			FilePath: f.Path,
		})
	}

	orderID, err := h.Orders.Create(ctx, &order, files)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_order_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_order_error", "status", 409, "error", err)
			return c.JSON(http.StatusConflict, echo.Map{"error": "Order already exists"})
		default:
			l.Error("create_order_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create order"})
		}
	}

	h.publish(c, orderID, map[string]interface{}{
		"type":       "order_created",
		"order_id":   orderID,
		"files":      len(files),
		"total_cost": order.TotalCost,
	})
	h.indexOrder(c, order)

	l.Info("create_order_success", "order_id", orderID, "files", len(files))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order created successfully",
		"orderId": orderID,
	})
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.get")

	order, err := h.Orders.Get(ctx, c.Param("orderId"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
		}
		l.Error("get_order_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.list")

	orders, err := h.Orders.List(ctx)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch orders"})
	}

	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.update_status")

	orderID := c.Param("orderId")

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if err := h.Orders.UpdateStatus(ctx, orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_status_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
		default:
			l.Error("update_status_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update order status"})
		}
	}

	h.publish(c, orderID, map[string]interface{}{
		"type":     "order_status_updated",
		"order_id": orderID,
		"status":   req.Status,
	})
	if h.ES != nil {
		if order, err := h.Orders.Get(ctx, orderID); err == nil {
			h.indexOrder(c, *order)
		}
	}

	l.Info("update_status_success", "order_id", orderID, "new_status", req.Status)
	return c.JSON(http.StatusOK, echo.Map{"message": "Order status updated successfully"})
}

func (h *OrderHandler) DeleteAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.delete_all")

	if err := h.Orders.DeleteAll(ctx); err != nil {
		l.Error("delete_all_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete orders"})
	}

	h.publish(c, "all", map[string]interface{}{"type": "orders_cleared"})
	if h.ES != nil {
		if err := search.ClearIndex(ctx, h.ES, h.Index); err != nil {
			l.Error("clear_index_failed", "error", err)
		}
	}

	l.Info("delete_all_success", "by", c.Get("username"))
	return c.JSON(http.StatusOK, echo.Map{"message": "All orders deleted successfully"})
}
