package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/core/ports"
)

// AnalyticsHandler serves the rollup endpoints. Response bodies are bare
// arrays and objects, matching the contract the frontend already consumes.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// TopProducts handles GET /analytics/top-products.
//
// @Summary      Most stocked products
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows (default 5)"
// @Success      200    {array}   domain.Product
// @Failure      401    {object}  errorResponse
// @Router       /analytics/top-products [get]
func (h *AnalyticsHandler) TopProducts(c echo.Context) error {
	products, err := h.service.TopProducts(c.Request().Context(), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// TopTypes handles GET /analytics/top-types.
//
// @Summary      Product counts grouped by type
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TypeCount
// @Failure      401  {object}  errorResponse
// @Router       /analytics/top-types [get]
func (h *AnalyticsHandler) TopTypes(c echo.Context) error {
	types, err := h.service.TopTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// StockSummary handles GET /analytics/stock-summary. Admin only.
//
// @Summary      Aggregate stock quantity and value
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.StockSummary
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /analytics/stock-summary [get]
func (h *AnalyticsHandler) StockSummary(c echo.Context) error {
	summary, err := h.service.StockSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Recent handles GET /analytics/recent.
//
// @Summary      Products created within a recency window
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Window in days (default 1)"
// @Success      200   {array}   domain.Product
// @Failure      401   {object}  errorResponse
// @Router       /analytics/recent [get]
func (h *AnalyticsHandler) Recent(c echo.Context) error {
	products, err := h.service.RecentProducts(c.Request().Context(), queryInt(c, "days", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// LowStock handles GET /products/low-stock.
//
// @Summary      Products running low on stock
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        threshold  query     int  false  "Quantity threshold (default 5)"
// @Success      200        {array}   domain.Product
// @Failure      401        {object}  errorResponse
// @Router       /products/low-stock [get]
func (h *AnalyticsHandler) LowStock(c echo.Context) error {
	products, err := h.service.LowStock(c.Request().Context(), queryInt(c, "threshold", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
