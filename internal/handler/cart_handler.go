package handler

import (
	"net/http"

	"storefront/internal/pricing"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cart/summary
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type CartSummaryItemRequest struct {
	ProductID int64                    `json:"product_id"`
	Quantity  int64                    `json:"quantity"`
	Product   *pricing.ProductSnapshot `json:"product,omitempty"`
}

type CartSummaryRequest struct {
	Items []CartSummaryItemRequest `json:"items"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/cart/summary", h.summarize)
}

func (h *CartHandler) summarize(c echo.Context) error {
	var req CartSummaryRequest
	if err := c.Bind(&req); err != nil {
		// Malformed cart input degrades to the zero summary, never 4xx.
		req.Items = nil
	}

	rows := make([]usecase.CartLineInput, 0, len(req.Items))
	for _, it := range req.Items {
		rows = append(rows, usecase.CartLineInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Product:   it.Product,
		})
	}

	out, err := h.uc.Summarize(c.Request().Context(), rows)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
