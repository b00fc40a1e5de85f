package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/internal/model"
	"bistroboss/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// ListCart godoc
// @Summary List cart items
// @Description Without an email every cart item is returned.
// @Tags carts
// @Produce json
// @Param email query string false "Owner email"
// @Success 200 {array} model.CartItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	items, err := h.cartService.ListCart(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary Add an item to a cart
// @Tags carts
// @Accept json
// @Produce json
// @Param item body model.CartItem true "Cart item"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		return invalidBody()
	}
	item.ID = primitive.NilObjectID

	res, err := h.cartService.AddToCart(c.Request().Context(), &item)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// RemoveFromCart godoc
// @Summary Remove a cart item
// @Tags carts
// @Produce json
// @Param id path string true "Cart item id"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	res, err := h.cartService.RemoveFromCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
