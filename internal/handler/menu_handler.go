package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistroboss/internal/model"
	"bistroboss/internal/service"
)

// MenuHandler handles menu endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListMenu godoc
// @Summary List the menu
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.menuService.ListMenu(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetMenuItem godoc
// @Summary Get a menu item
// @Description Responds with null when no item has the id.
// @Tags menu
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} model.MenuItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu/{id} [get]
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	item, err := h.menuService.GetMenuItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param item body model.MenuItem true "Menu item"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var item model.MenuItem
	if err := c.Bind(&item); err != nil {
		return invalidBody()
	}
	item.ID = nil

	res, err := h.menuService.CreateMenuItem(c.Request().Context(), &item)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Only name, category, price, recipe and image are applied.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item id"
// @Param patch body model.MenuItemPatch true "Fields to change"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu/{id} [patch]
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	var patch model.MenuItemPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody()
	}

	res, err := h.menuService.UpdateMenuItem(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteMenuItem godoc
// @Summary Remove a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} model.DeleteResult
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	res, err := h.menuService.DeleteMenuItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
