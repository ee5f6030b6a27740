package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"
)

type ItemHandler struct {
	itemService service.ItemService
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

func (h *ItemHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.CreateItemRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.itemService.Create(ctx, middleware.CurrentUser(c), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.itemService.Get(ctx, c.Param("itemID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.itemService.List(ctx, offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

func (h *ItemHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.UpdateItemRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.itemService.Update(ctx, middleware.CurrentUser(c), c.Param("itemID"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.itemService.Delete(ctx, middleware.CurrentUser(c), c.Param("itemID")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
