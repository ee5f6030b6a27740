package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	cartItems, err := h.cartService.GetCart(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartItems)
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	req := &dto.AddToCartRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cartItem, err := h.cartService.AddToCart(ctx, middleware.UserID(c), req.ItemID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartItem)
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.RemoveFromCart(ctx, middleware.UserID(c), c.Param("cartItemID")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "removed"})
}
