package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/handler"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"
)

type Server struct {
	echo         *echo.Echo
	userHandler  *handler.UserHandler
	itemHandler  *handler.ItemHandler
	cartHandler  *handler.CartHandler
	orderHandler *handler.OrderHandler
}

func NewServer(
	userService service.UserService,
	itemService service.ItemService,
	cartService service.CartService,
	orderService service.OrderService,
	sessions *auth.Sessions,
	userRepo repository.UserRepository,
	log *logger.Logger,
	cookieMaxAgeDays int,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.Auth(sessions, userRepo))

	s := &Server{
		echo:         e,
		userHandler:  handler.NewUserHandler(userService, cookieMaxAgeDays),
		itemHandler:  handler.NewItemHandler(itemService),
		cartHandler:  handler.NewCartHandler(cartService),
		orderHandler: handler.NewOrderHandler(orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	api.POST("/signup", s.userHandler.Signup)
	api.POST("/signin", s.userHandler.Signin)
	api.POST("/signout", s.userHandler.Signout)
	api.POST("/request-reset", s.userHandler.RequestReset)
	api.POST("/reset-password", s.userHandler.ResetPassword)
	api.GET("/me", s.userHandler.Me)
	api.GET("/users", s.userHandler.ListUsers)
	api.POST("/users/:userID/permissions", s.userHandler.UpdatePermissions)

	// -------- items --------
	api.GET("/items", s.itemHandler.List)
	api.GET("/items/:itemID", s.itemHandler.Get)
	api.POST("/items", s.itemHandler.Create)
	api.PATCH("/items/:itemID", s.itemHandler.Update)
	api.DELETE("/items/:itemID", s.itemHandler.Delete)

	// -------- cart --------
	api.GET("/cart", s.cartHandler.Get)
	api.POST("/cart", s.cartHandler.Add)
	api.DELETE("/cart/:cartItemID", s.cartHandler.Remove)

	// -------- orders --------
	api.POST("/orders", s.orderHandler.Place)
	api.GET("/orders", s.orderHandler.List)
	api.GET("/orders/:orderID", s.orderHandler.Get)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
