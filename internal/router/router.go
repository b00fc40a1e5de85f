package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bistroboss/internal/auth"
	"bistroboss/internal/handler"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth    *handler.AuthHandler
	Menu    *handler.MenuHandler
	Review  *handler.ReviewHandler
	Cart    *handler.CartHandler
	User    *handler.UserHandler
	Payment *handler.PaymentHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, guard *auth.Guard, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Bistro boss is running")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	verify := guard.VerifyToken()
	admin := guard.RequireAdmin()

	// Tokens
	e.POST("/jwt", h.Auth.IssueToken)
	e.POST("/logout", h.Auth.Logout, verify)

	// Menu and reviews
	e.GET("/menu", h.Menu.ListMenu)
	e.GET("/menu/:id", h.Menu.GetMenuItem)
	e.POST("/menu", h.Menu.CreateMenuItem)
	e.PATCH("/menu/:id", h.Menu.UpdateMenuItem)
	e.DELETE("/menu/:id", h.Menu.DeleteMenuItem)
	e.GET("/reviews", h.Review.ListReviews)

	// Carts
	e.GET("/carts", h.Cart.ListCart)
	e.POST("/carts", h.Cart.AddToCart)
	e.DELETE("/carts/:id", h.Cart.RemoveFromCart)

	// Users
	e.GET("/users", h.User.ListUsers, verify, admin)
	e.GET("/users/admin/:email", h.User.AdminStatus, verify, guard.RequireSelf("email"))
	e.POST("/users", h.User.CreateUser)
	e.DELETE("/users/:id", h.User.DeleteUser, verify, admin)
	e.PATCH("/users/admin/:id", h.User.PromoteToAdmin, verify, admin)

	// Payments
	e.POST("/create-payment-intent", h.Payment.CreateChargeIntent)
	e.GET("/payments/:email", h.Payment.ListPayments, verify, guard.RequireSelf("email"))
	e.POST("/payments", h.Payment.RecordPayment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
