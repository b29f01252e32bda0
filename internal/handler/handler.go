package handler

import (
	"net/http"
	"strconv"

	md "github.com/bibliotheca/lending-service/pkg/middleware"
	"github.com/bibliotheca/lending-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	lendingSvc LendingService
	payments   PaymentClient
	log        *zap.Logger
}

func New(lendingSvc LendingService, payments PaymentClient, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		payments:   payments,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/reviews", h.ListReviews)

	secure := api.Group("/secure", md.BearerIdentity)
	secure.GET("/loans", h.ListShelfLoans)
	secure.GET("/loans/count", h.CountLoans)
	secure.GET("/loans/ischeckedout", h.IsCheckedOut)
	secure.PUT("/loans/checkout", h.Checkout)
	secure.PUT("/loans/return", h.Return)
	secure.PUT("/loans/renew", h.Renew)
	secure.GET("/history", h.ListHistory)

	secure.POST("/reviews", h.PostReview)
	secure.GET("/reviews/byuser", h.HasReviewed)

	secure.GET("/fees", h.GetFees)
	secure.POST("/fees/payment-intent", h.CreatePaymentIntent)
	secure.PUT("/fees/payment-complete", h.CompletePayment)

	secure.POST("/messages", h.PostMessage)
	secure.GET("/messages", h.ListMessages)

	admin := api.Group("/admin", md.BearerIdentity, md.AdminOnly)
	admin.PUT("/books/quantity/increase", h.IncreaseQuantity)
	admin.PUT("/books/quantity/decrease", h.DecreaseQuantity)
	admin.POST("/books", h.AddBook)
	admin.DELETE("/books", h.DeleteBook)
	admin.PUT("/messages", h.AnswerMessage)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func bookIDParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		raw = c.Param(name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}
