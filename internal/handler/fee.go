package handler

import (
	"net/http"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) GetFees(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	acc, err := h.lendingSvc.GetFeeAccount(ctx, userName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, acc)
}

func (h *Handler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := auth.GetUserName(ctx); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	intent, err := h.payments.CreateIntent(ctx, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, intent)
}

// CompletePayment is the synchronous confirmation path: the caller reports a
// successful charge and the fee balance is zeroed. The async path is the
// fee-payments topic consumer.
func (h *Handler) CompletePayment(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	if err := h.lendingSvc.SettleFee(ctx, userName); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
