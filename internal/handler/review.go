package handler

import (
	"net/http"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) PostReview(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.lendingSvc.PostReview(ctx, userName, req); err != nil {
		if errors.Is(err, errs.ErrDuplicateReview) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) HasReviewed(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := bookIDParam(c, "bookId")
	if err != nil {
		return err
	}

	reviewed, err := h.lendingSvc.HasReviewed(ctx, userName, bookID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviewed)
}

func (h *Handler) ListReviews(c echo.Context) error {
	bookID, err := bookIDParam(c, "bookId")
	if err != nil {
		return err
	}
	reviews, err := h.lendingSvc.ListReviews(c.Request().Context(), bookID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}
