package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookify/rent-service/internal/model"
	"github.com/bookify/rent-service/pkg/auth"
)

func (h *Handler) CreateRent(c echo.Context) error {
	ctx := c.Request().Context()
	username, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateRentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Username = username
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rent, err := h.rentSvc.RentBook(ctx, req.BookID, username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rent)
}

func (h *Handler) ReturnRent(c echo.Context) error {
	ctx := c.Request().Context()
	username, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentUid := c.Param("rentUid")
	if rentUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "rentUid is empty")
	}

	rent, err := h.rentSvc.ReturnBook(ctx, rentUid, username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rent)
}

func (h *Handler) GetMyRents(c echo.Context) error {
	ctx := c.Request().Context()
	username, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rents, err := h.rentSvc.GetRentsByUser(ctx, username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rents)
}

func (h *Handler) GetAllRents(c echo.Context) error {
	ctx := c.Request().Context()
	if auth.UserRole(ctx) != auth.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	rents, err := h.rentSvc.GetAllRents(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rents)
}
