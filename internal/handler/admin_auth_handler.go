package handler

import (
	"net/http"
	"os"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/admin/{login,session,logout}
type AdminAuthHandler struct {
	uc           *usecase.AdminAuthUsecase
	cookieSecure bool
}

// DI
func NewAdminAuthHandler(uc *usecase.AdminAuthUsecase) *AdminAuthHandler {
	return &AdminAuthHandler{
		uc:           uc,
		cookieSecure: envBool("COOKIE_SECURE", true),
	}
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLogoutResponse struct {
	Success bool `json:"success"`
}

func (h *AdminAuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/admin/login", h.login)
	e.GET("/api/admin/session", h.session)
	e.POST("/api/admin/logout", h.logout)
}

func (h *AdminAuthHandler) login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, side, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().Header.Get("User-Agent"),
	})
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		case usecase.ErrUserInactive, usecase.ErrNotAdmin:
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	h.setSessionCookie(c, side.SessionToken, side.ExpiresAt)

	return c.JSON(http.StatusOK, out)
}

// session reports the current auth state. An absent or dead session is a
// normal 200 with authenticated:false, not a 401; the client treats both
// the same but the payload shape is the contract.
func (h *AdminAuthHandler) session(c echo.Context) error {
	raw := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		raw = cookie.Value
	}

	out, err := h.uc.CheckSession(c.Request().Context(), raw)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, out)
}

// logout always clears the cookie and reports success. A failed
// revocation is logged and swallowed: the client is logging out whether
// or not the server row could be touched.
func (h *AdminAuthHandler) logout(c echo.Context) error {
	raw := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		raw = cookie.Value
	}

	if err := h.uc.Logout(c.Request().Context(), raw); err != nil {
		c.Logger().Errorf("session revoke failed: %v", err)
	}

	h.clearSessionCookie(c)

	return c.JSON(http.StatusOK, AdminLogoutResponse{Success: true})
}

func (h *AdminAuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

func (h *AdminAuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
