package middleware

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "admin_session"

	CtxUserIDKey   = "user_id"  // int64
	CtxUsernameKey = "username" // string
	CtxIsAdminKey  = "is_admin" // bool
)

// SessionAuth validates the admin session cookie: JWT signature first,
// then the session row and the user behind it. The DB check runs on every
// request; the cookie alone never authenticates anything.
func SessionAuth(cfg config.Config, sessionRepo repository.AdminSessionRepository, userRepo repository.AdminUserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			sessionID, userID, err := ParseSessionToken(cfg.SessionSecret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			session, err := sessionRepo.FindByID(c.Request().Context(), sessionID)
			if err != nil || session == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if session.UserID != userID || !session.Live(time.Now()) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := userRepo.FindByID(c.Request().Context(), session.UserID)
			if err != nil || user == nil || !user.IsActive {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxUsernameKey, user.Username)
			c.Set(CtxIsAdminKey, user.IsAdmin)

			return next(c)
		}
	}
}

// ParseSessionToken verifies the cookie JWT and extracts {sid, sub}.
func ParseSessionToken(secret string, raw string) (sessionID string, userID int64, err error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, errors.New("invalid claims")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", 0, errors.New("invalid sid")
	}

	sub, ok := claims["sub"].(float64)
	if !ok || int64(sub) <= 0 {
		return "", 0, errors.New("invalid sub")
	}

	return sid, int64(sub), nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
