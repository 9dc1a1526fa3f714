package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/pkg/jwt"
	"github.com/wate11/HyMatch-project/internal/session"
)

// CtxSessionKey holds the resolved *session.Session for the request.
const CtxSessionKey = "session"

// SessionMiddleware turns a bearer session token into the live session
// handle, so handlers receive an explicit state container instead of a
// global.
type SessionMiddleware struct {
	jwt      jwt.Service
	sessions *session.Manager
}

func NewSessionMiddleware(jwtSvc jwt.Service, sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{jwt: jwtSvc, sessions: sessions}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Session expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		s, err := m.sessions.Get(claims.SessionID)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Session ended", nil, err)
		}

		c.Locals(CtxSessionKey, s)
		return c.Next()
	}
}

// SessionFromCtx fetches the session stored by the middleware.
func SessionFromCtx(c fiber.Ctx) (*session.Session, bool) {
	s, ok := c.Locals(CtxSessionKey).(*session.Session)
	return s, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
