package middleware

import (
	"net/http"
	"strings"

	"pedidomestre/infra/token"

	"github.com/labstack/echo/v4"
)

// CheckAuthorization valida o token PASETO do cabecalho Authorization nas
// rotas administrativas e deixa o payload disponivel no contexto.
func CheckAuthorization(maker token.Maker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerToken := c.Request().Header.Get("Authorization")
			tokenStr := strings.Replace(bearerToken, "Bearer ", "", 1)
			if tokenStr == "" {
				return c.JSON(http.StatusUnauthorized, "Token de autorização ausente")
			}

			tokenPayload, err := maker.VerifyToken(tokenStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, err.Error())
			}

			c.Set("token_id", tokenPayload.ID)
			c.Set("token_id_usuario", tokenPayload.IdUsuario)
			c.Set("token_email", tokenPayload.Email)
			c.Set("token_expiry_at", tokenPayload.ExpiredAt)

			return next(c)
		}
	}
}
