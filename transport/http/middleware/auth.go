package middleware

import (
	"context"
	"errors"
	"net/http"

	"eljardin/config"
	"eljardin/infras/jwt"
	"eljardin/infras/otel"
	"eljardin/shared/constant"
	"eljardin/shared/failure"
	"eljardin/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth validates bearer tokens and puts the caller identity on the request
// context.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)
			scope.TraceError(err)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)
			scope.TraceError(err)

			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)
			scope.TraceError(err)

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Msg("JWT claims missing user identity")
			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
