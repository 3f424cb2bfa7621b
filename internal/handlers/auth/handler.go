package auth

import (
	"net/http"

	"eljardin/infras/otel"
	"eljardin/internal/domains/auth/model/dto"
	"eljardin/internal/domains/auth/service"
	"eljardin/shared/constant"
	"eljardin/shared/validator"
	"eljardin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/signup", handler.Signup)
		routerGroup.Post("/login", handler.Login)
	})
}

// Signup registers a new user account.
// @Summary Register a new user
// @Description Register a new user and return a bearer token for the created account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.Data[dto.SignupResponse] "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/signup [post]
func (handler *Handler) Signup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	req := dto.SignupRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Signup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// Login authenticates a user with email and password.
// @Summary Log in
// @Description Authenticate a user and return a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
