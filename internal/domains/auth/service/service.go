package service

import (
	"context"
	"errors"
	"fmt"

	"eljardin/config"
	"eljardin/infras/jwt"
	"eljardin/infras/otel"
	auditModel "eljardin/internal/domains/audit/model"
	auditService "eljardin/internal/domains/audit/service"
	"eljardin/internal/domains/auth/model/dto"
	userModel "eljardin/internal/domains/user/model"
	userRepository "eljardin/internal/domains/user/repository"
	"eljardin/shared/constant"
	gDto "eljardin/shared/dto"
	"eljardin/shared/failure"
	"eljardin/shared/password"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	userRepo userRepository.User
	audit    auditService.Audit
	jwt      jwt.JWT
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepository.User, audit auditService.Audit, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		audit:    audit,
		jwt:      jwt,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.SignupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.userRepo.Exist(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check email registration")

		return res, fmt.Errorf("failed to check email registration: %w", err)
	}

	if exist {
		return res, failure.BadRequestFromString("email already registered")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hashed)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		// A concurrent signup can slip past the existence check; the unique
		// index on email catches it.
		if isDuplicateEntry(err) {
			return res, failure.BadRequestFromString("email already registered")
		}

		log.Error().Err(err).Msg("failed to insert user")

		return res, fmt.Errorf("failed to insert user: %w", err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	s.audit.RecordUser(ctx, user.ID, auditModel.ActionSignup)

	res.UserID = user.ID
	res.Token = token
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Both failure paths return 401 so a caller cannot probe which emails
	// are registered by comparing status codes.
	if user.ID == constant.Empty {
		return res, failure.Unauthorized("user not found")
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized("invalid credentials")
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	s.audit.RecordUser(ctx, user.ID, auditModel.ActionLogin)

	res.Token = token
	res.User.FromModel(user)

	return res, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == constant.MySQLErrDuplicateEntry
	}

	return false
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}
}
