package commands

import (
	"context"

	"hotel-pricing/internal/domain/user"
	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/pkg/jwt"
	"hotel-pricing/internal/pkg/password"
	"hotel-pricing/internal/usecase/queries"
	"hotel-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrUserAlreadyExists  = errs.New("user already exists")
	ErrEmailDomainDenied  = errs.New("email domain not allowed")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// Register creates a staff account for an address in the corporate mail
	// domain. Role elevation is an admin operation done elsewhere.
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	authCfg    config.AuthConfig
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	authCfg config.AuthConfig,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		authCfg:    authCfg,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	email, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	// Same error for unknown user and bad password to prevent enumeration.
	view, hashed, err := a.readStore.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hashed, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	email, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	if !email.HasDomain(a.authCfg.AllowedEmailDomain) {
		return uuid.Nil, ErrEmailDomainDenied
	}

	hashed, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Users().Create(ctx, shared.NewUser{
			Email:        email.String(),
			PasswordHash: hashed,
			FullName:     req.FullName,
			Role:         user.RoleStaff,
		})
		if createErr != nil {
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrUserAlreadyExists)
		}
		return uuid.Nil, err
	}
	return id, nil
}
