package authservice

import (
	"context"
	"errors"

	"github.com/mkorsun/storefront/internal/domain"
	"github.com/mkorsun/storefront/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type SessionRepo interface {
	Save(ctx context.Context, token string, userID int) error
	Resolve(ctx context.Context, token string) (int, bool)
}

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	userRepo     UserRepo
	sessionRepo  SessionRepo
	hashService  auth.HashServiceInterface
	tokenService auth.TokenGeneratorInterface
}

func New(userRepo UserRepo, sessionRepo SessionRepo, hashService auth.HashServiceInterface, tokenService auth.TokenGeneratorInterface) *Service {
	return &Service{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hashService:  hashService,
		tokenService: tokenService,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         domain.RoleCustomer,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Info("unknown username", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("password mismatch", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

// CreateSession binds a fresh opaque token to the user. Sessions never
// expire; the user may hold any number of concurrent tokens.
func (s *Service) CreateSession(ctx context.Context, userID int) (string, error) {
	token, err := s.tokenService.Generate()
	if err != nil {
		zap.L().Error("can't generate session token: ", zap.Error(err))
		return "", err
	}
	if err := s.sessionRepo.Save(ctx, token, userID); err != nil {
		zap.L().Error("can't save session: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) IsAdmin(ctx context.Context, userID int) bool {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return false
	}
	return user.Role == domain.RoleAdmin
}
