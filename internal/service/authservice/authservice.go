package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Setting, error)
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvitationRequired = errors.New("registration is by invitation only")
	ErrUnknownReferrer    = errors.New("referrer does not exist")
)

type Service struct {
	userRepo     Repo
	settingsRepo SettingsRepo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(repo Repo, settingsRepo SettingsRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:     repo,
		settingsRepo: settingsRepo,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

// Register creates a user, optionally linked to the referrer who invited
// them. When the platform runs invitation-only, a referrer is mandatory.
func (s *Service) Register(ctx context.Context, login, password string, referrer *int) (*domain.User, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("can't fetch settings: ", zap.Error(err))
		return nil, err
	}
	if settings != nil && settings.InvitationOnly && referrer == nil {
		return nil, ErrInvitationRequired
	}

	if referrer != nil {
		refUser, err := s.userRepo.FindByID(ctx, *referrer)
		if err != nil {
			zap.L().Error("can't find referrer: ", zap.Error(err))
			return nil, err
		}
		if refUser == nil {
			return nil, ErrUnknownReferrer
		}
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
		Referrer:     referrer,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
