package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockSettingsRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	settingsRepo := NewMockSettingsRepo(ctrl)
	service := New(userRepo, settingsRepo, &auth.HashService{}, &auth.JWTService{})
	defer ctrl.Finish()
	return service, userRepo, settingsRepo
}

func openSettings() *domain.Setting {
	return &domain.Setting{InvitationOnly: false}
}

func TestRegister(t *testing.T) {
	service, userRepo, settingsRepo := NewMock(t)

	settingsRepo.EXPECT().Get(gomock.Any()).Return(openSettings(), nil)
	userRepo.EXPECT().FindByLogin(gomock.Any(), "operator").Return(nil, nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "operator", user.Login)
			assert.Equal(t, domain.RoleUser, user.Role)
			assert.NotEqual(t, "secret", user.PasswordHash)
			user.ID = 42
			return user, nil
		})

	user, err := service.Register(context.Background(), "operator", "secret", nil)
	assert.NoError(t, err)
	assert.Equal(t, 42, user.ID)
}

func TestRegisterWithReferrer(t *testing.T) {
	service, userRepo, settingsRepo := NewMock(t)
	referrer := 7

	settingsRepo.EXPECT().Get(gomock.Any()).Return(openSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)
	userRepo.EXPECT().FindByLogin(gomock.Any(), "invitee").Return(nil, nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, 7, *user.Referrer)
			user.ID = 43
			return user, nil
		})

	user, err := service.Register(context.Background(), "invitee", "secret", &referrer)
	assert.NoError(t, err)
	assert.Equal(t, 7, *user.Referrer)
}

func TestRegisterUnknownReferrer(t *testing.T) {
	service, userRepo, settingsRepo := NewMock(t)
	referrer := 404

	settingsRepo.EXPECT().Get(gomock.Any()).Return(openSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)

	_, err := service.Register(context.Background(), "invitee", "secret", &referrer)
	assert.ErrorIs(t, err, ErrUnknownReferrer)
}

func TestRegisterInvitationOnly(t *testing.T) {
	service, _, settingsRepo := NewMock(t)

	settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.Setting{InvitationOnly: true}, nil)

	_, err := service.Register(context.Background(), "stranger", "secret", nil)
	assert.ErrorIs(t, err, ErrInvitationRequired)
}

func TestRegisterLoginTaken(t *testing.T) {
	service, userRepo, settingsRepo := NewMock(t)

	settingsRepo.EXPECT().Get(gomock.Any()).Return(openSettings(), nil)
	userRepo.EXPECT().FindByLogin(gomock.Any(), "operator").
		Return(&domain.User{ID: 42, Login: "operator"}, nil)

	_, err := service.Register(context.Background(), "operator", "secret", nil)
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _ := NewMock(t)

	hash, err := (&auth.HashService{}).HashPassword("secret")
	assert.NoError(t, err)

	userRepo.EXPECT().FindByLogin(gomock.Any(), "operator").
		Return(&domain.User{ID: 42, Login: "operator", PasswordHash: hash}, nil).Times(2)

	user, err := service.Authenticate(context.Background(), "operator", "secret")
	assert.NoError(t, err)
	assert.Equal(t, 42, user.ID)

	_, err = service.Authenticate(context.Background(), "operator", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	service, userRepo, _ := NewMock(t)

	userRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)

	_, err := service.Authenticate(context.Background(), "ghost", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRepoErrorHidden(t *testing.T) {
	service, userRepo, _ := NewMock(t)

	userRepo.EXPECT().FindByLogin(gomock.Any(), "operator").
		Return(nil, errors.New("db down"))

	_, err := service.Authenticate(context.Background(), "operator", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGenerateToken(t *testing.T) {
	service, _, _ := NewMock(t)

	token, err := service.GenerateToken(42, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := (&auth.JWTService{}).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
