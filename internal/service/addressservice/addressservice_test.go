package addressservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkorchagin/payledger/internal/domain"
)

type mocks struct {
	addressRepo *MockAddressRepo
	noticeRepo  *MockNoticeRepo
	notifier    *MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		addressRepo: NewMockAddressRepo(ctrl),
		noticeRepo:  NewMockNoticeRepo(ctrl),
		notifier:    NewMockNotifier(ctrl),
	}
	service := New(m.addressRepo, m.noticeRepo, m.notifier)
	defer ctrl.Finish()
	return service, m
}

func TestAssignReusesExisting(t *testing.T) {
	service, m := NewMock(t)

	m.addressRepo.EXPECT().FindByUserID(gomock.Any(), 42).
		Return(&domain.Address{ID: 1, Value: "0x6e8a"}, nil)

	addr, err := service.Assign(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, "0x6e8a", addr.Value)
}

func TestAssignFromPool(t *testing.T) {
	service, m := NewMock(t)

	m.addressRepo.EXPECT().FindByUserID(gomock.Any(), 42).Return(nil, nil)
	m.addressRepo.EXPECT().AssignFree(gomock.Any(), 42).
		Return(&domain.Address{ID: 2, Value: "0xbeef"}, nil)

	addr, err := service.Assign(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, "0xbeef", addr.Value)
}

func TestAssignPoolExhausted(t *testing.T) {
	service, m := NewMock(t)

	m.addressRepo.EXPECT().FindByUserID(gomock.Any(), 42).Return(nil, nil)
	m.addressRepo.EXPECT().AssignFree(gomock.Any(), 42).Return(nil, nil)

	_, err := service.Assign(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNoFreeAddresses)
}

func TestCheckFreeAboveThreshold(t *testing.T) {
	service, m := NewMock(t)

	m.addressRepo.EXPECT().CountFree(gomock.Any()).Return(17, nil)
	// No notice, no alert.

	assert.NoError(t, service.CheckFree(context.Background()))
}

func TestCheckFreeLowPoolAlerts(t *testing.T) {
	service, m := NewMock(t)

	m.addressRepo.EXPECT().CountFree(gomock.Any()).Return(3, nil)
	m.noticeRepo.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
		n, ok := x.(*domain.Notice)
		return ok && n.Title == "Attention" && n.Status == "new"
	})).Return(&domain.Notice{}, nil)
	m.notifier.EXPECT().Send("Available address count: 3").Return(nil)

	assert.NoError(t, service.CheckFree(context.Background()))
}

func TestCheckFreeAtThresholdAlerts(t *testing.T) {
	service, m := NewMock(t)

	m.addressRepo.EXPECT().CountFree(gomock.Any()).Return(5, nil)
	m.noticeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notice{}, nil)
	m.notifier.EXPECT().Send(gomock.Any()).Return(nil)

	assert.NoError(t, service.CheckFree(context.Background()))
}
