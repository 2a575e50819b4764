package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kelvinmenegasse/idp-server/config"
	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
	"github.com/kelvinmenegasse/idp-server/internal/account/dto"
	"github.com/kelvinmenegasse/idp-server/internal/account/service"
	autherror "github.com/kelvinmenegasse/idp-server/internal/errors"
	"github.com/kelvinmenegasse/idp-server/internal/mocks"
	"github.com/kelvinmenegasse/idp-server/pkg/constant"
	"github.com/kelvinmenegasse/idp-server/pkg/credentials"
)

const validCpf = "529.982.247-25"

func newAccountService(t *testing.T) (*service.AccountService, *mocks.MockAccountStore, *mocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockAccountStore(ctrl)
	mockMailer := mocks.NewMockMailer(ctrl)
	cfg := &config.Config{RecoveryKeyExpiryMin: 60}

	return service.NewAccountService(mockStore, mockMailer, cfg, zap.NewNop()), mockStore, mockMailer
}

func TestSetupNewAccount(t *testing.T) {
	s, _, _ := newAccountService(t)

	t.Run("success with username", func(t *testing.T) {
		account, err := s.SetupNewAccount(dto.CreateAccountInput{
			Name:     "Ana",
			Username: "ana1",
			Password: "longpassword1",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "ana1", account.Username)
		assert.Equal(t, constant.RegisterStatusActive, account.RegisterStatus)
		assert.NotEqual(t, "longpassword1", account.Password)
		assert.True(t, credentials.ComparePassword(account.Password, "longpassword1"))
		assert.Nil(t, account.Cpf)
	})

	t.Run("username defaults to normalized cpf", func(t *testing.T) {
		account, err := s.SetupNewAccount(dto.CreateAccountInput{
			Name:     "Ana",
			Cpf:      validCpf,
			Password: "longpassword1",
		})
		require.NoError(t, err)

		require.NotNil(t, account.Cpf)
		assert.Equal(t, "52998224725", *account.Cpf)
		assert.Equal(t, "52998224725", account.Username)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := s.SetupNewAccount(dto.CreateAccountInput{
			Username: "ana1",
			Password: "longpassword1",
		})
		assert.ErrorIs(t, err, autherror.ErrNameRequired)
	})

	t.Run("blank password", func(t *testing.T) {
		_, err := s.SetupNewAccount(dto.CreateAccountInput{
			Name:     "Ana",
			Username: "ana1",
			Password: "   ",
		})
		assert.ErrorIs(t, err, autherror.ErrPasswordRequired)
	})

	t.Run("missing username and cpf", func(t *testing.T) {
		_, err := s.SetupNewAccount(dto.CreateAccountInput{
			Name:     "Ana",
			Password: "longpassword1",
		})
		assert.ErrorIs(t, err, autherror.ErrUsernameRequired)
	})

	t.Run("invalid cpf", func(t *testing.T) {
		_, err := s.SetupNewAccount(dto.CreateAccountInput{
			Name:     "Ana",
			Cpf:      "123.456.789-00",
			Password: "longpassword1",
		})
		assert.ErrorIs(t, err, autherror.ErrInvalidCPF)
	})
}

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().FindByUsernameOrCpf(gomock.Any(), "ana1", "", "").Return(nil, nil)
		mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, account *domain.Account) (*domain.Account, error) {
				return account, nil
			})

		account, err := s.Create(ctx, dto.CreateAccountInput{
			Name:     "Ana",
			Username: "ana1",
			Password: "longpassword1",
		})
		require.NoError(t, err)
		assert.Equal(t, "ana1", account.Username)
		assert.Equal(t, constant.RegisterStatusActive, account.RegisterStatus)
	})

	t.Run("duplicate username or cpf", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		existing := &domain.Account{ID: "existing-id", Username: "ana1"}
		mockStore.EXPECT().FindByUsernameOrCpf(gomock.Any(), "ana1", "", "").Return(existing, nil)

		_, err := s.Create(ctx, dto.CreateAccountInput{
			Name:     "Ana",
			Username: "ana1",
			Password: "longpassword1",
		})
		assert.ErrorIs(t, err, autherror.ErrUsernameOrCpfExists)
	})

	t.Run("duplicate cpf under different formatting", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		existing := &domain.Account{ID: "existing-id", Username: "52998224725"}
		mockStore.EXPECT().FindByUsernameOrCpf(gomock.Any(), "52998224725", "52998224725", "").
			Return(existing, nil)

		_, err := s.Create(ctx, dto.CreateAccountInput{
			Name:     "Ana",
			Cpf:      validCpf,
			Password: "longpassword1",
		})
		assert.ErrorIs(t, err, autherror.ErrUsernameOrCpfExists)
	})

	t.Run("uniqueness lookup failure", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().FindByUsernameOrCpf(gomock.Any(), "ana1", "", "").
			Return(nil, errors.New("db error"))

		_, err := s.Create(ctx, dto.CreateAccountInput{
			Name:     "Ana",
			Username: "ana1",
			Password: "longpassword1",
		})
		assert.ErrorIs(t, err, autherror.ErrGetAccount)
	})
}

func TestAccountService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().GetByID(gomock.Any(), "acc-1").
			Return(&domain.Account{ID: "acc-1"}, nil)

		account, err := s.GetByID(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, "acc-1", account.ID)
	})

	t.Run("not found", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := s.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, autherror.ErrAccountNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		s, _, _ := newAccountService(t)

		_, err := s.GetByID(ctx, "")
		assert.ErrorIs(t, err, autherror.ErrInvalidParameters)
	})

	t.Run("store failure", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().GetByID(gomock.Any(), "acc-1").Return(nil, errors.New("db error"))

		_, err := s.GetByID(ctx, "acc-1")
		assert.ErrorIs(t, err, autherror.ErrGetAccount)
	})
}

func TestAccountService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name rejected", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().FindOne(gomock.Any(), domain.Filter{ID: "acc-1"}).
			Return(&domain.Account{ID: "acc-1", Username: "ana1"}, nil)

		blank := "  "
		_, err := s.Update(ctx, "acc-1", dto.UpdateAccountInput{Name: &blank})
		assert.ErrorIs(t, err, autherror.ErrNameRequired)
	})

	t.Run("username conflict excluding self", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().FindOne(gomock.Any(), domain.Filter{ID: "acc-1"}).
			Return(&domain.Account{ID: "acc-1", Username: "ana1"}, nil)
		mockStore.EXPECT().FindByUsernameOrCpf(gomock.Any(), "taken", "", "").
			Return(&domain.Account{ID: "acc-2", Username: "taken"}, nil)

		taken := "taken"
		_, err := s.Update(ctx, "acc-1", dto.UpdateAccountInput{Username: &taken})
		assert.ErrorIs(t, err, autherror.ErrUsernameExists)
	})

	t.Run("cpf is normalized before uniqueness check", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().FindOne(gomock.Any(), domain.Filter{ID: "acc-1"}).
			Return(&domain.Account{ID: "acc-1", Username: "ana1"}, nil)
		mockStore.EXPECT().FindByUsernameOrCpf(gomock.Any(), "", "52998224725", "").
			Return(nil, nil)
		mockStore.EXPECT().Update(gomock.Any(), "acc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields domain.UpdateFields) (*domain.Account, error) {
				require.NotNil(t, fields.Cpf)
				assert.Equal(t, "52998224725", *fields.Cpf)
				return &domain.Account{ID: "acc-1", Cpf: fields.Cpf}, nil
			})

		formatted := validCpf
		_, err := s.Update(ctx, "acc-1", dto.UpdateAccountInput{Cpf: &formatted})
		require.NoError(t, err)
	})

	t.Run("account not found", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().FindOne(gomock.Any(), domain.Filter{ID: "missing"}).Return(nil, nil)

		name := "Ana"
		_, err := s.Update(ctx, "missing", dto.UpdateAccountInput{Name: &name})
		assert.ErrorIs(t, err, autherror.ErrAccountNotFound)
	})
}

func TestAccountService_CreateRecoveryKey(t *testing.T) {
	ctx := context.Background()
	s, mockStore, _ := newAccountService(t)

	email := "ana@example.com"
	stored := &domain.Account{ID: "acc-1", Name: "Ana", Email: &email, Username: "ana1"}

	var storedHash string
	mockStore.EXPECT().GetByID(gomock.Any(), "acc-1").Return(stored, nil)
	mockStore.EXPECT().Update(gomock.Any(), "acc-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fields domain.UpdateFields) (*domain.Account, error) {
			require.NotNil(t, fields.RecoveryKey)
			require.NotNil(t, fields.RecoveryKeyExpiration)
			assert.True(t, fields.RecoveryKeyExpiration.After(time.Now()))
			storedHash = *fields.RecoveryKey

			updated := *stored
			updated.RecoveryKey = fields.RecoveryKey
			updated.RecoveryKeyExpiration = fields.RecoveryKeyExpiration
			return &updated, nil
		})

	account, rawKey, err := s.CreateRecoveryKey(ctx, "acc-1")
	require.NoError(t, err)

	assert.NotEmpty(t, rawKey)
	assert.NotEqual(t, rawKey, storedHash)
	assert.True(t, credentials.CompareRecoveryKey(storedHash, rawKey))
	require.NotNil(t, account.RecoveryKey)
}

func TestAccountService_SendRecoveryKeyToAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mockStore, mockMailer := newAccountService(t)

		email := "ana@example.com"
		stored := &domain.Account{ID: "acc-1", Name: "Ana", Email: &email, Username: "ana1"}

		mockStore.EXPECT().GetByID(gomock.Any(), "acc-1").Return(stored, nil)
		mockStore.EXPECT().Update(gomock.Any(), "acc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields domain.UpdateFields) (*domain.Account, error) {
				updated := *stored
				updated.RecoveryKey = fields.RecoveryKey
				return &updated, nil
			})
		mockMailer.EXPECT().SendRecoveryKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := s.SendRecoveryKeyToAccount(ctx, "acc-1")
		assert.NoError(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		stored := &domain.Account{ID: "acc-1", Name: "Ana", Username: "ana1"}

		mockStore.EXPECT().GetByID(gomock.Any(), "acc-1").Return(stored, nil)
		mockStore.EXPECT().Update(gomock.Any(), "acc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields domain.UpdateFields) (*domain.Account, error) {
				updated := *stored
				updated.RecoveryKey = fields.RecoveryKey
				return &updated, nil
			})

		err := s.SendRecoveryKeyToAccount(ctx, "acc-1")
		assert.ErrorIs(t, err, autherror.ErrAccountHasNoEmail)
	})
}

func TestAccountService_SendRecoveryKeyToAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("partial failure still succeeds", func(t *testing.T) {
		s, mockStore, mockMailer := newAccountService(t)

		email := "ana@example.com"
		withEmail := &domain.Account{ID: "acc-1", Name: "Ana", Email: &email, Username: "ana1"}
		withoutEmail := &domain.Account{ID: "acc-2", Name: "Bia", Username: "bia1"}

		mockStore.EXPECT().GetByID(gomock.Any(), "acc-1").Return(withEmail, nil)
		mockStore.EXPECT().GetByID(gomock.Any(), "acc-2").Return(withoutEmail, nil)
		mockStore.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, fields domain.UpdateFields) (*domain.Account, error) {
				base := withoutEmail
				if id == "acc-1" {
					base = withEmail
				}
				updated := *base
				updated.RecoveryKey = fields.RecoveryKey
				return &updated, nil
			}).Times(2)
		mockMailer.EXPECT().SendRecoveryKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		results, err := s.SendRecoveryKeyToAccounts(ctx, []string{"acc-1", "acc-2"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.True(t, results[0].Sent)
		assert.False(t, results[1].Sent)
		assert.NotEmpty(t, results[1].Error)
	})

	t.Run("all failures fail overall", func(t *testing.T) {
		s, mockStore, _ := newAccountService(t)

		mockStore.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error")).Times(2)

		results, err := s.SendRecoveryKeyToAccounts(ctx, []string{"acc-1", "acc-2"})
		assert.ErrorIs(t, err, autherror.ErrAllRecoveryFailed)
		require.Len(t, results, 2)
		assert.False(t, results[0].Sent)
		assert.False(t, results[1].Sent)
	})

	t.Run("empty id list", func(t *testing.T) {
		s, _, _ := newAccountService(t)

		_, err := s.SendRecoveryKeyToAccounts(ctx, nil)
		assert.ErrorIs(t, err, autherror.ErrInvalidParameters)
	})
}
