package auth

import (
	"context"
	"errors"
	"testing"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindTaken(ctx context.Context, username, email, excludeID string) (*domain.User, error) {
	args := m.Called(ctx, username, email, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindTaken", mock.Anything, "alice", "alice@example.com", "").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" && u.Role == domain.RoleUser
	})).Return(nil)

	svc := NewService(repo)
	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: " alice ",
		Email:    "Alice@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	ok, err := u.CheckPassword("secret1")
	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertExpectations(t)
}

func TestService_Register_Validation(t *testing.T) {
	cases := map[string]RegisterRequest{
		"short username": {Username: "bob", Email: "bob@example.com", Password: "secret1"},
		"bad email":      {Username: "bobby", Email: "not-an-email", Password: "secret1"},
		"short password": {Username: "bobby", Email: "bob@example.com", Password: "12345"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(mockUserRepo)
			_, err := NewService(repo).Register(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Register_Taken(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindTaken", mock.Anything, "alice", "alice@example.com", "").
		Return(&domain.User{ID: "u1", Email: "alice@example.com"}, nil)

	_, err := NewService(repo).Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "ALICE@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_DuplicateOnInsert(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindTaken", mock.Anything, mock.Anything, mock.Anything, "").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := NewService(repo).Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrUserExists)
}

func newStoredUser(t *testing.T, email, plain string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("alice", email, plain, domain.RoleUser)
	require.NoError(t, err)
	return u
}

func TestService_Login(t *testing.T) {
	stored := newStoredUser(t, "alice@example.com", "secret1")

	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	svc := NewService(repo)

	u, err := svc.Login(context.Background(), LoginRequest{Email: " ALICE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, u.ID)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_StoreFailure(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errors.New("db down"))

	_, err := NewService(repo).Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "x"})
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestService_CurrentUser(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.On("GetByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)
	svc := NewService(repo)

	u, err := svc.CurrentUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = svc.CurrentUser(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
