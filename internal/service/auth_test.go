package service

import (
	"context"
	"testing"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func validSignupProfile() *domain.Profile {
	return &domain.Profile{
		FullName:  "Aisha Bello",
		Telephone: "+2348012345678",
		State:     "Kano",
		UserTypes: []string{"producteur"},
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesAccountAndProfileTogether", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, fakeTokenManager{}, emailSvc)

		userRepo.On("CreateWithProfile", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "aisha@example.com" && u.PasswordHash != "" && u.PasswordHash != "secret-password"
		}), mock.MatchedBy(func(p *domain.Profile) bool {
			// Profile inherits the account contact info when left blank.
			return p.Email == "aisha@example.com" && p.Telephone == "+2348012345678"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 5
		}).Return(nil).Once()
		emailSvc.On("SendWelcome", ctx, "aisha@example.com", "Aisha Bello").Return(nil).Once()

		user, access, refresh, err := svc.Signup(ctx, "Aisha@Example.com", "+2348012345678", "secret-password", validSignupProfile())
		assert.NoError(t, err)
		assert.Equal(t, int32(5), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		userRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		userRepo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).
			Return(repository.ErrDuplicate).Once()

		_, _, _, err := svc.Signup(ctx, "taken@example.com", "0800", "secret-password", validSignupProfile())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		_, _, _, err := svc.Signup(ctx, "aisha@example.com", "0800", "short", validSignupProfile())
		assert.Error(t, err)
		var fields validation.FieldErrors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "password")
		userRepo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("WelcomeEmailFailureIsNotFatal", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, fakeTokenManager{}, emailSvc)

		userRepo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).Return(nil).Once()
		emailSvc.On("SendWelcome", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

		_, _, _, err := svc.Signup(ctx, "aisha@example.com", "0800", "secret-password", validSignupProfile())
		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)

	t.Run("Valid", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		userRepo.On("GetByEmail", ctx, "aisha@example.com").
			Return(&domain.User{ID: 5, Email: "aisha@example.com", PasswordHash: string(hash)}, nil).Once()

		user, access, refresh, err := svc.Login(ctx, "aisha@example.com", "secret-password")
		assert.NoError(t, err)
		assert.Equal(t, int32(5), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		userRepo.On("GetByEmail", ctx, "aisha@example.com").
			Return(&domain.User{ID: 5, PasswordHash: string(hash)}, nil).Once()

		_, _, _, err := svc.Login(ctx, "aisha@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, repository.ErrNotFound).Once()

		// Same error either way so callers cannot probe which emails exist.
		_, _, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		userRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.User{ID: 1, Email: "a@b.c"}, nil).Once()

		access, refresh, err := svc.Refresh(ctx, "refresh-token")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), fakeTokenManager{}, nil)
		_, _, err := svc.Refresh(ctx, "access-token")
		assert.Error(t, err)
	})

	t.Run("DeletedAccount", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, fakeTokenManager{}, nil)

		userRepo.On("GetByID", ctx, int32(1)).Return(nil, repository.ErrNotFound).Once()

		_, _, err := svc.Refresh(ctx, "refresh-token")
		assert.Error(t, err)
	})
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	svc := NewAuthService(new(MockUserRepo), fakeTokenManager{}, nil)
	ctx := context.Background()

	assert.NoError(t, svc.Logout(ctx, "refresh-token"))
	assert.NoError(t, svc.Logout(ctx, "garbage"))
	assert.NoError(t, svc.Logout(ctx, ""))
}
