package service

import (
	"context"
	"errors"
	"strings"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/security"
	"agrimarket-backend/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	email    EmailService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, email EmailService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		email:    email,
	}
}

func (s *authService) Signup(ctx context.Context, email, telephone, password string, profile *domain.Profile) (*domain.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	errs := validation.FieldErrors{}
	if email == "" || !strings.Contains(email, "@") {
		errs["email"] = "a valid email is required"
	}
	if len(password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if err := validation.ValidateProfile(profile); err != nil {
		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			for k, v := range fe {
				errs[k] = v
			}
		}
	}
	if len(errs) > 0 {
		return nil, "", "", errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		Telephone:    telephone,
		PasswordHash: string(hash),
	}
	if profile.Email == "" {
		profile.Email = email
	}
	if profile.Telephone == "" {
		profile.Telephone = telephone
	}

	// Account and profile land together or not at all. A crash between
	// the two must never leave a half-registered user behind.
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", "", ErrEmailTaken
		}
		return nil, "", "", err
	}

	if s.email != nil {
		if err := s.email.SendWelcome(ctx, user.Email, profile.FullName); err != nil {
			logger.Warn("welcome email failed", "user_id", user.ID, "error", err)
		}
	}

	access, refresh, err := s.generateTokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.generateTokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}
	// Re-check the account still exists before minting fresh tokens.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}
	return s.generateTokenPair(user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	// Stateless tokens; logout succeeds regardless so a client with an
	// already-expired token can still sign out cleanly.
	if _, err := s.tokens.ValidateToken(refreshToken); err != nil {
		logger.Debug("logout with invalid token", "error", err)
	}
	return nil
}

func (s *authService) generateTokenPair(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
