package service

import (
	"context"
	"errors"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/validation"
)

type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *profileService) GetMe(ctx context.Context, userID int32) (*domain.User, *domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		// Account without profile: signed up but never completed
		// onboarding. Callers see a nil profile, not an error.
		profile = nil
	} else if err != nil {
		return nil, nil, err
	}

	if err := s.profileRepo.TouchLastSeen(ctx, userID); err != nil {
		logger.Debug("last-seen update failed", "user_id", userID, "error", err)
	}

	return user, profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if err := validation.ValidateProfile(p); err != nil {
		return nil, err
	}

	err := s.profileRepo.Update(ctx, p)
	if errors.Is(err, repository.ErrNotFound) {
		err = s.profileRepo.Create(ctx, p)
	}
	if err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, p.UserID)
}

func (s *profileService) RequireComplete(ctx context.Context, userID int32) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileIncomplete
	}
	if err != nil {
		return nil, err
	}
	if profile.FullName == "" || profile.Telephone == "" {
		return nil, ErrProfileIncomplete
	}
	return profile, nil
}
