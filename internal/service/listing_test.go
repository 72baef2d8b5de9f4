package service

import (
	"context"
	"testing"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func ptr(f float64) *float64 { return &f }

func newListingFixture() (*MockListingRepo, *MockProfileRepo, *MockCategoryRepo, ListingService) {
	listingRepo := new(MockListingRepo)
	profileRepo := new(MockProfileRepo)
	categoryRepo := new(MockCategoryRepo)
	profiles := NewProfileService(new(MockUserRepo), profileRepo)
	refs := NewReferenceService(categoryRepo)
	svc := NewListingService(listingRepo, profileRepo, profiles, refs)
	return listingRepo, profileRepo, categoryRepo, svc
}

func completeProfile() *domain.Profile {
	return &domain.Profile{
		UserID:    1,
		FullName:  "Aisha Bello",
		Telephone: "+2348012345678",
		State:     "Kano",
	}
}

func TestListingService_Create(t *testing.T) {
	ctx := context.Background()
	categories := []domain.Category{{ID: 3, Name: "Cereales"}}

	t.Run("StampsOwnerAndDefaultsStatus", func(t *testing.T) {
		listingRepo, profileRepo, categoryRepo, svc := newListingFixture()
		profileRepo.On("GetByUserID", ctx, int32(1)).Return(completeProfile(), nil).Once()
		categoryRepo.On("ListProductCategories", ctx).Return(categories, nil).Once()
		listingRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.OwnerID == 1 && l.Status == domain.ListingStatusAvailable
		})).Return(nil).Once()

		l := &domain.Listing{
			// A spoofed owner id in the payload must be overwritten.
			OwnerID:     99,
			Title:       "Mais jaune",
			Description: "Recolte fraiche",
			Price:       15000,
			Quantity:    "50 sacs",
			CategoryID:  3,
			Images:      []string{"a.jpg"},
		}
		created, err := svc.Create(ctx, 1, l)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), created.OwnerID)
		listingRepo.AssertExpectations(t)
	})

	t.Run("RequiresProfile", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingFixture()
		profileRepo.On("GetByUserID", ctx, int32(1)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Create(ctx, 1, &domain.Listing{})
		assert.ErrorIs(t, err, ErrProfileIncomplete)
		listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RejectsUnknownCategory", func(t *testing.T) {
		_, profileRepo, categoryRepo, svc := newListingFixture()
		profileRepo.On("GetByUserID", ctx, int32(1)).Return(completeProfile(), nil).Once()
		categoryRepo.On("ListProductCategories", ctx).Return(categories, nil).Once()

		l := &domain.Listing{
			Title:       "Mais jaune",
			Description: "Recolte fraiche",
			Price:       15000,
			Quantity:    "50 sacs",
			CategoryID:  77,
			Images:      []string{"a.jpg"},
		}
		_, err := svc.Create(ctx, 1, l)
		assert.Error(t, err)
	})
}

func TestListingService_UpdateOwnership(t *testing.T) {
	ctx := context.Background()
	listingRepo, _, _, svc := newListingFixture()

	listingRepo.On("GetByID", ctx, int32(7)).
		Return(&domain.Listing{ID: 7, OwnerID: 1}, nil).Once()

	_, err := svc.Update(ctx, 2, &domain.Listing{ID: 7, Title: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	listingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListingService_DeleteOwnership(t *testing.T) {
	ctx := context.Background()
	listingRepo, _, _, svc := newListingFixture()

	listingRepo.On("GetByID", ctx, int32(7)).
		Return(&domain.Listing{ID: 7, OwnerID: 1}, nil).Twice()
	listingRepo.On("Delete", ctx, int32(7)).Return(nil).Once()

	assert.ErrorIs(t, svc.Delete(ctx, 2, 7), ErrUnauthorized)
	assert.NoError(t, svc.Delete(ctx, 1, 7))
	listingRepo.AssertExpectations(t)
}

func TestListingService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToAvailable", func(t *testing.T) {
		listingRepo, _, _, svc := newListingFixture()
		listingRepo.On("Search", ctx, mock.MatchedBy(func(f repository.ListingFilter) bool {
			return f.Status == domain.ListingStatusAvailable
		}), int32(1), int32(20)).Return([]domain.Listing{}, int32(0), nil).Once()

		_, _, err := svc.Search(ctx, repository.ListingFilter{}, Viewer{}, 1, 20)
		assert.NoError(t, err)
		listingRepo.AssertExpectations(t)
	})

	t.Run("DistanceSortWithoutCoordinateFallsBackToRecency", func(t *testing.T) {
		listingRepo, _, _, svc := newListingFixture()
		listingRepo.On("Search", ctx, mock.MatchedBy(func(f repository.ListingFilter) bool {
			// The distance sort never reaches the store.
			return f.Sort == ""
		}), int32(1), int32(20)).Return([]domain.Listing{}, int32(0), nil).Once()

		_, _, err := svc.Search(ctx, repository.ListingFilter{Sort: "distance"}, Viewer{}, 1, 20)
		assert.NoError(t, err)
		listingRepo.AssertExpectations(t)
	})

	t.Run("DistanceSortOrdersByProximity", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingFixture()

		listings := []domain.Listing{
			{ID: 1, OwnerID: 11, Title: "far"},
			{ID: 2, OwnerID: 12, Title: "near"},
			{ID: 3, OwnerID: 13, Title: "unknown"},
		}
		listingRepo.On("Search", ctx, mock.Anything, int32(1), int32(20)).
			Return(listings, int32(3), nil).Once()

		far := completeProfile()
		far.UserID = 11
		far.Latitude, far.Longitude = ptr(12.0), ptr(8.5)
		near := completeProfile()
		near.UserID = 12
		near.Latitude, near.Longitude = ptr(9.1), ptr(8.0)
		noCoords := completeProfile()
		noCoords.UserID = 13

		profileRepo.On("GetByUserID", ctx, int32(11)).Return(far, nil).Once()
		profileRepo.On("GetByUserID", ctx, int32(12)).Return(near, nil).Once()
		profileRepo.On("GetByUserID", ctx, int32(13)).Return(noCoords, nil).Once()

		viewer := Viewer{Latitude: ptr(9.0), Longitude: ptr(8.0)}
		got, total, err := svc.Search(ctx, repository.ListingFilter{Sort: "distance"}, viewer, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), total)
		assert.Equal(t, "near", got[0].Title)
		assert.Equal(t, "far", got[1].Title)
		// Listings without a resolvable position sort last.
		assert.Equal(t, "unknown", got[2].Title)
		assert.Nil(t, got[2].DistanceKM)
	})

	t.Run("RadiusDropsDistantAndUnlocatable", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingFixture()

		listings := []domain.Listing{
			{ID: 1, OwnerID: 11, Title: "far"},
			{ID: 2, OwnerID: 12, Title: "near"},
			{ID: 3, OwnerID: 13, Title: "unknown"},
		}
		listingRepo.On("Search", ctx, mock.Anything, int32(1), int32(20)).
			Return(listings, int32(3), nil).Once()

		far := completeProfile()
		far.UserID = 11
		far.Latitude, far.Longitude = ptr(12.0), ptr(8.5)
		near := completeProfile()
		near.UserID = 12
		near.Latitude, near.Longitude = ptr(9.1), ptr(8.0)
		noCoords := completeProfile()
		noCoords.UserID = 13

		profileRepo.On("GetByUserID", ctx, int32(11)).Return(far, nil).Once()
		profileRepo.On("GetByUserID", ctx, int32(12)).Return(near, nil).Once()
		profileRepo.On("GetByUserID", ctx, int32(13)).Return(noCoords, nil).Once()

		viewer := Viewer{Latitude: ptr(9.0), Longitude: ptr(8.0), RadiusKM: ptr(50)}
		got, _, err := svc.Search(ctx, repository.ListingFilter{}, viewer, 1, 20)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "near", got[0].Title)
	})
}
