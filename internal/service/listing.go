package service

import (
	"context"
	"sort"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/geo"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/validation"
)

type listingService struct {
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
	profiles    ProfileService
	refs        ReferenceService
}

func NewListingService(listingRepo repository.ListingRepository, profileRepo repository.ProfileRepository, profiles ProfileService, refs ReferenceService) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		profiles:    profiles,
		refs:        refs,
	}
}

func (s *listingService) Create(ctx context.Context, userID int32, l *domain.Listing) (*domain.Listing, error) {
	if _, err := s.profiles.RequireComplete(ctx, userID); err != nil {
		return nil, err
	}

	categories, err := s.refs.ProductCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateListing(l, categories); err != nil {
		return nil, err
	}

	// The owner comes from the authenticated caller, never from the
	// request body.
	l.OwnerID = userID
	if l.Status == "" {
		l.Status = domain.ListingStatusAvailable
	}
	if err := s.listingRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *listingService) Get(ctx context.Context, id int32, v Viewer) (*domain.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.profileRepo.GetByUserID(ctx, l.OwnerID)
	if err == nil {
		l.Owner = owner
		s.stampDistance(l, v)
	}
	return l, nil
}

func (s *listingService) Update(ctx context.Context, userID int32, l *domain.Listing) (*domain.Listing, error) {
	existing, err := s.listingRepo.GetByID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != userID {
		return nil, ErrUnauthorized
	}

	categories, err := s.refs.ProductCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateListing(l, categories); err != nil {
		return nil, err
	}

	l.OwnerID = existing.OwnerID
	if err := s.listingRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return s.listingRepo.GetByID(ctx, l.ID)
}

func (s *listingService) Delete(ctx context.Context, userID, id int32) error {
	existing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return ErrUnauthorized
	}
	return s.listingRepo.Delete(ctx, id)
}

func (s *listingService) Search(ctx context.Context, f repository.ListingFilter, v Viewer, page, pageSize int32) ([]domain.Listing, int32, error) {
	byDistance := f.Sort == "distance"
	if byDistance {
		// Proximity needs a viewer position; without one the search
		// falls back to recency rather than failing.
		if v.Latitude == nil || v.Longitude == nil {
			byDistance = false
		}
		f.Sort = ""
	}
	if f.Status == "" {
		f.Status = domain.ListingStatusAvailable
	}

	listings, total, err := s.listingRepo.Search(ctx, f, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	if v.Latitude != nil && v.Longitude != nil {
		s.stampDistances(ctx, listings, v)
		if v.RadiusKM != nil {
			kept := listings[:0]
			for _, l := range listings {
				if l.DistanceKM != nil && *l.DistanceKM <= *v.RadiusKM {
					kept = append(kept, l)
				}
			}
			listings = kept
		}
		if byDistance {
			sort.SliceStable(listings, func(i, j int) bool {
				// Unknown distances sink to the end.
				di, dj := listings[i].DistanceKM, listings[j].DistanceKM
				switch {
				case di == nil:
					return false
				case dj == nil:
					return true
				default:
					return *di < *dj
				}
			})
		}
	}
	return listings, total, nil
}

func (s *listingService) ListMine(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Listing, int32, error) {
	return s.listingRepo.Search(ctx, repository.ListingFilter{OwnerID: userID}, page, pageSize)
}

// stampDistances resolves each listing's position through its owner's
// profile. Owner lookups are cached per call since one seller commonly
// holds several listings on a page.
func (s *listingService) stampDistances(ctx context.Context, listings []domain.Listing, v Viewer) {
	owners := map[int32]*domain.Profile{}
	for i := range listings {
		owner, ok := owners[listings[i].OwnerID]
		if !ok {
			owner, _ = s.profileRepo.GetByUserID(ctx, listings[i].OwnerID)
			owners[listings[i].OwnerID] = owner
		}
		listings[i].Owner = owner
		s.stampDistance(&listings[i], v)
	}
}

func (s *listingService) stampDistance(l *domain.Listing, v Viewer) {
	if v.Latitude == nil || v.Longitude == nil || l.Owner == nil ||
		l.Owner.Latitude == nil || l.Owner.Longitude == nil {
		return
	}
	d := geo.DistanceKM(*v.Latitude, *v.Longitude, *l.Owner.Latitude, *l.Owner.Longitude)
	l.DistanceKM = &d
}
