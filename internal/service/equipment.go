package service

import (
	"context"
	"errors"
	"sort"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/geo"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/validation"
)

type equipmentService struct {
	equipmentRepo   repository.EquipmentRepository
	reservationRepo repository.ReservationRepository
	reviewRepo      repository.ReviewRepository
	profileRepo     repository.ProfileRepository
	profiles        ProfileService
	refs            ReferenceService
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, reservationRepo repository.ReservationRepository,
	reviewRepo repository.ReviewRepository, profileRepo repository.ProfileRepository,
	profiles ProfileService, refs ReferenceService) EquipmentService {
	return &equipmentService{
		equipmentRepo:   equipmentRepo,
		reservationRepo: reservationRepo,
		reviewRepo:      reviewRepo,
		profileRepo:     profileRepo,
		profiles:        profiles,
		refs:            refs,
	}
}

func (s *equipmentService) Create(ctx context.Context, userID int32, e *domain.Equipment) (*domain.Equipment, error) {
	if _, err := s.profiles.RequireComplete(ctx, userID); err != nil {
		return nil, err
	}

	categories, err := s.refs.EquipmentCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateEquipment(e, categories); err != nil {
		return nil, err
	}

	e.OwnerID = userID
	if e.Status == "" {
		e.Status = domain.EquipmentStatusAvailable
	}
	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *equipmentService) Get(ctx context.Context, id int32, v Viewer) (*domain.Equipment, error) {
	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.profileRepo.GetByUserID(ctx, e.OwnerID); err == nil {
		e.Owner = owner
	}
	stampEquipmentDistance(e, v)
	return e, nil
}

func (s *equipmentService) Update(ctx context.Context, userID int32, e *domain.Equipment) (*domain.Equipment, error) {
	existing, err := s.equipmentRepo.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != userID {
		return nil, ErrUnauthorized
	}

	categories, err := s.refs.EquipmentCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateEquipment(e, categories); err != nil {
		return nil, err
	}

	e.OwnerID = existing.OwnerID
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.equipmentRepo.GetByID(ctx, e.ID)
}

func (s *equipmentService) Delete(ctx context.Context, userID, id int32) error {
	existing, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return ErrUnauthorized
	}
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) Search(ctx context.Context, f repository.EquipmentFilter, v Viewer, page, pageSize int32) ([]domain.Equipment, int32, error) {
	byDistance := f.Sort == "distance"
	if byDistance {
		if v.Latitude == nil || v.Longitude == nil {
			byDistance = false
		}
		f.Sort = ""
	}
	if f.Status == "" {
		f.Status = domain.EquipmentStatusAvailable
	}

	items, total, err := s.equipmentRepo.Search(ctx, f, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	if v.Latitude != nil && v.Longitude != nil {
		for i := range items {
			stampEquipmentDistance(&items[i], v)
		}
		if v.RadiusKM != nil {
			kept := items[:0]
			for _, e := range items {
				if e.DistanceKM != nil && *e.DistanceKM <= *v.RadiusKM {
					kept = append(kept, e)
				}
			}
			items = kept
		}
		if byDistance {
			sort.SliceStable(items, func(i, j int) bool {
				di, dj := items[i].DistanceKM, items[j].DistanceKM
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
	return items, total, nil
}

func (s *equipmentService) ListMine(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Equipment, int32, error) {
	return s.equipmentRepo.Search(ctx, repository.EquipmentFilter{OwnerID: userID}, page, pageSize)
}

func (s *equipmentService) AddReview(ctx context.Context, userID, equipmentID, reservationID, rating int32, comment string) (*domain.Review, error) {
	if err := validation.ValidateReview(rating, comment); err != nil {
		return nil, err
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.EquipmentID != equipmentID {
		return nil, validation.FieldErrors{"reservation_id": "does not belong to this equipment"}
	}
	if res.RenterID != userID {
		return nil, ErrUnauthorized
	}
	if res.Status != domain.ReservationStatusCompleted {
		return nil, ErrInvalidTransition
	}

	rv := &domain.Review{
		EquipmentID:   res.EquipmentID,
		ReservationID: reservationID,
		RaterID:       userID,
		Rating:        rating,
		Comment:       comment,
	}
	if err := s.reviewRepo.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

func (s *equipmentService) ListReviews(ctx context.Context, equipmentID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByEquipment(ctx, equipmentID)
}

func stampEquipmentDistance(e *domain.Equipment, v Viewer) {
	if v.Latitude == nil || v.Longitude == nil || e.Latitude == nil || e.Longitude == nil {
		return
	}
	d := geo.DistanceKM(*v.Latitude, *v.Longitude, *e.Latitude, *e.Longitude)
	e.DistanceKM = &d
}
