package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/pricing"
	"agrimarket-backend/internal/repository"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	equipmentRepo   repository.EquipmentRepository
	profileRepo     repository.ProfileRepository
	userRepo        repository.UserRepository
	notifications   NotificationService
	email           EmailService
}

func NewReservationService(reservationRepo repository.ReservationRepository, equipmentRepo repository.EquipmentRepository,
	profileRepo repository.ProfileRepository, userRepo repository.UserRepository,
	notifications NotificationService, email EmailService) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		notifications:   notifications,
		email:           email,
	}
}

func (s *reservationService) Create(ctx context.Context, renterID, equipmentID int32, startDate, endDate string) (*domain.Reservation, error) {
	start, end, days, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.OwnerID == renterID {
		return nil, ErrOwnEquipment
	}
	if equipment.Status != domain.EquipmentStatusAvailable {
		return nil, ErrEquipmentUnavailable
	}

	res := &domain.Reservation{
		EquipmentID: equipmentID,
		RenterID:    renterID,
		OwnerID:     equipment.OwnerID,
		StartDate:   start,
		EndDate:     end,
		// Snapshot the rate so later price edits leave this reservation
		// untouched.
		PricePerDay: equipment.PricePerDay,
		TotalPrice:  pricing.Total(days, equipment.PricePerDay),
		Status:      domain.ReservationStatusPending,
	}

	if err := s.reservationRepo.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrDateConflict
		}
		return nil, err
	}
	res.Equipment = equipment

	s.notifyOwner(ctx, res, equipment)
	return res, nil
}

func (s *reservationService) Quote(ctx context.Context, equipmentID int32, startDate, endDate string) (*pricing.Quote, error) {
	start, end, _, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return pricing.BuildQuote(start, end, equipment.PricePerDay, equipment.PricePerWeek, equipment.PricePerMonth)
}

func (s *reservationService) Get(ctx context.Context, userID, id int32) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RenterID != userID && res.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	if eq, err := s.equipmentRepo.GetByID(ctx, res.EquipmentID); err == nil {
		res.Equipment = eq
	}
	return res, nil
}

// allowedTransition encodes who may move a reservation where. The owner
// drives the lifecycle; the renter can only cancel, and only before the
// rental starts.
func allowedTransition(res *domain.Reservation, userID int32, next domain.ReservationStatus) bool {
	isOwner := res.OwnerID == userID
	isRenter := res.RenterID == userID

	switch next {
	case domain.ReservationStatusConfirmed:
		return isOwner && res.Status == domain.ReservationStatusPending
	case domain.ReservationStatusInProgress:
		return isOwner && res.Status == domain.ReservationStatusConfirmed
	case domain.ReservationStatusCompleted:
		return isOwner && res.Status == domain.ReservationStatusInProgress
	case domain.ReservationStatusCancelled:
		if isOwner {
			return res.Status == domain.ReservationStatusPending || res.Status == domain.ReservationStatusConfirmed
		}
		return isRenter && (res.Status == domain.ReservationStatusPending || res.Status == domain.ReservationStatusConfirmed)
	}
	return false
}

func (s *reservationService) UpdateStatus(ctx context.Context, userID, id int32, status domain.ReservationStatus) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RenterID != userID && res.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	if !allowedTransition(res, userID, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	res.Status = status

	// The equipment card mirrors the rental lifecycle.
	switch status {
	case domain.ReservationStatusInProgress:
		s.setEquipmentStatus(ctx, res.EquipmentID, domain.EquipmentStatusRented)
	case domain.ReservationStatusCompleted, domain.ReservationStatusCancelled:
		s.setEquipmentStatus(ctx, res.EquipmentID, domain.EquipmentStatusAvailable)
	}

	s.notifyRenter(ctx, res)
	return res, nil
}

func (s *reservationService) ListMine(ctx context.Context, renterID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.ListByRenter(ctx, renterID, status, page, pageSize)
}

func (s *reservationService) ListReceived(ctx context.Context, ownerID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.ListByOwner(ctx, ownerID, status, page, pageSize)
}

func (s *reservationService) setEquipmentStatus(ctx context.Context, equipmentID int32, status domain.EquipmentStatus) {
	if err := s.equipmentRepo.SetStatus(ctx, equipmentID, status); err != nil {
		logger.Warn("equipment status sync failed", "equipment_id", equipmentID, "status", status, "error", err)
	}
}

// notifyOwner tells the equipment owner about a new request. Delivery
// failures never fail the reservation itself.
func (s *reservationService) notifyOwner(ctx context.Context, res *domain.Reservation, equipment *domain.Equipment) {
	if s.notifications == nil && s.email == nil {
		return
	}
	renterName := fmt.Sprintf("utilisateur %d", res.RenterID)
	if p, err := s.profileRepo.GetByUserID(ctx, res.RenterID); err == nil {
		renterName = p.FullName
	}

	if s.notifications != nil {
		err := s.notifications.Notify(ctx, res.OwnerID,
			"Nouvelle demande de reservation",
			fmt.Sprintf("%s souhaite reserver %s du %s au %s.", renterName, equipment.Name,
				res.StartDate.Format("2006-01-02"), res.EndDate.Format("2006-01-02")),
			map[string]string{"reservation_id": fmt.Sprint(res.ID), "equipment_id": fmt.Sprint(res.EquipmentID)})
		if err != nil {
			logger.Warn("reservation notification failed", "reservation_id", res.ID, "error", err)
		}
	}

	if s.email != nil {
		owner, err := s.userRepo.GetByID(ctx, res.OwnerID)
		if err != nil {
			return
		}
		err = s.email.SendReservationRequestNotification(ctx, owner.Email, renterName, equipment.Name,
			res.StartDate.Format("2006-01-02"), res.EndDate.Format("2006-01-02"))
		if err != nil {
			logger.Warn("reservation email failed", "reservation_id", res.ID, "error", err)
		}
	}
}

func (s *reservationService) notifyRenter(ctx context.Context, res *domain.Reservation) {
	if s.notifications == nil && s.email == nil {
		return
	}
	equipmentName := fmt.Sprintf("equipement %d", res.EquipmentID)
	if eq, err := s.equipmentRepo.GetByID(ctx, res.EquipmentID); err == nil {
		equipmentName = eq.Name
	}

	if s.notifications != nil {
		err := s.notifications.Notify(ctx, res.RenterID,
			"Reservation mise a jour",
			fmt.Sprintf("Votre reservation de %s est maintenant: %s.", equipmentName, res.Status),
			map[string]string{"reservation_id": fmt.Sprint(res.ID), "status": string(res.Status)})
		if err != nil {
			logger.Warn("status notification failed", "reservation_id", res.ID, "error", err)
		}
	}

	if s.email != nil {
		renter, err := s.userRepo.GetByID(ctx, res.RenterID)
		if err != nil {
			return
		}
		if err := s.email.SendReservationStatusNotification(ctx, renter.Email, equipmentName, res.Status); err != nil {
			logger.Warn("status email failed", "reservation_id", res.ID, "error", err)
		}
	}
}

func parseRange(startDate, endDate string) (start, end time.Time, days int32, err error) {
	start, err = pricing.ParseDate(startDate)
	if err != nil {
		return start, end, 0, err
	}
	end, err = pricing.ParseDate(endDate)
	if err != nil {
		return start, end, 0, err
	}
	days, err = pricing.InclusiveDays(start, end)
	return start, end, days, err
}
