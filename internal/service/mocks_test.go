package service

import (
	"context"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileRepo struct{ mock.Mock }

func (m *MockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepo) TouchLastSeen(ctx context.Context, userID int32) error {
	return m.Called(ctx, userID).Error(0)
}

type MockListingRepo struct{ mock.Mock }

func (m *MockListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockListingRepo) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepo) Update(ctx context.Context, l *domain.Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockListingRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockListingRepo) Search(ctx context.Context, f repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, f, page, pageSize)
	var items []domain.Listing
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Listing)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

type MockEquipmentRepo struct{ mock.Mock }

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEquipmentRepo) Search(ctx context.Context, f repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, f, page, pageSize)
	var items []domain.Equipment
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Equipment)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

func (m *MockEquipmentRepo) SetStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockReservationRepo struct{ mock.Mock }

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockReservationRepo) ListByRenter(ctx context.Context, renterID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	var items []domain.Reservation
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Reservation)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

func (m *MockReservationRepo) ListByOwner(ctx context.Context, ownerID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, ownerID, status, page, pageSize)
	var items []domain.Reservation
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Reservation)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

type MockReviewRepo struct{ mock.Mock }

func (m *MockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewRepo) ListByEquipment(ctx context.Context, equipmentID int32) ([]domain.Review, error) {
	args := m.Called(ctx, equipmentID)
	var items []domain.Review
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Review)
	}
	return items, args.Error(1)
}

type MockCategoryRepo struct{ mock.Mock }

func (m *MockCategoryRepo) ListProductCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var items []domain.Category
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Category)
	}
	return items, args.Error(1)
}

func (m *MockCategoryRepo) ListEquipmentCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var items []domain.Category
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Category)
	}
	return items, args.Error(1)
}

func (m *MockCategoryRepo) ListStates(ctx context.Context) ([]domain.RefItem, error) {
	args := m.Called(ctx)
	var items []domain.RefItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.RefItem)
	}
	return items, args.Error(1)
}

func (m *MockCategoryRepo) ListCrops(ctx context.Context) ([]domain.RefItem, error) {
	args := m.Called(ctx)
	var items []domain.RefItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.RefItem)
	}
	return items, args.Error(1)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	var items []domain.Notification
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Notification)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendWelcome(ctx context.Context, email, name string) error {
	return m.Called(ctx, email, name).Error(0)
}

func (m *MockEmailService) SendReservationRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentName, startDate, endDate string) error {
	return m.Called(ctx, ownerEmail, renterName, equipmentName, startDate, endDate).Error(0)
}

func (m *MockEmailService) SendReservationStatusNotification(ctx context.Context, renterEmail, equipmentName string, status domain.ReservationStatus) error {
	return m.Called(ctx, renterEmail, equipmentName, status).Error(0)
}

// fakeTokenManager avoids real signing in service tests.
type fakeTokenManager struct{}

func (fakeTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	return "access-token", nil
}

func (fakeTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	return "refresh-token", nil
}

func (fakeTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	switch tokenString {
	case "refresh-token":
		return &security.UserClaims{UserID: 1, Email: "a@b.c", Type: security.TokenTypeRefresh}, nil
	case "access-token":
		return &security.UserClaims{UserID: 1, Email: "a@b.c", Type: security.TokenTypeAccess}, nil
	}
	return nil, security.ErrInvalidToken
}
