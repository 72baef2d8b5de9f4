package service

import (
	"context"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(ctx context.Context, userID int32, title, message string, attributes map[string]string) error {
	return s.notificationRepo.Create(ctx, &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Attributes: attributes,
	})
}

func (s *notificationService) List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.notificationRepo.List(ctx, userID, pageSize, (page-1)*pageSize)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.notificationRepo.MarkAsRead(ctx, notificationID, userID)
}
