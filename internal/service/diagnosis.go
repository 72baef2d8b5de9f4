package service

import (
	"context"

	"agrimarket-backend/internal/diagnosis"
	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/history"
	"agrimarket-backend/internal/logger"
)

type diagnosisService struct {
	analyzer diagnosis.Analyzer
	log      *history.Log
}

func NewDiagnosisService(analyzer diagnosis.Analyzer, log *history.Log) DiagnosisService {
	return &diagnosisService{analyzer: analyzer, log: log}
}

func (s *diagnosisService) Diagnose(ctx context.Context, userID int32, imageURI string) (*domain.DiagnosisResult, error) {
	result, err := s.analyzer.Analyze(ctx, imageURI)
	if err != nil {
		return nil, err
	}

	// History is a convenience record; losing an entry must not lose
	// the diagnosis the farmer is waiting for.
	stored, err := s.log.Add(ctx, userID, *result)
	if err != nil {
		logger.Warn("diagnosis history append failed", "user_id", userID, "error", err)
		return result, nil
	}
	return stored, nil
}

func (s *diagnosisService) History(ctx context.Context, userID int32) ([]domain.DiagnosisResult, error) {
	return s.log.List(ctx, userID)
}

func (s *diagnosisService) RemoveFromHistory(ctx context.Context, userID int32, entryID string) error {
	return s.log.Remove(ctx, userID, entryID)
}

func (s *diagnosisService) ClearHistory(ctx context.Context, userID int32) error {
	return s.log.Clear(ctx, userID)
}
