package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// HistoryService owns the authoritative in-memory conversion history for the
// session and keeps it synchronized with the local key-value store. The
// in-memory list stays the source of truth when a persistence write fails.
type HistoryService struct {
	mu       sync.RWMutex
	records  []domain.ConversionRecord
	repo     portsrepo.HistoryRepositoryFacade
	prefRepo portsrepo.PreferenceRepository
	logger   *slog.Logger
}

// NewHistoryService builds the service and rehydrates the history from the
// store. A missing or unparseable stored list yields an empty history; only
// hard storage failures are logged, and even those never block startup.
func NewHistoryService(ctx context.Context, repo portsrepo.HistoryRepositoryFacade, prefRepo portsrepo.PreferenceRepository, logger *slog.Logger) *HistoryService {
	records, err := repo.LoadHistory(ctx)
	if err != nil {
		logger.Warn("Failed to load conversion history, starting empty", slog.String("error", err.Error()))
		records = nil
	}
	return &HistoryService{
		records:  records,
		repo:     repo,
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// All returns a newest-first snapshot of the history.
func (s *HistoryService) All(ctx context.Context) []domain.ConversionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ConversionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Find retrieves a single record by id.
func (s *HistoryService) Find(ctx context.Context, id int64) (*domain.ConversionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("%w: conversion record %d", apperrors.ErrNotFound, id)
}

// Append inserts the record at the head of the list and persists the full
// list. The record is kept in memory even when the write fails.
func (s *HistoryService) Append(ctx context.Context, record domain.ConversionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.ConversionRecord{record}, s.records...)
	return s.persistLocked(ctx)
}

// Remove deletes the record with the given id, if present, and persists the
// list. Removing an absent id leaves the list unchanged and is not an error.
func (s *HistoryService) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.records[:0:0]
	for _, r := range s.records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(s.records) {
		return nil
	}
	s.records = filtered
	return s.persistLocked(ctx)
}

// Events returns the history table rows, newest first.
func (s *HistoryService) Events(ctx context.Context) []domain.HistoryEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]domain.HistoryEvent, len(s.records))
	for i, r := range s.records {
		events[i] = r.ToHistoryEvent()
	}
	return events
}

// ChartPoints returns the scatter-chart points, newest first.
func (s *HistoryService) ChartPoints(ctx context.Context) []domain.ChartPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	points := make([]domain.ChartPoint, len(s.records))
	for i, r := range s.records {
		points[i] = r.ToChartPoint()
	}
	return points
}

// SelectWindow persists the statistics window selection.
func (s *HistoryService) SelectWindow(ctx context.Context, window domain.TimeWindow) error {
	if err := s.prefRepo.SaveTimeWindow(ctx, window); err != nil {
		s.logger.Warn("Failed to persist time window preference", slog.String("error", err.Error()))
		return fmt.Errorf("failed to persist time window: %w", err)
	}
	return nil
}

// SelectedWindow returns the stored window selection, defaulting to all-time.
func (s *HistoryService) SelectedWindow(ctx context.Context) domain.TimeWindow {
	window, err := s.prefRepo.LoadTimeWindow(ctx)
	if err != nil {
		s.logger.Warn("Failed to load time window preference", slog.String("error", err.Error()))
		return domain.WindowAllTime
	}
	return window
}

func (s *HistoryService) persistLocked(ctx context.Context) error {
	snapshot := make([]domain.ConversionRecord, len(s.records))
	copy(snapshot, s.records)
	if err := s.repo.SaveHistory(ctx, snapshot); err != nil {
		s.logger.Warn("Failed to persist conversion history, in-memory list remains authoritative", slog.String("error", err.Error()))
		return fmt.Errorf("failed to persist history: %w", err)
	}
	return nil
}
