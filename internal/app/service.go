package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/metrics"
)

// Service is the application layer. It orchestrates all registry use cases.
type Service struct {
	store domain.ActivityStore
}

// NewService creates the application layer service.
func NewService(store domain.ActivityStore) *Service {
	return &Service{store: store}
}

// ListActivities returns a snapshot of the full registry.
func (s *Service) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	return s.store.List(ctx)
}

// Signup enrolls email in the named activity and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	if err := s.store.AddParticipant(ctx, activity, email); err != nil {
		return "", err
	}

	metrics.SignupsTotal.WithLabelValues(activity).Inc()
	slog.Info("Student signed up", "activity", activity, "email", email)

	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns a confirmation message.
func (s *Service) Unregister(ctx context.Context, activity, email string) (string, error) {
	if err := s.store.RemoveParticipant(ctx, activity, email); err != nil {
		return "", err
	}

	metrics.UnregistrationsTotal.WithLabelValues(activity).Inc()
	slog.Info("Student unregistered", "activity", activity, "email", email)

	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}
