package service

import (
	"context"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/playback"
)

// PlaybackOptions are the per-attempt adjustments a client may apply
// before starting a session: a different rest time and per-exercise
// duration overrides. Neither touches the stored session.
type PlaybackOptions struct {
	RestTime          int            `json:"rest_time"` // 0 = session default
	DurationOverrides map[string]int `json:"duration_overrides"`
}

// PlaybackPreview is what the client shows on the pre-start screen:
// the effective exercise list and the total run time including rests.
type PlaybackPreview struct {
	SessionID     string                    `json:"session_id"`
	RestTime      int                       `json:"rest_time"`
	Exercises     []*domain.SessionExercise `json:"exercises"`
	TotalDuration int                       `json:"total_duration"`
}

// PlaybackService resolves a session and per-attempt options into the
// inputs the playback engine runs on.
type PlaybackService struct {
	sessionRepo domain.SessionRepository
}

// NewPlaybackService creates a new playback service
func NewPlaybackService(sessionRepo domain.SessionRepository) *PlaybackService {
	return &PlaybackService{sessionRepo: sessionRepo}
}

// resolve loads the session, checks the viewer may play it and folds
// the options into a playback config plus the effective entry list.
func (s *PlaybackService) resolve(ctx context.Context, userID, sessionID string, opts PlaybackOptions) ([]*domain.SessionExercise, playback.Config, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, playback.Config{}, err
	}
	if !session.VisibleTo(userID) {
		return nil, playback.Config{}, domain.ErrForbidden
	}

	restTime := session.RestTime
	if opts.RestTime != 0 {
		if !domain.ValidRestTime(opts.RestTime) {
			return nil, playback.Config{}, domain.ErrInvalidRestTime
		}
		restTime = opts.RestTime
	}
	for _, d := range opts.DurationOverrides {
		if d <= 0 {
			return nil, playback.Config{}, domain.ErrInvalidDuration
		}
	}

	cfg := playback.Config{
		RestTime:          restTime,
		DurationOverrides: opts.DurationOverrides,
	}
	return session.Exercises, cfg, nil
}

// Preview returns the effective exercise list and total duration for a
// playback attempt, with overrides applied
func (s *PlaybackService) Preview(ctx context.Context, userID, sessionID string, opts PlaybackOptions) (*PlaybackPreview, error) {
	entries, cfg, err := s.resolve(ctx, userID, sessionID, opts)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, playback.ErrEmptyPlaybackList
	}

	effective := make([]*domain.SessionExercise, len(entries))
	for i, entry := range entries {
		e := *entry
		if d, ok := cfg.DurationOverrides[entry.ExerciseID]; ok {
			e.Duration = d
		}
		effective[i] = &e
	}

	return &PlaybackPreview{
		SessionID:     sessionID,
		RestTime:      cfg.RestTime,
		Exercises:     effective,
		TotalDuration: domain.ComputeTotalDuration(effective, cfg.RestTime),
	}, nil
}

// Timeline returns the full phase schedule for a playback attempt
func (s *PlaybackService) Timeline(ctx context.Context, userID, sessionID string, opts PlaybackOptions) (*playback.Timeline, error) {
	entries, cfg, err := s.resolve(ctx, userID, sessionID, opts)
	if err != nil {
		return nil, err
	}
	return playback.BuildTimeline(entries, cfg)
}
