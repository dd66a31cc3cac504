package cultivation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/Cultivation_Go/internal/affinity"
	"github.com/osse101/Cultivation_Go/internal/clock"
	"github.com/osse101/Cultivation_Go/internal/concurrency"
	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/event"
	"github.com/osse101/Cultivation_Go/internal/logger"
	"github.com/osse101/Cultivation_Go/internal/realm"
	"github.com/osse101/Cultivation_Go/internal/repository"
	"github.com/osse101/Cultivation_Go/internal/temporal"
)

// Service defines the cultivation session business logic
type Service interface {
	// BeginSession starts a session for an idle user
	BeginSession(ctx context.Context, userID, location string) (*domain.SessionContext, error)
	// EndSession completes the active session and credits experience
	EndSession(ctx context.Context, userID string) (*domain.SessionResult, error)
	// GetStatus returns a read-only snapshot
	GetStatus(ctx context.Context, userID string) (*domain.CultivationStatus, error)
	// GetHistory returns completed sessions, newest first
	GetHistory(ctx context.Context, userID string, page, pageSize int) (*domain.SessionHistory, error)
	// ResetDaily rolls streak and day counters over for every user
	ResetDaily(ctx context.Context) (*domain.DailyResetResult, error)
	// Almanac computes the temporal context for an arbitrary instant
	Almanac(ctx context.Context, at time.Time, location string) (*domain.TemporalContext, error)
}

// TemporalEngine computes the temporal context for an instant
type TemporalEngine interface {
	Compute(ctx context.Context, at time.Time, location string) (*domain.TemporalContext, error)
}

// EventPublisher delivers domain events
type EventPublisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

type service struct {
	repo      repository.Cultivation
	profiles  repository.ElementProfile
	engine    TemporalEngine
	publisher EventPublisher
	clock     clock.Clock
	locks     *concurrency.LockManager
}

// NewService creates a new cultivation service. publisher may be nil; clk defaults to the wall clock.
func NewService(
	repo repository.Cultivation,
	profiles repository.ElementProfile,
	engine TemporalEngine,
	publisher EventPublisher,
	clk clock.Clock,
) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{
		repo:      repo,
		profiles:  profiles,
		engine:    engine,
		publisher: publisher,
		clock:     clk,
		locks:     concurrency.NewLockManager(),
	}
}

// BeginSession starts a session for an idle user, provisioning state on first use
func (s *service) BeginSession(ctx context.Context, userID, location string) (*domain.SessionContext, error) {
	log := logger.FromContext(ctx)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	log.Info(LogMsgBeginSession, "userID", userID, "location", location)

	unlock := s.locks.Lock(userID)
	defer unlock()

	// Fail fast before the weather lookup
	if current, err := s.repo.GetState(ctx, userID); err == nil && current.IsActive {
		return nil, domain.ErrAlreadyCultivating
	} else if err != nil && !errors.Is(err, domain.ErrCultivationNotFound) {
		return nil, fmt.Errorf("failed to get cultivation state: %w", err)
	}

	now := s.clock.Now()
	tc, err := s.engine.Compute(ctx, now, location)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := s.lockOrProvision(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if state.IsActive {
		return nil, domain.ErrAlreadyCultivating
	}

	labels := tc.Labels()
	state.IsActive = true
	state.ActiveStartedAt = &now
	state.ActiveContext = &labels

	if err := tx.UpdateState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update cultivation state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info(LogMsgSessionStarted, "userID", userID, "city", labels.City, "multiplier", tc.TotalMultiplier)
	s.publish(ctx, event.NewSessionStartedEvent(userID, labels.City, tc.TotalMultiplier, now))

	return &domain.SessionContext{
		IsActive:        true,
		ActiveStartedAt: now,
		Context:         tc,
	}, nil
}

// EndSession completes the active session, credits experience and appends a log entry
func (s *service) EndSession(ctx context.Context, userID string) (*domain.SessionResult, error) {
	log := logger.FromContext(ctx)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	log.Info(LogMsgEndSession, "userID", userID)

	unlock := s.locks.Lock(userID)
	defer unlock()

	// Context and profile are resolved before the row lock
	current, err := s.repo.GetState(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCultivationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get cultivation state: %w", err)
	}
	if !current.IsActive {
		return nil, domain.ErrNotCultivating
	}

	var location string
	if current.ActiveContext != nil {
		location = current.ActiveContext.City
	}
	now := s.clock.Now()
	tc, err := s.engine.Compute(ctx, now, location)
	if err != nil {
		return nil, err
	}

	bonus, rationale, err := s.sessionBonus(ctx, userID, tc)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := tx.GetStateWithLock(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCultivationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get cultivation state with lock: %w", err)
	}
	if !state.IsActive || state.ActiveStartedAt == nil {
		return nil, domain.ErrNotCultivating
	}

	startedAt := *state.ActiveStartedAt
	minutes, truncated := creditedMinutes(now.Sub(startedAt))
	if truncated {
		log.Warn(LogMsgSessionTruncated, "userID", userID, "startedAt", startedAt, "creditedMinutes", minutes)
	}

	baseExp := int64(minutes) * ExpPerMinute
	expGained := ApplyBonus(baseExp, bonus)

	fromRealm := state.Realm
	adv := realm.Apply(state.Realm, state.CurrentExp, expGained)
	state.Realm = adv.Realm
	state.RealmName = realm.Name(adv.Realm)
	state.CurrentExp = adv.CurrentExp
	state.TotalExp += expGained
	state.IsActive = false
	state.ActiveStartedAt = nil
	state.ActiveContext = nil
	state.TodayMinutes += minutes
	state.LastCultivatedAt = &now

	if err := tx.UpdateState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update cultivation state: %w", err)
	}

	entry := &domain.SessionLogEntry{
		ID:              uuid.NewString(),
		UserID:          userID,
		StartTime:       startedAt,
		EndTime:         now,
		DurationMinutes: minutes,
		ExpGained:       expGained,
		BonusApplied:    bonus,
		Context:         tc.Labels(),
		Truncated:       truncated,
	}
	if err := tx.InsertLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert session log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result := &domain.SessionResult{
		DurationMinutes: minutes,
		Truncated:       truncated,
		BaseExp:         baseExp,
		BonusApplied:    bonus,
		ExpGained:       expGained,
		LevelUp:         adv.RealmsGained > 0,
		RealmsGained:    adv.RealmsGained,
		Rationale:       rationale,
		Cultivation:     state,
	}
	if result.LevelUp {
		newRealm := adv.Realm
		result.NewRealm = &newRealm
		result.NewRealmName = state.RealmName
		log.Info(LogMsgRealmAdvanced, "userID", userID, "from", fromRealm, "to", adv.Realm, "name", state.RealmName)
	}

	log.Info(LogMsgSessionEnded,
		"userID", userID,
		"minutes", minutes,
		"bonus", bonus,
		"expGained", expGained,
		"realm", state.Realm)

	s.publish(ctx, event.NewSessionEndedEvent(userID, result, now))
	if result.LevelUp {
		s.publish(ctx, event.NewRealmAdvancedEvent(userID, fromRealm, adv.Realm, state.RealmName, now))
	}

	return result, nil
}

// lockOrProvision returns the user's state row under lock, inserting an idle row first
// when none exists. A row committed by a concurrent Begin on another instance is picked
// up by the second locked read.
func (s *service) lockOrProvision(ctx context.Context, tx repository.CultivationTx, userID string) (*domain.CultivationState, error) {
	log := logger.FromContext(ctx)

	state, err := tx.GetStateWithLock(ctx, userID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domain.ErrCultivationNotFound) {
		return nil, fmt.Errorf("failed to get cultivation state with lock: %w", err)
	}

	err = tx.CreateState(ctx, newState(userID))
	switch {
	case err == nil:
		log.Info(LogMsgStateProvisioned, "userID", userID)
	case errors.Is(err, domain.ErrStateExists):
		log.Info(LogMsgProvisionRaced, "userID", userID)
	default:
		return nil, err
	}

	state, err = tx.GetStateWithLock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cultivation state with lock: %w", err)
	}
	return state, nil
}

// sessionBonus applies the user's elemental affinity when a profile exists
func (s *service) sessionBonus(ctx context.Context, userID string, tc *domain.TemporalContext) (float64, []string, error) {
	if s.profiles == nil {
		return tc.TotalMultiplier, []string{RationaleNoProfile}, nil
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrElementProfileNotFound) {
			return tc.TotalMultiplier, []string{RationaleNoProfile}, nil
		}
		return 0, nil, fmt.Errorf("failed to get element profile: %w", err)
	}

	aff := affinity.Calculate(profile.PrimaryElement, tc, tc.TotalMultiplier)
	return temporal.Round2(aff.CombinedBonus * profile.RootBonus), aff.Rationale, nil
}

// GetStatus returns the state, profile and realm progress without mutating anything
func (s *service) GetStatus(ctx context.Context, userID string) (*domain.CultivationStatus, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	var (
		state   *domain.CultivationState
		profile *domain.ElementProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.repo.GetState(gctx, userID)
		if err != nil && !errors.Is(err, domain.ErrCultivationNotFound) {
			return fmt.Errorf("failed to get cultivation state: %w", err)
		}
		state = st
		return nil
	})
	if s.profiles != nil {
		g.Go(func() error {
			p, err := s.profiles.GetProfile(gctx, userID)
			if err != nil && !errors.Is(err, domain.ErrElementProfileNotFound) {
				return fmt.Errorf("failed to get element profile: %w", err)
			}
			profile = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	status := &domain.CultivationStatus{Cultivation: state, Profile: profile}
	if state != nil {
		status.Progress = realm.Progress(state.Realm, state.CurrentExp)
	}
	return status, nil
}

// GetHistory returns one page of completed sessions, newest first
func (s *service) GetHistory(ctx context.Context, userID string, page, pageSize int) (*domain.SessionHistory, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", domain.ErrInvalidInput)
	}
	if pageSize < 1 || pageSize > MaxHistoryPageSize {
		return nil, fmt.Errorf("%w: page size must be between 1 and %d", domain.ErrInvalidInput, MaxHistoryPageSize)
	}

	logs, total, err := s.repo.ListLogs(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list session logs: %w", err)
	}
	if logs == nil {
		logs = []domain.SessionLogEntry{}
	}

	return &domain.SessionHistory{
		Logs: logs,
		Pagination: domain.Pagination{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: (total + pageSize - 1) / pageSize,
		},
	}, nil
}

// ResetDaily rolls day counters and publishes a completion event
func (s *service) ResetDaily(ctx context.Context) (*domain.DailyResetResult, error) {
	result, err := s.repo.ResetDaily(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to reset daily counters: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgDailyResetComplete,
		"statesProcessed", result.StatesProcessed,
		"streaksExtended", result.StreaksExtended)
	s.publish(ctx, event.NewDailyResetCompleteEvent(result))
	return result, nil
}

// Almanac computes the temporal context for an arbitrary instant
func (s *service) Almanac(ctx context.Context, at time.Time, location string) (*domain.TemporalContext, error) {
	return s.engine.Compute(ctx, at, location)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func newState(userID string) *domain.CultivationState {
	return &domain.CultivationState{
		UserID:    userID,
		Realm:     realm.MinRealm,
		RealmName: realm.Name(realm.MinRealm),
	}
}

// creditedMinutes floors elapsed time to whole minutes and clamps it to
// [MinSessionMinutes, MaxSessionMinutes]. truncated reports the upper clamp.
func creditedMinutes(elapsed time.Duration) (minutes int, truncated bool) {
	raw := int64(math.Floor(elapsed.Minutes()))
	truncated = raw > MaxSessionMinutes
	return int(min(max(raw, MinSessionMinutes), MaxSessionMinutes)), truncated
}

// ApplyBonus multiplies base experience by a two-decimal bonus using integer
// hundredths, so 100 * 1.15 is exactly 115.
func ApplyBonus(baseExp int64, bonus float64) int64 {
	hundredths := int64(math.Round(bonus * 100))
	return baseExp * hundredths / 100
}
