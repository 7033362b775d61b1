// Package scheduler drives the automatic meal pushes and the reserved
// campaign poll.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mealbell/config"
	"mealbell/internal/delivery"
	"mealbell/internal/domain/constants"
	"mealbell/internal/domain/entity"
	"mealbell/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the scheduler, injected by Fx
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	CampaignUC usecase.CampaignUsecase
}

// mealTrigger is one fixed daily firing time for a meal slot.
type mealTrigger struct {
	slot   entity.MealSlot
	hour   int
	minute int
}

type schedulerServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	campaignUC usecase.CampaignUsecase
	location   *time.Location
	triggers   []mealTrigger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewScheduler builds the scheduler delivery from the configured timezone
// and the three daily meal times.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	location, err := time.LoadLocation(params.Config.Scheduler.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %s", params.Config.Scheduler.Timezone)
	}

	clocks := []struct {
		slot  entity.MealSlot
		value string
	}{
		{entity.MealSlotMorning, params.Config.Scheduler.MorningAt},
		{entity.MealSlotLunch, params.Config.Scheduler.LunchAt},
		{entity.MealSlotDinner, params.Config.Scheduler.DinnerAt},
	}

	triggers := make([]mealTrigger, 0, len(clocks))
	for _, clock := range clocks {
		hour, minute, err := parseClock(clock.value)
		if err != nil {
			return nil, err
		}
		triggers = append(triggers, mealTrigger{slot: clock.slot, hour: hour, minute: minute})
	}

	srv := &schedulerServer{
		cfg:        params.Config,
		logger:     params.Logger,
		campaignUC: params.CampaignUC,
		location:   location,
		triggers:   triggers,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the three daily meal triggers and the reserved campaign poll
// until the context is canceled. Job failures are logged and the loops
// keep going.
func (s *schedulerServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("Starting scheduler",
		slog.String("timezone", s.cfg.Scheduler.Timezone),
		slog.Duration("poll_interval", s.cfg.Scheduler.PollInterval),
	)

	var wg sync.WaitGroup
	for _, trigger := range s.triggers {
		wg.Add(1)
		go func(trigger mealTrigger) {
			defer wg.Done()
			s.runMealTrigger(ctx, trigger)
		}(trigger)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.runReservedPoll(ctx)
	}()

	wg.Wait()

	return nil
}

func (s *schedulerServer) stop(_ context.Context) error {
	s.logger.Info("Shutting down scheduler")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}

	return nil
}

// runMealTrigger fires the meal push for one slot at its daily clock time.
func (s *schedulerServer) runMealTrigger(ctx context.Context, trigger mealTrigger) {
	for {
		now := time.Now().In(s.location)
		next := nextRun(now, trigger.hour, trigger.minute)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}

		date := time.Now().In(s.location).Format(constants.DateLayout)
		if err := s.campaignUC.DispatchMealCampaign(ctx, trigger.slot, date); err != nil {
			s.logger.Error("Meal push job failed",
				slog.String("slot", trigger.slot.String()),
				slog.String("date", date),
				slog.String("error", err.Error()),
			)
		}
	}
}

// runReservedPoll dispatches due reserved campaigns once per poll interval.
func (s *schedulerServer) runReservedPoll(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Scheduler.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := s.campaignUC.DispatchDueCampaigns(ctx, now.In(s.location)); err != nil {
				s.logger.Error("Reserved campaign poll failed", slog.String("error", err.Error()))
			}
		}
	}
}

// parseClock parses a daily firing time in "HH:MM" form.
func parseClock(value string) (int, int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse clock %q", value)
	}

	return t.Hour(), t.Minute(), nil
}

// nextRun returns the next occurrence of the clock time at or after now,
// in now's location.
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
