package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/log"
)

const (
	reminderTimeout = 2 * time.Minute
	// used when the configured cadence is invalid
	idleRecheck = time.Hour
)

type reminderSender interface {
	SendReminder(ctx context.Context) error
}

type scheduler struct {
	sender           reminderSender
	weekday          int
	notificationTime string
	loc              *time.Location
	now              func() time.Time

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
	running  bool
}

func newScheduler(sender reminderSender, weekday int, notificationTime string, loc *time.Location) *scheduler {
	if loc == nil {
		loc = time.UTC
	}

	return &scheduler{
		sender:           sender,
		weekday:          weekday,
		notificationTime: notificationTime,
		loc:              loc,
		now:              time.Now,
		stopChan:         make(chan struct{}),
		done:             make(chan struct{}),
		running:          false,
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	log.WithFields(log.Fields{
		"weekday": domain.WeekdayNames[s.weekday],
		"time":    s.notificationTime,
		"zone":    s.loc.String(),
	}).Info("Scheduler starting...")

	go s.mainLoop(s.stopChan, s.done)
}

// Stop waits for an in-flight reminder to finish before returning.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stopChan, done := s.stopChan, s.done
	s.mu.Unlock()

	log.Info("Scheduler stopping...")
	close(stopChan)
	<-done
}

func (s *scheduler) mainLoop(stopChan <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		nextTime := s.calculateNext(s.now())

		if nextTime.IsZero() {
			log.Warn("No valid reminder schedule configured, waiting 1 hour...")
			timer := time.NewTimer(idleRecheck)
			select {
			case <-timer.C:
				continue
			case <-stopChan:
				timer.Stop()
				return
			}
		}

		log.Infof("Next reminder at %s", nextTime.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			s.fire()

		case <-stopChan:
			timer.Stop()
			return
		}
	}
}

// calculateNext returns the first reminder instant strictly after now, or the
// zero time when the cadence is invalid.
func (s *scheduler) calculateNext(now time.Time) time.Time {
	hour, minute, ok := parseNotificationTime(s.notificationTime)
	if !ok {
		log.Errorf("Invalid reminder time format: %q", s.notificationTime)
		return time.Time{}
	}

	if s.weekday < domain.Monday || s.weekday > domain.Sunday {
		log.Errorf("Invalid reminder weekday: %d", s.weekday)
		return time.Time{}
	}

	local := now.In(s.loc)

	// Try today first
	today := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, s.loc)
	if domain.ISOWeekday(today) == s.weekday && today.After(local) {
		return today
	}

	for i := 1; i <= 7; i++ {
		nextDay := time.Date(local.Year(), local.Month(), local.Day()+i, hour, minute, 0, 0, s.loc)
		if domain.ISOWeekday(nextDay) == s.weekday {
			return nextDay
		}
	}

	return time.Time{}
}

func (s *scheduler) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
	defer cancel()

	log.Info("Sending weekly reminder")

	if err := s.sender.SendReminder(ctx); err != nil {
		log.WithError(err).Error("Failed to send weekly reminder")
	}
}

func parseNotificationTime(value string) (hour, minute int, ok bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
