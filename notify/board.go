package notify

import (
	"errors"
	"sort"
	"sync"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/eventhub"
	"code.cloudfoundry.org/lager/v3"
	uuid "github.com/nu7hatch/gouuid"
)

const maxPendingSubscriberEvents = 64

var ErrDisabled = errors.New("notifications are disabled")

// Board holds the notices of every browser session until they expire.
type Board struct {
	config Config
	clock  clock.Clock
	hub    eventhub.Hub
	logger lager.Logger

	lock    sync.Mutex
	notices map[string][]Notice
}

func NewBoard(cfg Config, clk clock.Clock, logger lager.Logger) *Board {
	return &Board{
		config:  cfg.withDefaults(),
		clock:   clk,
		hub:     eventhub.NewNonBlocking(maxPendingSubscriberEvents),
		logger:  logger,
		notices: map[string][]Notice{},
	}
}

func (b *Board) Config() Config {
	return b.config
}

func (b *Board) Enabled() bool {
	return b.config.Enabled
}

func (b *Board) Push(session string, level Level, message string) (Notice, error) {
	if !b.config.Enabled {
		return Notice{}, ErrDisabled
	}

	guid, err := uuid.NewV4()
	if err != nil {
		b.logger.Error("failed-to-generate-notice-id", err)
		return Notice{}, err
	}

	notice := Notice{
		ID:       guid.String(),
		Session:  session,
		Level:    level,
		Message:  message,
		Position: b.config.Position,
		Timeout:  b.config.Timeout,
		Created:  b.clock.Now(),
	}

	b.lock.Lock()
	b.notices[session] = append(b.notices[session], notice)
	b.lock.Unlock()

	b.logger.Debug("pushed", lager.Data{"id": notice.ID, "level": level})
	b.hub.Emit(notice)

	return notice, nil
}

// Active returns the session's unexpired notices, oldest first.
func (b *Board) Active(session string) []Notice {
	now := b.clock.Now()

	b.lock.Lock()
	defer b.lock.Unlock()

	var active []Notice
	for _, n := range b.notices[session] {
		if !n.Expired(now) {
			active = append(active, n)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Created.Before(active[j].Created)
	})
	return active
}

// Dismiss drops a notice before it expires. It reports whether the session
// held the notice.
func (b *Board) Dismiss(session, id string) bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	notices := b.notices[session]
	for i, n := range notices {
		if n.ID == id {
			b.notices[session] = append(notices[:i:i], notices[i+1:]...)
			if len(b.notices[session]) == 0 {
				delete(b.notices, session)
			}
			return true
		}
	}
	return false
}

// Prune drops expired notices and returns how many were removed.
func (b *Board) Prune() int {
	now := b.clock.Now()

	b.lock.Lock()
	defer b.lock.Unlock()

	pruned := 0
	for session, notices := range b.notices {
		kept := notices[:0]
		for _, n := range notices {
			if n.Expired(now) {
				pruned++
				continue
			}
			kept = append(kept, n)
		}
		if len(kept) == 0 {
			delete(b.notices, session)
		} else {
			b.notices[session] = kept
		}
	}
	return pruned
}

// Count is the number of notices currently held, expired or not.
func (b *Board) Count() int {
	b.lock.Lock()
	defer b.lock.Unlock()

	count := 0
	for _, notices := range b.notices {
		count += len(notices)
	}
	return count
}

// ActiveCount is the number of unexpired notices across all sessions.
func (b *Board) ActiveCount() int {
	now := b.clock.Now()

	b.lock.Lock()
	defer b.lock.Unlock()

	count := 0
	for _, notices := range b.notices {
		for _, n := range notices {
			if !n.Expired(now) {
				count++
			}
		}
	}
	return count
}

func (b *Board) Subscribe() (eventhub.Source, error) {
	return b.hub.Subscribe()
}

func (b *Board) Close() error {
	return b.hub.Close()
}
