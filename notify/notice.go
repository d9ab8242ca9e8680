package notify

import (
	"time"
)

type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Error   Level = "error"
)

const (
	DefaultPosition = "top-right"
	DefaultTimeout  = 2000 * time.Millisecond
)

type Config struct {
	Enabled  bool
	Position string
	Timeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Position == "" {
		c.Position = DefaultPosition
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// TimeoutMillis is the auto-dismiss delay handed to the browser.
func (c Config) TimeoutMillis() int64 {
	return c.Timeout.Milliseconds()
}

type Notice struct {
	ID       string        `json:"id"`
	Session  string        `json:"-"`
	Level    Level         `json:"level"`
	Message  string        `json:"message"`
	Position string        `json:"position"`
	Timeout  time.Duration `json:"-"`
	Created  time.Time     `json:"created"`
}

func (n Notice) Key() string {
	return n.ID
}

func (n Notice) ExpiresAt() time.Time {
	return n.Created.Add(n.Timeout)
}

// Expired reports whether the notice has been on screen for its full timeout.
func (n Notice) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt())
}

// Remaining is how long the notice stays visible after now.
func (n Notice) Remaining(now time.Time) time.Duration {
	if n.Expired(now) {
		return 0
	}
	return n.ExpiresAt().Sub(now)
}
