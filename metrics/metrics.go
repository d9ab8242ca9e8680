package metrics

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/cactus/go-statsd-client/v5/statsd"
)

const (
	ViewsLoadedStat         = "views_loaded"
	ActiveNotificationsStat = "active_notifications"
	APIErrorsStat           = "api_errors"
)

//go:generate counterfeiter -o fakes/fake_partial_statsd_client.go . PartialStatsdClient
type PartialStatsdClient interface {
	Gauge(stat string, value int64, rate float32, tags ...statsd.Tag) error
	Inc(stat string, value int64, rate float32, tags ...statsd.Tag) error
}

type ViewCounter interface {
	LoadedCount() int
}

type NoticeCounter interface {
	ActiveCount() int
}

type MetricsReporter struct {
	views    ViewCounter
	notices  NoticeCounter
	stats    PartialStatsdClient
	clock    clock.Clock
	interval time.Duration
	logger   lager.Logger
}

// NewMetricsReporter gauges view and notice counts every interval. notices
// may be nil when notifications are disabled.
func NewMetricsReporter(views ViewCounter, notices NoticeCounter, stats PartialStatsdClient, clk clock.Clock, interval time.Duration, logger lager.Logger) *MetricsReporter {
	return &MetricsReporter{
		views:    views,
		notices:  notices,
		stats:    stats,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

func (r *MetricsReporter) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	r.emitGauges()
	close(ready)

	for {
		select {
		case <-ticker.C():
			r.emitGauges()
		case <-signals:
			return nil
		}
	}
}

func (r *MetricsReporter) emitGauges() {
	err := r.stats.Gauge(ViewsLoadedStat, int64(r.views.LoadedCount()), 1.0)
	if err != nil {
		r.logger.Error("failed-to-emit-gauge", err, lager.Data{"stat": ViewsLoadedStat})
	}

	if r.notices == nil {
		return
	}
	err = r.stats.Gauge(ActiveNotificationsStat, int64(r.notices.ActiveCount()), 1.0)
	if err != nil {
		r.logger.Error("failed-to-emit-gauge", err, lager.Data{"stat": ActiveNotificationsStat})
	}
}

// IncrementAPIError counts a failed backend call, tagged with its error type.
func (r *MetricsReporter) IncrementAPIError(errType string) {
	err := r.stats.Inc(APIErrorsStat, 1, 1.0, statsd.Tag{"type", errType})
	if err != nil {
		r.logger.Error("failed-to-increment-counter", err, lager.Data{"stat": APIErrorsStat})
	}
}
