package notify

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type Pruner struct {
	board    *Board
	clock    clock.Clock
	interval time.Duration
	logger   lager.Logger
}

func NewPruner(board *Board, clk clock.Clock, interval time.Duration, logger lager.Logger) *Pruner {
	return &Pruner{
		board:    board,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

func (p *Pruner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	close(ready)

	for {
		select {
		case <-ticker.C():
			pruned := p.board.Prune()
			if pruned > 0 {
				p.logger.Debug("pruned-notices", lager.Data{"count": pruned, "remaining": p.board.Count()})
			}
		case sig := <-signals:
			p.logger.Info("received-signal", lager.Data{"signal": sig})
			return p.board.Close()
		}
	}
}
