package audit

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"sync/atomic"
	"time"
)

type status struct {
	evaluated atomic.Uint64
	start     time.Time
	ticker    *time.Ticker
	progress  chan bool
}

func newStatus(interval time.Duration) *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(interval),
		progress: make(chan bool),
	}
}

// BeginProgress reports the number of evaluated passwords on every tick.
func (s *status) BeginProgress() {
	go func() {
		p := message.NewPrinter(language.English)
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%s passwords evaluated. %.0f passwords/s",
					p.Sprintf("%d", s.evaluated.Load()), s.perSecond())
			}
		}
	}()
}

func (s *status) Evaluated(n int) {
	s.evaluated.Add(uint64(n))
}

func (s *status) perSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(s.evaluated.Load()) / elapsed.Seconds()
	}

	return float64(s.evaluated.Load())
}

func (s *status) Done() {
	s.ticker.Stop()
	s.progress <- true
	log.Info().Msgf("finished evaluating passwords in %v. %.0f passwords/s", time.Since(s.start), s.perSecond())
}
