// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package audit scores every password of a list and summarizes the results.
// Only counts leave a worker; the passwords themselves are never logged or kept.
package audit

import (
	"bufio"
	"github.com/alvinbaena/pwd-analyst/pkg/strength"
	"github.com/cockroachdb/errors"
	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

const (
	chunkLen         = 4 * 1024
	maxLineLen       = 1024 * 1024
	progressInterval = 10 * time.Second
)

// CheckCount is how many passwords failed a check.
type CheckCount struct {
	Check strength.Check
	Count uint64
}

// Summary aggregates the evaluation of a password list.
type Summary struct {
	Total  uint64
	Scores [strength.MaxScore + 1]uint64
	Failed [strength.MaxScore]uint64
}

// Mean is the average score, 0 for an empty list.
func (s Summary) Mean() float64 {
	if s.Total == 0 {
		return 0
	}

	var sum uint64
	for score, n := range s.Scores {
		sum += uint64(score) * n
	}

	return float64(sum) / float64(s.Total)
}

// RankedChecks lists the checks that failed at least once, most failed first.
func (s Summary) RankedChecks() []CheckCount {
	counts := make([]CheckCount, 0, len(s.Failed))
	for c, n := range s.Failed {
		if n > 0 {
			counts = append(counts, CheckCount{Check: strength.Check(c), Count: n})
		}
	}

	lsw := func(i, k, x, y int) bool {
		if counts[i].Count > counts[k].Count ||
			(counts[i].Count == counts[k].Count && counts[i].Check < counts[k].Check) {
			if x != y {
				counts[x], counts[y] = counts[y], counts[x]
			}
			return true
		}
		return false
	}
	sorty.Sort(len(counts), lsw)

	return counts
}

// Log writes the summary to the global logger.
func (s Summary) Log() {
	p := message.NewPrinter(language.English)

	log.Info().Msgf("audited %s passwords, mean score %.2f of %d", p.Sprintf("%d", s.Total), s.Mean(), strength.MaxScore)
	for score := len(s.Scores) - 1; score >= 0; score-- {
		log.Info().Msgf("score %d: %s (%.2f%%)", score, p.Sprintf("%d", s.Scores[score]), s.percent(s.Scores[score]))
	}
	for _, cc := range s.RankedChecks() {
		log.Info().Msgf("failed %s check: %s (%.2f%%)", cc.Check, p.Sprintf("%d", cc.Count), s.percent(cc.Count))
	}
}

func (s Summary) percent(n uint64) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(n*100) / float64(s.Total)
}

// Auditor evaluates password lists on a bounded worker pool.
type Auditor struct {
	parallelism int
	stat        *status
	scores      [strength.MaxScore + 1]atomic.Uint64
	failed      [strength.MaxScore]atomic.Uint64
}

// NewAuditor creates an auditor with the given number of workers. Values below
// 1 use one worker per logical CPU.
func NewAuditor(parallelism int) *Auditor {
	return &Auditor{parallelism: parallelism}
}

// Run evaluates every non blank line of r. Trailing carriage returns are
// dropped so CRLF lists work.
func (a *Auditor) Run(r io.Reader) (Summary, error) {
	threads := a.parallelism
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	// This is a bounded thread pool, same as the downloads used to have.
	tasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return Summary{}, errors.Wrap(err, "creating worker pool")
	}
	defer tasks.Close()

	a.reset()
	log.Debug().Msgf("auditing passwords with %d threads", threads)
	a.stat = newStatus(progressInterval)
	a.stat.BeginProgress()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	lines := make([]string, 0, chunkLen)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
		if len(lines) == chunkLen {
			if err = tasks.Publish(a.evaluateChunk, lines); err != nil {
				break
			}
			lines = make([]string, 0, chunkLen)
		}
	}

	if err == nil && len(lines) > 0 {
		err = tasks.Publish(a.evaluateChunk, lines)
	}

	tasks.Wait()
	a.stat.Done()

	if err != nil {
		return Summary{}, errors.Wrap(err, "scheduling evaluation")
	}
	if err = scanner.Err(); err != nil {
		return Summary{}, errors.Wrap(err, "reading password list")
	}

	return a.summary(), nil
}

func (a *Auditor) evaluateChunk(lines []string) {
	for _, line := range lines {
		res := strength.Evaluate(line)
		a.scores[res.Score].Add(1)
		for _, c := range res.Failed {
			a.failed[c].Add(1)
		}
	}

	a.stat.Evaluated(len(lines))
}

func (a *Auditor) reset() {
	for i := range a.scores {
		a.scores[i].Store(0)
	}
	for i := range a.failed {
		a.failed[i].Store(0)
	}
}

func (a *Auditor) summary() Summary {
	var s Summary
	for i := range a.scores {
		s.Scores[i] = a.scores[i].Load()
		s.Total += s.Scores[i]
	}
	for i := range a.failed {
		s.Failed[i] = a.failed[i].Load()
	}

	return s
}
