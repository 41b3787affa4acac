package gaze

import (
	"bestcut/internal/timeline"
)

// machineState tags the guard/stability phases so the transition order stays
// auditable in one place.
type machineState int

const (
	stateEntryGuard machineState = iota
	stateStablePending
	stateStableConfirmed
	stateExitGuard
)

func (s machineState) String() string {
	switch s {
	case stateEntryGuard:
		return "entry_guard"
	case stateStablePending:
		return "stable_pending"
	case stateStableConfirmed:
		return "stable_confirmed"
	case stateExitGuard:
		return "exit_guard"
	default:
		return "unknown"
	}
}

// machine walks one candidate interval sample by sample and accumulates
// confirmed attention sub-intervals.
type machine struct {
	cfg      Config
	interval timeline.Interval

	state machineState

	// entry guard accounting
	entryBad int

	// pending run
	hasPending   bool
	pendingSince float64

	// confirmed sub-interval
	segStart  float64
	lastValid float64

	// exit guard accounting
	exitBad int

	emitted timeline.List
}

func newMachine(cfg Config, interval timeline.Interval) *machine {
	return &machine{cfg: cfg, interval: interval, state: stateEntryGuard}
}

func (m *machine) observe(t float64, valid bool) {
	if m.state == stateStableConfirmed && t >= m.interval.End-m.cfg.ExitGuard {
		m.state = stateExitGuard
	}

	switch m.state {
	case stateEntryGuard:
		if valid {
			if !m.hasPending {
				m.hasPending = true
				m.pendingSince = t
			}
		} else {
			m.entryBad++
			if m.entryBad > m.cfg.EntryMaxBadFrames {
				// Too many bad frames at the head: push the effective start
				// past the bad run.
				m.hasPending = false
			}
		}
		if t >= m.interval.Start+m.cfg.EntryGuard {
			m.state = stateStablePending
		}
		m.tryConfirm(t, valid)

	case stateStablePending:
		if valid {
			if !m.hasPending {
				m.hasPending = true
				m.pendingSince = t
			}
		} else {
			m.hasPending = false
		}
		m.tryConfirm(t, valid)

	case stateStableConfirmed:
		if valid {
			m.lastValid = t
		} else if t-m.lastValid > m.cfg.MaxInvalidGap {
			// Invalid run exceeded the tolerated gap: emit and listen for a
			// fresh sub-interval.
			m.close()
		}

	case stateExitGuard:
		if valid {
			m.lastValid = t
		} else {
			m.exitBad++
		}
	}
}

// tryConfirm promotes a pending run that has stayed valid for MinStable.
func (m *machine) tryConfirm(t float64, valid bool) {
	if !m.hasPending || t-m.pendingSince < m.cfg.MinStable {
		return
	}
	m.state = stateStableConfirmed
	m.segStart = m.pendingSince
	if valid {
		m.lastValid = t
	} else {
		// Confirmation on a tolerated bad frame inside the entry guard; the
		// last known-good point is where the pending run started.
		m.lastValid = m.pendingSince
	}
	m.hasPending = false
}

// close emits the confirmed sub-interval ending at the last valid sample.
func (m *machine) close() {
	if m.lastValid > m.segStart {
		m.emitted = append(m.emitted, timeline.Interval{Start: m.segStart, End: m.lastValid})
	}
	m.state = stateStablePending
	m.hasPending = false
}

// finish flushes any open sub-interval at the interval's end. Within the
// exit guard a tolerated amount of flicker keeps the end at the interval
// boundary; beyond the tolerance the end trims back to the last valid sample.
func (m *machine) finish() timeline.List {
	switch m.state {
	case stateStableConfirmed:
		m.close()
	case stateExitGuard:
		if m.exitBad <= m.cfg.ExitMaxBadFrames {
			m.lastValid = m.interval.End
		}
		m.close()
	}
	return m.emitted
}
