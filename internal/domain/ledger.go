package domain

import "time"

// HeartbeatLedger remembers the last accepted heartbeat per station for the
// lifetime of the process. It is not safe for concurrent use.
type HeartbeatLedger struct {
	last map[StationID]time.Time
}

func NewHeartbeatLedger() *HeartbeatLedger {
	return &HeartbeatLedger{last: map[StationID]time.Time{}}
}

func (l *HeartbeatLedger) Last(id StationID) (time.Time, bool) {
	t, ok := l.last[id]
	return t, ok
}

func (l *HeartbeatLedger) Advance(id StationID, heartbeat time.Time) {
	l.last[id] = heartbeat
}

func (l *HeartbeatLedger) Len() int {
	return len(l.last)
}
