package domain

// SessionRecord is one completed focus session as persisted in the session
// log. Records are immutable once appended; the log itself is append-only.
type SessionRecord struct {
	Date        string // YYYY-MM-DD, local time of the session start
	Time        string // HH:MM, local time of the session start
	Duration    int    // actual elapsed seconds, always > 0
	Description string // focus task text at completion time
}

// StreakState is the cached consecutive-day streak, persisted in the meta
// file and recomputed at most once per committed session.
type StreakState struct {
	Max     int
	Current int
}
