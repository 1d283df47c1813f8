package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/ports"
	"github.com/mkaski/focusforge/internal/timeutil"
)

// sessionLog implements ports.SessionLog on an append-only CSV file.
// Each line is `YYYY-MM-DD,HH:MM,<seconds>,"<description>"`. The
// description is quoted but not escaped, so quotes inside it would
// truncate the field on read. That is the historical format and readers
// must tolerate it rather than fix it.
type sessionLog struct {
	path string
}

// newSessionLog creates a session log backed by the file at path.
func newSessionLog(path string) ports.SessionLog {
	return &sessionLog{path: path}
}

// Append adds one record to the end of the log.
func (s *sessionLog) Append(ctx context.Context, record domain.SessionRecord) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}

	_, err = fmt.Fprintf(f, "%s,%s,%d,\"%s\"\n",
		record.Date, record.Time, record.Duration, record.Description)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append session record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close session log: %w", err)
	}

	return nil
}

// All reads every parseable record, oldest first. Unparseable rows are
// skipped.
func (s *sessionLog) All(ctx context.Context) ([]domain.SessionRecord, error) {
	return s.scan(func(domain.SessionRecord) bool { return true })
}

// ForDate reads the records for one calendar date.
func (s *sessionLog) ForDate(ctx context.Context, date string) ([]domain.SessionRecord, error) {
	return s.scan(func(r domain.SessionRecord) bool { return r.Date == date })
}

// CountForDate counts the records for one calendar date.
func (s *sessionLog) CountForDate(ctx context.Context, date string) (int, error) {
	records, err := s.ForDate(ctx, date)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// HasDate reports whether at least one record exists for a date.
func (s *sessionLog) HasDate(ctx context.Context, date string) (bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open session log: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		record, ok := parseRecord(scanner.Text())
		if ok && record.Date == date {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read session log: %w", err)
	}

	return false, nil
}

// scan reads the whole log, keeping records that pass the filter.
func (s *sessionLog) scan(keep func(domain.SessionRecord) bool) ([]domain.SessionRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []domain.SessionRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		record, ok := parseRecord(scanner.Text())
		if ok && keep(record) {
			records = append(records, record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session log: %w", err)
	}

	return records, nil
}

// parseRecord parses one log line. The parse is defensive: any row that
// does not have three commas, a valid date, and a quoted description is
// dropped.
func parseRecord(line string) (domain.SessionRecord, bool) {
	var record domain.SessionRecord

	date, rest, ok := strings.Cut(line, ",")
	if !ok {
		return record, false
	}
	clock, rest, ok := strings.Cut(rest, ",")
	if !ok {
		return record, false
	}
	durField, rest, ok := strings.Cut(rest, ",")
	if !ok {
		return record, false
	}

	if !timeutil.ValidDate(date) {
		return record, false
	}

	// Description sits between the first pair of quotes. No escaping.
	if len(rest) < 2 || rest[0] != '"' {
		return record, false
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return record, false
	}

	duration, err := strconv.Atoi(durField)
	if err != nil {
		duration = 0
	}

	record = domain.SessionRecord{
		Date:        date,
		Time:        clock,
		Duration:    duration,
		Description: rest[1 : 1+end],
	}
	return record, true
}
