// Package callhistory keeps the in-memory ledger of calls placed from the
// dashboard. Nothing is persisted; the ledger lives as long as the process.
package callhistory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/errors"
)

// TimestampLayout is how call timestamps are rendered in exports
const TimestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"Call ID", "Timestamp", "Agent", "Status"}

// Store is an insertion-ordered ledger of calls, most recent first. Only the
// head record may change state.
type Store struct {
	mu      sync.Mutex
	records []*entities.CallRecord
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for new records
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty call history
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartCall prepends an Active record for callID. Callers must make sure an
// agent is selected before calling.
func (s *Store) StartCall(agentID, agentName, agentIcon, callID string) entities.CallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &entities.CallRecord{
		ID:        callID,
		Timestamp: s.now(),
		Status:    entities.CallStatusActive,
		AgentID:   agentID,
		AgentName: agentName,
		AgentIcon: agentIcon,
	}
	s.records = append([]*entities.CallRecord{record}, s.records...)
	return *record
}

// EndActiveCall marks the head record Completed in place and returns it.
func (s *Store) EndActiveCall() (entities.CallRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return entities.CallRecord{}, usecaseErrors.ErrNothingToEnd
	}
	head := s.records[0]
	if !head.Complete() {
		return *head, usecaseErrors.ErrAlreadyEnded
	}
	return *head, nil
}

// Head returns the most recent record
func (s *Store) Head() (entities.CallRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return entities.CallRecord{}, false
	}
	return *s.records[0], true
}

// Get looks a record up by call id
func (s *Store) Get(callID string) (entities.CallRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == callID {
			return *r, nil
		}
	}
	return entities.CallRecord{}, usecaseErrors.ErrNotFound
}

// List returns a snapshot of the history, most recent first
func (s *Store) List() []entities.CallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.CallRecord, len(s.records))
	for i, r := range s.records {
		out[i] = *r
	}
	return out
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// ExportCSV renders the history with a fixed header row, one row per call in
// ledger order. An empty history is an error rather than a header-only file.
func (s *Store) ExportCSV() (string, error) {
	records := s.List()
	if len(records) == 0 {
		return "", usecaseErrors.ErrEmptyHistory
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{r.ID, r.Timestamp.Format(TimestampLayout), r.AgentName, string(r.Status)}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row for call %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ExportFilename names a CSV download for the given day
func ExportFilename(day time.Time) string {
	return fmt.Sprintf("call-logs-%s.csv", day.Format("2006-01-02"))
}
