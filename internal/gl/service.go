package gl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/statline-dev/statline/internal/model"
)

// Service provides in-memory lookup over GL history and account metadata.
// All data is read-only after construction.
type Service struct {
	records  []model.GLRecord
	metas    []model.AccountMeta
	byNo     map[string]model.GLRecord
	metaByNo map[string]model.AccountMeta
	first    model.Month
	last     model.Month
}

// NewService creates a Service from loaded records and metadata.
func NewService(records []model.GLRecord, metas []model.AccountMeta) *Service {
	s := &Service{
		records:  records,
		metas:    metas,
		byNo:     make(map[string]model.GLRecord, len(records)),
		metaByNo: make(map[string]model.AccountMeta, len(metas)),
	}
	for _, r := range records {
		s.byNo[r.AccountNo] = r
		for m := range r.Values {
			if s.first.IsZero() || m.Before(s.first) {
				s.first = m
			}
			if s.last.IsZero() || m.After(s.last) {
				s.last = m
			}
		}
	}
	for _, meta := range metas {
		s.metaByNo[meta.AccountNo] = meta
	}
	return s
}

// Load reads accounts.csv and gl-history.csv from a project data directory.
func Load(dir string) (*Service, error) {
	af, err := os.Open(filepath.Join(dir, "accounts.csv"))
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer af.Close()

	metas, err := ReadAccounts(af)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}

	hf, err := os.Open(filepath.Join(dir, "gl-history.csv"))
	if err != nil {
		return nil, fmt.Errorf("opening GL history: %w", err)
	}
	defer hf.Close()

	records, err := ReadHistory(hf)
	if err != nil {
		return nil, fmt.Errorf("reading GL history: %w", err)
	}
	return NewService(records, metas), nil
}

// Records returns all GL records.
func (s *Service) Records() []model.GLRecord {
	return s.records
}

// Accounts returns all account metadata.
func (s *Service) Accounts() []model.AccountMeta {
	return s.metas
}

// Record returns the history for an account.
func (s *Service) Record(accountNo string) (model.GLRecord, bool) {
	r, ok := s.byNo[accountNo]
	return r, ok
}

// Meta returns metadata for an account.
func (s *Service) Meta(accountNo string) (model.AccountMeta, bool) {
	m, ok := s.metaByNo[accountNo]
	return m, ok
}

// First returns the earliest month with any GL activity. Zero if empty.
func (s *Service) First() model.Month {
	return s.first
}

// Last returns the latest month with any GL activity. Zero if empty.
func (s *Service) Last() model.Month {
	return s.last
}

// HasMonth reports whether any account has activity in the given month.
func (s *Service) HasMonth(m model.Month) bool {
	for _, r := range s.records {
		if _, ok := r.Values[m]; ok {
			return true
		}
	}
	return false
}
