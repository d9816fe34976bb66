// Package store is the local persistence collaborator: a string-keyed,
// string-valued store backed by files in a per-user data directory. It holds
// the saved invoice history, the in-progress draft and the display theme
// across sessions on one device.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"easeinvo/internal/logger"
	"easeinvo/pkg/models"
)

// Well-known keys.
const (
	KeyInvoices = "invoices" // JSON array of saved invoices
	KeyTheme    = "theme"    // "light" or "dark"
	KeyDraft    = "draft"    // JSON invoice, present only while drafting
)

// Themes the display layer understands.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// StoreError wraps a failed store operation with the operation name.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return "store: " + e.Op
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store is a file-backed key-value store. One file per key, guarded by a
// read-write mutex so concurrent commands on the same data directory do not
// interleave writes.
type Store struct {
	dir string
	mu  sync.RWMutex
	log zerolog.Logger
}

// Open creates the data directory if needed and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StoreError{Op: "open", Err: fmt.Errorf("failed to create data directory: %w", err)}
	}
	return &Store{dir: dir, log: logger.WithComponent("store")}, nil
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

// Get reads the raw value for a key. The second result is false when the key
// has never been written; a missing key is a valid first-run state, not an
// error.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, &StoreError{Op: "get " + key, Err: err}
	}
	return string(data), true, nil
}

// Set writes the raw value for a key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return &StoreError{Op: "set " + key, Err: err}
	}
	return nil
}

// Remove deletes a key. Removing a key that does not exist is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return &StoreError{Op: "remove " + key, Err: err}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// LoadInvoices reads the saved invoice history. A missing key or
// unparseable content is treated as first run and yields an empty history.
func (s *Store) LoadInvoices() []models.Invoice {
	var invoices []models.Invoice
	if !s.loadJSON(KeyInvoices, &invoices) {
		return nil
	}
	return invoices
}

// SaveInvoices writes the full saved invoice history.
func (s *Store) SaveInvoices(invoices []models.Invoice) error {
	return s.saveJSON(KeyInvoices, invoices)
}

// LoadDraft reads the in-progress draft. The second result is false when no
// draft is stored or the stored draft cannot be parsed.
func (s *Store) LoadDraft() (models.Invoice, bool) {
	var inv models.Invoice
	if !s.loadJSON(KeyDraft, &inv) {
		return models.Invoice{}, false
	}
	return inv, true
}

// SaveDraft persists the current invoice into the draft slot. Only drafts are
// auto-persisted; an invoice that already carries a permanent identifier is
// protected by explicit saves instead, so this is a no-op for it.
func (s *Store) SaveDraft(inv models.Invoice) error {
	if !inv.IsDraft() {
		return nil
	}
	return s.saveJSON(KeyDraft, inv)
}

// LoadTheme reads the display theme, defaulting to light.
func (s *Store) LoadTheme() string {
	var theme string
	if !s.loadJSON(KeyTheme, &theme) {
		return ThemeLight
	}
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

// SaveTheme writes the display theme.
func (s *Store) SaveTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return &StoreError{Op: "save theme", Err: fmt.Errorf("unknown theme %q", theme)}
	}
	return s.saveJSON(KeyTheme, theme)
}

// loadJSON reads and decodes a key into v. Any parse failure is logged and
// treated the same as an absent key, so corrupt state degrades to defaults
// instead of failing startup.
func (s *Store) loadJSON(key string, v any) bool {
	raw, ok, err := s.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to read stored state")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Stored state is malformed, falling back to defaults")
		return false
	}
	return true
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &StoreError{Op: "encode " + key, Err: err}
	}
	return s.Set(key, string(data))
}
