package tui

import (
	"sync"

	"github.com/bstn-hfmn/rustman/internal/history"
	"github.com/bstn-hfmn/rustman/internal/types"
)

// HistoryState holds the History sidebar: loaded entries, the visible
// (filtered) subset, the selection and the search query.
type HistoryState struct {
	mu sync.RWMutex

	entries    []types.HistoryEntry // Visible after filtering
	allEntries []types.HistoryEntry // As loaded from the store
	index      int

	searchActive bool
	searchQuery  []rune
}

// NewHistoryState creates an empty history state
func NewHistoryState() *HistoryState {
	return &HistoryState{
		entries:    []types.HistoryEntry{},
		allEntries: []types.HistoryEntry{},
	}
}

// GetEntries returns a copy of the visible entries
func (s *HistoryState) GetEntries() []types.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]types.HistoryEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

// GetAllEntries returns a copy of every loaded entry
func (s *HistoryState) GetAllEntries() []types.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]types.HistoryEntry, len(s.allEntries))
	copy(result, s.allEntries)
	return result
}

// SetAllEntries replaces the loaded entries and reapplies the search filter
func (s *HistoryState) SetAllEntries(entries []types.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allEntries = entries
	s.applyFilter()
}

// Len returns the number of visible entries
func (s *HistoryState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetIndex returns the current index
func (s *HistoryState) GetIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// SetIndex sets the current index, clamped to the visible entries
func (s *HistoryState) SetIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = index
	s.clampIndex()
}

// Navigate moves the selection by delta, wrapping at both ends
func (s *HistoryState) Navigate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return
	}

	s.index += delta

	if s.index < 0 {
		s.index = len(s.entries) - 1
	} else if s.index >= len(s.entries) {
		s.index = 0
	}
}

// GetCurrentEntry returns the selected entry, or nil when nothing is visible
func (s *HistoryState) GetCurrentEntry() *types.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 || s.index < 0 || s.index >= len(s.entries) {
		return nil
	}

	entry := s.entries[s.index]
	return &entry
}

// Clear drops all entries and the search
func (s *HistoryState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = []types.HistoryEntry{}
	s.allEntries = []types.HistoryEntry{}
	s.index = 0
	s.searchActive = false
	s.searchQuery = nil
}

// GetSearchActive reports whether typed runes go to the search query
func (s *HistoryState) GetSearchActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchActive
}

// ActivateSearch starts capturing the search query
func (s *HistoryState) ActivateSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchActive = true
}

// DeactivateSearch stops capturing but keeps the current filter
func (s *HistoryState) DeactivateSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchActive = false
}

// GetSearchQuery returns the search query
func (s *HistoryState) GetSearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.searchQuery)
}

// AppendSearch adds r to the query and refilters
func (s *HistoryState) AppendSearch(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = append(s.searchQuery, r)
	s.applyFilter()
}

// BackspaceSearch removes the last rune of the query
func (s *HistoryState) BackspaceSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.searchQuery) == 0 {
		return
	}
	s.searchQuery = s.searchQuery[:len(s.searchQuery)-1]
	s.applyFilter()
}

// ClearSearch clears the search query and deactivates search
func (s *HistoryState) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = nil
	s.searchActive = false
	s.applyFilter()
}

// applyFilter must be called with mu held
func (s *HistoryState) applyFilter() {
	s.entries = history.Filter(s.allEntries, string(s.searchQuery))
	s.index = 0
}

func (s *HistoryState) clampIndex() {
	if s.index >= len(s.entries) {
		s.index = len(s.entries) - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}
