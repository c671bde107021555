// Package memstore is an in-process optimistic store. Reads record the version
// they saw, writes are buffered per transaction and applied only if every
// recorded version is still current at commit.
package memstore

import (
	"sort"
	"sync"

	"issuance-engine/internal/pkg/errs"
)

// ErrConflict means a record read by the transaction changed before commit.
var ErrConflict = errs.New("memstore: concurrent modification")

type table string

const (
	tableCounters  table = "counters"
	tableCoupons   table = "coupons"
	tableOffers    table = "offers"
	tableCustomers table = "customers"
	tableJobs      table = "notification_jobs"
)

type recordKey struct {
	table table
	id    string
}

type record struct {
	version uint64
	value   any
}

type Store struct {
	mu      sync.RWMutex
	records map[recordKey]record
	clock   uint64
}

func New() *Store {
	return &Store{records: make(map[recordKey]record)}
}

// Begin starts a transaction. Transactions are cheap and never hold locks
// between calls.
func (s *Store) Begin() *Tx {
	return &Tx{
		store:  s,
		reads:  make(map[recordKey]uint64),
		writes: make(map[recordKey]pending),
	}
}

// Commit validates the read set and applies the write set atomically.
func (s *Store) Commit(tx *Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.validLocked(tx) {
		return ErrConflict
	}
	for k, p := range tx.writes {
		if p.deleted {
			delete(s.records, k)
			continue
		}
		s.clock++
		s.records[k] = record{version: s.clock, value: p.value}
	}
	tx.done = true
	return nil
}

// Stale reports whether anything the transaction read has since changed.
func (s *Store) Stale(tx *Tx) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.validLocked(tx)
}

func (s *Store) validLocked(tx *Tx) bool {
	for k, seen := range tx.reads {
		if s.records[k].version != seen {
			return false
		}
	}
	return true
}

func (s *Store) load(k recordKey) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[k]
	return r, ok
}

// scan returns the committed records of a table matching keep, ordered by id.
func (s *Store) scan(t table, keep func(v any) bool) []recordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []recordEntry
	for k, r := range s.records {
		if k.table == t && keep(r.value) {
			out = append(out, recordEntry{key: k, record: r})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key.id < out[j].key.id })
	return out
}

// put writes outside any transaction; used for seeding.
func (s *Store) put(k recordKey, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock++
	s.records[k] = record{version: s.clock, value: v}
}

type recordEntry struct {
	key    recordKey
	record record
}

type pending struct {
	value   any
	deleted bool
}

// Tx is a single optimistic transaction. It is not safe for concurrent use.
type Tx struct {
	store  *Store
	reads  map[recordKey]uint64
	writes map[recordKey]pending
	done   bool
}

// get reads through the write set first. The first committed read of a key
// pins its version (zero for absent) into the read set.
func (t *Tx) get(k recordKey) (any, bool) {
	if p, ok := t.writes[k]; ok {
		if p.deleted {
			return nil, false
		}
		return p.value, true
	}
	r, ok := t.store.load(k)
	if _, seen := t.reads[k]; !seen {
		t.reads[k] = r.version
	}
	if !ok {
		return nil, false
	}
	return r.value, true
}

func (t *Tx) set(k recordKey, v any) {
	t.writes[k] = pending{value: v}
}

func (t *Tx) remove(k recordKey) {
	t.writes[k] = pending{deleted: true}
}

// scan merges committed rows with the transaction's own writes and pins every
// committed row it returns.
func (t *Tx) scan(tb table, keep func(v any) bool) []recordKey {
	seen := make(map[recordKey]bool)
	var keys []recordKey
	for _, e := range t.store.scan(tb, keep) {
		if _, pinned := t.reads[e.key]; !pinned {
			t.reads[e.key] = e.record.version
		}
		seen[e.key] = true
		if p, ok := t.writes[e.key]; ok && (p.deleted || !keep(p.value)) {
			continue
		}
		keys = append(keys, e.key)
	}
	for k, p := range t.writes {
		if k.table == tb && !seen[k] && !p.deleted && keep(p.value) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].id < keys[j].id })
	return keys
}
