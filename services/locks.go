package services

import (
	"sort"
	"sync"
)

// accountLocks hands out one mutex per account id. Every ledger-mutating
// operation (draw, reinforce, either side of a match, milestone grant) holds
// the account's lock for its whole unit of work, so two concurrent draws can
// never read the same pre-debit balance.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var ledgerLocks = &accountLocks{locks: make(map[string]*sync.Mutex)}

func (a *accountLocks) get(id string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.locks[id]
	if !ok {
		m = &sync.Mutex{}
		a.locks[id] = m
	}
	return m
}

// lockAccounts acquires the per-account locks in ascending id order, so two
// simultaneous matches over the same pair in opposite directions cannot
// deadlock. The returned func releases everything.
func lockAccounts(ids ...string) (unlock func()) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	var held []*sync.Mutex
	prev := ""
	for i, id := range sorted {
		if i > 0 && id == prev {
			continue
		}
		m := ledgerLocks.get(id)
		m.Lock()
		held = append(held, m)
		prev = id
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
