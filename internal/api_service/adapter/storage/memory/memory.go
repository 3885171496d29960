package memory

import (
	"sort"
	"sync"

	"github.com/munraito/asset-web-service/internal/entities"
	"github.com/pkg/errors"
)

// Storage keeps the declared assets for the lifetime of the process. All
// operations, including the reads made during revenue calculation, serialize
// behind one mutex so a cleanup can never interleave with a list-and-sort.
type Storage struct {
	mu     sync.Mutex
	assets []entities.Asset
}

func NewStorage() *Storage {
	return &Storage{}
}

// Add appends the asset unless another asset already carries the same name.
func (s *Storage) Add(asset entities.Asset) error {
	const op = "storage.memory.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.assets {
		if a.Name == asset.Name {
			return errors.Wrap(entities.ErrDuplicateName, op)
		}
	}

	s.assets = append(s.assets, asset)
	return nil
}

// List returns a copy of all assets sorted ascending by char code. The sort
// is stable, so assets sharing a code keep their insertion order.
func (s *Storage) List() []entities.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked()
}

// FindByNames returns the assets whose name is in names, in the same char
// code order List uses.
func (s *Storage) FindByNames(names []string) []entities.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	var found []entities.Asset
	for _, a := range s.sortedLocked() {
		if _, ok := wanted[a.Name]; ok {
			found = append(found, a)
		}
	}

	return found
}

// Clear discards every stored asset.
func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = nil
}

func (s *Storage) sortedLocked() []entities.Asset {
	out := make([]entities.Asset, len(s.assets))
	copy(out, s.assets)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CharCode < out[j].CharCode
	})

	return out
}
