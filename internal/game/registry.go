package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrKataNotFound is returned by Lookup for an unregistered command.
var ErrKataNotFound = errors.New("kata not found")

// Registry manages kata registration and lookup by command.
type Registry struct {
	katas map[string]Kata
	mu    sync.RWMutex
}

// NewRegistry creates a new kata registry.
func NewRegistry() *Registry {
	return &Registry{
		katas: make(map[string]Kata),
	}
}

// Register adds a kata to the registry.
// If a kata with the same command already exists, it will be replaced.
func (r *Registry) Register(k Kata) error {
	if k == nil {
		return fmt.Errorf("cannot register nil kata")
	}
	if k.Command() == "" {
		return fmt.Errorf("kata command cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.katas[k.Command()] = k
	return nil
}

// Get retrieves a kata by its command.
func (r *Registry) Get(command string) (Kata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.katas[command]
	return k, ok
}

// Lookup is Get with an error suitable for returning to the user.
func (r *Registry) Lookup(command string) (Kata, error) {
	k, ok := r.Get(command)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKataNotFound, command)
	}
	return k, nil
}

// List returns all registered katas ordered by command.
func (r *Registry) List() []Kata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	katas := make([]Kata, 0, len(r.katas))
	for _, k := range r.katas {
		katas = append(katas, k)
	}
	sort.Slice(katas, func(i, j int) bool {
		return katas[i].Command() < katas[j].Command()
	})
	return katas
}

// Commands returns all registered commands, sorted.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]string, 0, len(r.katas))
	for cmd := range r.katas {
		commands = append(commands, cmd)
	}
	sort.Strings(commands)
	return commands
}

// Count returns the number of registered katas.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.katas)
}
