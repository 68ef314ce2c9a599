package behavior

import (
	"slices"
	"strings"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/mixin/errors"
)

// Template is the shared behavior set of a class: every instance of the class
// dispatches named behaviors through its template. Adding a behavior under an
// existing name replaces the previous one (last applied wins).
type Template interface {
	Add(b Behavior) error
	Get(name string) (Behavior, error)
	Names() []string
	Len() int
	// Clone returns an independent template with the same behaviors.
	Clone() Template
	// MergeFrom installs all of other's behaviors into this template,
	// replacing same-name behaviors already present.
	MergeFrom(other Template) error
}

// template is a mutex-guarded behavior set.
type template struct {
	mu        sync.RWMutex
	behaviors map[string]Behavior
	order     []string // insertion order of first appearance
}

func NewTemplate() Template {
	return &template{
		behaviors: make(map[string]Behavior),
	}
}

func (t *template) Add(b Behavior) error {
	if b == nil || b.GetName() == "" || b.GetFn() == nil {
		return errors.ErrInvalidBehavior
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	name := b.GetName()
	if _, exists := t.behaviors[name]; !exists {
		t.order = append(t.order, name)
	}
	t.behaviors[name] = b
	return nil
}

func (t *template) Get(name string) (Behavior, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b, ok := t.behaviors[name]
	if !ok {
		return nil, errorc.With(
			errors.ErrBehaviorNotFound,
			errorc.String(errors.ErrorFieldBehaviorName, name),
			errorc.String(errors.ErrorFieldAvailable, strings.Join(t.sortedNames(), ", ")),
		)
	}
	return b, nil
}

// Names returns the behavior names in installation order of first appearance.
func (t *template) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.order)
}

func (t *template) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.behaviors)
}

func (t *template) Clone() Template {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := &template{
		behaviors: make(map[string]Behavior, len(t.behaviors)),
		order:     slices.Clone(t.order),
	}
	for name, b := range t.behaviors {
		c.behaviors[name] = b
	}
	return c
}

func (t *template) MergeFrom(other Template) error {
	if other == nil {
		return nil
	}
	if other == Template(t) {
		return nil // merging a template into itself is a no-op
	}
	for _, name := range other.Names() {
		b, err := other.Get(name)
		if err != nil {
			return err
		}
		if err = t.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// sortedNames returns behavior names sorted for stable error messages.
// Callers must hold at least the read lock.
func (t *template) sortedNames() []string {
	names := slices.Clone(t.order)
	slices.Sort(names)
	return names
}
