package ecs

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/moonhowl/ecs/internal/assert"
	"github.com/moonhowl/ecs/internal/set"
)

type slot struct {
	// ptr holds a *T for the component type T of the slot
	ptr any

	// systems that have seen the current value
	consumed set.Set[SystemId]
}

// Entity holds at most one component per type. Additionally, it tracks for
// every component which systems have already read its current value.
//
// An Entity does no locking. Any number of readers may access it in parallel
// as long as no one mutates it. Inserting, removing and tracked reads
// (HasFor, GetFor, a Writer) need exclusive access.
type Entity struct {
	noCopy noCopy

	slots map[TypeKey]*slot
}

// NewEntity creates a new entity without any components.
// The zero value of Entity is ready to use as well.
func NewEntity() *Entity {
	return &Entity{slots: map[TypeKey]*slot{}}
}

// Insert stores the value as the component of type T, replacing any previous
// value of that type. The value counts as new for every system.
func Insert[T any](e *Entity, value T) *Entity {
	key := TypeKeyOf[T]()

	if e.slots == nil {
		e.slots = map[TypeKey]*slot{}
	}

	if existing, ok := e.slots[key]; ok {
		existing.ptr = &value
		existing.consumed.Clear()
		return e
	}

	e.slots[key] = &slot{ptr: &value}

	return e
}

// Remove deletes the component of type T together with its tracking state.
// Does nothing if the entity has no such component.
func Remove[T any](e *Entity) *Entity {
	delete(e.slots, TypeKeyOf[T]())
	return e
}

// HasFor reports whether the entity holds a component of type T that the
// given system has not yet read using GetFor.
func HasFor[T any](e *Entity, system SystemId) bool {
	return e.hasComponentFor(TypeKeyOf[T](), system)
}

// GetFor returns the component of type T and marks it as read by the system.
// The value is returned even if the system has read it before. Use HasFor
// or Consume to only get values the system has not yet seen.
func GetFor[T any](e *Entity, system SystemId) (T, bool) {
	ptr, ok := e.getComponentFor(TypeKeyOf[T](), system)
	if !ok {
		var zero T
		return zero, false
	}

	return *assert.PointerTo[T](ptr), true
}

// Consume returns the component of type T only if the system has not yet
// read the current value, and marks it as read.
func Consume[T any](e *Entity, system SystemId) (T, bool) {
	if !HasFor[T](e, system) {
		var zero T
		return zero, false
	}

	return GetFor[T](e, system)
}

// Consumers iterates the systems that have read the current
// value of the component T, in ascending order.
func Consumers[T any](e *Entity) iter.Seq[SystemId] {
	s, ok := e.lookup(TypeKeyOf[T]())
	if !ok {
		return func(func(SystemId) bool) {}
	}

	return slices.Values(slices.Sorted(s.consumed.Values()))
}

// Len returns the number of components on the entity.
func (e *Entity) Len() int {
	if e == nil {
		return 0
	}

	return len(e.slots)
}

// Clear drops all components.
func (e *Entity) Clear() {
	clear(e.slots)
}

// ComponentTypes iterates the types of all components on this entity,
// ordered by their TypeKey.
func (e *Entity) ComponentTypes() iter.Seq[*ComponentType] {
	var keys []TypeKey
	if e != nil {
		keys = slices.Sorted(maps.Keys(e.slots))
	}

	return func(yield func(*ComponentType) bool) {
		for _, key := range keys {
			if !yield(key.ComponentType()) {
				return
			}
		}
	}
}

// Check evaluates the predicate against the entity right away.
func (e *Entity) Check(predicate func(e *Entity) bool) CheckResult {
	return Check(e, predicate)
}

func (e *Entity) LogValue() slog.Value {
	var names []string
	for ty := range e.ComponentTypes() {
		names = append(names, ty.Name)
	}

	return slog.GroupValue(
		slog.Int("len", len(names)),
		slog.String("components", strings.Join(names, ",")),
	)
}

func (e *Entity) lookup(key TypeKey) (*slot, bool) {
	if e == nil {
		return nil, false
	}

	s, ok := e.slots[key]
	return s, ok
}

func (e *Entity) hasComponent(key TypeKey) bool {
	_, ok := e.lookup(key)
	return ok
}

func (e *Entity) getComponent(key TypeKey) (any, bool) {
	s, ok := e.lookup(key)
	if !ok {
		return nil, false
	}

	return s.ptr, true
}

func (e *Entity) hasComponentFor(key TypeKey, system SystemId) bool {
	s, ok := e.lookup(key)
	if !ok {
		return false
	}

	// an unregistered system does not take part in tracking
	if system == NoSystemId {
		return true
	}

	return !s.consumed.Has(system)
}

func (e *Entity) getComponentFor(key TypeKey, system SystemId) (any, bool) {
	s, ok := e.lookup(key)
	if !ok {
		return nil, false
	}

	if system != NoSystemId {
		s.consumed.Insert(system)
	}

	return s.ptr, true
}
