package ecs

import (
	"github.com/moonhowl/ecs/internal/assert"
)

// Accessor gives read access to the components of a single entity.
// It is implemented by *Entity, Reader and Writer.
type Accessor interface {
	hasComponent(key TypeKey) bool
	getComponent(key TypeKey) (any, bool)
}

var _ Accessor = (*Entity)(nil)
var _ Accessor = Reader{}
var _ Accessor = Writer{}

// Has reports whether the accessor sees a component of type T.
// For a Writer, this is only true if its system has not yet read the value.
func Has[T any](a Accessor) bool {
	return a.hasComponent(TypeKeyOf[T]())
}

// Get returns the component of type T. Reading through a Writer marks
// the value as read by the writers system.
func Get[T any](a Accessor) (T, bool) {
	ptr, ok := a.getComponent(TypeKeyOf[T]())
	if !ok {
		var zero T
		return zero, false
	}

	return *assert.PointerTo[T](ptr), true
}

// Reader is a read only view of an entity on behalf of a system.
// Reads through a Reader are not tracked and do not affect what
// any system sees as new.
type Reader struct {
	entity *Entity
	system SystemId
}

func NewReader(entity *Entity, system *System) Reader {
	return Reader{entity: entity, system: system.Id()}
}

func (r Reader) System() SystemId {
	return r.system
}

func (r Reader) hasComponent(key TypeKey) bool {
	return r.entity.hasComponent(key)
}

func (r Reader) getComponent(key TypeKey) (any, bool) {
	return r.entity.getComponent(key)
}

// Writer is an exclusive view of an entity on behalf of a system. Has only
// reports components the system has not yet read, Get marks them as read.
type Writer struct {
	entity *Entity
	system SystemId
}

func NewWriter(entity *Entity, system *System) Writer {
	return Writer{entity: entity, system: system.Id()}
}

func (w Writer) System() SystemId {
	return w.system
}

// Entity returns the underlying entity, e.g. to insert or remove components.
func (w Writer) Entity() *Entity {
	return w.entity
}

func (w Writer) hasComponent(key TypeKey) bool {
	return w.entity.hasComponentFor(key, w.system)
}

func (w Writer) getComponent(key TypeKey) (any, bool) {
	return w.entity.getComponentFor(key, w.system)
}
