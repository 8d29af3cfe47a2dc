package ecs

import (
	"log/slog"
	"strconv"
	"sync/atomic"
)

// SystemId identifies a System for the lifetime of the process.
type SystemId uint64

// NoSystemId is the id of an unregistered system. Reads on behalf of
// NoSystemId are never tracked.
const NoSystemId SystemId = 0

func (id SystemId) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id SystemId) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

// next id minus one, so the first system gets id 1
var systemIdSeq atomic.Uint64

// System is a consumer of components. Its only state is its identity,
// which is used to track which component values it has already seen.
//
// A nil *System acts as an unregistered system.
type System struct {
	id SystemId
}

// NewSystem creates a system with a fresh id. Ids are never reused.
func NewSystem() *System {
	id := SystemId(systemIdSeq.Add(1))
	slog.Debug("New system created", slog.Any("id", id))

	return &System{id: id}
}

func (s *System) Id() SystemId {
	if s == nil {
		return NoSystemId
	}

	return s.id
}

// Reader returns an untracked view of the entity for this system.
func (s *System) Reader(entity *Entity) Reader {
	return NewReader(entity, s)
}

// Writer returns a tracked view of the entity for this system.
func (s *System) Writer(entity *Entity) Writer {
	return NewWriter(entity, s)
}

// SystemHas reports whether the entity holds a component of type T
// the system has not yet read.
func SystemHas[T any](s *System, entity *Entity) bool {
	return HasFor[T](entity, s.Id())
}

// SystemGet returns the component of type T and marks it as read by the system.
func SystemGet[T any](s *System, entity *Entity) (T, bool) {
	return GetFor[T](entity, s.Id())
}
