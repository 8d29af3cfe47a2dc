// Package ecs provides a component store for single entities that remembers
// which systems have already seen the current value of each component.
//
// Any Go type can be used as a component, an entity holds at most one
// value per type:
//
//	type Position struct{ X, Y int }
//
//	entity := ecs.NewEntity()
//	ecs.Insert(entity, Position{X: 1, Y: 2})
//
// Systems read components either untracked, using Has and Get on the entity
// or a Reader, or tracked using HasFor and GetFor or a Writer. A tracked
// read marks the value as seen by the system, so HasFor reports false until
// a new value is inserted:
//
//	movement := ecs.NewSystem()
//	view := movement.Writer(entity)
//
//	if ecs.Has[Position](view) {
//		pos, _ := ecs.Get[Position](view)
//		// ecs.Has[Position](view) is now false
//	}
package ecs
