package ecs

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"sync/atomic"
	"unsafe"
)

// TypeKey identifies a component type within the running process.
// Keys are assigned in order of first use, starting at 1.
type TypeKey uint32

// NoTypeKey is never assigned to a type.
const NoTypeKey TypeKey = 0

func (k TypeKey) String() string {
	if ty := k.ComponentType(); ty != nil {
		return ty.Name
	}

	return "TypeKey(" + strconv.Itoa(int(k)) + ")"
}

func (k TypeKey) LogValue() slog.Value {
	return slog.StringValue(k.String())
}

// ComponentType returns the type registered for this key, or nil
// if no type has been assigned the key yet.
func (k TypeKey) ComponentType() *ComponentType {
	return componentTypes.Load().byKey(k)
}

// ComponentType describes a type that has been used as a component.
type ComponentType struct {
	Key  TypeKey
	Name string
	Type reflect.Type
}

func (c *ComponentType) String() string {
	return c.Name
}

// TypeKeyOf returns the key of the component type T. Every type is a valid
// component type, there is nothing to implement or register up front.
func TypeKeyOf[T any]() TypeKey {
	return ComponentTypeOf[T]().Key
}

// ComponentTypeOf returns the ComponentType of T, registering it on first use.
func ComponentTypeOf[T any]() *ComponentType {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := componentTypes.Load().byType[ptrToType]; ok {
		return cached
	}

	return ensureComponentType(ptrToType, reflectType)
}

type typeRegistry struct {
	byType map[unsafe.Pointer]*ComponentType

	// types ordered by key, types[0] has key 1
	types []*ComponentType
}

func (r *typeRegistry) byKey(key TypeKey) *ComponentType {
	if key == NoTypeKey || int(key) > len(r.types) {
		return nil
	}

	return r.types[key-1]
}

var componentTypes atomic.Pointer[typeRegistry]

func init() {
	// initialize the lookup table
	componentTypes.Store(&typeRegistry{
		byType: map[unsafe.Pointer]*ComponentType{},
	})
}

func ensureComponentType(ptrToType unsafe.Pointer, reflectType reflect.Type) *ComponentType {
	for {
		previous := componentTypes.Load()
		if cached, ok := previous.byType[ptrToType]; ok {
			return cached
		}

		newType := &ComponentType{
			Key:  TypeKey(len(previous.types) + 1),
			Name: reflectType.String(),
			Type: reflectType,
		}

		next := &typeRegistry{
			byType: maps.Clone(previous.byType),
			types:  append(slices.Clip(previous.types), newType),
		}

		next.byType[ptrToType] = newType

		if componentTypes.CompareAndSwap(previous, next) {
			slog.Debug(
				"New component type registered",
				slog.String("name", newType.Name),
				slog.Int("key", int(newType.Key)),
			)

			return newType
		}
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rtype which is unique per type,
	// so the data word of the interface identifies the type
	return (*eface)(unsafe.Pointer(&t)).val
}
