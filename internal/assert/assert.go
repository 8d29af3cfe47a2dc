package assert

import (
	"fmt"
	"reflect"
)

// PointerTo returns value as a *T and panics if it holds anything else.
func PointerTo[T any](value any) *T {
	ptr, ok := value.(*T)
	if !ok {
		panic(fmt.Sprintf("expected %s, got %T", reflect.TypeFor[*T](), value))
	}

	return ptr
}
