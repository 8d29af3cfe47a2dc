package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckThen(t *testing.T) {
	e := NewEntity()
	Insert(e, Position{X: 1})

	t.Run("passed", func(t *testing.T) {
		var called int

		result := e.Check(func(e *Entity) bool { return Has[Position](e) })
		require.True(t, result.Ok())

		result.Then(func() { called += 1 })
		require.Equal(t, 1, called)
	})

	t.Run("failed", func(t *testing.T) {
		result := e.Check(func(e *Entity) bool { return Has[Velocity](e) })
		require.Equal(t, CheckFailed, result)

		result.Then(func() { t.Fatal("must not be called") })
	})
}

func TestCheckEvaluatesEagerly(t *testing.T) {
	e := NewEntity()

	var evaluated int
	result := Check(e, func(e *Entity) bool {
		evaluated += 1
		return Has[Position](e)
	})

	require.Equal(t, 1, evaluated)

	// the result is not updated later on
	Insert(e, Position{})
	result.Then(func() { t.Fatal("must not be called") })
	require.Equal(t, 1, evaluated)
}

func TestCheckWithWriter(t *testing.T) {
	e := NewEntity()
	system := NewSystem()

	Insert(e, Position{X: 4})

	var seen []int

	run := func() {
		writer := system.Writer(e)

		Check(writer, func(w Writer) bool {
			return Has[Position](w)
		}).Then(func() {
			pos, _ := Get[Position](writer)
			seen = append(seen, pos.X)
		})
	}

	run()
	run()

	Insert(e, Position{X: 5})
	run()

	require.Equal(t, []int{4, 5}, seen)
}
