package ecs

// CheckResult captures the outcome of Check.
type CheckResult bool

const (
	CheckFailed CheckResult = false
	CheckPassed CheckResult = true
)

// Check evaluates the predicate once against the accessor and captures
// the result, to be followed by a call to Then:
//
//	ecs.Check(view, func(v ecs.Writer) bool {
//		return ecs.Has[Position](v)
//	}).Then(func() { ... })
func Check[A Accessor](accessor A, predicate func(A) bool) CheckResult {
	return CheckResult(predicate(accessor))
}

func (c CheckResult) Ok() bool {
	return bool(c)
}

// Then calls action if the check passed.
func (c CheckResult) Then(action func()) {
	if c {
		action()
	}
}
