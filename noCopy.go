package ecs

// noCopy can be embedded so that "go vet" reports values
// which must not be copied after first use
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
