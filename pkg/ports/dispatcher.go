package ports

import "github.com/aretw0/arbor/pkg/domain"

// Dispatcher is the write side of a container: the single entry point
// through which all actions are submitted.
type Dispatcher interface {
	Dispatch(a domain.Action) (domain.Action, error)
}

// StateReader is the read side of a container.
type StateReader interface {
	GetState() domain.Tree
	Select(path string) (any, error)
}
