package notes

import (
	"github.com/aretw0/marginalia/pkg/core"
)

// commentState is the lifecycle state of a comment.
type commentState int

const (
	stateActive commentState = iota
	stateDeleted
)

func (s commentState) String() string {
	if s == stateDeleted {
		return "deleted"
	}
	return "active"
}

// commentAction is an operation that may move a comment between states.
type commentAction int

const (
	actionEdit commentAction = iota
	actionDelete
	actionRestore
)

// commentTransitions maps each state to the actions it accepts and the state they lead to.
// An action missing from a state's row is rejected with core.ErrAlreadyDeleted.
var commentTransitions = map[commentState]map[commentAction]commentState{
	stateActive: {
		actionEdit:    stateActive,
		actionDelete:  stateDeleted,
		actionRestore: stateActive,
	},
	stateDeleted: {
		actionRestore: stateActive,
	},
}

func stateOf(c core.Comment) commentState {
	if c.Deleted {
		return stateDeleted
	}
	return stateActive
}

// transition returns the state reached by applying a to from.
func transition(from commentState, a commentAction) (commentState, error) {
	next, ok := commentTransitions[from][a]
	if !ok {
		return from, core.ErrAlreadyDeleted
	}
	return next, nil
}
