package services

// state is the shared lifecycle tag for both services. Transitions are
// one-way: uninitialized -> ready -> closed. Initialize and Close are
// idempotent; behaviour after Close is the caller's responsibility.
type state int

const (
	stateUninitialized state = iota
	stateReady
	stateClosed
)
