// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

// State is the lifecycle state of an App.  Transitions are monotonic:
//
//	NotStarted → Binding → Bound → ShuttingDown → Terminated
//	                 ↓
//	             BindFailed
//
// BindFailed and Terminated are terminal.
type State int32

const (
	// StateNotStarted is the state of an App before StartServer is called.
	StateNotStarted State = iota

	// StateBinding indicates that StartServer is attempting to bind a listener.
	StateBinding

	// StateBound indicates that the listener is bound and requests are being served.
	StateBound

	// StateShuttingDown indicates that the shutdown signal was observed and the
	// listener is being released.
	StateShuttingDown

	// StateTerminated is terminal: the listener was released, successfully or not.
	StateTerminated

	// StateBindFailed is terminal: the listener could not be bound.
	StateBindFailed
)

// String returns a human-readable representation of this state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateBinding:
		return "Binding"
	case StateBound:
		return "Bound"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateTerminated:
		return "Terminated"
	case StateBindFailed:
		return "BindFailed"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true if no further transitions are possible from this state.
func (s State) IsTerminal() bool {
	return s == StateTerminated || s == StateBindFailed
}

// HasBinding returns true if an App in this state holds a Binding.
func (s State) HasBinding() bool {
	return s == StateBound || s == StateShuttingDown
}
