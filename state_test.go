// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	testData := []struct {
		state      State
		expected   string
		terminal   bool
		hasBinding bool
	}{
		{state: StateNotStarted, expected: "NotStarted"},
		{state: StateBinding, expected: "Binding"},
		{state: StateBound, expected: "Bound", hasBinding: true},
		{state: StateShuttingDown, expected: "ShuttingDown", hasBinding: true},
		{state: StateTerminated, expected: "Terminated", terminal: true},
		{state: StateBindFailed, expected: "BindFailed", terminal: true},
		{state: State(-1), expected: "Unknown"},
		{state: State(99), expected: "Unknown"},
	}

	for _, record := range testData {
		t.Run(record.expected, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(record.expected, record.state.String())
			assert.Equal(record.terminal, record.state.IsTerminal())
			assert.Equal(record.hasBinding, record.state.HasBinding())
		})
	}
}
