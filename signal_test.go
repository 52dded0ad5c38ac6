// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSignalFire(t *testing.T) {
	assert := assert.New(t)
	s := NewSignal()
	assert.False(s.Fired())

	select {
	case <-s.Done():
		assert.Fail("signal should not have fired")
	default:
	}

	assert.True(s.Fire())
	assert.True(s.Fired())
	assert.False(s.Fire())
	assert.True(s.Fired())

	select {
	case <-s.Done():
	default:
		assert.Fail("signal should have fired")
	}
}

func testSignalConcurrent(t *testing.T) {
	const count = 20

	var (
		assert = assert.New(t)
		s      = NewSignal()
		fired  atomic.Int32
		start  = make(chan struct{})
		wg     sync.WaitGroup
	)

	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			<-start
			if s.Fire() {
				fired.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()
	assert.Equal(int32(1), fired.Load())
	assert.True(s.Fired())
}

func TestSignal(t *testing.T) {
	t.Run("Fire", testSignalFire)
	t.Run("Concurrent", testSignalConcurrent)
}
