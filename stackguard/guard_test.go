/*
 * Alder - a tree-walking toolkit for language implementations
 *
 * Copyright The Alder Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package stackguard_test

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alder-lang/alder/errors"
	"github.com/alder-lang/alder/stackguard"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// guardedCount recurses n times through the guard
// and returns the number of guarded frames it entered
func guardedCount(g *stackguard.Guard, n int) int {
	if n == 0 {
		return 0
	}
	if !g.Enter() {
		return stackguard.RunOnFreshStack(g, func() int {
			return guardedCount(g, n)
		})
	}
	defer g.Leave()
	return guardedCount(g, n-1) + 1
}

func TestGuardEnterLeave(t *testing.T) {

	t.Parallel()

	var g stackguard.Guard

	require.Equal(t, 0, g.Depth())

	require.True(t, g.Enter())
	require.True(t, g.Enter())
	assert.Equal(t, 2, g.Depth())

	g.Leave()
	g.Leave()
	assert.Equal(t, 0, g.Depth())
}

func TestGuardLeaveWithoutEnter(t *testing.T) {

	t.Parallel()

	var g stackguard.Guard

	assert.Panics(t, func() {
		g.Leave()
	})
}

func TestGuardProbeOnlyPastUncheckedDepth(t *testing.T) {

	t.Parallel()

	var probed []int

	g := stackguard.Guard{
		UncheckedDepth: 3,
		Probe: func(depth int) bool {
			probed = append(probed, depth)
			return true
		},
	}

	for i := 0; i < 5; i++ {
		require.True(t, g.Enter())
	}

	assert.Equal(t, []int{3, 4}, probed)
}

func TestGuardEnterSignalsInsufficiency(t *testing.T) {

	t.Parallel()

	g := stackguard.Guard{
		UncheckedDepth: 2,
		Probe: func(_ int) bool {
			return false
		},
	}

	require.True(t, g.Enter())
	require.True(t, g.Enter())
	assert.False(t, g.Enter())

	// the failed entry must not change the depth
	assert.Equal(t, 2, g.Depth())
}

func TestGuardDeepRecursion(t *testing.T) {

	t.Parallel()

	const depth = 100_000

	var g stackguard.Guard

	count := guardedCount(&g, depth)

	assert.Equal(t, depth, count)
	assert.Equal(t, 0, g.Depth())
	assert.Equal(t, 0, g.ExecutionStacks())
	// the first stack handles DefaultMaxStackDepth frames,
	// every relocation handles another DefaultMaxStackDepth
	assert.Equal(t,
		depth/stackguard.DefaultMaxStackDepth-1,
		g.Relocations(),
	)
}

func TestGuardExecutionStackLimit(t *testing.T) {

	t.Parallel()

	g := stackguard.Guard{
		UncheckedDepth: 1,
		// a probe that always reports insufficiency
		// stands in for an unboundedly recursive input
		Probe: func(_ int) bool {
			return false
		},
		MaxExecutionStacks: 4,
	}

	defer func() {
		recovered := recover()
		require.IsType(t, errors.UnboundedRecursionError{}, recovered)
		err := recovered.(errors.UnboundedRecursionError)
		assert.Equal(t, 4, err.ExecutionStacks)
		assert.ErrorContains(t, err, "unbounded recursion")
	}()

	_ = guardedCount(&g, 10)
}

func TestRunOnFreshStackResult(t *testing.T) {

	t.Parallel()

	var g stackguard.Guard

	result := stackguard.RunOnFreshStack(&g, func() string {
		return "relocated"
	})

	assert.Equal(t, "relocated", result)
	assert.Equal(t, 0, g.ExecutionStacks())
	assert.Equal(t, 1, g.Relocations())
}

func TestRunOnFreshStackRunsOnFreshGoroutine(t *testing.T) {

	t.Parallel()

	callerID := goroutineID()

	var g stackguard.Guard

	calleeID := stackguard.RunOnFreshStack(&g, func() string {
		return goroutineID()
	})

	assert.NotEqual(t, callerID, calleeID)
}

func TestRunOnFreshStackCountersDuringCall(t *testing.T) {

	t.Parallel()

	var g stackguard.Guard

	require.True(t, g.Enter())
	require.True(t, g.Enter())
	require.Equal(t, 2, g.Depth())

	stackguard.RunOnFreshStack(&g, func() struct{} {
		// the fresh stack starts with its own shallow-recursion budget
		assert.Equal(t, 0, g.Depth())
		assert.Equal(t, 1, g.ExecutionStacks())
		return struct{}{}
	})

	assert.Equal(t, 2, g.Depth())
	assert.Equal(t, 0, g.ExecutionStacks())

	g.Leave()
	g.Leave()
}

func TestRunOnFreshStackPanic(t *testing.T) {

	t.Parallel()

	type failure struct {
		message string
	}

	var g stackguard.Guard

	require.True(t, g.Enter())

	func() {
		defer func() {
			recovered := recover()
			// the exact panic value must surface at the call site
			require.Equal(t, failure{message: "boom"}, recovered)
		}()

		stackguard.RunOnFreshStack(&g, func() struct{} {
			panic(failure{message: "boom"})
		})
	}()

	// counters must be restored also on the panic path
	assert.Equal(t, 1, g.Depth())
	assert.Equal(t, 0, g.ExecutionStacks())

	g.Leave()
}

func TestRunOnFreshStackErrorResult(t *testing.T) {

	t.Parallel()

	var g stackguard.Guard

	testErr := fmt.Errorf("visit failed")

	err := stackguard.RunOnFreshStack(&g, func() error {
		return testErr
	})

	assert.Same(t, testErr, err)
}

func TestRunOnFreshStackGoexit(t *testing.T) {

	t.Parallel()

	var g stackguard.Guard

	defer func() {
		recovered := recover()
		require.IsType(t, errors.UnexpectedError{}, recovered)
	}()

	stackguard.RunOnFreshStack(&g, func() struct{} {
		runtime.Goexit()
		return struct{}{}
	})
}

func goroutineID() string {
	// the first line of a stack dump is "goroutine N [running]:"
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	return strings.Fields(string(buf[:n]))[1]
}
