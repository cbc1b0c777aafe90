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

// Package stackguard makes deeply recursive computations safe:
// a Guard counts recursion depth, and once the current execution stack
// runs out of headroom, the remaining recursion is relocated onto a
// freshly provisioned stack, transparently to the computation.
package stackguard

import (
	"github.com/alder-lang/alder/errors"
)

const (
	// DefaultUncheckedDepth is the recursion depth up to which entry is
	// granted without consulting the probe. Probing has a cost;
	// recursion this shallow is assumed safe.
	DefaultUncheckedDepth = 20

	// DefaultMaxStackDepth is the number of guarded frames the default
	// probe allows on one execution stack.
	DefaultMaxStackDepth = 5000

	// DefaultMaxExecutionStacks is the limit on nested fresh execution
	// stacks. Reaching it is treated as unbounded recursion and is fatal.
	// The value is tuned empirically, not derived.
	DefaultMaxExecutionStacks = 1024
)

// A ProbeFunc reports whether the current execution stack has enough
// headroom for further guarded calls. depth is the number of guarded
// frames already active on this stack.
//
// Go offers no primitive for querying remaining stack space, and
// goroutine stacks grow on demand up to the process-wide maximum, so the
// default probe bounds the guarded frames per execution stack instead:
// relocating to a fresh goroutine resets the budget and keeps any single
// goroutine stack small.
type ProbeFunc func(depth int) bool

func defaultProbe(depth int) bool {
	return depth < DefaultMaxStackDepth
}

// A Guard tracks the recursion depth of a single recursive computation
// and decides, on each entry, whether the current execution stack can
// take one more guarded call.
//
// A Guard is owned exclusively by one computation: it must be embedded
// by value in the traversal object, and must not be copied or shared
// while a guarded call is active. The zero value is ready to use.
type Guard struct {
	// UncheckedDepth is the depth up to which Enter succeeds without
	// probing. Zero means DefaultUncheckedDepth.
	UncheckedDepth int

	// MaxExecutionStacks limits nested fresh execution stacks.
	// Zero means DefaultMaxExecutionStacks.
	MaxExecutionStacks int

	// Probe overrides the stack headroom check. Nil means the default
	// probe, which allows DefaultMaxStackDepth frames per stack.
	Probe ProbeFunc

	recursionDepth      int
	executionStackCount int
	relocations         int
}

// Enter attempts to account for one more guarded call on the current
// execution stack. It returns true if the call may proceed inline, in
// which case exactly one matching Leave call is required on every exit
// path. It returns false if the stack lacks headroom and the call must
// be relocated via RunOnFreshStack.
//
// If the stack lacks headroom and the execution stack limit has already
// been reached, Enter panics with errors.UnboundedRecursionError.
func (g *Guard) Enter() bool {
	if g.recursionDepth < g.uncheckedDepth() {
		g.recursionDepth++
		return true
	}

	if g.probe()(g.recursionDepth) {
		g.recursionDepth++
		return true
	}

	if g.executionStackCount >= g.maxExecutionStacks() {
		panic(errors.UnboundedRecursionError{
			ExecutionStacks: g.executionStackCount,
		})
	}

	return false
}

// Leave undoes one successful Enter.
func (g *Guard) Leave() {
	if g.recursionDepth == 0 {
		panic(errors.NewUnreachableError())
	}
	g.recursionDepth--
}

// Depth returns the number of currently active guarded calls
// on the current execution stack.
func (g *Guard) Depth() int {
	return g.recursionDepth
}

// ExecutionStacks returns the number of currently nested
// fresh execution stacks.
func (g *Guard) ExecutionStacks() int {
	return g.executionStackCount
}

// Relocations returns the total number of relocations performed
// over the lifetime of the guard.
func (g *Guard) Relocations() int {
	return g.relocations
}

func (g *Guard) uncheckedDepth() int {
	if g.UncheckedDepth <= 0 {
		return DefaultUncheckedDepth
	}
	return g.UncheckedDepth
}

func (g *Guard) maxExecutionStacks() int {
	if g.MaxExecutionStacks <= 0 {
		return DefaultMaxExecutionStacks
	}
	return g.MaxExecutionStacks
}

func (g *Guard) probe() ProbeFunc {
	if g.Probe == nil {
		return defaultProbe
	}
	return g.Probe
}

type freshStackResult[T any] struct {
	value     T
	recovered any
	panicked  bool
	completed bool
}

// RunOnFreshStack runs f on a newly provisioned execution stack
// (a fresh goroutine) and blocks until it completes, forwarding its
// result. A panic in f is re-raised on the calling goroutine with the
// recovered value unchanged.
//
// The guard's recursion depth is reset for the duration of the call, so
// the relocated computation starts with a full stack budget of its own;
// depth and the execution stack count are restored on every exit path.
func RunOnFreshStack[T any](g *Guard, f func() T) T {
	savedDepth := g.recursionDepth
	g.recursionDepth = 0
	g.executionStackCount++
	g.relocations++

	defer func() {
		g.executionStackCount--
		g.recursionDepth = savedDepth
	}()

	results := make(chan freshStackResult[T])

	go func() {
		var result freshStackResult[T]
		defer func() {
			if recovered := recover(); recovered != nil {
				result.recovered = recovered
				result.panicked = true
			}
			results <- result
		}()
		result.value = f()
		result.completed = true
	}()

	result := <-results
	if result.panicked {
		panic(result.recovered)
	}
	if !result.completed {
		// f ended the goroutine (runtime.Goexit) instead of returning
		panic(errors.NewUnexpectedError(
			"relocated computation exited without completing",
		))
	}
	return result.value
}
