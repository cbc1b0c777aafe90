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

package ast

import (
	"github.com/alder-lang/alder/stackguard"
)

// An ElementVisitor has one method per element type.
// The Walker dispatches each visited element to the method
// for its element type.
//
// Concrete visitors usually embed BaseVisitor,
// which provides the default behavior of visiting an element's children,
// and override the methods for the element types of interest.
type ElementVisitor interface {
	VisitProgram(*Program) error
	VisitIdentifierExpression(*IdentifierExpression) error
	VisitIntegerExpression(*IntegerExpression) error
	VisitUnaryExpression(*UnaryExpression) error
	VisitBinaryExpression(*BinaryExpression) error
	VisitConditionalExpression(*ConditionalExpression) error
	VisitInvocationExpression(*InvocationExpression) error
	VisitArrayExpression(*ArrayExpression) error
	// VisitUnknownElement is dispatched to for element types
	// the walker does not recognize
	VisitUnknownElement(Element) error
}

// A Walker traverses an element tree depth-first in pre-order:
// an element is dispatched to its visitor method before its children
// are visited, and children are visited in the order the element
// exposes them.
//
// Every descent step goes through the walker's recursion guard,
// so arbitrarily deep trees (e.g. a deeply left-nested binary expression)
// are traversed without exhausting the native call stack:
// when headroom runs out, the remaining traversal is transparently
// relocated onto a fresh execution stack.
//
// A Walker is owned by a single traversal call graph and must not be
// used from two goroutines concurrently.
type Walker struct {
	visitor ElementVisitor
	guard   stackguard.Guard
}

type walkerAttacher interface {
	attachWalker(*Walker)
}

func NewWalker(visitor ElementVisitor) *Walker {
	walker := &Walker{
		visitor: visitor,
	}
	if attacher, ok := visitor.(walkerAttacher); ok {
		attacher.attachWalker(walker)
	}
	return walker
}

// Guard returns the walker's recursion guard,
// e.g. for tuning its limits before a traversal starts.
func (w *Walker) Guard() *stackguard.Guard {
	return &w.guard
}

// Visit dispatches element to the visitor method for its element type.
// A nil element is a no-op.
//
// An error returned by a visitor method, and a panic raised by one,
// surface at the original Visit call site unchanged,
// also when the failing frame ran on a relocated execution stack.
func (w *Walker) Visit(element Element) error {
	if element == nil {
		return nil
	}

	if !w.guard.Enter() {
		return stackguard.RunOnFreshStack(&w.guard, func() error {
			return w.Visit(element)
		})
	}
	defer w.guard.Leave()

	return w.visitElement(element)
}

// VisitChildren visits each child of element, in the order the element
// exposes them, stopping at the first error.
func (w *Walker) VisitChildren(element Element) error {
	var err error
	element.Walk(func(child Element) {
		if err != nil {
			return
		}
		err = w.Visit(child)
	})
	return err
}

func (w *Walker) visitElement(element Element) error {

	switch element.ElementType() {

	case ElementTypeProgram:
		return w.visitor.VisitProgram(element.(*Program))

	case ElementTypeIdentifierExpression:
		return w.visitor.VisitIdentifierExpression(element.(*IdentifierExpression))

	case ElementTypeIntegerExpression:
		return w.visitor.VisitIntegerExpression(element.(*IntegerExpression))

	case ElementTypeUnaryExpression:
		return w.visitor.VisitUnaryExpression(element.(*UnaryExpression))

	case ElementTypeBinaryExpression:
		return w.visitor.VisitBinaryExpression(element.(*BinaryExpression))

	case ElementTypeConditionalExpression:
		return w.visitor.VisitConditionalExpression(element.(*ConditionalExpression))

	case ElementTypeInvocationExpression:
		return w.visitor.VisitInvocationExpression(element.(*InvocationExpression))

	case ElementTypeArrayExpression:
		return w.visitor.VisitArrayExpression(element.(*ArrayExpression))

	default:
		return w.visitor.VisitUnknownElement(element)
	}
}

// BaseVisitor implements ElementVisitor with the default behavior
// of visiting each child of the element, in order.
//
// Embed it (by value) in a concrete visitor and override the methods
// for the element types the visitor handles. Overriding methods recurse
// through Walker (available via the Walker method), and may stop the
// descent by not visiting some or all children.
type BaseVisitor struct {
	walker *Walker
}

var _ ElementVisitor = &BaseVisitor{}

func (v *BaseVisitor) attachWalker(walker *Walker) {
	v.walker = walker
}

// Walker returns the walker the visitor was passed to in NewWalker.
func (v *BaseVisitor) Walker() *Walker {
	return v.walker
}

// DefaultVisit visits each child of element, in order.
func (v *BaseVisitor) DefaultVisit(element Element) error {
	return v.walker.VisitChildren(element)
}

func (v *BaseVisitor) VisitProgram(program *Program) error {
	return v.DefaultVisit(program)
}

func (v *BaseVisitor) VisitIdentifierExpression(expression *IdentifierExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitIntegerExpression(expression *IntegerExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitUnaryExpression(expression *UnaryExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitBinaryExpression(expression *BinaryExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitConditionalExpression(expression *ConditionalExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitInvocationExpression(expression *InvocationExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitArrayExpression(expression *ArrayExpression) error {
	return v.DefaultVisit(expression)
}

func (v *BaseVisitor) VisitUnknownElement(element Element) error {
	return v.DefaultVisit(element)
}
