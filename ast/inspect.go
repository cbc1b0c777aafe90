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

// Inspect traverses the tree rooted at element, depth-first in pre-order:
// it calls f(element) for each non-nil element, and if f returns true,
// it recursively inspects each child of the element, in order,
// followed by a call of f(nil).
//
// Inspect runs on the guarded Walker, so it is safe for trees of
// arbitrary depth.
func Inspect(element Element, f func(Element) bool) {
	visitor := &inspectVisitor{f: f}
	visitor.walker = NewWalker(visitor)
	_ = visitor.walker.Visit(element)
}

type inspectVisitor struct {
	walker *Walker
	f      func(Element) bool
}

var _ ElementVisitor = &inspectVisitor{}

func (v *inspectVisitor) visit(element Element) error {
	if !v.f(element) {
		return nil
	}
	err := v.walker.VisitChildren(element)
	v.f(nil)
	return err
}

func (v *inspectVisitor) VisitProgram(program *Program) error {
	return v.visit(program)
}

func (v *inspectVisitor) VisitIdentifierExpression(expression *IdentifierExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitIntegerExpression(expression *IntegerExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitUnaryExpression(expression *UnaryExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitBinaryExpression(expression *BinaryExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitConditionalExpression(expression *ConditionalExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitInvocationExpression(expression *InvocationExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitArrayExpression(expression *ArrayExpression) error {
	return v.visit(expression)
}

func (v *inspectVisitor) VisitUnknownElement(element Element) error {
	return v.visit(element)
}
