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

// Package ast provides the element tree of the intermediate
// representation and a stack-overflow-resistant depth-first walker
// over it.
package ast

import (
	"github.com/turbolent/prettier"
)

// An Element is one node of the tree.
//
// Elements are immutable for the duration of a traversal.
type Element interface {
	ElementType() ElementType
	// Walk calls walkChild for each immediate child of the element,
	// in its natural order
	Walk(walkChild func(Element))
}

// An Expression is an Element that is an expression of the
// intermediate representation.
type Expression interface {
	Element
	Doc() prettier.Doc
	isExpression()
}
