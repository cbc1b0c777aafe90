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
	"strings"

	"github.com/turbolent/prettier"
)

// Pretty renders the element as source-like text,
// fitting lines into the given maximum width where possible.
// Elements that do not provide a document render as their element type.
//
// NOTE: document construction recurses unguarded,
// so Pretty is only suitable for shallow elements.
func Pretty(element Element, maxLineWidth int) string {
	hasDoc, ok := element.(interface{ Doc() prettier.Doc })
	if !ok {
		return element.ElementType().String()
	}

	var builder strings.Builder
	prettier.Prettier(&builder, hasDoc.Doc(), maxLineWidth, "    ")
	return builder.String()
}
