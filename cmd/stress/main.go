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

// stress builds pathologically deep and wide element trees
// and traverses them with the guarded walker,
// reporting visit and relocation counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/logrusorgru/aurora/v4"

	"github.com/alder-lang/alder/ast"
)

var depthFlag = flag.Int("depth", 1_000_000, "depth of the left-nested binary expression chain")
var widthFlag = flag.Int("width", 1_000_000, "number of values in the wide array expression")
var dumpFlag = flag.Bool("dump", false, "dump a small example tree and exit")

func main() {
	flag.Parse()

	if *dumpFlag {
		dump()
		return
	}

	w := newTabWriter()
	defer func() {
		_ = w.Flush()
	}()

	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		aurora.Colorize("tree", aurora.BoldFm),
		aurora.Colorize("elements", aurora.BoldFm),
		aurora.Colorize("relocations", aurora.BoldFm),
		aurora.Colorize("duration", aurora.BoldFm),
	)

	report(w, "left-deep chain", leftDeepChain(*depthFlag))
	report(w, "wide array", wideArray(*widthFlag))
}

func report(w *tabwriter.Writer, name string, element ast.Element) {
	visitor := &countingVisitor{}
	walker := ast.NewWalker(visitor)

	start := time.Now()
	err := walker.Visit(element)
	duration := time.Since(start)

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr,
			aurora.Colorize(
				fmt.Sprintf("traversal of %s failed: %s", name, err),
				aurora.RedFg|aurora.BrightFg|aurora.BoldFm,
			),
		)
		os.Exit(1)
	}

	_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
		name,
		visitor.elements,
		walker.Guard().Relocations(),
		duration,
	)
}

// countingVisitor counts every visited element
type countingVisitor struct {
	ast.BaseVisitor
	elements int
}

func (v *countingVisitor) DefaultVisit(element ast.Element) error {
	v.elements++
	return v.Walker().VisitChildren(element)
}

func (v *countingVisitor) VisitIntegerExpression(expression *ast.IntegerExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitIdentifierExpression(expression *ast.IdentifierExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitUnaryExpression(expression *ast.UnaryExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitBinaryExpression(expression *ast.BinaryExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitConditionalExpression(expression *ast.ConditionalExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitInvocationExpression(expression *ast.InvocationExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitArrayExpression(expression *ast.ArrayExpression) error {
	return v.DefaultVisit(expression)
}

func (v *countingVisitor) VisitProgram(program *ast.Program) error {
	return v.DefaultVisit(program)
}

func (v *countingVisitor) VisitUnknownElement(element ast.Element) error {
	return v.DefaultVisit(element)
}

func leftDeepChain(depth int) ast.Expression {
	var expression ast.Expression = &ast.IntegerExpression{Value: 0}
	for i := 1; i <= depth; i++ {
		expression = &ast.BinaryExpression{
			Operation: ast.OperationPlus,
			Left:      expression,
			Right:     &ast.IntegerExpression{Value: int64(i)},
		}
	}
	return expression
}

func wideArray(width int) ast.Expression {
	values := make([]ast.Expression, width)
	for i := range values {
		values[i] = &ast.IntegerExpression{Value: int64(i)}
	}
	return &ast.ArrayExpression{Values: values}
}

func dump() {
	element := &ast.BinaryExpression{
		Operation: ast.OperationPlus,
		Left:      leftDeepChain(2),
		Right: &ast.InvocationExpression{
			InvokedExpression: &ast.IdentifierExpression{Identifier: "f"},
			Arguments: []ast.Expression{
				&ast.ArrayExpression{
					Values: []ast.Expression{
						&ast.IntegerExpression{Value: 1},
						&ast.IntegerExpression{Value: 2},
					},
				},
			},
		},
	}

	_, _ = pp.Println(element)
	fmt.Println(aurora.Colorize(ast.Pretty(element, 80), aurora.YellowFg|aurora.BrightFg))
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}
