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
	"strconv"

	"github.com/turbolent/prettier"
)

// Program

type Program struct {
	Elements []Element
}

var _ Element = &Program{}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) Walk(walkChild func(Element)) {
	for _, element := range p.Elements {
		walkChild(element)
	}
}

func (p *Program) Doc() prettier.Doc {
	docs := make([]prettier.Doc, 0, len(p.Elements))
	for _, element := range p.Elements {
		hasDoc, ok := element.(interface{ Doc() prettier.Doc })
		if !ok {
			continue
		}
		docs = append(docs, hasDoc.Doc())
	}
	return prettier.Join(prettier.HardLine{}, docs...)
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier string
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier)
}

// IntegerExpression

type IntegerExpression struct {
	Value int64
}

var _ Expression = &IntegerExpression{}

func (*IntegerExpression) ElementType() ElementType {
	return ElementTypeIntegerExpression
}

func (*IntegerExpression) isExpression() {}

func (*IntegerExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(strconv.FormatInt(e.Value, 10))
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
}

var _ Expression = &UnaryExpression{}

func (*UnaryExpression) ElementType() ElementType {
	return ElementTypeUnaryExpression
}

func (*UnaryExpression) isExpression() {}

func (e *UnaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *UnaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Operation.Symbol()),
		e.Expression.Doc(),
	}
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

func (e *BinaryExpression) Doc() prettier.Doc {
	return prettier.WrapParentheses(
		prettier.Group{
			Doc: prettier.Concat{
				e.Left.Doc(),
				prettier.Text(" "),
				prettier.Text(e.Operation.Symbol()),
				prettier.Line{},
				e.Right.Doc(),
			},
		},
		prettier.SoftLine{},
	)
}

// ConditionalExpression

type ConditionalExpression struct {
	Test Expression
	Then Expression
	Else Expression
}

var _ Expression = &ConditionalExpression{}

func (*ConditionalExpression) ElementType() ElementType {
	return ElementTypeConditionalExpression
}

func (*ConditionalExpression) isExpression() {}

func (e *ConditionalExpression) Walk(walkChild func(Element)) {
	walkChild(e.Test)
	walkChild(e.Then)
	walkChild(e.Else)
}

func (e *ConditionalExpression) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			e.Test.Doc(),
			prettier.Text(" ? "),
			e.Then.Doc(),
			prettier.Text(" : "),
			e.Else.Doc(),
		},
	}
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
}

var _ Expression = &InvocationExpression{}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	for _, argument := range e.Arguments {
		walkChild(argument)
	}
}

var expressionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (e *InvocationExpression) Doc() prettier.Doc {
	result := prettier.Concat{
		e.InvokedExpression.Doc(),
	}

	if len(e.Arguments) == 0 {
		return append(result, prettier.Text("()"))
	}

	argumentDocs := make([]prettier.Doc, len(e.Arguments))
	for i, argument := range e.Arguments {
		argumentDocs[i] = argument.Doc()
	}

	return append(
		result,
		prettier.WrapParentheses(
			prettier.Join(expressionSeparatorDoc, argumentDocs...),
			prettier.SoftLine{},
		),
	)
}

// ArrayExpression

type ArrayExpression struct {
	Values []Expression
}

var _ Expression = &ArrayExpression{}

func (*ArrayExpression) ElementType() ElementType {
	return ElementTypeArrayExpression
}

func (*ArrayExpression) isExpression() {}

func (e *ArrayExpression) Walk(walkChild func(Element)) {
	for _, value := range e.Values {
		walkChild(value)
	}
}

func (e *ArrayExpression) Doc() prettier.Doc {
	if len(e.Values) == 0 {
		return prettier.Text("[]")
	}

	valueDocs := make([]prettier.Doc, len(e.Values))
	for i, value := range e.Values {
		valueDocs[i] = value.Doc()
	}

	return prettier.WrapBrackets(
		prettier.Join(expressionSeparatorDoc, valueDocs...),
		prettier.SoftLine{},
	)
}
