/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package ast_test

import (
	"fmt"
	"strings"

	"github.com/arborql/graphql/ast"
	"github.com/arborql/graphql/parser"
	"github.com/arborql/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseDoc(s string) ast.Document {
	doc, err := parser.Parse(token.NewSource(s, ""), parser.ParseOptions{})
	Expect(err).ShouldNot(HaveOccurred(), "%s", s)
	return doc
}

func kindOf(node ast.Node) string {
	name := fmt.Sprintf("%T", node)
	name = strings.TrimPrefix(name, "*")
	return strings.TrimPrefix(name, "ast.")
}

type traceVisitor struct {
	trace  *[][2]string
	stopAt string
	skipAt string
}

func (v traceVisitor) Enter(node ast.Node) ast.Result {
	*v.trace = append(*v.trace, [2]string{"enter", describe(node)})
	if v.skipAt != "" && describe(node) == v.skipAt {
		return ast.SkipSubTree
	}
	if v.stopAt != "" && describe(node) == v.stopAt {
		return ast.Break
	}
	return ast.Continue
}

func (v traceVisitor) Leave(node ast.Node) ast.Result {
	*v.trace = append(*v.trace, [2]string{"leave", describe(node)})
	return ast.Continue
}

func describe(node ast.Node) string {
	if name, ok := node.(ast.Name); ok {
		return kindOf(node) + ":" + name.Value
	}
	if field, ok := node.(*ast.Field); ok {
		return kindOf(node) + ":" + field.Name.Value
	}
	return kindOf(node)
}

var _ = Describe("ToMapping", func() {
	It("projects a Name", func() {
		Expect(ast.ToMapping(ast.Name{Value: "foo"})).To(Equal(map[string]interface{}{
			"kind": "Name", "value": "foo",
		}))
	})

	It("projects an operation with a selection set", func() {
		doc := parseDoc("query Greet { hello }")
		m := ast.ToMapping(doc).(map[string]interface{})
		Expect(m["kind"]).To(Equal("Document"))

		defs := m["definitions"].([]interface{})
		Expect(defs).To(HaveLen(1))

		op := defs[0].(map[string]interface{})
		Expect(op["kind"]).To(Equal("OperationDefinition"))
		Expect(op["operation"]).To(Equal("query"))
		Expect(op["name"]).To(Equal(map[string]interface{}{"kind": "Name", "value": "Greet"}))

		selectionSet := op["selectionSet"].(map[string]interface{})
		selections := selectionSet["selections"].([]interface{})
		Expect(selections).To(HaveLen(1))

		field := selections[0].(map[string]interface{})
		Expect(field["kind"]).To(Equal("Field"))
		Expect(field["name"]).To(Equal(map[string]interface{}{"kind": "Name", "value": "hello"}))
	})

	It("projects scalar and list values", func() {
		doc := parseDoc(`{ field(a: 1, b: [1, 2], c: {x: "y"}) }`)
		m := ast.ToMapping(doc).(map[string]interface{})
		defs := m["definitions"].([]interface{})
		op := defs[0].(map[string]interface{})
		field := op["selectionSet"].(map[string]interface{})["selections"].([]interface{})[0].(map[string]interface{})
		arguments := field["arguments"].([]interface{})
		Expect(arguments).To(HaveLen(3))

		a := arguments[0].(map[string]interface{})
		Expect(a["value"]).To(Equal(map[string]interface{}{"kind": "IntValue", "value": int64(1)}))

		b := arguments[1].(map[string]interface{})
		listValue := b["value"].(map[string]interface{})
		Expect(listValue["kind"]).To(Equal("ListValue"))
		Expect(listValue["values"]).To(HaveLen(2))

		c := arguments[2].(map[string]interface{})
		objectValue := c["value"].(map[string]interface{})
		Expect(objectValue["kind"]).To(Equal("ObjectValue"))
		fields := objectValue["fields"].([]interface{})
		Expect(fields).To(HaveLen(1))
		Expect(fields[0].(map[string]interface{})["value"]).To(Equal(map[string]interface{}{
			"kind": "StringValue", "value": "y", "block": false,
		}))
	})

	It("projects a type-system definition", func() {
		doc := parseDoc("scalar DateTime")
		m := ast.ToMapping(doc).(map[string]interface{})
		defs := m["definitions"].([]interface{})
		scalarDef := defs[0].(map[string]interface{})
		Expect(scalarDef["kind"]).To(Equal("ScalarTypeDefinition"))
		Expect(scalarDef["name"]).To(Equal(map[string]interface{}{"kind": "Name", "value": "DateTime"}))
	})
})

var _ = Describe("Walk", func() {
	It("visits every node in document order", func() {
		doc := parseDoc("{ a b { x } c }")

		var trace [][2]string
		ast.Walk(traceVisitor{trace: &trace}, doc)

		Expect(trace[0]).To(Equal([2]string{"enter", "Document"}))
		Expect(trace[len(trace)-1]).To(Equal([2]string{"leave", "Document"}))
		Expect(trace).To(ContainElement([2]string{"enter", "Field:a"}))
		Expect(trace).To(ContainElement([2]string{"enter", "Field:b"}))
		Expect(trace).To(ContainElement([2]string{"enter", "Field:x"}))
		Expect(trace).To(ContainElement([2]string{"enter", "Field:c"}))
	})

	It("skips a subtree on SkipSubTree but still leaves it", func() {
		doc := parseDoc("{ a b { x } c }")

		var trace [][2]string
		ast.Walk(traceVisitor{trace: &trace, skipAt: "Field:b"}, doc)

		Expect(trace).To(ContainElement([2]string{"enter", "Field:b"}))
		Expect(trace).To(ContainElement([2]string{"leave", "Field:b"}))
		Expect(trace).NotTo(ContainElement([2]string{"enter", "Field:x"}))
	})

	It("stops the walk immediately on Break", func() {
		doc := parseDoc("{ a b { x } c }")

		var trace [][2]string
		result := ast.Walk(traceVisitor{trace: &trace, stopAt: "Field:b"}, doc)

		Expect(result).To(Equal(ast.Break))
		Expect(trace[len(trace)-1]).To(Equal([2]string{"enter", "Field:b"}))
		Expect(trace).NotTo(ContainElement([2]string{"enter", "Field:c"}))
	})

	It("does nothing for a nil node", func() {
		var trace [][2]string
		result := ast.Walk(traceVisitor{trace: &trace}, nil)
		Expect(result).To(Equal(ast.Continue))
		Expect(trace).To(BeEmpty())
	})
})
