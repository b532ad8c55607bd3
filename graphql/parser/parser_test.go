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

package parser_test

import (
	"github.com/arborql/graphql"
	"github.com/arborql/graphql/ast"
	"github.com/arborql/graphql/internal/testutil"
	"github.com/arborql/graphql/parser"
	"github.com/arborql/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseDoc(s string, options ...parser.ParseOptions) (ast.Document, error) {
	opts := parser.ParseOptions{}
	if len(options) > 0 {
		opts = options[0]
	}
	return parser.Parse(token.NewSource(s, ""), opts)
}

func mustParse(s string, options ...parser.ParseOptions) ast.Document {
	doc, err := parseDoc(s, options...)
	Expect(err).ShouldNot(HaveOccurred(), "%s", s)
	return doc
}

func parseValue(s string) (ast.Value, error) {
	return parser.ParseValue(token.NewSource(s, ""))
}

func parseType(s string) (ast.Type, error) {
	return parser.ParseType(token.NewSource(s, ""))
}

func expectSyntaxError(text string, message string, location graphql.ErrorLocation) {
	_, err := parseDoc(text)
	Expect(err).Should(testutil.MatchGraphQLError(
		testutil.MessageContainSubstring(message),
		testutil.LocationEqual(location),
		testutil.KindIs(graphql.ErrKindSyntax),
	))
}

func expectUnexpectedTokenError(text string, message string, location graphql.ErrorLocation) {
	_, err := parseDoc(text)
	Expect(err).Should(testutil.MatchGraphQLError(
		testutil.MessageContainSubstring(message),
		testutil.LocationEqual(location),
		testutil.KindIs(graphql.ErrKindUnexpectedToken),
	))
}

var _ = Describe("Parse", func() {
	It("rejects a nil source", func() {
		_, err := parser.Parse(nil, parser.ParseOptions{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindIncorrectSource),
		))
	})

	It("parses a shorthand query", func() {
		doc := mustParse("{ hello }")
		Expect(doc.Definitions).To(HaveLen(1))

		op := doc.Definitions[0].(*ast.OperationDefinition)
		Expect(op.Operation).To(Equal(ast.OperationTypeQuery))
		Expect(op.Name).To(BeNil())
		Expect(op.IsShorthand()).To(BeTrue())
		Expect(op.SelectionSet.Selections).To(HaveLen(1))

		field := op.SelectionSet.Selections[0].(*ast.Field)
		Expect(field.Name.Value).To(Equal("hello"))
		Expect(field.ResponseKey()).To(Equal("hello"))
	})

	It("parses named operations of every kind", func() {
		for _, op := range []string{"query", "mutation", "subscription"} {
			doc := mustParse(op + " Op { field }")
			def := doc.Definitions[0].(*ast.OperationDefinition)
			Expect(def.Operation).To(Equal(ast.OperationType(op)))
			Expect(def.Name.Value).To(Equal("Op"))
			Expect(def.IsShorthand()).To(BeFalse())
		}
	})

	It("parses variable definitions with a default value and a directive", func() {
		doc := mustParse(`query Greet($name: String = "World" @lower) { hello(name: $name) }`)
		op := doc.Definitions[0].(*ast.OperationDefinition)
		Expect(op.VariableDefinitions).To(HaveLen(1))

		vd := op.VariableDefinitions[0]
		Expect(vd.Variable.Name.Value).To(Equal("name"))
		Expect(vd.Type.String()).To(Equal("String"))
		Expect(vd.DefaultValue).To(Equal(&ast.StringValue{
			Loc: vd.DefaultValue.TokenRange(), Value: "World", Block: false,
		}))
		Expect(vd.Directives).To(HaveLen(1))
		Expect(vd.Directives[0].Name.Value).To(Equal("lower"))

		field := op.SelectionSet.Selections[0].(*ast.Field)
		arg := field.Arguments[0]
		Expect(arg.Name.Value).To(Equal("name"))
		Expect(arg.Value.(*ast.Variable).Name.Value).To(Equal("name"))
	})

	It("parses a field with an alias", func() {
		doc := mustParse("{ renamed: hello }")
		field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
		Expect(field.Alias.Value).To(Equal("renamed"))
		Expect(field.Name.Value).To(Equal("hello"))
		Expect(field.ResponseKey()).To(Equal("renamed"))
	})

	It("parses a fragment spread and definition", func() {
		doc := mustParse("{ ...friendFields } fragment friendFields on Person { name }")
		Expect(doc.Definitions).To(HaveLen(2))

		spread := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.FragmentSpread)
		Expect(spread.Name.Value).To(Equal("friendFields"))

		def := doc.Definitions[1].(*ast.FragmentDefinition)
		Expect(def.Name.Value).To(Equal("friendFields"))
		Expect(def.TypeCondition.Name.Value).To(Equal("Person"))
		Expect(def.SelectionSet.Selections).To(HaveLen(1))
	})

	It("rejects a fragment named \"on\"", func() {
		expectUnexpectedTokenError(`fragment on on Foo { field }`, `Unexpected Name "on"`,
			graphql.ErrorLocation{Line: 1, Column: 10})
	})

	It("parses an inline fragment with a type condition", func() {
		doc := mustParse("{ ...on Person { name } }")
		inline := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.InlineFragment)
		Expect(inline.TypeCondition.Name.Value).To(Equal("Person"))
		Expect(inline.SelectionSet.Selections).To(HaveLen(1))
	})

	It("parses an inline fragment without a type condition", func() {
		doc := mustParse("{ ... { name } }")
		inline := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.InlineFragment)
		Expect(inline.TypeCondition).To(BeNil())
	})

	It("parses directives on a field", func() {
		doc := mustParse("{ field @include(if: true) @skip(if: false) }")
		field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
		Expect(field.Directives).To(HaveLen(2))
		Expect(field.Directives[0].Name.Value).To(Equal("include"))
		Expect(field.Directives[1].Name.Value).To(Equal("skip"))
	})

	Describe("type references", func() {
		It("parses a named type", func() {
			t, err := parseType("String")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.String()).To(Equal("String"))
			Expect(t).To(BeAssignableToTypeOf(ast.NamedType{}))
		})

		It("parses a non-null named type", func() {
			t, err := parseType("String!")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.String()).To(Equal("String!"))
			Expect(t).To(BeAssignableToTypeOf(&ast.NonNullType{}))
		})

		It("parses a list type", func() {
			t, err := parseType("[String]")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.String()).To(Equal("[String]"))
		})

		It("parses a non-null list of non-null named types", func() {
			t, err := parseType("[String!]!")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.String()).To(Equal("[String!]!"))

			nonNull := t.(*ast.NonNullType)
			list := nonNull.Type.(*ast.ListType)
			inner := list.Type.(*ast.NonNullType)
			Expect(inner.Type.(ast.NamedType).Name.Value).To(Equal("String"))
		})

		It("rejects trailing tokens", func() {
			_, err := parser.ParseType(token.NewSource("String extra", ""))
			Expect(err).Should(testutil.MatchGraphQLError(testutil.KindIs(graphql.ErrKindSyntax)))
		})
	})

	Describe("values", func() {
		It("parses an int value", func() {
			v, err := parseValue("42")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v.(*ast.IntValue).Value).To(Equal(int64(42)))
		})

		It("parses a float value", func() {
			v, err := parseValue("4.2")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v.(*ast.FloatValue).Value).To(Equal(4.2))
		})

		It("parses a string value", func() {
			v, err := parseValue(`"hi"`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v.(*ast.StringValue).Value).To(Equal("hi"))
		})

		It("parses booleans and null", func() {
			v, err := parseValue("true")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v.(*ast.BooleanValue).Value).To(BeTrue())

			v, err = parseValue("null")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v).To(BeAssignableToTypeOf(&ast.NullValue{}))
		})

		It("parses an enum value", func() {
			v, err := parseValue("RED")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v.(*ast.EnumValue).Value).To(Equal("RED"))
		})

		It("parses a list value", func() {
			v, err := parseValue("[1, 2, 3]")
			Expect(err).ShouldNot(HaveOccurred())
			list := v.(*ast.ListValue)
			Expect(list.Values).To(HaveLen(3))
		})

		It("parses an object value", func() {
			v, err := parseValue(`{x: 1, y: "two"}`)
			Expect(err).ShouldNot(HaveOccurred())
			obj := v.(*ast.ObjectValue)
			Expect(obj.Fields).To(HaveLen(2))
			Expect(obj.Fields[0].Name.Value).To(Equal("x"))
		})

		It("rejects a variable in a const context", func() {
			_, err := parseDoc("scalar Date @format(pattern: $x)")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Expected a constant value, found a variable"),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})

		It("rejects a variable used as a default value", func() {
			expectSyntaxError("query Q($a: Int = $b) { field }",
				"Expected a constant value, found a variable", graphql.ErrorLocation{Line: 1, Column: 19})
		})

		It("rejects trailing tokens", func() {
			_, err := parser.ParseValue(token.NewSource("1 2", ""))
			Expect(err).Should(testutil.MatchGraphQLError(testutil.KindIs(graphql.ErrKindSyntax)))
		})
	})

	Describe("experimental fragment variables", func() {
		It("rejects fragment variable definitions by default", func() {
			_, err := parseDoc("fragment a($v: Boolean) on t { f }")
			Expect(err).Should(HaveOccurred())
		})

		It("allows fragment variable definitions when enabled", func() {
			doc := mustParse("fragment a($v: Boolean = false) on t { f }",
				parser.ParseOptions{ExperimentalFragmentVariables: true})
			def := doc.Definitions[0].(*ast.FragmentDefinition)
			Expect(def.VariableDefinitions).To(HaveLen(1))
			Expect(def.VariableDefinitions[0].Variable.Name.Value).To(Equal("v"))
		})
	})

	Describe("MaxTokens", func() {
		It("rejects a document exceeding the configured token budget", func() {
			_, err := parseDoc("{ a b c }", parser.ParseOptions{MaxTokens: 3})
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("exceeds the maximum of 3 tokens"),
				testutil.KindIs(graphql.ErrKindIncorrectSource),
			))
		})

		It("allows a document within the configured token budget", func() {
			doc, err := parseDoc("{ a }", parser.ParseOptions{MaxTokens: 100})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(doc.Definitions).To(HaveLen(1))
		})
	})

	Describe("type system definitions", func() {
		It("parses a schema definition", func() {
			doc := mustParse(`schema { query: Query mutation: Mutation }`)
			def := doc.Definitions[0].(*ast.SchemaDefinition)
			Expect(def.OperationTypes).To(HaveLen(2))
			Expect(def.OperationTypes[0].Operation).To(Equal(ast.OperationTypeQuery))
			Expect(def.OperationTypes[0].Type.Name.Value).To(Equal("Query"))
		})

		It("parses a description before a definition", func() {
			doc := mustParse(`"A date and time" scalar DateTime`)
			def := doc.Definitions[0].(*ast.ScalarTypeDefinition)
			Expect(def.Description.Value).To(Equal("A date and time"))
			Expect(def.Name.Value).To(Equal("DateTime"))
		})

		It("parses an object type with interfaces and fields", func() {
			doc := mustParse(`
				type Person implements Named & Aged {
					name: String!
					age(unit: String = "years"): Int
				}
			`)
			def := doc.Definitions[0].(*ast.ObjectTypeDefinition)
			Expect(def.Name.Value).To(Equal("Person"))
			Expect(def.Interfaces).To(HaveLen(2))
			Expect(def.Interfaces[0].Name.Value).To(Equal("Named"))
			Expect(def.Interfaces[1].Name.Value).To(Equal("Aged"))
			Expect(def.Fields).To(HaveLen(2))
			Expect(def.Fields[0].Name.Value).To(Equal("name"))
			Expect(def.Fields[0].Type.String()).To(Equal("String!"))
			Expect(def.Fields[1].Arguments).To(HaveLen(1))
			Expect(def.Fields[1].Arguments[0].Name.Value).To(Equal("unit"))
		})

		It("parses an interface type definition", func() {
			doc := mustParse(`interface Named { name: String }`)
			def := doc.Definitions[0].(*ast.InterfaceTypeDefinition)
			Expect(def.Name.Value).To(Equal("Named"))
			Expect(def.Fields).To(HaveLen(1))
		})

		It("parses a union type with member types", func() {
			doc := mustParse(`union SearchResult = Person | Place`)
			def := doc.Definitions[0].(*ast.UnionTypeDefinition)
			Expect(def.Types).To(HaveLen(2))
			Expect(def.Types[0].Name.Value).To(Equal("Person"))
			Expect(def.Types[1].Name.Value).To(Equal("Place"))
		})

		It("parses an enum type definition", func() {
			doc := mustParse(`enum Direction { NORTH SOUTH EAST WEST }`)
			def := doc.Definitions[0].(*ast.EnumTypeDefinition)
			Expect(def.Values).To(HaveLen(4))
			Expect(def.Values[0].Name.Value).To(Equal("NORTH"))
		})

		It("parses an input object type definition", func() {
			doc := mustParse(`input PersonInput { name: String! age: Int = 0 }`)
			def := doc.Definitions[0].(*ast.InputObjectTypeDefinition)
			Expect(def.Fields).To(HaveLen(2))
			Expect(def.Fields[1].DefaultValue.(*ast.IntValue).Value).To(Equal(int64(0)))
		})

		It("parses a repeatable directive definition with locations", func() {
			doc := mustParse(`directive @cached(ttl: Int) repeatable on FIELD | FIELD_DEFINITION`)
			def := doc.Definitions[0].(*ast.DirectiveDefinition)
			Expect(def.Name.Value).To(Equal("cached"))
			Expect(def.Repeatable).To(BeTrue())
			Expect(def.Arguments).To(HaveLen(1))
			Expect(def.Locations).To(HaveLen(2))
			Expect(def.Locations[0].Value).To(Equal("FIELD"))
			Expect(def.Locations[1].Value).To(Equal("FIELD_DEFINITION"))
		})

		It("rejects an unknown directive location", func() {
			expectSyntaxError(`directive @cached on NOT_A_LOCATION`,
				"Expected a valid directive location", graphql.ErrorLocation{Line: 1, Column: 22})
		})
	})

	Describe("type system extensions", func() {
		It("parses a schema extension and scopes its range at extend", func() {
			doc := mustParse(`extend schema @addedDirective`)
			def := doc.Definitions[0].(*ast.SchemaExtension)
			Expect(def.Directives).To(HaveLen(1))
			Expect(def.TokenRange().Start).To(Equal(token.Position{Offset: 0, Line: 0, Column: 0}))
		})

		It("rejects a scalar extension with nothing to add", func() {
			_, err := parseDoc(`extend scalar DateTime`)
			Expect(err).Should(HaveOccurred())
		})

		It("parses an object type extension adding a field", func() {
			doc := mustParse(`extend type Person { nickname: String }`)
			def := doc.Definitions[0].(*ast.ObjectTypeExtension)
			Expect(def.Name.Value).To(Equal("Person"))
			Expect(def.Fields).To(HaveLen(1))
		})

		It("rejects an object type extension with nothing to add", func() {
			_, err := parseDoc(`extend type Person`)
			Expect(err).Should(HaveOccurred())
		})

		It("parses an interface type extension", func() {
			doc := mustParse(`extend interface Named @deprecated`)
			def := doc.Definitions[0].(*ast.InterfaceTypeExtension)
			Expect(def.Directives).To(HaveLen(1))
		})

		It("parses a union type extension", func() {
			doc := mustParse(`extend union SearchResult = Thing`)
			def := doc.Definitions[0].(*ast.UnionTypeExtension)
			Expect(def.Types).To(HaveLen(1))
		})

		It("parses an enum type extension", func() {
			doc := mustParse(`extend enum Direction { UP DOWN }`)
			def := doc.Definitions[0].(*ast.EnumTypeExtension)
			Expect(def.Values).To(HaveLen(2))
		})

		It("parses an input object type extension", func() {
			doc := mustParse(`extend input PersonInput { nickname: String }`)
			def := doc.Definitions[0].(*ast.InputObjectTypeExtension)
			Expect(def.Fields).To(HaveLen(1))
		})
	})

	Describe("error reporting", func() {
		It("reports an unexpected token with its location", func() {
			expectSyntaxError("{ field: }", "Expected Name, found }", graphql.ErrorLocation{Line: 1, Column: 10})
		})

		It("reports an unexpected end of document", func() {
			expectSyntaxError("{ field", "Expected Name, found <EOF>", graphql.ErrorLocation{Line: 1, Column: 8})
		})

		It("reports a missing production with Unexpected", func() {
			_, err := parseDoc("...")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Unexpected ..."),
				testutil.KindIs(graphql.ErrKindUnexpectedToken),
			))
		})

		It("reports UnexpectedToken, not SyntaxError, for a fragment named \"on\" in a full document", func() {
			expectUnexpectedTokenError(`fragment on on on { on }`, `Unexpected Name "on"`,
				graphql.ErrorLocation{Line: 1, Column: 10})
		})
	})
})
