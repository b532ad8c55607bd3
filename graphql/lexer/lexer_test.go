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

package lexer_test

import (
	"github.com/arborql/graphql"
	"github.com/arborql/graphql/internal/testutil"
	"github.com/arborql/graphql/lexer"
	"github.com/arborql/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func lexAll(body string) ([]*token.Token, error) {
	return lexer.Lex(token.NewSource(body, ""))
}

func expectSyntaxError(body string, message string, location graphql.ErrorLocation) {
	_, err := lexAll(body)
	Expect(err).Should(testutil.MatchGraphQLError(
		testutil.MessageContainSubstring(message),
		testutil.LocationEqual(location),
		testutil.KindIs(graphql.ErrKindSyntax),
	))
}

var _ = Describe("Lex", func() {
	It("rejects a nil source", func() {
		_, err := lexer.Lex(nil)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindIncorrectSource),
		))
	})

	It("produces a single EOF token for an empty document", func() {
		tokens, err := lexAll("")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tokens).To(HaveLen(1))
		Expect(tokens[0].Kind).To(Equal(token.EOF))
	})

	It("skips whitespace, commas and comments", func() {
		tokens, err := lexAll(" \t,\n# a comment\r\nfoo")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tokens).To(HaveLen(2))
		Expect(tokens[0].Kind).To(Equal(token.NAME))
		Expect(tokens[0].Name).To(Equal("foo"))
	})

	It("strips a leading byte order mark", func() {
		tokens, err := lexAll("﻿foo")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tokens[0].Name).To(Equal("foo"))
	})

	It("lexes every punctuator kind", func() {
		tokens, err := lexAll("! $ & ( ) ... : = @ [ ] { | }")
		Expect(err).ShouldNot(HaveOccurred())
		kinds := make([]token.Kind, 0, len(tokens)-1)
		for _, tok := range tokens[:len(tokens)-1] {
			kinds = append(kinds, tok.Kind)
		}
		Expect(kinds).To(Equal([]token.Kind{
			token.EXCLAMATION, token.DOLLAR, token.AMP, token.PAREN_OPEN, token.PAREN_CLOSE,
			token.ELLIPSIS, token.COLON, token.EQUALS, token.AT, token.BRACKET_OPEN,
			token.BRACKET_CLOSE, token.CURLY_OPEN, token.PIPE, token.CURLY_CLOSE,
		}))
	})

	It("rejects a partial ellipsis", func() {
		expectSyntaxError("..", `Cannot parse the unexpected character "."`, graphql.ErrorLocation{Line: 1, Column: 1})
	})

	It("records line and column across newlines", func() {
		tokens, err := lexAll("\n\n    foo\n")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tokens[0].Start).To(Equal(token.Position{Offset: 6, Line: 2, Column: 4}))
	})

	Describe("names", func() {
		It("lexes a name starting with an underscore", func() {
			tokens, err := lexAll("_Foo42")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Kind).To(Equal(token.NAME))
			Expect(tokens[0].Name).To(Equal("_Foo42"))
		})
	})

	Describe("numbers", func() {
		It("lexes an integer", func() {
			tokens, err := lexAll("123")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Scalar).To(Equal(token.IntScalar))
			Expect(tokens[0].IntValue).To(Equal(int64(123)))
		})

		It("lexes a negative integer", func() {
			tokens, err := lexAll("-7")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].IntValue).To(Equal(int64(-7)))
		})

		It("lexes a float with a fractional part", func() {
			tokens, err := lexAll("1.5")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Scalar).To(Equal(token.FloatScalar))
			Expect(tokens[0].FloatValue).To(Equal(1.5))
		})

		It("lexes a float with an exponent", func() {
			tokens, err := lexAll("1e10")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Scalar).To(Equal(token.FloatScalar))
			Expect(tokens[0].FloatValue).To(Equal(1e10))
		})

		It("rejects a leading zero followed by another digit", func() {
			expectSyntaxError("01", "Invalid number, unexpected digit after 0", graphql.ErrorLocation{Line: 1, Column: 2})
		})

		It("rejects a bare minus sign", func() {
			expectSyntaxError("-", "Invalid number, expected digit after '-'", graphql.ErrorLocation{Line: 1, Column: 2})
		})

		It("rejects a decimal point with no digits after it", func() {
			expectSyntaxError("1.", "Invalid number, expected digit after decimal point", graphql.ErrorLocation{Line: 1, Column: 3})
		})
	})

	Describe("strings", func() {
		It("lexes an empty string", func() {
			tokens, err := lexAll(`""`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Scalar).To(Equal(token.StringScalar))
			Expect(tokens[0].StringValue).To(Equal(""))
		})

		It("lexes escape sequences", func() {
			tokens, err := lexAll(`"a\nb\tcA"`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].StringValue).To(Equal("a\nb\tcA"))
		})

		It("rejects an unterminated string", func() {
			expectSyntaxError(`"no closing quote`, "Unterminated string", graphql.ErrorLocation{Line: 1, Column: 18})
		})

		It("rejects a newline inside a single-quoted string", func() {
			expectSyntaxError("\"line one\nline two\"", "Unterminated string", graphql.ErrorLocation{Line: 1, Column: 10})
		})

		It("rejects an invalid escape sequence", func() {
			expectSyntaxError(`"\q"`, "Invalid character escape sequence", graphql.ErrorLocation{Line: 1, Column: 3})
		})
	})

	Describe("block strings", func() {
		It("lexes a block string and applies the dedent algorithm", func() {
			tokens, err := lexAll("\"\"\"\n    Hello,\n    World!\n    \"\"\"")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Scalar).To(Equal(token.BlockStringScalar))
			Expect(tokens[0].StringValue).To(Equal("Hello,\nWorld!"))
		})

		It("allows an escaped triple quote inside a block string", func() {
			tokens, err := lexAll(`"""a \""" b"""`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].StringValue).To(Equal(`a """ b`))
		})
	})

	Describe("unexpected characters", func() {
		It("rejects an uncommon control character", func() {
			expectSyntaxError("\x07", `Cannot contain the invalid character`, graphql.ErrorLocation{Line: 1, Column: 1})
		})

		It("suggests a double quote on a stray single quote", func() {
			expectSyntaxError("'", "did you mean to use a double quote", graphql.ErrorLocation{Line: 1, Column: 1})
		})
	})
})
