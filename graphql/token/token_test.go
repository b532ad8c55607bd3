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

package token_test

import (
	"github.com/arborql/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	It("defaults the name when none is given", func() {
		source := token.NewSource("{ foo }", "")
		Expect(source.Name).To(Equal(token.DefaultSourceName))
	})

	It("keeps a given name", func() {
		source := token.NewSource("{ foo }", "query.graphql")
		Expect(source.Name).To(Equal("query.graphql"))
	})

	It("slices the body by byte offset", func() {
		source := token.NewSource("{ foo }", "")
		Expect(source.Slice(2, 5)).To(Equal("foo"))
	})
})

var _ = Describe("Kind", func() {
	It("renders punctuators as their literal character", func() {
		Expect(token.CURLY_OPEN.String()).To(Equal("{"))
		Expect(token.BRACKET_CLOSE.String()).To(Equal("]"))
		Expect(token.ELLIPSIS.String()).To(Equal("..."))
	})

	It("renders NAME and SCALAR by class, not value", func() {
		Expect(token.NAME.String()).To(Equal("Name"))
		Expect(token.SCALAR.String()).To(Equal("Scalar"))
	})

	It("renders EOF", func() {
		Expect(token.EOF.String()).To(Equal("<EOF>"))
	})
})

var _ = Describe("Token", func() {
	Describe("End", func() {
		It("advances the column and offset by Length on a single line", func() {
			tok := &token.Token{
				Start:  token.Position{Offset: 10, Line: 2, Column: 3},
				Length: 4,
			}
			Expect(tok.End()).To(Equal(token.Position{Offset: 14, Line: 2, Column: 7}))
		})
	})

	Describe("Description", func() {
		It("describes a Name token", func() {
			tok := &token.Token{Kind: token.NAME, Name: "foo"}
			Expect(tok.Description()).To(Equal(`Name "foo"`))
		})

		It("describes an Int scalar", func() {
			tok := &token.Token{Kind: token.SCALAR, Scalar: token.IntScalar, IntValue: 42}
			Expect(tok.Description()).To(Equal("Int 42"))
		})

		It("describes a Float scalar", func() {
			tok := &token.Token{Kind: token.SCALAR, Scalar: token.FloatScalar, FloatValue: 1.5}
			Expect(tok.Description()).To(Equal("Float 1.5"))
		})

		It("describes a String scalar", func() {
			tok := &token.Token{Kind: token.SCALAR, Scalar: token.StringScalar, StringValue: "hi"}
			Expect(tok.Description()).To(Equal(`String "hi"`))
		})

		It("describes a punctuator by its Kind", func() {
			tok := &token.Token{Kind: token.PAREN_OPEN}
			Expect(tok.Description()).To(Equal("("))
		})
	})
})
