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

package token

// Source is a named chunk of GraphQL document text handed to the lexer. Name defaults to
// "GraphQL request" when not supplied, matching the display name the teacher uses for anonymous
// sources.
type Source struct {
	// Body is the raw document text.
	Body string

	// Name identifies the source for diagnostics (e.g. a filename).
	Name string
}

// DefaultSourceName is used when a Source is constructed without an explicit name.
const DefaultSourceName = "GraphQL request"

// NewSource builds a Source from body text and an optional name. An empty name is replaced by
// DefaultSourceName.
func NewSource(body string, name string) *Source {
	if name == "" {
		name = DefaultSourceName
	}
	return &Source{
		Body: body,
		Name: name,
	}
}

// Slice returns the substring of Body covered by [start, end) byte offsets.
func (s *Source) Slice(start, end int) string {
	return s.Body[start:end]
}
