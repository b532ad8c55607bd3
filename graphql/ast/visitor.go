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

package ast

// Result controls how Walk proceeds after a Visitor callback runs.
type Result int

// Enumeration of Result.
const (
	// Continue descends into the current node's children as usual.
	Continue Result = iota
	// SkipSubTree skips the current node's children but continues the walk elsewhere.
	SkipSubTree
	// Break stops the walk immediately.
	Break
)

// Visitor is called on Enter before a node's children are visited and on Leave after. Returning
// SkipSubTree from Enter skips that node's children (Leave is still called); returning Break from
// either stops the walk.
type Visitor interface {
	Enter(node Node) Result
	Leave(node Node) Result
}

// Walk traverses node and its descendants in document order, calling v.Enter/v.Leave on each Node
// encountered, including node itself. Type system definitions and extensions are entered and left
// but their children are not visited; a Field's alias, a Variable's name and a NamedType's name are
// not visited either.
func Walk(v Visitor, node Node) Result {
	if node == nil {
		return Continue
	}

	result := v.Enter(node)
	if result == Break {
		return Break
	}

	if result != SkipSubTree {
		if walkChildren(v, node) == Break {
			return Break
		}
	}

	return v.Leave(node)
}

func walkChildren(v Visitor, node Node) Result {
	switch n := node.(type) {
	case Document:
		for _, d := range n.Definitions {
			if Walk(v, d) == Break {
				return Break
			}
		}

	case *OperationDefinition:
		for _, vd := range n.VariableDefinitions {
			if Walk(v, vd) == Break {
				return Break
			}
		}
		if walkDirectives(v, n.Directives) == Break {
			return Break
		}
		return Walk(v, n.SelectionSet)

	case *VariableDefinition:
		if Walk(v, n.Variable) == Break {
			return Break
		}
		if Walk(v, n.Type) == Break {
			return Break
		}
		if n.DefaultValue != nil {
			if Walk(v, n.DefaultValue) == Break {
				return Break
			}
		}
		return walkDirectives(v, n.Directives)

	case SelectionSet:
		for _, s := range n.Selections {
			if Walk(v, s) == Break {
				return Break
			}
		}

	case *Field:
		if Walk(v, n.Name) == Break {
			return Break
		}
		for _, a := range n.Arguments {
			if Walk(v, a) == Break {
				return Break
			}
		}
		if walkDirectives(v, n.Directives) == Break {
			return Break
		}
		return Walk(v, n.SelectionSet)

	case *Argument:
		if Walk(v, n.Name) == Break {
			return Break
		}
		return Walk(v, n.Value)

	case *FragmentSpread:
		if Walk(v, n.Name) == Break {
			return Break
		}
		return walkDirectives(v, n.Directives)

	case *FragmentDefinition:
		if Walk(v, n.Name) == Break {
			return Break
		}
		if Walk(v, n.TypeCondition) == Break {
			return Break
		}
		if walkDirectives(v, n.Directives) == Break {
			return Break
		}
		return Walk(v, n.SelectionSet)

	case *InlineFragment:
		if n.TypeCondition != nil {
			if Walk(v, *n.TypeCondition) == Break {
				return Break
			}
		}
		if walkDirectives(v, n.Directives) == Break {
			return Break
		}
		return Walk(v, n.SelectionSet)

	case *ListValue:
		for _, value := range n.Values {
			if Walk(v, value) == Break {
				return Break
			}
		}

	case *ObjectValue:
		for _, f := range n.Fields {
			if Walk(v, f) == Break {
				return Break
			}
		}

	case *ObjectField:
		if Walk(v, n.Name) == Break {
			return Break
		}
		return Walk(v, n.Value)

	case *Directive:
		if Walk(v, n.Name) == Break {
			return Break
		}
		for _, a := range n.Arguments {
			if Walk(v, a) == Break {
				return Break
			}
		}

	case *ListType:
		return Walk(v, n.Type)

	case *NonNullType:
		return Walk(v, n.Type)
	}

	return Continue
}

func walkDirectives(v Visitor, directives Directives) Result {
	for _, d := range directives {
		if Walk(v, d) == Break {
			return Break
		}
	}
	return Continue
}
