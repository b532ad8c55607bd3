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

// ToMapping projects a Node into a canonical tree of maps, slices and scalars keyed by the node's
// GraphQL kind name, the way the reference implementation's toJSON()/print() dumps an AST for
// comparison in tests. Two ASTs are structurally equal iff their ToMapping() outputs are
// reflect.DeepEqual (or, serialized, byte-equal JSON), independent of source positions.
func ToMapping(node Node) interface{} {
	switch n := node.(type) {
	case Name:
		return mapping("Name", mapFields{"value": n.Value})
	case Document:
		return mapping("Document", mapFields{"definitions": mapDefinitions(n.Definitions)})

	case *OperationDefinition:
		return mapping("OperationDefinition", mapFields{
			"operation":           string(n.Operation),
			"name":                mapOptionalName(n.Name),
			"variableDefinitions": mapVariableDefinitions(n.VariableDefinitions),
			"directives":          mapDirectives(n.Directives),
			"selectionSet":        ToMapping(n.SelectionSet),
		})
	case *VariableDefinition:
		return mapping("VariableDefinition", mapFields{
			"variable":     ToMapping(n.Variable),
			"type":         ToMapping(n.Type),
			"defaultValue": mapOptionalValue(n.DefaultValue),
			"directives":   mapDirectives(n.Directives),
		})
	case SelectionSet:
		return mapping("SelectionSet", mapFields{"selections": mapSelections(n.Selections)})
	case *Field:
		return mapping("Field", mapFields{
			"alias":        mapOptionalName(n.Alias),
			"name":         ToMapping(n.Name),
			"arguments":    mapArguments(n.Arguments),
			"directives":   mapDirectives(n.Directives),
			"selectionSet": ToMapping(n.SelectionSet),
		})
	case *Argument:
		return mapping("Argument", mapFields{"name": ToMapping(n.Name), "value": ToMapping(n.Value)})
	case *FragmentSpread:
		return mapping("FragmentSpread", mapFields{
			"name":       ToMapping(n.Name),
			"directives": mapDirectives(n.Directives),
		})
	case *FragmentDefinition:
		return mapping("FragmentDefinition", mapFields{
			"name":                ToMapping(n.Name),
			"variableDefinitions": mapVariableDefinitions(n.VariableDefinitions),
			"typeCondition":       ToMapping(n.TypeCondition),
			"directives":          mapDirectives(n.Directives),
			"selectionSet":        ToMapping(n.SelectionSet),
		})
	case *InlineFragment:
		return mapping("InlineFragment", mapFields{
			"typeCondition": mapOptionalType(n.TypeCondition),
			"directives":    mapDirectives(n.Directives),
			"selectionSet":  ToMapping(n.SelectionSet),
		})

	case *Variable:
		return mapping("Variable", mapFields{"name": ToMapping(n.Name)})
	case *IntValue:
		return mapping("IntValue", mapFields{"value": n.Value})
	case *FloatValue:
		return mapping("FloatValue", mapFields{"value": n.Value})
	case *StringValue:
		return mapping("StringValue", mapFields{"value": n.Value, "block": n.Block})
	case *BooleanValue:
		return mapping("BooleanValue", mapFields{"value": n.Value})
	case *NullValue:
		return mapping("NullValue", mapFields{})
	case *EnumValue:
		return mapping("EnumValue", mapFields{"value": n.Value})
	case *ListValue:
		values := make([]interface{}, len(n.Values))
		for i, v := range n.Values {
			values[i] = ToMapping(v)
		}
		return mapping("ListValue", mapFields{"values": values})
	case *ObjectValue:
		fields := make([]interface{}, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = ToMapping(f)
		}
		return mapping("ObjectValue", mapFields{"fields": fields})
	case *ObjectField:
		return mapping("ObjectField", mapFields{"name": ToMapping(n.Name), "value": ToMapping(n.Value)})

	case *Directive:
		return mapping("Directive", mapFields{"name": ToMapping(n.Name), "arguments": mapArguments(n.Arguments)})

	case NamedType:
		return mapping("NamedType", mapFields{"name": ToMapping(n.Name)})
	case *ListType:
		return mapping("ListType", mapFields{"type": ToMapping(n.Type)})
	case *NonNullType:
		return mapping("NonNullType", mapFields{"type": ToMapping(n.Type)})

	case *OperationTypeDefinition:
		return mapping("OperationTypeDefinition", mapFields{
			"operation": string(n.Operation),
			"type":      ToMapping(n.Type),
		})
	case *SchemaDefinition:
		return mapping("SchemaDefinition", mapFields{
			"description":    mapOptionalStringValue(n.Description),
			"directives":     mapDirectives(n.Directives),
			"operationTypes": mapNodes(operationTypeDefinitionsToNodes(n.OperationTypes)),
		})
	case *SchemaExtension:
		return mapping("SchemaExtension", mapFields{
			"directives":     mapDirectives(n.Directives),
			"operationTypes": mapNodes(operationTypeDefinitionsToNodes(n.OperationTypes)),
		})
	case *ScalarTypeDefinition:
		return mapping("ScalarTypeDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"directives":  mapDirectives(n.Directives),
		})
	case *ScalarTypeExtension:
		return mapping("ScalarTypeExtension", mapFields{
			"name":       ToMapping(n.Name),
			"directives": mapDirectives(n.Directives),
		})
	case *InputValueDefinition:
		return mapping("InputValueDefinition", mapFields{
			"description":  mapOptionalStringValue(n.Description),
			"name":         ToMapping(n.Name),
			"type":         ToMapping(n.Type),
			"defaultValue": mapOptionalValue(n.DefaultValue),
			"directives":   mapDirectives(n.Directives),
		})
	case *FieldDefinition:
		return mapping("FieldDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"arguments":   mapNodes(inputValueDefinitionsToNodes(n.Arguments)),
			"type":        ToMapping(n.Type),
			"directives":  mapDirectives(n.Directives),
		})
	case *ObjectTypeDefinition:
		return mapping("ObjectTypeDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"interfaces":  mapNamedTypes(n.Interfaces),
			"directives":  mapDirectives(n.Directives),
			"fields":      mapNodes(fieldDefinitionsToNodes(n.Fields)),
		})
	case *ObjectTypeExtension:
		return mapping("ObjectTypeExtension", mapFields{
			"name":       ToMapping(n.Name),
			"interfaces": mapNamedTypes(n.Interfaces),
			"directives": mapDirectives(n.Directives),
			"fields":     mapNodes(fieldDefinitionsToNodes(n.Fields)),
		})
	case *InterfaceTypeDefinition:
		return mapping("InterfaceTypeDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"directives":  mapDirectives(n.Directives),
			"fields":      mapNodes(fieldDefinitionsToNodes(n.Fields)),
		})
	case *InterfaceTypeExtension:
		return mapping("InterfaceTypeExtension", mapFields{
			"name":       ToMapping(n.Name),
			"directives": mapDirectives(n.Directives),
			"fields":     mapNodes(fieldDefinitionsToNodes(n.Fields)),
		})
	case *UnionTypeDefinition:
		return mapping("UnionTypeDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"directives":  mapDirectives(n.Directives),
			"types":       mapNamedTypes(n.Types),
		})
	case *UnionTypeExtension:
		return mapping("UnionTypeExtension", mapFields{
			"name":       ToMapping(n.Name),
			"directives": mapDirectives(n.Directives),
			"types":      mapNamedTypes(n.Types),
		})
	case *EnumValueDefinition:
		return mapping("EnumValueDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"directives":  mapDirectives(n.Directives),
		})
	case *EnumTypeDefinition:
		return mapping("EnumTypeDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"directives":  mapDirectives(n.Directives),
			"values":      mapNodes(enumValueDefinitionsToNodes(n.Values)),
		})
	case *EnumTypeExtension:
		return mapping("EnumTypeExtension", mapFields{
			"name":       ToMapping(n.Name),
			"directives": mapDirectives(n.Directives),
			"values":     mapNodes(enumValueDefinitionsToNodes(n.Values)),
		})
	case *InputObjectTypeDefinition:
		return mapping("InputObjectTypeDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"directives":  mapDirectives(n.Directives),
			"fields":      mapNodes(inputValueDefinitionsToNodes(n.Fields)),
		})
	case *InputObjectTypeExtension:
		return mapping("InputObjectTypeExtension", mapFields{
			"name":       ToMapping(n.Name),
			"directives": mapDirectives(n.Directives),
			"fields":     mapNodes(inputValueDefinitionsToNodes(n.Fields)),
		})
	case *DirectiveDefinition:
		locations := make([]interface{}, len(n.Locations))
		for i, loc := range n.Locations {
			locations[i] = loc.Value
		}
		return mapping("DirectiveDefinition", mapFields{
			"description": mapOptionalStringValue(n.Description),
			"name":        ToMapping(n.Name),
			"arguments":   mapNodes(inputValueDefinitionsToNodes(n.Arguments)),
			"repeatable":  n.Repeatable,
			"locations":   locations,
		})
	}

	panic("ast.ToMapping: unsupported node type")
}

type mapFields map[string]interface{}

func mapping(kind string, fields mapFields) map[string]interface{} {
	fields["kind"] = kind
	return fields
}

func mapOptionalName(name *Name) interface{} {
	if name == nil {
		return nil
	}
	return ToMapping(*name)
}

func mapOptionalStringValue(value *StringValue) interface{} {
	if value == nil {
		return nil
	}
	return ToMapping(value)
}

func mapOptionalValue(value Value) interface{} {
	if value == nil {
		return nil
	}
	return ToMapping(value)
}

func mapOptionalType(t *NamedType) interface{} {
	if t == nil {
		return nil
	}
	return ToMapping(*t)
}

func mapDefinitions(definitions []Definition) []interface{} {
	out := make([]interface{}, len(definitions))
	for i, d := range definitions {
		out[i] = ToMapping(d)
	}
	return out
}

func mapSelections(selections []Selection) []interface{} {
	out := make([]interface{}, len(selections))
	for i, s := range selections {
		out[i] = ToMapping(s)
	}
	return out
}

func mapArguments(arguments Arguments) []interface{} {
	out := make([]interface{}, len(arguments))
	for i, a := range arguments {
		out[i] = ToMapping(a)
	}
	return out
}

func mapDirectives(directives Directives) []interface{} {
	out := make([]interface{}, len(directives))
	for i, d := range directives {
		out[i] = ToMapping(d)
	}
	return out
}

func mapVariableDefinitions(definitions []*VariableDefinition) []interface{} {
	out := make([]interface{}, len(definitions))
	for i, d := range definitions {
		out[i] = ToMapping(d)
	}
	return out
}

func mapNamedTypes(types []NamedType) []interface{} {
	out := make([]interface{}, len(types))
	for i, t := range types {
		out[i] = ToMapping(t)
	}
	return out
}

func mapNodes(nodes []Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = ToMapping(n)
	}
	return out
}

func operationTypeDefinitionsToNodes(in []*OperationTypeDefinition) []Node {
	out := make([]Node, len(in))
	for i, d := range in {
		out[i] = d
	}
	return out
}

func fieldDefinitionsToNodes(in []*FieldDefinition) []Node {
	out := make([]Node, len(in))
	for i, d := range in {
		out[i] = d
	}
	return out
}

func inputValueDefinitionsToNodes(in []*InputValueDefinition) []Node {
	out := make([]Node, len(in))
	for i, d := range in {
		out[i] = d
	}
	return out
}

func enumValueDefinitionsToNodes(in []*EnumValueDefinition) []Node {
	out := make([]Node, len(in))
	for i, d := range in {
		out[i] = d
	}
	return out
}
