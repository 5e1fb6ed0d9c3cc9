package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarTagParser_Parse(t *testing.T) {
	parser := NewVarTagParser("@var")

	tests := []struct {
		name     string
		input    string
		typ      string
		typeName string
		rest     []string
	}{
		{name: "plain", input: "@var User", typ: "User", typeName: "User"},
		{name: "description", input: "@var User the owner", typ: "User", typeName: "User", rest: []string{"the", "owner"}},
		{name: "generic", input: "@var Collection<Role>", typ: "Collection<Role>", typeName: "Role"},
		{name: "union", input: "@var Foo|Bar", typ: "Foo|Bar", typeName: "Foo"},
		{name: "nullable generic", input: "@var ArrayCollection<Item>|null", typ: "ArrayCollection<Item>|null", typeName: "Item"},
		{name: "unterminated generic", input: "@var Collection<Role", typ: "Collection<Role", typeName: "Role"},
		{name: "extra whitespace", input: "@var \t  Node  ", typ: "Node", typeName: "Node"},
		{name: "namespaced", input: `@var \App\Entity\User`, typ: `\App\Entity\User`, typeName: `\App\Entity\User`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "@var", tag.Tag)
			assert.Equal(t, tt.typ, tag.Type)
			assert.Equal(t, tt.typeName, tag.TypeName())
			assert.Equal(t, tt.rest, tag.Rest)
		})
	}
}

func TestVarTagParser_Errors(t *testing.T) {
	parser := NewVarTagParser("@var")

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing type", input: "@var "},
		{name: "different tag", input: "@param int $x"},
		{name: "no tag", input: "User $user"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestVarTag_TypeNameEmpty(t *testing.T) {
	tag := &VarTag{Tag: "@var", Type: "<>"}
	assert.Equal(t, "", tag.TypeName())

	tag = &VarTag{Tag: "@var", Type: "|null"}
	assert.Equal(t, "", tag.TypeName())
}
