package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// VarTag is a documentation tag such as `@var Collection<Role> $roles`.
type VarTag struct {
	Tag  string   `parser:"@Tag"`
	Type string   `parser:"@Word"`
	Rest []string `parser:"(@Word | @Tag)*"`
}

// VarTagParser parses property type tags using alecthomas/participle
type VarTagParser struct {
	parser *participle.Parser[VarTag]
	tag    string
}

// NewVarTagParser creates a parser that accepts tags named tag (e.g. "@var")
func NewVarTagParser(tag string) *VarTagParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Tag", Pattern: `@[a-zA-Z_][a-zA-Z0-9_-]*`},
		{Name: "Word", Pattern: `[^\s]+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[VarTag](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)

	return &VarTagParser{
		parser: parser,
		tag:    tag,
	}
}

// Parse parses source, which must start with the tag, and returns the tag.
func (p *VarTagParser) Parse(source string) (*VarTag, error) {
	tag, err := p.parser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s tag: %w", p.tag, err)
	}
	if tag.Tag != p.tag {
		return nil, fmt.Errorf("expected %s tag, got %s", p.tag, tag.Tag)
	}
	return tag, nil
}

// TypeName reduces the declared type to the single referenced type name.
//
// A generic type yields its bracketed parameter (Collection<Role> -> Role) and
// a union yields its first member (Role|null -> Role). The generic rule is
// applied first. An empty string means no usable type.
func (t *VarTag) TypeName() string {
	name := t.Type
	if lt := strings.IndexByte(name, '<'); lt >= 0 {
		inner := name[lt+1:]
		if gt := strings.IndexByte(inner, '>'); gt >= 0 {
			inner = inner[:gt]
		}
		name = inner
	}
	if bar := strings.IndexByte(name, '|'); bar >= 0 {
		name = name[:bar]
	}
	return strings.TrimSpace(name)
}
