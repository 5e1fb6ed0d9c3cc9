// Package annotations extracts @AccessControl relationship annotations from
// PHP source text and resolves the referenced property names to their
// declared types.
package annotations

import (
	"strings"
	"unicode"

	"github.com/toyz/acgraph/internal/errors"
)

// Extractor pulls access-control annotations out of source text
type Extractor struct {
	opts Options
	tags *VarTagParser
}

// NewExtractor creates an extractor with the default PHP tokens
func NewExtractor() *Extractor {
	return NewExtractorWithOptions(DefaultOptions())
}

// NewExtractorWithOptions creates an extractor with custom tokens
func NewExtractorWithOptions(opts Options) *Extractor {
	return &Extractor{
		opts: opts,
		tags: NewVarTagParser(opts.TypeTag),
	}
}

// Options returns the tokens the extractor was configured with
func (e *Extractor) Options() Options {
	return e.opts
}

// Extract locates the first annotation marker in text and returns its class
// name and raw name lists. Text without a marker yields an empty Result and
// no error. Unbalanced delimiters yield a *errors.MalformedAnnotationError.
func (e *Extractor) Extract(text string) (Result, error) {
	markerAt := strings.Index(text, e.opts.Marker)
	if markerAt < 0 {
		return Result{}, nil
	}

	args, depth, ok := scanBalanced(text[markerAt+len(e.opts.Marker):], '(', ')')
	if !ok {
		err := errors.NewMalformedAnnotationError(e.opts.Marker, '(', ')', depth)
		err.WithLocation(locate(text, markerAt))
		return Result{}, err
	}

	result := Result{
		ClassName:    e.className(text),
		Associations: []string{},
		Propagations: []string{},
	}

	var err error
	if result.Associations, err = e.listValue(text, markerAt, args, e.opts.AssociationKey); err != nil {
		return Result{}, err
	}
	if result.Propagations, err = e.listValue(text, markerAt, args, e.opts.PropagationKey); err != nil {
		return Result{}, err
	}

	return result, nil
}

// ResolveTypes maps each property name to the type declared by the nearest
// preceding type tag of its `$name;` declaration. Names without a
// declaration or tag are dropped; the order of the others is kept.
func (e *Extractor) ResolveTypes(names []string, text string) []string {
	types := make([]string, 0, len(names))
	for _, name := range names {
		if typeName, ok := e.resolveType(name, text); ok {
			types = append(types, typeName)
		}
	}
	return types
}

// Resolve extracts the annotation in text and resolves both of its lists
func (e *Extractor) Resolve(text string) (TypedResult, error) {
	result, err := e.Extract(text)
	if err != nil {
		return TypedResult{}, err
	}
	if result.Empty() {
		return TypedResult{}, nil
	}

	return TypedResult{
		ClassName: result.ClassName,
		Incoming:  e.ResolveTypes(result.Associations, text),
		Outgoing:  e.ResolveTypes(result.Propagations, text),
	}, nil
}

// className returns the identifier after the first class keyword
func (e *Extractor) className(text string) string {
	at := strings.Index(text, e.opts.ClassKeyword)
	if at < 0 {
		return ""
	}
	rest := strings.TrimLeftFunc(text[at+len(e.opts.ClassKeyword):], unicode.IsSpace)
	if end := strings.IndexFunc(rest, isNameEnd); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func isNameEnd(r rune) bool {
	return r == '{' || unicode.IsSpace(r)
}

// listValue extracts the braced list following key inside the argument list
func (e *Extractor) listValue(text string, markerAt int, args, key string) ([]string, error) {
	at := strings.Index(args, key)
	if at < 0 {
		return []string{}, nil
	}

	body, depth, ok := scanBalanced(args[at+len(key):], '{', '}')
	if !ok {
		err := errors.NewMalformedAnnotationError(strings.TrimSuffix(key, "="), '{', '}', depth)
		err.WithLocation(locate(text, markerAt))
		return nil, err
	}
	return splitList(body), nil
}

// resolveType finds the declared type of property name
func (e *Extractor) resolveType(name, text string) (string, bool) {
	decl := strings.Index(text, "$"+name+";")
	if decl < 0 {
		return "", false
	}
	tagAt := strings.LastIndex(text[:decl], e.opts.TypeTag)
	if tagAt < 0 {
		return "", false
	}

	// the tag ends at the end of its line or at the comment close
	tagText := text[tagAt:decl]
	if end := strings.IndexByte(tagText, '\n'); end >= 0 {
		tagText = tagText[:end]
	}
	if end := strings.Index(tagText, "*/"); end >= 0 {
		tagText = tagText[:end]
	}

	tag, err := e.tags.Parse(tagText)
	if err != nil {
		return "", false
	}
	typeName := tag.TypeName()
	return typeName, typeName != ""
}

var defaultExtractor = NewExtractor()

// Extract runs the default extractor over text
func Extract(text string) (Result, error) {
	return defaultExtractor.Extract(text)
}

// Resolve runs the default extractor over text and resolves both lists
func Resolve(text string) (TypedResult, error) {
	return defaultExtractor.Resolve(text)
}
