package annotations

// Result is the raw content of one @AccessControl annotation.
// A Result with an empty ClassName is the "no annotation" sentinel.
type Result struct {
	ClassName    string   // owning class
	Associations []string // byAssociation names, in source order
	Propagations []string // propagateTo names, in source order
}

// Empty reports whether the result carries no class and contributes nothing.
func (r Result) Empty() bool {
	return r.ClassName == ""
}

// TypedResult is a Result whose names have been resolved to declared types.
type TypedResult struct {
	ClassName string
	Incoming  []string // types resolved from Associations
	Outgoing  []string // types resolved from Propagations
}

// Empty reports whether the result carries no class.
func (r TypedResult) Empty() bool {
	return r.ClassName == ""
}

// Options controls the tokens the extractor looks for.
type Options struct {
	Marker         string // annotation marker, e.g. "@AccessControl"
	ClassKeyword   string // token preceding the class name
	AssociationKey string // sub-key for incoming names
	PropagationKey string // sub-key for outgoing names
	TypeTag        string // doc tag declaring a property type
}

// DefaultOptions returns the tokens used by PHP access-control annotations.
func DefaultOptions() Options {
	return Options{
		Marker:         "@AccessControl",
		ClassKeyword:   "class ",
		AssociationKey: "byAssociation=",
		PropagationKey: "propagateTo=",
		TypeTag:        "@var",
	}
}
