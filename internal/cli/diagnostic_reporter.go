package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/acgraph/internal/errors"
)

// DiagnosticReporter renders run errors for humans
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporterWithWriter creates a reporter writing to out
func NewDiagnosticReporterWithWriter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{verbose: verbose, out: out}
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError prints err with its kind, location, context and suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	title := errors.CodeOf(err).Title()

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "\nERROR: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("=", len(title)+7))

	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	coded := errors.Find(err)
	if coded == nil {
		return
	}

	if loc := coded.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if r.verbose && len(coded.Context()) > 0 {
		r.printContext(coded.Context())
	}

	if len(coded.Suggestions()) > 0 {
		r.printSuggestions(coded.Suggestions())
	}

	if r.verbose && coded.Unwrap() != nil {
		r.printErrorChain(coded.Unwrap())
	}
}

// printContext prints context information sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

// printErrorChain prints each wrapped cause on its own line
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.out, "   %d. %s\n", level, err.Error())
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
		level++
	}
	fmt.Fprintf(r.out, "\n")
}
