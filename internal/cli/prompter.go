package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/toyz/acgraph/internal/errors"
)

// Prompter asks the user for a single line of input
type Prompter interface {
	Ask(title, placeholder string) (string, error)
}

// HuhPrompter prompts on the terminal with charmbracelet/huh
type HuhPrompter struct {
	titleStyle lipgloss.Style
}

// NewHuhPrompter creates a terminal prompter
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

// Ask shows an input field and returns the trimmed answer
func (p *HuhPrompter) Ask(title, placeholder string) (string, error) {
	var answer string
	input := huh.NewInput().
		Title(p.titleStyle.Render(title)).
		Placeholder(placeholder).
		Value(&answer).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(errors.ConfigurationErrorCode, "a value is required")
			}
			return nil
		})

	if err := input.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// FillMissing prompts for the path and output when they are empty. Without
// a prompter a missing value is a configuration error.
func FillMissing(cfg *Config, prompter Prompter) error {
	questions := []struct {
		field       string
		flag        string
		title       string
		placeholder string
		target      *string
	}{
		{"path", "--path", "Directory to scan", "src/Entity", &cfg.Root},
		{"output", "--output", "Image to write", "access-control.png", &cfg.Output},
	}

	for _, q := range questions {
		if strings.TrimSpace(*q.target) != "" {
			continue
		}
		if prompter == nil {
			err := errors.NewConfigurationError(q.field, q.field+" is required when not running in a terminal")
			err.WithSuggestion("Pass it with " + q.flag)
			return err
		}

		answer, err := prompter.Ask(q.title, q.placeholder)
		if err != nil {
			return errors.WrapConfigurationError(q.field, "prompt for", err)
		}
		*q.target = answer
	}
	return nil
}
