// Package snake fills command flags interactively.
package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrEmpty is returned by the prompt validation for a required flag left
// blank.
var ErrEmpty = errors.New("empty")

// Prompter asks for flag values on In and echoes to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// Choices turns the prompt for the named flag into a selection.
	Choices map[string][]string
	// Optional flags may be answered with an empty string.
	Optional map[string]bool
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// PromptFlags asks for every named flag of cmd that was not given on the
// command line and sets it from the answer.
func (p *Prompter) PromptFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("snake: unknown flag %q", name)
		}
		if f.Changed {
			continue
		}

		var (
			answer string
			err    error
		)
		if choices, ok := p.Choices[name]; ok {
			answer, err = p.selectOne(f, choices)
		} else {
			answer, err = p.prompt(f)
		}
		if err != nil {
			return fmt.Errorf("snake: %s: %w", asFlags(f), err)
		}
		if err := cmd.Flags().Set(name, answer); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prompter) prompt(f *pflag.Flag) (string, error) {
	_, _ = fmt.Fprintf(p.Out, "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	validate := func(input string) error {
		if len(strings.TrimSpace(input)) == 0 && len(f.DefValue) == 0 && !p.Optional[f.Name] {
			return ErrEmpty
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "Answer {{ . }} : ",
		Valid:   "Answer {{ . | green }} : ",
		Invalid: "Answer {{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     f.Name,
		Default:   f.DefValue,
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(p.In),
		Stdout:    nopCloser{p.Out},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if result == "" {
		result = f.DefValue
	}
	return result, nil
}

func (p *Prompter) selectOne(f *pflag.Flag, choices []string) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ . | bold }}",
		Inactive: "   {{ . | cyan }}",
		Selected: "{{ . | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(choices[index])
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     f.Usage,
		Items:     choices,
		Templates: templates,
		Size:      len(choices),
		Searcher:  searcher,
		Stdin:     io.NopCloser(p.In),
		Stdout:    nopCloser{p.Out},
	}

	_, result, err := prompt.Run()
	return result, err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
