// Package prompt runs the interactive model/target picker behind
// `modelgen interactive`.
package prompt

import (
	"context"
	"errors"
	"slices"
	"strings"
)

// ErrNothingSelected is returned when a choice list comes back empty.
var ErrNothingSelected = errors.New("prompt: nothing selected")

// Selection is the outcome of an interactive session.
type Selection struct {
	Models  []string
	Targets []string
	// Output is the directory to write to; empty means stdout.
	Output string
}

// Choices feeds the session with what can be picked and the preselected
// values.
type Choices struct {
	Models         []string
	Targets        []string
	DefaultTargets []string
	DefaultOutput  string
}

// Ask walks the user through model, target and output selection. Declining
// the final confirmation returns ErrAborted.
func Ask(ctx context.Context, driver Driver, choices Choices) (Selection, error) {
	var sel Selection

	modelIdx, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Models to generate",
		Options:  choices.Models,
		PageSize: 10,
	})
	if err != nil {
		return sel, err
	}
	sel.Models = pick(choices.Models, modelIdx)
	if len(sel.Models) == 0 {
		return sel, ErrNothingSelected
	}

	targetIdx, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Targets",
		Options:  choices.Targets,
		Defaults: indicesOf(choices.Targets, choices.DefaultTargets),
		PageSize: 10,
	})
	if err != nil {
		return sel, err
	}
	sel.Targets = pick(choices.Targets, targetIdx)
	if len(sel.Targets) == 0 {
		return sel, ErrNothingSelected
	}

	output, err := driver.Input(ctx, InputConfig{
		Message: "Output directory (blank prints to stdout)",
		Default: choices.DefaultOutput,
	})
	if err != nil {
		return sel, err
	}
	sel.Output = strings.TrimSpace(output)

	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: summary(sel),
		Default: true,
	})
	if err != nil {
		return sel, err
	}
	if !ok {
		return sel, ErrAborted
	}
	return sel, nil
}

func pick(options []string, indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) && !slices.Contains(out, options[idx]) {
			out = append(out, options[idx])
		}
	}
	return out
}

func summary(sel Selection) string {
	dest := "stdout"
	if sel.Output != "" {
		dest = sel.Output
	}
	return "Generate " + strings.Join(sel.Models, ", ") +
		" as " + strings.Join(sel.Targets, ", ") +
		" to " + dest + "?"
}
