package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-modelgen/internal/prompt"
	"github.com/goliatone/go-modelgen/pkg/catalog"
)

func newInteractiveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick models and targets with prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver := c.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver()
			}

			sel, err := prompt.Ask(cmd.Context(), driver, prompt.Choices{
				Models:         catalog.Names(),
				Targets:        c.registry.List(),
				DefaultTargets: c.cfg.Targets,
				DefaultOutput:  c.cfg.Output,
			})
			if err != nil {
				return err
			}
			return c.generate(generateRequest{
				Models:  sel.Models,
				Targets: sel.Targets,
				Output:  sel.Output,
			})
		},
	}
}
