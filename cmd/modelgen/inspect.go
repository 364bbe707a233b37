package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/catalog"
	"github.com/goliatone/go-modelgen/pkg/model"
)

func newTargetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List registered adapters and their type mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range c.registry.List() {
				a, err := c.registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "%s (%s)\n", name, adapter.ExtensionFor(a))
				for _, typ := range model.FieldTypes() {
					fmt.Fprintf(c.stdout, "  %-8s %s\n", typ, adapter.ResolveFieldTypeName(a, typ))
				}
			}
			return nil
		},
	}
}

func newModelsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the sample models in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, def := range catalog.All() {
				fmt.Fprintf(c.stdout, "%-10s %d fields", def.Name, def.Fields.Len())
				if def.Description != "" {
					fmt.Fprintf(c.stdout, "  %s", def.Description)
				}
				fmt.Fprintln(c.stdout)
			}
			return nil
		},
	}
}

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every adapter maps all field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var failed []string
			for _, name := range c.registry.List() {
				a, err := c.registry.Get(name)
				if err != nil {
					return err
				}
				if err := adapter.Check(a).Err(); err != nil {
					failed = append(failed, name)
					fmt.Fprintf(c.stdout, "FAIL %s\n", err)
					continue
				}
				fmt.Fprintf(c.stdout, "ok   %s\n", name)
			}
			if len(failed) > 0 {
				return errors.WithHint(
					errors.Newf("%d adapter(s) failed the mapping check: %s", len(failed), strings.Join(failed, ", ")),
					"unmapped types render as their raw name",
				)
			}
			return nil
		},
	}
}
