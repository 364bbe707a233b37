package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/catalog"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/transformer"
)

type generateRequest struct {
	Models  []string
	Targets []string
	Output  string
}

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		models    []string
		targets   []string
		allModels bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render models with one or more targets",
		Long: `Render catalog models with the named targets.

Without --output the result is printed to stdout. With --output one file per
model and target is written as <Model><ext>, e.g. User.ts.

Examples:
  modelgen generate -m User -t typescript
  modelgen generate -m Order -t postgres -t openapi -o ./gen
  modelgen generate --all-models`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if allModels {
				models = catalog.Names()
			}
			if len(models) == 0 {
				return errors.WithHint(
					errors.New("no models selected"),
					"pass --model or --all-models",
				)
			}
			if len(targets) == 0 {
				targets = c.cfg.Targets
			}
			return c.generate(generateRequest{
				Models:  models,
				Targets: targets,
				Output:  c.viper.GetString("output"),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&models, "model", "m", nil, "Model name(s) from the catalog")
	flags.StringSliceVarP(&targets, "target", "t", nil, "Target adapter(s) (default from config)")
	flags.BoolVar(&allModels, "all-models", false, "Render every catalog model")
	flags.StringP("output", "o", "", "Output directory (default: stdout)")
	return cmd
}

type rendered struct {
	model  string
	target string
	ext    string
	text   string
}

func (c *cli) generate(req generateRequest) error {
	defs := make([]model.Definition, 0, len(req.Models))
	for _, name := range req.Models {
		def, ok := catalog.Lookup(name)
		if !ok {
			return errors.WithHintf(
				errors.Newf("unknown model %q", name),
				"available models: %s", strings.Join(catalog.Names(), ", "),
			)
		}
		defs = append(defs, def)
	}

	exts := make([]string, len(req.Targets))
	for i, target := range req.Targets {
		a, err := c.registry.Get(target)
		if err != nil {
			return err
		}
		exts[i] = adapter.ExtensionFor(a)
	}

	var outputs []rendered
	for _, def := range defs {
		results, err := c.registry.TransformAll(def, req.Targets...)
		if err != nil {
			if _, missing := transformer.IsAdapterNotFound(err); missing {
				return err
			}
			return errors.Wrapf(err, "render %s as %s", def.Name, req.Targets[len(results)])
		}
		for i, res := range results {
			c.logger.Debug("model rendered",
				zap.String("model", def.Name),
				zap.String("target", res.Adapter),
				zap.Int("bytes", len(res.Text)),
			)
			outputs = append(outputs, rendered{
				model:  def.Name,
				target: res.Adapter,
				ext:    exts[i],
				text:   res.Text,
			})
		}
	}

	if req.Output == "" {
		return c.print(outputs)
	}
	return c.write(req.Output, outputs)
}

func (c *cli) print(outputs []rendered) error {
	for i, out := range outputs {
		if len(outputs) > 1 {
			if i > 0 {
				fmt.Fprintln(c.stdout)
			}
			fmt.Fprintf(c.stdout, "==> %s (%s) <==\n", out.model, out.target)
		}
		fmt.Fprintln(c.stdout, out.text)
	}
	return nil
}

func (c *cli) write(dir string, outputs []rendered) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", dir)
	}

	written := make(map[string]bool, len(outputs))
	for _, out := range outputs {
		name := out.model + out.ext
		if written[name] {
			name = out.model + "." + out.target + out.ext
		}
		written[name] = true

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(out.text+"\n"), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		c.logger.Info("file written", zap.String("path", path))
		fmt.Fprintf(c.stdout, "wrote %s\n", path)
	}
	return nil
}
