package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-modelgen/internal/config"
	"github.com/goliatone/go-modelgen/internal/logging"
	"github.com/goliatone/go-modelgen/internal/prompt"
	"github.com/goliatone/go-modelgen/pkg/adapters"
	"github.com/goliatone/go-modelgen/pkg/adapters/template"
	"github.com/goliatone/go-modelgen/pkg/transformer"
)

// cli carries the state shared by every subcommand. It is populated by the
// root command's PersistentPreRunE.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    int

	viper    *viper.Viper
	cfg      *config.Config
	logger   *zap.Logger
	registry *transformer.Registry
	driver   prompt.Driver
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "modelgen",
		Short: "Render model definitions as TypeScript, Python, SQL and more",
		Long: `modelgen renders language neutral model definitions into target formats.

Bundled targets: typescript, python, postgres, openapi, yaml, html. More can be
added with pongo2 template adapters (see --templates).

Examples:
  modelgen models                                  # List sample models
  modelgen targets                                 # List adapters and mappings
  modelgen generate -m User -t typescript          # Print to stdout
  modelgen generate --all-models -t python -o gen  # Write files
  modelgen check                                   # Verify adapter mappings`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "Config file (default: ./modelgen.yaml)")
	flags.String("templates", "", "Directory of template adapter definitions")
	flags.String("log-format", "", "Log format: console or json")
	flags.CountVarP(&c.verbose, "verbose", "v", "Increase log verbosity (-v, -vv)")

	root.AddCommand(
		newGenerateCmd(c),
		newTargetsCmd(c),
		newModelsCmd(c),
		newCheckCmd(c),
		newInteractiveCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	v := config.NewViper(c.configPath)
	root := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("templates", root.Lookup("templates")); err != nil {
		return errors.Wrap(err, "bind --templates")
	}
	if err := v.BindPFlag("log.format", root.Lookup("log-format")); err != nil {
		return errors.Wrap(err, "bind --log-format")
	}
	if out := cmd.Flags().Lookup("output"); out != nil {
		if err := v.BindPFlag("output", out); err != nil {
			return errors.Wrap(err, "bind --output")
		}
	}

	if err := config.Read(v); err != nil {
		return err
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Format:    cfg.Log.Format,
		Level:     cfg.Log.Level,
		Verbosity: c.verbose,
		Writer:    c.stderr,
	})
	if err != nil {
		return err
	}

	c.viper = v
	c.cfg = cfg
	c.logger = logger
	if file := v.ConfigFileUsed(); file != "" {
		logger.Debug("config loaded", zap.String("file", file))
	}

	return c.buildRegistry()
}

func (c *cli) buildRegistry() error {
	reg := transformer.New(
		transformer.WithLogger(c.logger.Named("registry")),
		transformer.WithAdapters(adapters.All()...),
	)

	if dir := c.cfg.Templates; dir != "" {
		loaded, err := template.LoadDir(dir)
		if err != nil {
			return errors.Wrapf(err, "load templates from %s", dir)
		}
		for _, a := range loaded {
			reg.Register(a)
		}
		c.logger.Info("template adapters loaded",
			zap.String("dir", dir),
			zap.Int("count", len(loaded)),
		)
	}

	c.registry = reg
	return nil
}
