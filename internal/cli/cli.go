// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcdonaldj/filemod/internal/adapters/lineprompt"
	"github.com/mcdonaldj/filemod/internal/adapters/osfs"
	"github.com/mcdonaldj/filemod/internal/config"
	"github.com/mcdonaldj/filemod/internal/example"
	"github.com/mcdonaldj/filemod/internal/fileio"
	"github.com/mcdonaldj/filemod/internal/filename"
	"github.com/mcdonaldj/filemod/internal/logging"
	"github.com/mcdonaldj/filemod/internal/pipeline"
	"github.com/mcdonaldj/filemod/internal/ports"
	"github.com/mcdonaldj/filemod/internal/tui"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	LoadFrom(path string) (*config.Config, error)
	SaveTo(cfg *config.Config, path string) error
	DefaultPath() string
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error and logs
	In      io.Reader // Prompt answers
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	FS        ports.FileSystem
	ConfigSvc ConfigService
	Review    func(fsys ports.FileSystem, name string) error

	colors pipeline.Palette
	cfg    *config.Config

	// Flags
	configPath string
	noColor    bool
	verbose    bool
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		In:      os.Stdin,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		colors:  pipeline.ColorPalette(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, in io.Reader, args []string) *CLI {
	return &CLI{
		Out:     out,
		Err:     errOut,
		In:      in,
		Version: "test",
		Args:    args,
		Exit:    func(code int) {},
		colors:  pipeline.PlainPalette(),
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) LoadFrom(path string) (*config.Config, error) {
	return config.LoadFrom(path)
}
func (d *defaultConfigService) SaveTo(cfg *config.Config, path string) error { return cfg.SaveTo(path) }
func (d *defaultConfigService) DefaultPath() string                          { return config.ConfigPath() }

// Helper methods to get the dependency or default
func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) fs() ports.FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return osfs.New()
}

func (c *CLI) review() func(ports.FileSystem, string) error {
	if c.Review != nil {
		return c.Review
	}
	return tui.Run
}

func (c *CLI) path() string {
	if c.configPath != "" {
		return config.ExpandPath(c.configPath)
	}
	return c.configSvc().DefaultPath()
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	root := c.Command()
	var args []string
	if len(c.Args) > 1 {
		args = c.Args[1:]
	}
	root.SetArgs(args)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(c.Err, "%s %v\n", c.colors.Red("Error:"), err)
		c.Exit(1)
	}
}

// Command builds the cobra command tree.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "filemod",
		Short:             "filemod - read a text file, number and upper-case its lines, write the result",
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runInteractive,
	}
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.SetIn(c.In)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.filemod/config.yaml)")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(c.newRunCmd())
	root.AddCommand(c.newReviewCmd())
	root.AddCommand(c.newExampleCmd())
	root.AddCommand(c.newInitCmd())
	root.AddCommand(c.newVersionCmd())
	return root
}

// setup loads config, picks colors and installs the logger on the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	cfg, err := c.configSvc().LoadFrom(c.path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg

	if c.noColor || !cfg.Color {
		c.colors = pipeline.PlainPalette()
	}

	level := cfg.LogLevel
	if c.verbose {
		level = "debug"
	}
	logger := logging.New(c.Err, level)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("config loaded", "path", c.path(), "preview_chars", cfg.PreviewChars, "show_diff", cfg.ShowDiff)
	return nil
}

func (c *CLI) newPipeline() *pipeline.Pipeline {
	p := pipeline.New(c.fs(), lineprompt.New(c.In, c.Out), c.Out)
	p.Colors = c.colors
	p.PreviewChars = c.cfg.PreviewChars
	p.ShowDiff = c.cfg.ShowDiff
	return p
}

// runInteractive prompts for both filenames and runs the pipeline.
func (c *CLI) runInteractive(cmd *cobra.Command, _ []string) error {
	c.printBanner()
	res := c.newPipeline().Run(cmd.Context())
	c.finish(cmd.Context(), res)
	return nil
}

func (c *CLI) newRunCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "run <input> <output>",
		Short: "Transform input into output without filename prompts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.newPipeline()
			p.Input = args[0]
			p.Output = args[1]
			p.AssumeYes = yes
			c.finish(cmd.Context(), p.Run(cmd.Context()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "overwrite an existing output without asking")
	return cmd
}

func (c *CLI) newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <input>",
		Short: "Browse a file and its transformed form in a terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := filename.Validate(args[0])
			if err != nil {
				return err
			}
			log := logging.FromContext(cmd.Context())
			log.Debug("opening review", "file", name)

			err = c.review()(c.fs(), name)
			var ferr *fileio.Error
			if errors.As(err, &ferr) {
				log.Warn("read failed", "file", name, "kind", ferr.Kind.String(), "err", ferr)
				fmt.Fprintln(c.Out, c.colors.Red(pipeline.ReadFailure(name, ferr)))
				return nil
			}
			return err
		},
	}
}

func (c *CLI) newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Write a sample file and transform it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := filename.Validate(c.cfg.Example.Input)
			if err != nil {
				return fmt.Errorf("config example.input %q: %w", c.cfg.Example.Input, err)
			}
			output, err := filename.Validate(c.cfg.Example.Output)
			if err != nil {
				return fmt.Errorf("config example.output %q: %w", c.cfg.Example.Output, err)
			}

			fmt.Fprintf(c.Out, "%s Running example demonstration...\n", c.colors.Cyan("=>"))
			res, err := example.Run(cmd.Context(), c.fs(), input, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Out, "%s Example completed! Check '%s' (%d lines)\n",
				c.colors.Green("*"), filename.Sanitize(res.Output), res.Lines)
			return nil
		},
	}
}

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.path()
			if err := c.configSvc().SaveTo(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(c.Out, "Created config at %s\n", path)
			return nil
		},
	}
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(c.Out, "filemod v%s\n", c.Version)
		},
	}
}

var rule = strings.Repeat("=", 40)

func (c *CLI) printBanner() {
	fmt.Fprintln(c.Out, c.colors.Cyan("filemod - File Transformation Program"))
	fmt.Fprintln(c.Out, rule)
	fmt.Fprintln(c.Out, "This program reads a file, modifies its content,")
	fmt.Fprintln(c.Out, "and writes the modified version to a new file.")
	fmt.Fprintln(c.Out, "Type 'quit' at any time to exit.")
	fmt.Fprintln(c.Out, rule)
}

// finish prints the farewell once a run got as far as writing.
func (c *CLI) finish(ctx context.Context, res pipeline.Result) {
	logging.FromContext(ctx).Debug("run finished", "state", res.State.String())
	if !res.Reached(pipeline.Writing) {
		return
	}
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, rule)
	fmt.Fprintln(c.Out, "Thank you for using filemod!")
	fmt.Fprintln(c.Out, rule)
}
