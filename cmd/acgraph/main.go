package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/acgraph/internal/cli"
	"github.com/toyz/acgraph/internal/errors"
	"github.com/toyz/acgraph/internal/utils"
)

// options holds the raw flag values
type options struct {
	configPath string
	path       string
	output     string
	encoding   string
	extension  string
	exclude    []string
	title      string
	verbose    bool
	quiet      bool
}

// app wires the command to its collaborators so tests can replace them
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	prompter cli.Prompter
	colored  bool
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, colored: true}
	if cli.IsInteractive() {
		a.prompter = cli.NewHuhPrompter()
	}
	os.Exit(a.run(os.Args[1:]))
}

// run executes the command line and returns the process exit code
func (a *app) run(args []string) int {
	var opts options
	var verbose bool

	cmd := &cobra.Command{
		Use:   "acgraph",
		Short: "Draw the access control graph of annotated PHP entities",
		Long: "acgraph scans a directory for PHP classes carrying @AccessControl annotations,\n" +
			"resolves byAssociation and propagateTo properties to their @var types and\n" +
			"renders the resulting directed graph on a circular layout.",
		Example: "  acgraph -p src/Entity -o access-control.png\n" +
			"  acgraph -p legacy -o graph.svg -e latin-1 --verbose\n" +
			"  acgraph -c acgraph.yaml",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			verbose = cfg.Verbose

			if err := cli.FillMissing(&cfg, a.prompter); err != nil {
				return err
			}

			drawer := cli.NewDrawer(a.diagnostics(cfg))
			if err := drawer.Run(cfg); err != nil {
				return err
			}
			if drawer.Summary().Classes == 0 && !cfg.Quiet {
				cli.NewDiagnosticReporterWithWriter(cfg.Verbose, a.stderr).
					ReportWarning("No @AccessControl annotated classes found under " + cfg.Root)
			}
			return nil
		},
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with default settings")
	flags.StringVarP(&opts.path, "path", "p", "", "directory to scan for annotated files")
	flags.StringVarP(&opts.output, "output", "o", "", "image to write (png, jpg, svg, pdf, eps, tif)")
	flags.StringVarP(&opts.encoding, "encoding", "e", string(utils.EncodingUTF8), "source file encoding: utf8, latin-1 or ascii")
	flags.StringVar(&opts.extension, "ext", ".php", "extension of the files to scan")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "directory name patterns to skip, e.g. vendor or '.*'")
	flags.StringVar(&opts.title, "title", "", "title drawn above the graph")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print the relationship map and run statistics")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only show errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	if err := cmd.Execute(); err != nil {
		cli.NewDiagnosticReporterWithWriter(verbose, a.stderr).ReportError(err)
		return 1
	}
	return 0
}

// resolveConfig layers explicit flags over the config file over defaults
func resolveConfig(cmd *cobra.Command, opts options) (cli.Config, error) {
	cfg := cli.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := cli.LoadConfigFile(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("path") {
		cfg.Root = opts.path
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("encoding") {
		enc, err := utils.ParseEncoding(opts.encoding)
		if err != nil {
			cfgErr := errors.NewConfigurationError("encoding", err.Error())
			cfgErr.WithSuggestion("Use one of: utf8, latin-1, ascii")
			return cfg, cfgErr
		}
		cfg.Encoding = enc
	}
	if flags.Changed("ext") {
		cfg.Extension = opts.extension
	}
	if flags.Changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = opts.quiet
	}
	return cfg, nil
}

// diagnostics picks the output level for cfg
func (a *app) diagnostics(cfg cli.Config) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case cfg.Quiet:
		level = utils.DiagnosticError
	case cfg.Verbose:
		level = utils.DiagnosticVerbose
	}

	if a.colored {
		return utils.NewDiagnosticSystem(level)
	}
	return utils.NewDiagnosticSystemWithWriters(level, a.stdout, a.stderr)
}
