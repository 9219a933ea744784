package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/spiral/cli/cmd"
	"github.com/ardnew/spiral/lang"
	"github.com/ardnew/spiral/lang/diag"
	"github.com/ardnew/spiral/log"
	"github.com/ardnew/spiral/pkg"
)

// CLI is the top-level command-line interface for spiral.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source  []string `help:"Input source file(s) or '-' for stdin"                  name:"source"  short:"s"`
	Include []string `help:"Directories searched for relative source names, in order" name:"include" short:"I" type:"path"`
	NoCache bool     `help:"Scan every input, bypassing the token cache"`

	Tokens  cmd.Tokens  `cmd:"" help:"Print the tokens of an expression"`
	Parse   cmd.Parse   `cmd:"" help:"Print the expression tree of an expression"`
	Eval    cmd.Eval    `cmd:"" default:"withargs" help:"Evaluate an expression"`
	Repl    cmd.Repl    `cmd:"" help:"Evaluate expressions interactively"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print version information"`
}

// Run executes the spiral CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(ctx, baseConfig), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, searchPath(cli.Include))
	ctx = cmd.WithLangOptions(ctx,
		lang.WithLogger(log.Default()),
		lang.WithCache(!cli.NoCache),
	)

	ctx, err = cmd.WithSourceFiles(ctx, cli.Source)
	if err != nil {
		return err
	}

	return ktx.Run(ctx, &cli)
}

// Report writes err to w for the user. A diagnostic is rendered with the
// styles supported by w; any other error is logged with its attributes.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	if cmd.Report(w, err, diag.NewStyles(lipgloss.NewRenderer(w))) {
		log.Debug("diagnostic reported", slog.Any("error", err))

		return
	}

	log.Error("run failed", slog.Any("error", err)) // slog automatically uses LogValue()
}
