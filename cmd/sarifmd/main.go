// sarifmd turns SARIF scan reports into pull-request Markdown.
//
// Usage:
//
//	sarifmd render code-reports/snyk-code-report.sarif
//	snyk code test --sarif | sarifmd render --format text
//	sarifmd comment --post
//	sarifmd preview --interactive
//
// Commands:
//
//	render   one SARIF document as markdown, terminal, text or json
//	comment  the PR comment composed from every configured section
//	preview  terminal rendering of one or more reports
//	config   print the default configuration
//	version  build metadata
//
// Exit codes: 0 success, 1 runtime failure, 2 usage error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dkoosis/sarifmd/internal/config"
)

// errUsage marks errors caused by how the command was invoked.
var errUsage = errors.New("usage")

func usageErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, a...))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(stdin, stdout, stderr)
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "sarifmd: %v\n", err)
		a.logger.Error("command failed", "error", err)
	}
	return exitCode(err)
}

// exitCode maps an error to 0 success, 2 usage, 1 anything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), isCobraUsageError(err):
		return 2
	default:
		return 1
	}
}

// isCobraUsageError recognizes argument errors cobra raises without a hook.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires ")
}

// app holds per-invocation state shared by every command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	lvl    *slog.LevelVar
	logger *slog.Logger

	configPath string
	logLevel   config.LogLevelFlag
	cfg        *config.ResolvedConfig
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	lvl := new(slog.LevelVar)
	lvl.Set(config.LevelDisabled)
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		lvl:    lvl,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sarifmd",
		Short:         "Render SARIF scan reports as pull-request Markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolveConfig(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./"+config.FileName+" or $XDG_CONFIG_HOME/sarifmd/"+config.FileName+")")
	root.PersistentFlags().Var(&a.logLevel, "log-level",
		fmt.Sprintf("Log level for additional details and debugging. Valid values: %s", strings.Join(config.LogLevelEnum(), ", ")))

	root.AddCommand(
		a.renderCommand(),
		a.commentCommand(),
		a.previewCommand(),
		a.configCommand(),
		a.versionCommand(),
	)
	return root
}

// resolveConfig merges file, environment and the invoked command's flags.
func (a *app) resolveConfig(cmd *cobra.Command) error {
	file, path, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	env, err := config.NewEnv()
	if err != nil {
		return fmt.Errorf("bind environment: %w", err)
	}
	cfg, err := config.Resolve(file, cliFlags(cmd.Flags()), env)
	if err != nil {
		return usageErrorf("%v", err)
	}
	a.cfg = cfg
	a.lvl.Set(cfg.LogLevel)
	a.logger.Debug("configuration resolved", "file", path, "sources", cfg.Sources)
	return nil
}

func cliFlags(fs *pflag.FlagSet) config.CliFlags {
	var f config.CliFlags
	f.Title, f.TitleSet = lookupString(fs, "title")
	f.Decoration, f.DecorationSet = lookupString(fs, "decoration")
	f.Theme, f.ThemeSet = lookupString(fs, "theme")
	f.BotLogin, f.BotLoginSet = lookupString(fs, "bot-login")
	f.LogLevel, f.LogLevelSet = lookupString(fs, "log-level")
	f.NoDetails, f.NoDetailsSet = lookupBool(fs, "no-details")
	f.NoColor, f.NoColorSet = lookupBool(fs, "no-color")
	if fs.Changed("section") {
		f.Sections, _ = fs.GetStringArray("section")
		f.SectionsSet = true
	}
	return f
}

func lookupString(fs *pflag.FlagSet, name string) (string, bool) {
	f := fs.Lookup(name)
	if f == nil {
		return "", false
	}
	return f.Value.String(), f.Changed
}

func lookupBool(fs *pflag.FlagSet, name string) (value, set bool) {
	s, set := lookupString(fs, name)
	if !set {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

// isTTY reports whether v is a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
