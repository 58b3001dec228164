// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mcdonaldj/gitorade/internal/adapters/execgit"
	"github.com/mcdonaldj/gitorade/internal/commit"
	"github.com/mcdonaldj/gitorade/internal/config"
	"github.com/mcdonaldj/gitorade/internal/locate"
	"github.com/mcdonaldj/gitorade/internal/ports"
)

// invocationName is the token that triggers shorthand message formatting
// when a commit message starts with it.
const invocationName = "gitorade"

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() string
	DefaultConfig() *config.Config
}

// GitService provides git discovery and commit operations for the CLI.
type GitService interface {
	Locate() (locate.GitBinary, error)
	Commit(git locate.GitBinary, req commit.Request) (commit.Result, error)
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	GitSvc    GitService

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	exitCode := 0
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) { exitCode = code; _ = exitCode },
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error)  { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error  { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() string             { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config  { return config.DefaultConfig() }

// defaultGitService wraps the locate and commit packages with the
// production exec adapters. The discovered binary is cached for the
// process lifetime; re-discovery never happens implicitly.
type defaultGitService struct {
	cache  *locate.Cache
	runner ports.CommandRunner
}

func newDefaultGitService() *defaultGitService {
	runner := execgit.NewRunner()
	return &defaultGitService{
		cache:  locate.NewCache(execgit.NewResolver(), runner),
		runner: runner,
	}
}

func (d *defaultGitService) Locate() (locate.GitBinary, error) {
	return d.cache.Git()
}

func (d *defaultGitService) Commit(git locate.GitBinary, req commit.Request) (commit.Result, error) {
	return commit.Run(d.runner, git, req)
}

// Helper methods to get the service or default
func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) gitSvc() GitService {
	if c.GitSvc == nil {
		c.GitSvc = newDefaultGitService()
	}
	return c.GitSvc
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		// No command - would launch TUI, but we skip that for CLI testing
		fmt.Fprintln(c.Out, "No command specified. Use 'gitorade help' for usage.")
		return
	}

	switch c.Args[1] {
	case "commit":
		c.RunCommit(c.Args[2:])
	case "version", "-v", "--version":
		c.ShowVersion()
	case "init":
		c.InitConfig()
	case "status":
		c.ShowStatus()
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		fmt.Fprintf(c.Err, "Unknown command: %s\n", c.Args[1])
		c.PrintUsage()
		c.Exit(1)
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `gitorade - git commit, with conventional-commit type tags

Usage:
  gitorade                                 Launch interactive TUI
  gitorade ui                              Launch interactive TUI
  gitorade commit -m <message> [-t <type>] [-p <path>] [files...]
                                           Commit files (or all staged changes)
  gitorade version, -v                     Show discovered git path and version
  gitorade status                          Show config and discovered git
  gitorade init                            Create default config file
  gitorade help, -h                        Show this help

Commit types:
  feat fix docs style refactor perf test chore revert build ci release other

Config overrides:
  Any extra --<key> <value> flag on commit is forwarded to git as
  -c key=value, with underscores mapped to dots:
    gitorade commit -m "msg" --core_autocrlf true

Config: ~/.gitorade/config.yaml`)
}

// ShowVersion prints the tool version and the discovered git path/version.
func (c *CLI) ShowVersion() {
	fmt.Fprintf(c.Out, "gitorade v%s\n", c.Version)

	git, err := c.gitSvc().Locate()
	if err != nil {
		c.printLocateError(err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "%s (git version %s)\n", git.Path, git.Version)
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	cfg := svc.DefaultConfig()
	if err := svc.Save(cfg); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", svc.ConfigPath())
}

// ShowStatus shows the current configuration and discovered git.
func (c *CLI) ShowStatus() {
	cfgSvc := c.configSvc()

	cfg, err := cfgSvc.Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	fmt.Fprintln(c.Out, "gitorade status:")
	fmt.Fprintf(c.Out, "  Config:    %s\n", cfgSvc.ConfigPath())
	if cfg.DefaultType != "" {
		fmt.Fprintf(c.Out, "  Type:      %s\n", cfg.DefaultType)
	} else {
		fmt.Fprintf(c.Out, "  Type:      %s\n", c.gray("none"))
	}
	if cfg.DefaultPath != "" {
		fmt.Fprintf(c.Out, "  Path:      %s\n", cfg.DefaultPath)
	} else {
		fmt.Fprintf(c.Out, "  Path:      %s\n", c.gray("current directory"))
	}
	fmt.Fprintf(c.Out, "  Overrides: %d\n", len(cfg.Overrides))

	git, err := c.gitSvc().Locate()
	if err != nil {
		fmt.Fprintf(c.Out, "  Git:       %s\n", c.red(err.Error()))
		return
	}
	fmt.Fprintf(c.Out, "  Git:       %s\n", c.green(fmt.Sprintf("%s (%s)", git.Path, git.Version)))
}

// RunCommit runs the commit command.
//
// Grammar: positional arguments are always files; the commit type only
// travels via -t/--type. Unknown --flags are git config overrides with
// underscores mapped back to dots.
func (c *CLI) RunCommit(args []string) {
	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	message := ""
	commitType := cfg.DefaultType
	dir := config.ExpandPath(cfg.DefaultPath)
	overrides := make([]commit.Override, 0, len(cfg.Overrides))
	for _, o := range cfg.Overrides {
		overrides = append(overrides, commit.Override{Key: o.Key, Value: o.Value})
	}
	var files []string

	// Parse flags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-m" || arg == "--message":
			i++
			if i >= len(args) {
				c.missingValue(arg)
				return
			}
			message = args[i]
		case strings.HasPrefix(arg, "--message="):
			message = strings.TrimPrefix(arg, "--message=")
		case arg == "-t" || arg == "--type":
			i++
			if i >= len(args) {
				c.missingValue(arg)
				return
			}
			commitType = args[i]
		case strings.HasPrefix(arg, "--type="):
			commitType = strings.TrimPrefix(arg, "--type=")
		case arg == "-p" || arg == "--path":
			i++
			if i >= len(args) {
				c.missingValue(arg)
				return
			}
			dir = config.ExpandPath(args[i])
		case strings.HasPrefix(arg, "--path="):
			dir = config.ExpandPath(strings.TrimPrefix(arg, "--path="))
		case strings.HasPrefix(arg, "--"):
			// Arbitrary git config forwarding: --core_autocrlf true
			key, value, ok := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			if !ok {
				i++
				if i >= len(args) {
					c.missingValue(arg)
					return
				}
				value = args[i]
			}
			overrides = append(overrides, commit.Override{
				Key:   strings.ReplaceAll(key, "_", "."),
				Value: value,
			})
		default:
			files = append(files, arg)
		}
	}

	// Shorthand messages ("gitorade fix typo") are pre-formatted and pass
	// through verbatim; everything else is formatted by the executor.
	req := commit.Request{
		Message:   message,
		Type:      commitType,
		Files:     files,
		Dir:       dir,
		Overrides: overrides,
	}
	if commit.IsShorthand(message, invocationName) {
		req.Message = commit.FormatShorthand(message)
		req.Type = ""
	}

	// Fail fast before spawning anything.
	final := commit.Format(req.Message, req.Type)
	if final == "" {
		fmt.Fprintln(c.Err, "Error: commit message required (-m <message>)")
		c.Exit(1)
		return
	}

	git, err := c.gitSvc().Locate()
	if err != nil {
		c.printLocateError(err)
		c.Exit(1)
		return
	}

	res, err := c.gitSvc().Commit(git, req)
	if err != nil {
		fmt.Fprintf(c.Err, "Error running git: %v\n", err)
		c.Exit(1)
		return
	}

	if res.ExitCode != 0 {
		// Combined output goes to stderr only on failure.
		fmt.Fprint(c.Err, res.Output)
		c.Exit(res.ExitCode)
		return
	}

	fmt.Fprint(c.Out, res.Output)
	fmt.Fprintf(c.Out, "%s committed: %s\n", c.green("*"), final)
}

func (c *CLI) missingValue(flag string) {
	fmt.Fprintf(c.Err, "Error: %s requires a value\n", flag)
	c.Exit(1)
}

func (c *CLI) printLocateError(err error) {
	var unsupported *locate.UnsupportedVersionError
	if errors.As(err, &unsupported) {
		fmt.Fprintf(c.Err, "Error: %v\n", unsupported)
		return
	}
	fmt.Fprintln(c.Err, "Error: git not found")
}
