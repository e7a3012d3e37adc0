package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dreambig/appgen/internal/config"
	"github.com/dreambig/appgen/internal/generator"
	"github.com/dreambig/appgen/internal/logging"
)

// App holds the collaborators shared by all commands. Config, Logger and
// Generator are filled in once global flags are parsed unless already set.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Generator *generator.Generator

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// NewLogger builds the logger from the loaded config.
	NewLogger func(cfg config.LogConfig, verbose bool) (*zap.Logger, error)
}

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

// NewRootCmd creates the top-level "dreambig" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "dreambig",
		Short: "Dream Big grant application generator",
		Long: `Generates the Dream Big application form (.docx) from structured data.

Run without arguments and with piped stdin to serve the generate_application
tool over MCP (JSON-RPC 2.0 on stdio).`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid by now; later failures are not usage errors.
			cmd.SilenceUsage = true
			return app.setup(flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return cmd.Help()
			}
			return runServe(cmd, app)
		},
	}

	flags.bind(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(app),
		newGenerateCmd(app),
		newPreviewCmd(app),
		newInitCmd(app),
	)

	return root
}

func (f *rootFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
}

func (app *App) setup(flags rootFlags) error {
	if app.Config == nil {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		app.Config = cfg
	}
	if flags.logLevel != "" {
		app.Config.Log.Level = flags.logLevel
		if err := app.Config.Validate(); err != nil {
			return err
		}
	}

	if app.Logger == nil {
		newLogger := app.NewLogger
		if newLogger == nil {
			newLogger = logging.New
		}
		logger, err := newLogger(app.Config.Log, flags.verbose)
		if err != nil {
			return err
		}
		app.Logger = logger
	}

	if app.Generator == nil {
		app.Generator = generator.New(generator.NewLogObserver(app.Logger))
	}
	return nil
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
