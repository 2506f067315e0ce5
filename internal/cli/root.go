package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/dtexplorer/internal/app"
)

// App carries the persistent flags shared by every command.
type App struct {
	ConfigPath string
	PrefsPath  string
	LogLevel   string
}

func (a *App) options() app.Options {
	return app.Options{
		ConfigPath: a.ConfigPath,
		PrefsPath:  a.PrefsPath,
		LogLevel:   a.LogLevel,
	}
}

// NewRootCmd builds the dtexplorer command tree.
func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:          "dtexplorer",
		Short:        "Explore Intl.DateTimeFormat options in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive explorer
  dtexplorer

  # Format once and print the result
  dtexplorer format --locale de-DE --opt dateStyle=full --at 2024-03-15T09:30:00Z

  # Print the JavaScript that reproduces a configuration
  dtexplorer snippet --locale ja-JP --ext ca=japanese --opt year=numeric
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return app.Run(cmd.Context(), a.options())
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Config file (default ~/.config/dtexplorer/config.toml)")
	cmd.PersistentFlags().StringVar(&a.PrefsPath, "prefs", "", "Preferences file (default ~/.config/dtexplorer/prefs.toml)")
	cmd.PersistentFlags().StringVar(&a.LogLevel, "log-level", "", "Log level (debug|info|warn|error); overrides log_level")

	cmd.AddCommand(newFormatCmd(a))
	cmd.AddCommand(newSnippetCmd(a))
	cmd.AddCommand(newZonesCmd())
	cmd.AddCommand(newCatalogCmd())
	return cmd
}
