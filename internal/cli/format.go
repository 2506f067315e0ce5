package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/dtexplorer/internal/app"
	"github.com/five82/dtexplorer/internal/clipboard"
	"github.com/five82/dtexplorer/internal/derive"
	"github.com/five82/dtexplorer/internal/logger"
	"github.com/five82/dtexplorer/internal/snippet"
)

func newFormatCmd(a *App) *cobra.Command {
	var (
		flags    sessionFlags
		resolved bool
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format a moment and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(a.options())
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			cfg, err := flags.configuration()
			if err != nil {
				return err
			}
			moment, err := flags.moment(env)
			if err != nil {
				return err
			}

			out := derive.Compute(env.Formatter, cfg, moment)
			if !out.OK() {
				return out.Err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Display)
			if resolved {
				for _, e := range out.Resolved.Entries() {
					fmt.Fprintf(w, "%s: %s\n", e.Key, e.Value)
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&resolved, "resolved", false, "Also print the resolved options")
	return cmd
}

func newSnippetCmd(a *App) *cobra.Command {
	var (
		flags   sessionFlags
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Print the JavaScript that reproduces a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(a.options())
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			cfg, err := flags.configuration()
			if err != nil {
				return err
			}
			moment, err := flags.moment(env)
			if err != nil {
				return err
			}

			text := snippet.Render(moment, cfg, env.DefaultLocale)
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if copyOut {
				if err := clipboard.New().Copy(text); err != nil {
					return fmt.Errorf("copy snippet: %w", err)
				}
				logger.Info("snippet copied", "bytes", len(text))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the snippet to the clipboard")
	return cmd
}
