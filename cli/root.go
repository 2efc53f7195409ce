// Package cli implements the pkgclip command line.
package cli

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jswork/pkgclip/clipboard"
	clipotel "github.com/jswork/pkgclip/otel"
)

// Deps are the collaborators of the root command. Zero values fall back to
// the system clipboard, a stderr logger and random run IDs.
type Deps struct {
	Version string

	// Clipboard receives the copied text unless --print is set.
	Clipboard clipboard.Writer

	// Logger and Level are shared so --verbose can lower the level of a
	// logger built by main.
	Logger *slog.Logger
	Level  *slog.LevelVar

	Tracing *clipotel.TracingHandler
	Metrics *clipotel.MetricsHandler

	NewRunID func() string
	Now      func() time.Time
}

// NewRootCmd builds the pkgclip command.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.NewRunID == nil {
		deps.NewRunID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Level == nil {
		deps.Level = new(slog.LevelVar)
		deps.Level.Set(slog.LevelWarn)
	}

	cmd := &cobra.Command{
		Use:   "pkgclip",
		Short: "Copy the package name or install command to the clipboard",
		Long: "pkgclip reads package.json (or package.yaml) from the current project and copies\n" +
			"its short name, its npm install command or its Package URL to the clipboard.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &ExitError{Code: exitUsage, Message: err.Error(), Err: err}
			}
			return nil
		},
		// SilenceUsage prevents printing usage on every error
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				deps.Level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCopy(cmd, deps)
		},
	}

	cmd.Flags().BoolP("npm-install", "n", false, "Get npm install script.")
	cmd.Flags().BoolP("shortname", "s", false, "Get short name.")
	cmd.Flags().BoolP("purl", "u", false, "Get the package URL (pkg:npm/...).")
	cmd.Flags().Bool("show", false, "Print the whole manifest, pretty-printed")
	cmd.Flags().BoolP("print", "p", false, "Print to stdout instead of copying to the clipboard")
	cmd.Flags().StringP("dir", "C", "", "Directory containing the manifest (default: working directory)")
	cmd.Flags().StringP("file", "f", "", "Explicit manifest file (overrides --dir)")
	cmd.Flags().String("install-prefix", "", `Install command prefix (default "npm i")`)
	cmd.Flags().String("config", "", "Config file (default: ./.pkgclip.yaml, then ~/.pkgclip/config.yaml)")

	cmd.PersistentFlags().Bool("verbose", false, "Enable verbose/debug logging")
	cmd.PersistentFlags().Bool("quiet", false, "Suppress the confirmation message")

	cmd.Version = resolveVersion(deps.Version)
	cmd.SetVersionTemplate("pkgclip version {{.Version}}\n")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Message: err.Error(), Err: err}
	})

	return cmd
}
