package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jswork/pkgclip/clipboard"
	"github.com/jswork/pkgclip/config"
	"github.com/jswork/pkgclip/core"
	"github.com/jswork/pkgclip/manifest"
	"github.com/jswork/pkgclip/pkgname"
)

// actionFlags maps each action flag to the action it selects.
var actionFlags = []struct {
	flag   string
	action core.Action
}{
	{"shortname", core.ActionShortname},
	{"npm-install", core.ActionNpmInstall},
	{"purl", core.ActionPURL},
	{"show", core.ActionShow},
}

// selectedAction returns the single requested action. Action flags are
// mutually exclusive; none at all is ActionNone.
func selectedAction(cmd *cobra.Command) (core.Action, error) {
	var set []string
	action := core.ActionNone
	for _, af := range actionFlags {
		if on, _ := cmd.Flags().GetBool(af.flag); on {
			set = append(set, "--"+af.flag)
			action = af.action
		}
	}
	if len(set) > 1 {
		return core.ActionNone, exitError(exitUsage, "flags %s cannot be used together", strings.Join(set, ", "))
	}
	return action, nil
}

// copyOptions are the flag and config values that shape one copy.
type copyOptions struct {
	dir           string
	file          string
	print         bool
	quiet         bool
	installPrefix string
	manifestFiles []string
}

func runCopy(cmd *cobra.Command, deps Deps) error {
	action, err := selectedAction(cmd)
	if err != nil {
		return err
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: deps.Level}))
	}

	if action == core.ActionNone {
		logger.Debug("no action flag given, nothing to copy")
		return nil
	}

	runID := deps.NewRunID()
	logger = logger.With(slog.String("run_id", runID))
	emit := deps.eventHandler(logger)
	start := deps.Now()

	fail := func(err error) error {
		ev := core.NewEvent(core.EventCopyFailed, runID, action).WithPayload("error", err.Error())
		ev.Elapsed = deps.Now().Sub(start)
		emit.Handle(ev)
		return classify(err)
	}

	emit.Handle(core.NewEvent(core.EventCopyStarted, runID, action))

	opts, err := resolveOptions(cmd)
	if err != nil {
		return fail(err)
	}

	m, err := loadManifest(opts)
	if err != nil {
		return fail(err)
	}
	emit.Handle(core.NewEvent(core.EventManifestLoaded, runID, action).
		WithPayload("package", m.Name).
		WithPayload("path", m.Path))

	text, err := textFor(action, m, opts.installPrefix)
	if err != nil {
		return fail(err)
	}
	if action == core.ActionShow {
		opts.print = true
	}

	writer, destination := deps.Clipboard, "clipboard"
	if opts.print {
		writer, destination = clipboard.NewStdout(cmd.OutOrStdout()), "stdout"
	} else if writer == nil {
		writer = clipboard.NewSystem()
	}
	if err := writer.Write(text); err != nil {
		return fail(err)
	}

	ev := core.NewEvent(core.EventCopyFinished, runID, action).WithPayload("destination", destination)
	ev.Elapsed = deps.Now().Sub(start)
	emit.Handle(ev)

	if !opts.print && !opts.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "copied %q to clipboard\n", text)
	}
	return nil
}

// resolveOptions merges flags over the discovered config. Flags win.
func resolveOptions(cmd *cobra.Command) (copyOptions, error) {
	flags := cmd.Flags()
	var opts copyOptions
	opts.dir, _ = flags.GetString("dir")
	opts.file, _ = flags.GetString("file")
	opts.print, _ = flags.GetBool("print")
	opts.quiet, _ = flags.GetBool("quiet")
	opts.installPrefix, _ = flags.GetString("install-prefix")
	explicitConfig, _ := flags.GetString("config")

	projectDir := opts.dir
	if opts.file != "" {
		projectDir = filepath.Dir(opts.file)
	}
	if opts.dir != "" && opts.file == "" {
		info, err := os.Stat(opts.dir)
		if err != nil {
			return copyOptions{}, &ExitError{Code: exitUsage, Message: fmt.Sprintf("--dir: %v", err), Err: err}
		}
		if !info.IsDir() {
			return copyOptions{}, exitError(exitUsage, "--dir %s is not a directory", opts.dir)
		}
	}

	cfg, _, err := config.Resolve(explicitConfig, projectDir)
	if err != nil {
		return copyOptions{}, &ExitError{Code: exitConfig, Message: err.Error(), Err: err}
	}

	if !flags.Changed("print") {
		opts.print = cfg.Print
	}
	if !flags.Changed("install-prefix") {
		opts.installPrefix = cfg.InstallPrefix
	}
	opts.manifestFiles = cfg.ManifestFiles
	return opts, nil
}

func loadManifest(opts copyOptions) (*manifest.Manifest, error) {
	if opts.file != "" {
		return manifest.LoadFile(opts.file)
	}
	dir := opts.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}
	return manifest.Loader{FileNames: opts.manifestFiles}.Load(dir)
}

// textFor renders what action copies for manifest m.
func textFor(action core.Action, m *manifest.Manifest, installPrefix string) (string, error) {
	switch action {
	case core.ActionShortname:
		return pkgname.Resolve(m.Name, core.ModeShort)
	case core.ActionNpmInstall:
		return pkgname.InstallCommand(installPrefix, m.Name)
	case core.ActionPURL:
		return pkgname.PURL(m.Name, m.Version)
	case core.ActionShow:
		pretty, err := m.Pretty()
		if err != nil {
			return "", err
		}
		return string(pretty), nil
	default:
		return "", fmt.Errorf("unsupported action %q", action)
	}
}
