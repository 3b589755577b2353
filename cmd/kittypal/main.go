package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fwojciec/kittypal"
	"github.com/fwojciec/kittypal/fs"
	"github.com/fwojciec/kittypal/kittyconf"
	"github.com/fwojciec/kittypal/lipgloss"
	"github.com/fwojciec/kittypal/palgen"
	"github.com/fwojciec/kittypal/toml"
	"github.com/fwojciec/kittypal/udiff"
)

type flags struct {
	random  bool
	shuffle bool
	backup  bool
	load    bool
	colours bool
	set     bool
	list    bool

	name      string
	exception string
	force     string
	hex       []string
	config    string
	dryRun    bool
}

// NewRootCmd builds the command line interface.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "kittypal",
		Short: "kittypal - colour scheme roulette for the kitty terminal",
		Long: "Kittypal rewrites the colour directives of a kitty config in place:\n" +
			"random palettes, shuffles of the current one, and named backups to\n" +
			"come back to. Everything else in the file is left byte-for-byte intact.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().BoolVarP(&f.random, "random", "r", false, "write a random colour into every slot")
	cmd.Flags().BoolVarP(&f.shuffle, "shuffle", "s", false, "shuffle the colours already in the config")
	cmd.Flags().BoolVarP(&f.backup, "backup", "b", false, "save the current colours as a backup")
	cmd.Flags().BoolVarP(&f.load, "load", "l", false, "restore colours from a backup")
	cmd.Flags().BoolVarP(&f.colours, "colours", "g", false, "show the colours currently in the config")
	cmd.Flags().BoolVarP(&f.set, "set-colour", "c", false, "set the --force slots to the --hex values")
	cmd.Flags().BoolVar(&f.list, "list", false, "list saved backups")

	cmd.Flags().StringVarP(&f.name, "name", "n", "", "backup name for --backup and --load")
	cmd.Flags().StringVarP(&f.exception, "exception", "e", "", `slots to leave untouched, e.g. "(bg, c0)"`)
	cmd.Flags().StringVarP(&f.force, "force", "f", "", `slots to touch, e.g. "(fg, c7)"`)
	cmd.Flags().StringSliceVarP(&f.hex, "hex", "h", nil, `colours for --set-colour, e.g. "1e1e2e,cdd6f4"`)
	cmd.Flags().StringVar(&f.config, "config", "", "path of the kitty config file")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the change as a diff instead of writing it")

	// --hex owns the -h shorthand. Registering help long-only up front stops
	// cobra from claiming -h for it, which would panic on the collision.
	cmd.Flags().Bool("help", false, "help for kittypal")

	cmd.MarkFlagsMutuallyExclusive("random", "shuffle", "backup", "load", "colours", "set-colour", "list")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	req, err := buildRequest(f, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if req.Action == "" {
		return cmd.Help()
	}

	app, err := newApp(f, req, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return app.Run(req)
}

// buildRequest turns parsed flags into a Request. Unknown keys in the
// --exception and --force lists warn instead of failing, matching the
// parser's tolerance for unknown config keys.
func buildRequest(f *flags, warn io.Writer) (kittypal.Request, error) {
	req := kittypal.Request{Name: f.name, DryRun: f.dryRun}

	for _, af := range []struct {
		enabled bool
		action  kittypal.Action
	}{
		{f.random, kittypal.ActionRandom},
		{f.shuffle, kittypal.ActionShuffle},
		{f.backup, kittypal.ActionBackup},
		{f.load, kittypal.ActionLoad},
		{f.colours, kittypal.ActionColours},
		{f.set, kittypal.ActionSet},
		{f.list, kittypal.ActionList},
	} {
		if af.enabled {
			req.Action = af.action
			break
		}
	}

	if f.exception != "" {
		slots, unknown := kittypal.ParseSlotList(f.exception)
		warnUnknown(warn, unknown)
		req.Except = slots
	}
	if f.force != "" {
		slots, unknown := kittypal.ParseSlotList(f.force)
		warnUnknown(warn, unknown)
		req.Only = slots
	}
	for _, hex := range f.hex {
		colour, err := kittypal.ParseColor(hex)
		if err != nil {
			return kittypal.Request{}, err
		}
		req.SetColors = append(req.SetColors, colour)
	}

	return req, nil
}

func warnUnknown(w io.Writer, keys []string) {
	for _, key := range keys {
		fmt.Fprintf(w, "warning: unknown colour key %q\n", key)
	}
}

// newApp wires the real implementations together. The kitty config is
// located through, in order: the --config flag, the settings file, and
// default path discovery.
func newApp(f *flags, req kittypal.Request, out, errOut io.Writer) (*App, error) {
	settings, err := toml.NewLoader(fs.DefaultSettingsPath()).Load()
	if err != nil {
		return nil, err
	}

	configPath := f.config
	if configPath == "" {
		configPath = settings.ConfigPath
	}
	// Listing backups is the one action that never touches the config.
	if configPath == "" && req.Action != kittypal.ActionList {
		configPath, err = fs.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	backupDir := settings.BackupDir
	if backupDir == "" {
		backupDir = fs.DefaultBackupDir()
	}

	return &App{
		ConfigPath: configPath,
		FS:         fs.NewOS(),
		Parser:     kittyconf.NewParser(),
		Rewriter:   kittyconf.NewRewriter(),
		Generator:  palgen.NewDefault(),
		Store:      toml.NewStore(backupDir),
		Printer:    lipgloss.NewPrinter(out),
		Differ:     udiff.NewDiffer(),
		Out:        out,
		Err:        errOut,
	}, nil
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
