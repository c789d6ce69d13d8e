// Package cli implements the fsnode command line
package cli

import (
	"fmt"

	"github.com/brettbedarf/fsnode"
	"github.com/brettbedarf/fsnode/config"
	"github.com/brettbedarf/fsnode/filesystem"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	backend afero.Fs
	cfg     *config.Config
	fsys    *filesystem.FileSystem

	configPath string
	envFiles   []string
	platform   string
	verbose    int
	all        bool
}

// NewRootCommand builds the fsnode command tree over the OS filesystem
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{backend: afero.NewOsFs()})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "fsnode",
		Short: "Browse and access files through the portable node layer",
		Long: `fsnode walks, reads and writes files through the same node abstraction on
every platform: a single POSIX root, Windows drive letters, or a fixed table
of mount points presented under a synthesized "Root".

Paths are native paths. Relative paths resolve against the base directory
(the working directory unless configured). Without a path argument commands
act on the root.

Configuration precedence: defaults < --config file < .env files and FSNODE_*
variables < command line flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "Load FSNODE_* variables from .env files")
	flags.StringVarP(&a.platform, "platform", "p", "", "Platform variant: auto, posix, drives or mounts")
	flags.IntVarP(&a.verbose, "verbose", "v", config.InfoVerbose,
		"Log verbosity level between 1 (error) and 5 (trace)")
	flags.BoolVarP(&a.all, "all", "a", false, "Include hidden entries")

	root.AddCommand(
		newLsCommand(a),
		newStatCommand(a),
		newCatCommand(a),
		newPutCommand(a),
		newMkdirCommand(a),
		newVolumesCommand(a),
		newBrowseCommand(a),
		newMountCommand(a),
		newVersionCommand(),
	)
	return root
}

// setup loads the configuration layers and builds the filesystem
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.NewDefaultConfig()
	if a.configPath != "" {
		override, err := config.LoadConfigOverrideFile(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", a.configPath, err)
		}
		cfg.Merge(override)
	}

	envOverride, err := config.LoadEnvOverride(a.envFiles...)
	if err != nil {
		return err
	}
	cfg.Merge(envOverride)

	flags := cmd.Flags()
	if flags.Changed("platform") {
		cfg.Merge(&config.ConfigOverride{Platform: &a.platform})
	}
	if flags.Changed("verbose") {
		cfg.Merge(&config.ConfigOverride{LogLvl: &a.verbose})
	}
	if flags.Changed("all") {
		cfg.ShowHidden = a.all
	}

	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("cli")
	logger.Debug().Str("command", cmd.Name()).Str("platform", cfg.Platform).Msg("Configuration loaded")

	filesystem.RegisterBuiltins()
	fsys, err := filesystem.New(cfg, a.backend)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.fsys = fsys
	return nil
}

// node resolves the optional path argument; no argument means the root
func (a *app) node(args []string) (fsnode.Node, error) {
	if len(args) == 0 {
		return a.fsys.Root(), nil
	}
	return a.fsys.NodeAt(args[0])
}

// existing is node that also requires the entry to exist
func (a *app) existing(args []string) (fsnode.Node, error) {
	n, err := a.node(args)
	if err != nil {
		return nil, err
	}
	if !n.Exists() {
		return nil, fsnode.NewError("resolve", n.Path(), fsnode.KindNotFound, nil)
	}
	return n, nil
}
