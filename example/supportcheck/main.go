package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/blocksupport/scan"
	"github.com/oomph-ac/blocksupport/settings"
	"github.com/oomph-ac/blocksupport/support"
	"github.com/oomph-ac/blocksupport/worker"
	"github.com/oomph-ac/blocksupport/world"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// The following program validates the blocks of a scene file against the built-in support rules.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	os.Exit(execute(log, os.Args[1:]))
}

// execute runs the command line passed and returns the exit code. Errors are logged to log since cobra is
// told not to print them.
func execute(log *logrus.Logger, args []string) int {
	cmd := rootCommand(log)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

type env struct {
	log *logrus.Logger
	cfg settings.Settings
	reg *support.Registry
}

func rootCommand(log *logrus.Logger) *cobra.Command {
	var (
		configPath string
		save       bool
		e          env
	)
	root := &cobra.Command{
		Use:           "supportcheck",
		Short:         "Validate block placements against the block support rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			e, err = setup(log, configPath)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			sentry.Flush(time.Second * 2)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path of the settings file, created if missing")

	root.AddCommand(&cobra.Command{
		Use:   "check <scene.toml>",
		Short: "Report every block of a scene that is not supported",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.check(cmd.Context(), args[0])
		},
	})
	place := &cobra.Command{
		Use:   "place <scene.toml> <block> <x> <y> <z> [face]",
		Short: "Tell whether a block would be supported if placed in a scene",
		Args:  cobra.RangeArgs(5, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.place(args[0], args[1], args[2:5], args[5:], save)
		},
	}
	place.Flags().BoolVar(&save, "save", false, "add the block to the scene file if it is supported")
	root.AddCommand(place)
	root.AddCommand(&cobra.Command{
		Use:   "rules",
		Short: "List the registered support rules",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			e.rules()
		},
	})
	return root
}

// setup reads the settings, creating the file with defaults if it does not exist yet, and builds the
// registry.
func setup(log *logrus.Logger, path string) (env, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return env{}, err
		}
		log.Infof("created default settings at %s", path)
	}
	cfg, err := settings.Load(path)
	if err != nil {
		return env{}, fmt.Errorf("unable to load settings: %w", err)
	}
	if log.Level, err = cfg.LogLevel(); err != nil {
		return env{}, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment}); err != nil {
			log.Warnf("unable to initialise sentry: %v", err)
		}
	}

	reg := support.NewRegistry(log)
	if err := cfg.ApplyRules(reg); err != nil {
		return env{}, err
	}
	return env{log: log, cfg: cfg, reg: reg}, nil
}

func (e env) loadWorld(path string) (world.Scene, *world.World, error) {
	scene, err := world.LoadScene(path)
	if err != nil {
		return world.Scene{}, nil, err
	}
	w := world.New(e.log, cube.Range{e.cfg.World.MinY, e.cfg.World.MaxY})
	if err := scene.Apply(w); err != nil {
		return world.Scene{}, nil, err
	}
	return scene, w, nil
}

func (e env) check(ctx context.Context, path string) error {
	_, w, err := e.loadWorld(path)
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	pool := worker.NewPool(e.cfg.Scan.Workers)
	defer pool.Close()

	start := time.Now()
	reports, err := scan.Sweep(ctx, e.reg, w, pool)
	if err != nil {
		return err
	}
	unsupported := scan.Unsupported(reports)
	for _, r := range unsupported {
		if r.Err != nil {
			e.log.Error(r)
			continue
		}
		e.log.Warn(r)
	}
	e.log.WithFields(logrus.Fields{
		"blocks":      w.Len(),
		"checked":     len(reports),
		"unsupported": len(unsupported),
		"took":        time.Since(start),
	}).Info("sweep finished")
	if len(unsupported) > 0 {
		return fmt.Errorf("%d unsupported blocks", len(unsupported))
	}
	return nil
}

func (e env) place(path, name string, coords []string, face []string, save bool) error {
	scene, w, err := e.loadWorld(path)
	if err != nil {
		return err
	}
	t, ok := block.ByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", world.ErrUnknownBlock, name)
	}
	var pos cube.Pos
	for i, c := range coords {
		if pos[i], err = strconv.Atoi(c); err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", c, err)
		}
	}
	f := cube.FaceDown
	if len(face) > 0 {
		if f, ok = block.FaceByName(face[0]); !ok {
			return fmt.Errorf("invalid face %q", face[0])
		}
	}

	supported := scan.Placement(e.reg, w, t, pos, f)
	e.log.WithFields(logrus.Fields{
		"block": t.Name(),
		"pos":   pos,
		"face":  f,
		"group": support.ClassifyGroup(t),
	}).Infof("supported=%v", supported)
	if !save || !supported {
		return nil
	}

	scene.Add(pos, t, f)
	data, err := scene.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed writing scene: %w", err)
	}
	e.log.Infof("saved %s to %s", t.Name(), path)
	return nil
}

func (e env) rules() {
	for _, k := range block.All() {
		if e.reg.Bound(k.TypeID()) {
			e.log.Infof("%s: type rule", k.Name())
		} else if g := support.ClassifyGroup(k); e.reg.GroupBound(g) {
			e.log.Infof("%s: %v group rule", k.Name(), g)
		}
	}
}
