package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lifeview/internal/app"
	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/tui"
	_ "lifeview/internal/universe"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		flags      = config.NewConfig()
	)

	root := &cobra.Command{
		Use:          "lifeview",
		Short:        "interactive viewer for 2D cellular automata",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.Bind(root.PersistentFlags())

	resolve := func(cmd *cobra.Command) (*config.Config, error) {
		cfg := config.NewConfig()
		if configFile != "" {
			loaded, err := config.Load(configFile)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}
		cfg.Overlay(cmd.Flags(), flags)
		return cfg, nil
	}

	var scale int
	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the board in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, e, pal, err := setup(cmd, resolve)
			if err != nil {
				return err
			}
			err = app.Run(e, app.Options{Palette: pal, Ticks: cfg.Ticks, TPS: cfg.TPS, Scale: scale})
			if errors.Is(err, app.ErrNoGUI) {
				fmt.Fprintln(os.Stderr, "The GUI build of lifeview requires the ebiten build tag.")
				fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifeview gui` or build with `-tags ebiten`.")
				os.Exit(2)
			}
			return err
		},
	}
	guiCmd.Flags().IntVar(&scale, "scale", 2, "on-screen pixels per board pixel")

	var logFile string
	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run the board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, e, pal, err := setup(cmd, resolve)
			if err != nil {
				return err
			}
			return tui.Run(e, tui.Options{Palette: pal, Ticks: cfg.Ticks, TPS: cfg.TPS, LogFile: logFile})
		},
	}
	termCmd.Flags().StringVar(&logFile, "log", "", "write logs to this file while running")

	var (
		out   string
		steps int
	)
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the board after some generations to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, pal, err := setup(cmd, resolve)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := writeSnapshot(f, e, pal, steps); err != nil {
				f.Close()
				return err
			}
			log.Printf("wrote %s after %d step(s)", out, steps)
			return f.Close()
		},
	}
	snapshotCmd.Flags().StringVar(&out, "out", "lifeview.png", "output file")
	snapshotCmd.Flags().IntVar(&steps, "steps", 0, "generations to advance before rendering")

	var printSteps int
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "print the board as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, _, err := setup(cmd, resolve)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), e, printSteps)
		},
	}
	printCmd.Flags().IntVar(&printSteps, "steps", 0, "generations to advance before printing")

	enginesCmd := &cobra.Command{
		Use:   "engines",
		Short: "list registered engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(core.EngineNames(), "\n"))
		},
	}

	root.AddCommand(guiCmd, termCmd, snapshotCmd, printCmd, enginesCmd)
	return root
}

// setup resolves the configuration and builds the engine and palette it
// names.
func setup(cmd *cobra.Command, resolve func(*cobra.Command) (*config.Config, error)) (*config.Config, core.Engine, render.Palette, error) {
	cfg, err := resolve(cmd)
	if err != nil {
		return nil, nil, render.Palette{}, err
	}
	e, pal, err := buildEngine(cfg)
	if err != nil {
		return nil, nil, render.Palette{}, err
	}
	size := e.Size()
	log.Printf("engine %s %dx%d, %d tick(s) per frame", e.Name(), size.W, size.H, cfg.Ticks)
	return cfg, e, pal, nil
}
