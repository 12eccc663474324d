// SPDX-License-Identifier: MIT

// Command intervalm computes rigorous enclosures for interval matrices:
// matrix exponentials, powers, quadratic expansions and correction terms.
//
// Problems are YAML or TOML files holding the matrix as rows of [lo, hi]
// pairs or as center and radius rows; see config.Problem.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/intervalm/config"
	"github.com/katalvlaran/intervalm/imatrix"
)

// app carries the persistent flags and the state resolved from them.
type app struct {
	configPath string
	mode       string
	logLevel   string

	settings *config.Settings
	log      zerolog.Logger
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger returns a console logger writing to w at the given level.
func initLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}

	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "intervalm").Logger(), nil
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "intervalm",
		Short:         "rigorous interval matrix enclosures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, logOut)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&a.mode, "mode", config.DefaultMultiplication, "interval product: slow or fast")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.expCmd(),
		a.powerCmd(),
		a.sueCmd(),
		a.correctionCmd(),
		a.sweepCmd(),
		a.randCmd(),
	)

	return root
}

// setup initialises the logger and resolves the settings: defaults, then the
// config file, then --mode when given explicitly.
func (a *app) setup(cmd *cobra.Command, logOut io.Writer) error {
	logger, err := initLogger(logOut, a.logLevel)
	if err != nil {
		return err
	}
	a.log = logger

	a.settings = config.DefaultSettings()
	if a.configPath != "" {
		if a.settings, err = config.Load(a.configPath); err != nil {
			return err
		}
		a.log.Debug().Str("path", a.configPath).Msg("settings loaded")
	}
	if cmd.Flags().Changed("mode") {
		if _, err = imatrix.ParseMulMode(a.mode); err != nil {
			return err
		}
		a.settings.Multiplication = a.mode
	}

	return a.settings.Validate()
}

// loadProblem reads the problem file named by the single positional argument.
func (a *app) loadProblem(path string) (*imatrix.IntervalMatrix, string, error) {
	p, err := config.LoadProblem(path)
	if err != nil {
		return nil, "", err
	}
	m, err := p.Matrix()
	if err != nil {
		return nil, "", err
	}
	name := p.Name
	if name == "" {
		name = path
	}
	a.log.Debug().Str("problem", name).Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("problem loaded")

	return m, name, nil
}
