// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/intervalm/config"
	"github.com/katalvlaran/intervalm/expm"
	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/power"
)

// expFlags overrides the [exp] settings for a single command.
type expFlags struct {
	method  string
	t       float64
	p, k, l int
}

func (f *expFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.method, "method", config.DefaultExpMethod, "horner, taylor_over, taylor_under or scale_and_square")
	cmd.Flags().Float64Var(&f.t, "t", config.DefaultT, "time step (t ≥ 0)")
	cmd.Flags().IntVar(&f.p, "p", expm.DefaultP, "Taylor order")
	cmd.Flags().IntVar(&f.k, "k", expm.DefaultK, "Horner degree")
	cmd.Flags().IntVar(&f.l, "l", expm.DefaultL, "scaling exponent")
}

// apply copies the flags the user set into s.Exp.
func (f *expFlags) apply(cmd *cobra.Command, s *config.Settings) error {
	fl := cmd.Flags()
	if fl.Changed("method") {
		s.Exp.Method = f.method
	}
	if fl.Changed("t") {
		s.Exp.T = f.t
	}
	if fl.Changed("p") {
		s.Exp.P = f.p
	}
	if fl.Changed("k") {
		s.Exp.K = f.k
	}
	if fl.Changed("l") {
		s.Exp.L = f.l
	}

	return s.Validate()
}

func (a *app) expCmd() *cobra.Command {
	var (
		flags   expFlags
		csvPath string
	)
	cmd := &cobra.Command{
		Use:   "exp [problem]",
		Short: "enclose exp(A·t)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.settings); err != nil {
				return err
			}
			m, name, err := a.loadProblem(args[0])
			if err != nil {
				return err
			}
			method, err := a.settings.Method()
			if err != nil {
				return err
			}
			opts, err := a.settings.ExpOptions()
			if err != nil {
				return err
			}

			start := time.Now()
			e, err := expm.Exp(m, a.settings.Exp.T, method, opts...)
			if err != nil {
				return err
			}
			a.log.Info().Str("problem", name).Stringer("method", method).
				Float64("t", a.settings.Exp.T).Dur("elapsed", time.Since(start)).Msg("exponential enclosed")

			out := cmd.OutOrStdout()
			printMatrix(out, fmt.Sprintf("exp(A·%g) by %v", a.settings.Exp.T, method), e)
			printStat(out, "width", width(e))
			printStat(out, "empty entries", countEmpty(e))
			if csvPath != "" {
				if err = writeCSV(csvPath, e); err != nil {
					return err
				}
				a.log.Info().Str("path", csvPath).Msg("csv written")
			}

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&csvPath, "csv", "", "write row,col,inf,sup records to this file")

	return cmd
}

func (a *app) powerCmd() *cobra.Command {
	var (
		k         int
		algorithm string
	)
	cmd := &cobra.Command{
		Use:   "power [problem]",
		Short: "enclose Mᵏ with the incremental power wrapper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("algorithm") {
				a.settings.PowerAlgorithm = algorithm
			}
			popts, err := a.settings.PowerOptions()
			if err != nil {
				return err
			}
			m, name, err := a.loadProblem(args[0])
			if err != nil {
				return err
			}
			pw, err := power.New(m, popts...)
			if err != nil {
				return err
			}
			mk, err := pw.Advance(k)
			if err != nil {
				return err
			}
			a.log.Info().Str("problem", name).Int("k", k).Stringer("algorithm", pw.Algorithm()).Msg("power enclosed")

			out := cmd.OutOrStdout()
			printMatrix(out, fmt.Sprintf("M^%d (%v)", k, pw.Algorithm()), mk)
			printStat(out, "width", width(mk))

			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 2, "exponent (≥ 1)")
	cmd.Flags().StringVar(&algorithm, "algorithm", config.DefaultPowerAlgorithm, "multiply, power, decompose_binary or intersect")

	return cmd
}

func (a *app) sueCmd() *cobra.Command {
	var alpha, beta float64
	cmd := &cobra.Command{
		Use:   "sue [problem]",
		Short: "compare the single-use expansion αA + βA² with the naive one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := a.loadProblem(args[0])
			if err != nil {
				return err
			}
			mul, err := a.settings.MulOptions()
			if err != nil {
				return err
			}
			sue, err := imatrix.QuadraticExpansion(m, alpha, beta)
			if err != nil {
				return err
			}
			naive, err := imatrix.NaiveQuadratic(m, alpha, beta, mul...)
			if err != nil {
				return err
			}

			tighter := 0
			for i, row := range sue.ToRows() {
				for j, x := range row {
					y, _ := naive.At(i, j)
					if x.Subset(y) && !x.Equal(y) {
						tighter++
					}
				}
			}
			out := cmd.OutOrStdout()
			printMatrix(out, "single-use expansion", sue)
			printMatrix(out, "naive αA + β(A·A)", naive)
			printStat(out, "tighter entries", tighter)
			printStat(out, "width sue / naive", fmt.Sprintf("%.6g / %.6g", width(sue), width(naive)))

			return nil
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 1, "linear coefficient")
	cmd.Flags().Float64Var(&beta, "beta", 0.5, "quadratic coefficient")

	return cmd
}

func (a *app) correctionCmd() *cobra.Command {
	var (
		kind  string
		flags expFlags
	)
	cmd := &cobra.Command{
		Use:   "correction [problem]",
		Short: "discretization correction matrix (hull or input)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.settings); err != nil {
				return err
			}
			m, _, err := a.loadProblem(args[0])
			if err != nil {
				return err
			}
			opts, err := a.settings.ExpOptions()
			if err != nil {
				return err
			}
			fn := expm.CorrectionHull
			switch kind {
			case "hull":
			case "input":
				fn = expm.InputCorrection
			default:
				return fmt.Errorf("correction kind %q: %w", kind, expm.ErrUnsupported)
			}
			f, err := fn(m, a.settings.Exp.T, a.settings.Exp.P, opts...)
			if err != nil {
				return err
			}
			printMatrix(cmd.OutOrStdout(), fmt.Sprintf("%s correction, t = %g, p = %d", kind, a.settings.Exp.T, a.settings.Exp.P), f)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "hull", "hull or input")

	return cmd
}

func (a *app) sweepCmd() *cobra.Command {
	var (
		pmax  int
		flags expFlags
	)
	cmd := &cobra.Command{
		Use:   "sweep [problem]",
		Short: "plot enclosure widths against the Taylor order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.settings); err != nil {
				return err
			}
			if pmax < 1 {
				return fmt.Errorf("pmax = %d: %w", pmax, expm.ErrDomain)
			}
			m, name, err := a.loadProblem(args[0])
			if err != nil {
				return err
			}
			opts, err := a.settings.ExpOptions()
			if err != nil {
				return err
			}

			t := a.settings.Exp.T
			over := make([]float64, pmax)
			under := make([]float64, pmax)
			for p := 1; p <= pmax; p++ {
				o, err := expm.Overapproximation(m, t, p, opts...)
				if err != nil {
					return err
				}
				u, err := expm.Underapproximation(m, t, p, opts...)
				if err != nil {
					return err
				}
				over[p-1] = log10Width(o)
				under[p-1] = log10Width(u)
				a.log.Debug().Int("p", p).Float64("over", over[p-1]).Float64("under", under[p-1]).Msg("sweep step")
			}
			a.log.Info().Str("problem", name).Int("pmax", pmax).Msg("sweep done")

			graph := asciigraph.PlotMany([][]float64{over, under},
				asciigraph.Height(12),
				asciigraph.Width(60),
				asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
				asciigraph.Caption(fmt.Sprintf("log10 width vs p (t = %g): over, under", t)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), graph)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&pmax, "pmax", 10, "largest Taylor order")

	return cmd
}

// log10Width maps a width to the plot scale; non-finite or zero widths
// become NaN, which asciigraph leaves as a gap.
func log10Width(m *imatrix.IntervalMatrix) float64 {
	w := width(m)
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return math.NaN()
	}

	return math.Log10(w)
}

func (a *app) randCmd() *cobra.Command {
	var (
		rows, cols int
		seed       int64
		save       string
	)
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "generate a random interval matrix and one member of it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := rand.New(rand.NewSource(seed))
			m, err := imatrix.Rand(rng, rows, cols)
			if err != nil {
				return err
			}
			sample, err := imatrix.Sample(rng, m)
			if err != nil {
				return err
			}
			ok, err := imatrix.ContainsMatrix(m, sample)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printMatrix(out, fmt.Sprintf("random %dx%d (seed %d)", rows, cols, seed), m)
			printDense(out, "sample", sample)
			printStat(out, "member", ok)
			if save != "" {
				if err = config.SaveProblem(save, config.ProblemFrom(fmt.Sprintf("rand-%d", seed), m)); err != nil {
					return err
				}
				a.log.Info().Str("path", save).Msg("problem written")
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 3, "row count")
	cmd.Flags().IntVar(&cols, "cols", 3, "column count")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&save, "save", "", "write the matrix as a problem file (.yaml or .toml)")

	return cmd
}
