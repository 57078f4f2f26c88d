package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/formula"
	"github.com/katalvlaran/mc-eval/kernels"
	"github.com/katalvlaran/mc-eval/label"
	"github.com/katalvlaran/mc-eval/mccfg"
	"github.com/katalvlaran/mc-eval/mcctx"
	"github.com/katalvlaran/mc-eval/mcio"
	"github.com/katalvlaran/mc-eval/mcmetrics"
	"github.com/katalvlaran/mc-eval/mcparse"
	"github.com/katalvlaran/mc-eval/reach"
	"github.com/katalvlaran/mc-eval/rng"
	"github.com/katalvlaran/mc-eval/sccomp"
	"github.com/katalvlaran/mc-eval/simcheck"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Args:  cobra.NoArgs,
	Short: "Evaluate one formula against a model",
	RunE:  runEval,
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func runEval(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	if cfgFile == "" {
		return fmt.Errorf("--config flag is required")
	}

	cfg, err := mccfg.Load(cfgFile)
	if err != nil {
		return err
	}
	kind, err := cfg.Model.ChainKind()
	if err != nil {
		return err
	}

	logger.Info().Str("tra", cfg.Model.Tra).Str("lab", cfg.Model.Lab).Str("kind", kind.String()).Msg("loading model")

	c, labels, err := loadModel(cfg, kind)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	root, err := mcparse.Parse(cfg.Model.Formula)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}

	metrics := mcmetrics.New(newPromRegistry())

	ctx, err := buildContext(cfg, c, labels, logger, root, metrics)
	if err != nil {
		return fmt.Errorf("building evaluation context: %w", err)
	}

	engine := "numeric"
	if cfg.Statistic.Enabled {
		engine = "statistical"
	}

	start := time.Now()
	if err := formula.Eval(ctx, root); err != nil {
		return fmt.Errorf("evaluating formula: %w", err)
	}
	metrics.EvalDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
	metrics.FormulasEvaluated.Inc()

	if res := root.Result(); res.SimHere || res.SimBelow {
		metrics.StatSampleCount.Observe(float64(res.MaxObs))
	}

	printResult(logger, root)

	return nil
}

// loadModel reads the .tra/.lab (and optional .rew) files named by cfg and
// returns a frozen chain.Chain plus its label.Set.
func loadModel(cfg *mccfg.Config, kind chain.Kind) (*chain.Chain, *label.Set, error) {
	traFile, err := os.Open(cfg.Model.Tra)
	if err != nil {
		return nil, nil, err
	}
	defer traFile.Close()

	var rewards map[int]float64
	if cfg.Model.Rew != "" {
		rewFile, err := os.Open(cfg.Model.Rew)
		if err != nil {
			return nil, nil, err
		}
		rewards, err = mcio.ReadRew(rewFile)
		rewFile.Close()
		if err != nil {
			return nil, nil, err
		}
	}

	c, err := mcio.ReadTraWithRewards(traFile, kind, rewards)
	if err != nil {
		return nil, nil, err
	}
	if err := c.Freeze(); err != nil {
		return nil, nil, err
	}

	labFile, err := os.Open(cfg.Model.Lab)
	if err != nil {
		return nil, nil, err
	}
	defer labFile.Close()

	labels, err := mcio.ReadLab(labFile, c.NumStates())
	if err != nil {
		return nil, nil, err
	}

	return c, labels, nil
}

// buildContext wires every external collaborator named in the formula
// package's evaluation contract into one mcctx.Context.
func buildContext(cfg *mccfg.Config, c *chain.Chain, labels *label.Set, logger zerolog.Logger, root formula.Node, metrics *mcmetrics.Metrics) (*mcctx.Context, error) {
	kernelEngine, err := kernels.New(c)
	if err != nil {
		return nil, err
	}

	ctx := &mcctx.Context{
		RunMode:    c.Kind(),
		ErrorBound: cfg.Numeric.Tolerance,
		Confidence: cfg.Statistic.Confidence,
		SteadyMode: mcctx.Hybrid,
		SimHere:    cfg.Statistic.Enabled,
		Space:      c,
		Labels:     labels,
		Kernels:    kernelEngine,
		RNG:        rng.NewBuiltin(cfg.Statistic.Seed),
		OnModeMismatch: func(op, runMode string) {
			logger.Warn().Str("operator", op).Str("run_mode", runMode).
				Msg((&formula.ModeMismatchError{Op: op, RunMode: runMode}).Error())
			metrics.ModeMismatches.WithLabelValues(op).Inc()
		},
	}

	if cfg.Statistic.Enabled {
		statEngine, err := simcheck.New(c, ctx.RNG, cfg.Statistic.Confidence, cfg.Statistic.Samples)
		if err != nil {
			return nil, err
		}
		ctx.Stats = statEngine
	}

	ctx.ExistUntil = func(phi *bitset.Set) mcctx.ReachabilityFunc {
		f, err := reach.ExistFunc(c, phi)
		if err != nil {
			return func(int) bool { return false }
		}

		return f
	}
	ctx.AlwaysUntil = func(phi *bitset.Set) mcctx.ReachabilityFunc {
		f, err := reach.AlwaysFunc(c, phi)
		if err != nil {
			return func(int) bool { return false }
		}

		return f
	}

	if err := wireBSCC(ctx, c, root); err != nil {
		return nil, err
	}

	return ctx, nil
}

// wireBSCC installs ctx.BSCC ahead of the full evaluation: it finds the
// formula's (at most one, in this reference CLI) Steady/LongRun operator,
// evaluates its child state-formula once to obtain phi, and binds
// ctx.BSCC to sccomp.AcceptingStates for that fixed phi. A formula with no
// Steady/LongRun operator leaves ctx.BSCC nil; the dispatcher never calls
// it in that case.
func wireBSCC(ctx *mcctx.Context, c *chain.Chain, root formula.Node) error {
	n := findLongSteady(root)
	if n == nil {
		return nil
	}
	if err := formula.Eval(ctx, n.Child); err != nil {
		return err
	}
	phi := n.Child.Result().Yes
	ctx.BSCC = func() (*bitset.Set, error) {
		return sccomp.AcceptingStates(c, phi)
	}

	return nil
}

// findLongSteady walks the tree for the first LongSteadyNode, mirroring
// the shape of formula.Eval's own post-order switch.
func findLongSteady(n formula.Node) *formula.LongSteadyNode {
	switch t := n.(type) {
	case *formula.LongSteadyNode:
		return t
	case *formula.UnaryBoolNode:
		return findLongSteady(t.Child)
	case *formula.BinaryBoolNode:
		if r := findLongSteady(t.Left); r != nil {
			return r
		}

		return findLongSteady(t.Right)
	case *formula.NextNode:
		return findLongSteady(t.Child)
	case *formula.UntilNode:
		if r := findLongSteady(t.Phi); r != nil {
			return r
		}

		return findLongSteady(t.Psi)
	case *formula.PureRewardNode:
		return findLongSteady(t.Child)
	case *formula.ComparatorNode:
		return findLongSteady(t.Child)
	default:
		return nil
	}
}

func printResult(logger zerolog.Logger, root formula.Node) {
	res := root.Result()
	switch {
	case res.Yes != nil:
		logger.Info().Int("yes_states", res.Yes.Count()).Int("no_states", countOrZero(res.No)).Bool("statistical", res.SimHere || res.SimBelow).Msg("result")
	case res.ProbReward != nil:
		logger.Info().Floats64("values", res.ProbReward).Msg("result")
	default:
		logger.Warn().Msg("formula produced no result")
	}
}

func countOrZero(b *bitset.Set) int {
	if b == nil {
		return 0
	}

	return b.Count()
}
