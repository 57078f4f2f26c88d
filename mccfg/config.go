package mccfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mc-eval/chain"
)

// Config is the top-level run configuration loaded from a YAML file.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Statistic StatisticConfig `yaml:"statistic"`
	Numeric   NumericConfig   `yaml:"numeric"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ModelConfig names the input files and the chain kind they describe.
type ModelConfig struct {
	Kind   string `yaml:"kind"` // "DTMC", "CTMC", "DMRM", "CMRM", "CTMDPI"
	Tra    string `yaml:"tra"`
	Lab    string `yaml:"lab"`
	Rew    string `yaml:"rew,omitempty"`
	Formula string `yaml:"formula"`
}

// StatisticConfig configures simcheck.Engine when the run asks for
// statistical (rather than numerical) model checking.
type StatisticConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Confidence float64 `yaml:"confidence"`
	Samples    int     `yaml:"samples"`
	Seed       int64   `yaml:"seed"`
}

// NumericConfig holds the numerical settings. mcstat uses Tolerance as the
// evaluator's error bound (mcctx.Context.ErrorBound); it does not read
// MaxIters, and kernels.Engine keeps its own built-in tolerance and
// iteration cap.
type NumericConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	MaxIters  int     `yaml:"max_iters"`
}

// LoggingConfig holds logger settings. mcstat does not read them: its
// logger level comes from --verbose and it always writes console text.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// defaults mirrors the zero-value fallbacks applied after Load so a
// minimal YAML file (just model.kind/model.tra/model.lab/model.formula)
// still yields a runnable Config.
func (c *Config) defaults() {
	if c.Statistic.Confidence == 0 {
		c.Statistic.Confidence = 0.95
	}
	if c.Statistic.Samples == 0 {
		c.Statistic.Samples = 2000
	}
	if c.Numeric.Tolerance == 0 {
		c.Numeric.Tolerance = 1e-9
	}
	if c.Numeric.MaxIters == 0 {
		c.Numeric.MaxIters = 10000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// ChainKind resolves ModelConfig.Kind to a chain.Kind.
func (m ModelConfig) ChainKind() (chain.Kind, error) {
	switch m.Kind {
	case "DTMC":
		return chain.DTMC, nil
	case "CTMC":
		return chain.CTMC, nil
	case "DMRM":
		return chain.DMRM, nil
	case "CMRM":
		return chain.CMRM, nil
	case "CTMDPI":
		return chain.CTMDPI, nil
	default:
		return 0, fmt.Errorf("mccfg: unknown model.kind %q", m.Kind)
	}
}

// Load reads and parses a YAML config file at path, applying defaults to
// any unset statistical/numerical/logging fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mccfg: Load(%q): %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("mccfg: Load(%q): %w", path, err)
	}
	cfg.defaults()

	if cfg.Model.Tra == "" {
		return nil, fmt.Errorf("mccfg: Load(%q): model.tra is required", path)
	}
	if cfg.Model.Lab == "" {
		return nil, fmt.Errorf("mccfg: Load(%q): model.lab is required", path)
	}
	if cfg.Model.Formula == "" {
		return nil, fmt.Errorf("mccfg: Load(%q): model.formula is required", path)
	}

	return &cfg, nil
}
