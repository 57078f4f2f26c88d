package mccfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/mccfg"
)

const sampleYAML = `
model:
  kind: CTMC
  tra: model.tra
  lab: model.lab
  formula: "S>=0.9 [ up ]"
statistic:
  enabled: true
  confidence: 0.99
  samples: 500
  seed: 7
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTemp(t, sampleYAML)
	cfg, err := mccfg.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.99, cfg.Statistic.Confidence)
	require.Equal(t, 500, cfg.Statistic.Samples)
	require.Equal(t, 1e-9, cfg.Numeric.Tolerance)
	require.Equal(t, "text", cfg.Logging.Format)

	kind, err := cfg.Model.ChainKind()
	require.NoError(t, err)
	require.Equal(t, chain.CTMC, kind)
}

func TestLoadRejectsMissingFormula(t *testing.T) {
	path := writeTemp(t, "model:\n  kind: DTMC\n  tra: a.tra\n  lab: a.lab\n")
	_, err := mccfg.Load(path)
	require.Error(t, err)
}

func TestChainKindRejectsUnknown(t *testing.T) {
	m := mccfg.ModelConfig{Kind: "QUANTUM"}
	_, err := m.ChainKind()
	require.Error(t, err)
}
