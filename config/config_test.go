package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/config"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/lit"
)

func TestParseFillsInDefaultsForOmittedFields(t *testing.T) {
	s, err := config.Parse([]byte("timeout: 5s\n"))
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, s.Timeout.Duration())
	require.Equal(t, config.OrderingKBO, s.Ordering)
	require.Equal(t, config.SelectionOneNegative, s.Selection)
}

func TestParseHonorsExplicitFields(t *testing.T) {
	yaml := "ordering: lpo\nprecedence: inv_arity\nselection: all_negative\nmax_steps: 100\nmax_mem_mb: 512\nrules:\n  no_subsumption: true\n"
	s, err := config.Parse([]byte(yaml))
	require.NoError(t, err)
	require.Equal(t, config.OrderingLPO, s.Ordering)
	require.Equal(t, config.PrecedenceInvArity, s.Precedence)
	require.Equal(t, config.SelectionAllNegative, s.Selection)
	require.Equal(t, int64(100), s.MaxSteps)
	require.Equal(t, int64(512), s.MaxMemMB)
	require.True(t, s.RuleToggles.NoSubsumption)
}

func TestPrecedencePolicyRejectsUnknownName(t *testing.T) {
	_, err := config.Precedence("bogus").Policy()
	require.Error(t, err)
}

func TestPrecedencePolicyMapsKnownNames(t *testing.T) {
	p, err := config.PrecedenceInvArity.Policy()
	require.NoError(t, err)
	require.Equal(t, symb.PrecInvArity, p)
}

func TestSelectionPolicyMapsKnownNames(t *testing.T) {
	p, err := config.SelectionAllNegative.Policy()
	require.NoError(t, err)
	require.Equal(t, lit.SelectAllNegative, p)
}

func TestSelectionPolicyRejectsUnknownName(t *testing.T) {
	_, err := config.Selection("bogus").Policy()
	require.Error(t, err)
}
