package portfolio_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nnf/saturn"
	"github.com/nnf/saturn/config"
	"github.com/nnf/saturn/portfolio"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func kboStrategy() config.Strategy {
	s := config.Default()
	s.Ordering = config.OrderingKBO
	return s
}

func lpoStrategy() config.Strategy {
	s := config.Default()
	s.Ordering = config.OrderingLPO
	return s
}

const modusPonens = `cnf(fact, axiom, p(a)).
cnf(rule, axiom, ~p(X) | q(X)).
cnf(goal, axiom, ~q(a)).`

func TestRunReturnsFirstConclusiveResultAcrossStrategies(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := portfolio.Run(ctx, modusPonens, []config.Strategy{kboStrategy(), lpoStrategy()})
	require.NoError(t, err)
	require.Equal(t, saturn.OutcomeUnsatisfiable, res.Outcome)
}

func TestRunWithNoStrategiesReturnsZeroResult(t *testing.T) {
	res, err := portfolio.Run(context.Background(), modusPonens, nil)
	require.NoError(t, err)
	require.Equal(t, saturn.Result{}, res)
}

func TestRunStopsWorkersWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := portfolio.Run(ctx, modusPonens, []config.Strategy{kboStrategy()})
	require.NoError(t, err)
}

func TestRunSaturatesOnNonRefutableInput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := portfolio.Run(ctx, `cnf(fact, axiom, p(a)).`, []config.Strategy{kboStrategy(), lpoStrategy()})
	require.NoError(t, err)
	require.Equal(t, saturn.OutcomeSaturated, res.Outcome)
}
