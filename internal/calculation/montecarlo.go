package calculation

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// ReturnModel selects how yearly returns are drawn.
type ReturnModel string

const (
	// ModelNormal draws from a normal distribution with the plan's mean
	// and standard deviation.
	ModelNormal ReturnModel = "normal"
	// ModelBootstrap resamples historical annual returns with replacement.
	ModelBootstrap ReturnModel = "bootstrap"
)

// MonteCarloConfig parameterizes a simulation run. Seed makes runs
// reproducible; a zero seed is used as-is, not randomized.
type MonteCarloConfig struct {
	NumPaths     int
	HorizonYears int
	Seed         int64
	Model        ReturnModel
}

// DefaultMonteCarloConfig mirrors the planner's stock settings.
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		NumPaths:     1000,
		HorizonYears: 30,
		Seed:         42,
		Model:        ModelNormal,
	}
}

// MonteCarloSimulator stress-tests a withdrawal plan against randomized
// return sequences. A path succeeds when the balance survives the horizon.
type MonteCarloSimulator struct {
	Config MonteCarloConfig
	Logger Logger
}

func NewMonteCarloSimulator(cfg MonteCarloConfig, logger Logger) *MonteCarloSimulator {
	if logger == nil {
		logger = NopLogger
	}
	return &MonteCarloSimulator{Config: cfg, Logger: logger}
}

// Simulate runs the configured number of paths over a starting balance and
// an inflation-adjusted annual withdrawal.
func (mc *MonteCarloSimulator) Simulate(startingBalance, annualWithdrawal decimal.Decimal, assumptions domain.GlobalAssumptions) (*domain.MonteCarloResults, error) {
	cfg := mc.Config
	if cfg.NumPaths <= 0 {
		return nil, fmt.Errorf("monte carlo requires at least one path, got %d", cfg.NumPaths)
	}
	if cfg.HorizonYears <= 0 {
		return nil, fmt.Errorf("monte carlo requires a positive horizon, got %d", cfg.HorizonYears)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	mean, _ := assumptions.ReturnPostRetirement.Float64()
	stddev, _ := assumptions.ReturnStdDev.Float64()
	withdrawal0, _ := annualWithdrawal.Float64()
	balance0, _ := startingBalance.Float64()
	inflation, _ := assumptions.InflationRate.Float64()

	mc.Logger.Debugf("monte carlo: %d paths, %d years, model=%s, seed=%d",
		cfg.NumPaths, cfg.HorizonYears, cfg.Model, cfg.Seed)

	results := &domain.MonteCarloResults{
		NumPaths:     cfg.NumPaths,
		HorizonYears: cfg.HorizonYears,
		Seed:         cfg.Seed,
		Paths:        make([]domain.PathOutcome, 0, cfg.NumPaths),
	}

	successes := 0
	endings := make([]float64, 0, cfg.NumPaths)
	for path := 0; path < cfg.NumPaths; path++ {
		balance := balance0
		withdrawal := withdrawal0
		years := 0
		for y := 0; y < cfg.HorizonYears; y++ {
			balance -= withdrawal
			if balance <= 0 {
				balance = 0
				break
			}
			balance *= 1 + mc.drawReturn(rng, mean, stddev)
			withdrawal *= 1 + inflation
			years++
		}
		success := years == cfg.HorizonYears
		if success {
			successes++
		}
		endings = append(endings, balance)
		results.Paths = append(results.Paths, domain.PathOutcome{
			PathID:        path,
			EndingBalance: decimal.NewFromFloat(balance),
			YearsLasted:   years,
			Success:       success,
		})
	}

	sort.Float64s(endings)
	results.SuccessRate = decimal.NewFromInt(int64(successes)).
		Div(decimal.NewFromInt(int64(cfg.NumPaths)))
	results.Percentiles = domain.PercentileRanges{
		P10: percentileOf(endings, 0.10),
		P25: percentileOf(endings, 0.25),
		P50: percentileOf(endings, 0.50),
		P75: percentileOf(endings, 0.75),
		P90: percentileOf(endings, 0.90),
	}
	results.MedianEndingBalance = results.Percentiles.P50
	return results, nil
}

// drawReturn samples one annual return under the configured model.
func (mc *MonteCarloSimulator) drawReturn(rng *rand.Rand, mean, stddev float64) float64 {
	switch mc.Config.Model {
	case ModelBootstrap:
		return reference.HistoricalAnnualReturns[rng.Intn(len(reference.HistoricalAnnualReturns))]
	default:
		return rng.NormFloat64()*stddev + mean
	}
}

// percentileOf reads the pth percentile from a sorted slice.
func percentileOf(sorted []float64, p float64) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	idx := int(float64(len(sorted)-1) * p)
	return decimal.NewFromFloat(sorted[idx])
}
