package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/awconrad/finplan/internal/calculation"
	"github.com/awconrad/finplan/internal/config"
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/output"
	"github.com/awconrad/finplan/internal/sequencing"
	"github.com/awconrad/finplan/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Personal finance and retirement planning CLI",
	Long:  "Calculators for life insurance needs, charitable giving, contribution ordering, Social Security claiming, state taxes, fund costs, estate planning, and multi-year retirement projections",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

// loadPlan parses the plan file argument shared by every calculator command.
func loadPlan(path string) *domain.Plan {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return plan
}

func cmdLogger(cmd *cobra.Command) calculation.Logger {
	if ok, _ := cmd.Flags().GetBool("debug"); ok {
		return simpleCLILogger{}
	}
	return calculation.NopLogger
}

func emit(cmd *cobra.Command, report *output.PlanReport) {
	format, _ := cmd.Flags().GetString("format")
	if err := output.GenerateReport(report, format); err != nil {
		log.Fatal(err)
	}
}

var dimeCmd = &cobra.Command{
	Use:   "dime [plan-file]",
	Short: "Life insurance needs analysis (Debt, Income, Mortgage, Education)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		if plan.Insurance == nil {
			log.Fatal("plan file has no insurance section")
		}
		primary := plan.Household.Primary()
		age := primary.AgeInYear(plan.Assumptions.BaseYear)

		result := calculation.NewDIMECalculator().Calculate(
			*plan.Insurance, primary.AnnualSalary, age, primary.HealthTier)
		emit(cmd, &output.PlanReport{GeneratedFor: primary.Name, Insurance: &result})
	},
}

var givingCmd = &cobra.Command{
	Use:   "giving [plan-file]",
	Short: "Optimize charitable giving across QCD, appreciated stock, DAF, and cash",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		if plan.Giving == nil {
			log.Fatal("plan file has no giving section")
		}
		primary := plan.Household.Primary()
		age := primary.AgeInYear(plan.Assumptions.BaseYear)

		optimizer := calculation.NewGivingOptimizer(plan.Household.FilingStatus)
		taxable := optimizer.Taxes.TaxableOrdinaryIncome(
			primary.AnnualSalary, plan.Household.Seniors65Plus(plan.Assumptions.BaseYear))
		result := optimizer.Optimize(*plan.Giving, age,
			plan.Household.Accounts.TraditionalBalance, taxable)
		emit(cmd, &output.PlanReport{GeneratedFor: primary.Name, Giving: &result})
	},
}

var contributeCmd = &cobra.Command{
	Use:   "contribute [plan-file]",
	Short: "Order monthly contributions: match, HSA, Roth IRA, 401(k), taxable",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		if plan.Contributions == nil {
			log.Fatal("plan file has no contributions section")
		}
		primary := plan.Household.Primary()
		age := primary.AgeInYear(plan.Assumptions.BaseYear)

		result := calculation.NewContributionOptimizer().Optimize(
			*plan.Contributions, primary.AnnualSalary, age)
		emit(cmd, &output.PlanReport{GeneratedFor: primary.Name, Contribution: &result})
	},
}

var socialSecurityCmd = &cobra.Command{
	Use:   "social-security [plan-file]",
	Short: "Compare Social Security claiming ages 62 through 70",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		primary := plan.Household.Primary()

		result := calculation.NewClaimingOptimizer().Analyze(primary)
		emit(cmd, &output.PlanReport{GeneratedFor: primary.Name, Claiming: &result})
	},
}

var stateTaxCmd = &cobra.Command{
	Use:   "state-tax [plan-file]",
	Short: "Rank states by annual tax on the plan's retirement income",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		primary := plan.Household.Primary()

		ssAnnual := decimal.Zero
		if !primary.SSMonthlyAtFRA.IsZero() {
			ssAnnual = primary.SSMonthlyAtFRA.Mul(decimal.NewFromInt(12))
		}
		profile := calculation.IncomeProfile{
			SSBenefit:   ssAnnual,
			Withdrawals: plan.Spending.AnnualSpending.Sub(ssAnnual),
		}
		if profile.Withdrawals.LessThan(decimal.Zero) {
			profile.Withdrawals = decimal.Zero
		}

		result := calculation.NewStateComparator().Compare(profile, plan.Household.State)
		emit(cmd, &output.PlanReport{GeneratedFor: primary.Name, StateTax: &result})
	},
}

var spivaCmd = &cobra.Command{
	Use:   "spiva",
	Short: "Project index versus active fund costs with scorecard odds",
	Run: func(cmd *cobra.Command, args []string) {
		initial, _ := cmd.Flags().GetFloat64("initial")
		years, _ := cmd.Flags().GetInt("years")
		category, _ := cmd.Flags().GetString("category")
		grossReturn, _ := cmd.Flags().GetFloat64("return")

		result, err := calculation.NewFundComparator().Compare(
			decimal.NewFromFloat(initial), years, decimal.NewFromFloat(grossReturn), category)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, &output.PlanReport{Funds: result})
	},
}

var estateCmd = &cobra.Command{
	Use:   "estate [plan-file]",
	Short: "Derive an estate-planning checklist from the plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		if plan.Estate == nil {
			log.Fatal("plan file has no estate section")
		}
		result := calculation.NewEstatePlanner().BuildChecklist(*plan.Estate)
		emit(cmd, &output.PlanReport{GeneratedFor: plan.Household.Primary().Name, Estate: &result})
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [plan-file]",
	Short: "Run the year-by-year retirement projection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])

		policy := domain.WithdrawalPolicy{}
		if plan.Withdrawal != nil {
			policy = *plan.Withdrawal
		}
		headroom, _ := cmd.Flags().GetFloat64("bracket-headroom")
		strategy, err := sequencing.NewStrategy(policy, decimal.NewFromFloat(headroom))
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewProjectionEngine(plan.Household.FilingStatus, strategy, cmdLogger(cmd))
		result, err := engine.Project(plan)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, &output.PlanReport{
			GeneratedFor: plan.Household.Primary().Name,
			BaseYear:     plan.Assumptions.BaseYear,
			Projection:   result,
		})
	},
}

var monteCarloCmd = &cobra.Command{
	Use:   "montecarlo [plan-file]",
	Short: "Stress-test the withdrawal plan against randomized returns",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])

		cfg := calculation.DefaultMonteCarloConfig()
		cfg.NumPaths, _ = cmd.Flags().GetInt("simulations")
		cfg.HorizonYears, _ = cmd.Flags().GetInt("years")
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		if historical, _ := cmd.Flags().GetBool("historical"); historical {
			cfg.Model = calculation.ModelBootstrap
		}

		simulator := calculation.NewMonteCarloSimulator(cfg, cmdLogger(cmd))
		result, err := simulator.Simulate(
			plan.Household.Accounts.Total(), plan.Spending.AnnualSpending, plan.Assumptions)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, &output.PlanReport{GeneratedFor: plan.Household.Primary().Name, MonteCarlo: result})
	},
}

var perpetuityCmd = &cobra.Command{
	Use:   "perpetuity [plan-file]",
	Short: "Test whether the portfolio can sustain withdrawals forever",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan(args[0])
		result := calculation.NewPerpetuityAnalyzer().Analyze(
			plan.Household.Accounts.Total(), plan.Spending.AnnualSpending, plan.Assumptions)
		emit(cmd, &output.PlanReport{GeneratedFor: plan.Household.Primary().Name, Perpetuity: &result})
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [plan-file]",
	Short: "Interactive dashboard over a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.Run(args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{
		dimeCmd, givingCmd, contributeCmd, socialSecurityCmd, stateTaxCmd,
		spivaCmd, estateCmd, projectCmd, monteCarloCmd, perpetuityCmd,
	} {
		cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json, markdown, pdf)")
		cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	}

	spivaCmd.Flags().Float64("initial", 100000, "Initial investment")
	spivaCmd.Flags().IntP("years", "y", 20, "Investment horizon in years")
	spivaCmd.Flags().String("category", "large_cap", "Fund category (large_cap, mid_cap, small_cap, international, bond)")
	spivaCmd.Flags().Float64("return", 0.07, "Gross annual return before expenses")

	projectCmd.Flags().Float64("bracket-headroom", 0, "Ordinary income headroom for the tax_efficient strategy")

	monteCarloCmd.Flags().IntP("simulations", "s", 1000, "Number of simulations to run")
	monteCarloCmd.Flags().IntP("years", "y", 30, "Number of years to project")
	monteCarloCmd.Flags().Int64("seed", 42, "Random seed for reproducible runs")
	monteCarloCmd.Flags().BoolP("historical", "d", false, "Bootstrap historical returns instead of a normal model")

	rootCmd.AddCommand(dimeCmd)
	rootCmd.AddCommand(givingCmd)
	rootCmd.AddCommand(contributeCmd)
	rootCmd.AddCommand(socialSecurityCmd)
	rootCmd.AddCommand(stateTaxCmd)
	rootCmd.AddCommand(spivaCmd)
	rootCmd.AddCommand(estateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(monteCarloCmd)
	rootCmd.AddCommand(perpetuityCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
