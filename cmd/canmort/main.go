package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tlacroix/canmort/internal/calculation"
	"github.com/tlacroix/canmort/internal/compare"
	"github.com/tlacroix/canmort/internal/config"
	"github.com/tlacroix/canmort/internal/domain"
	"github.com/tlacroix/canmort/internal/output"
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

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "canmort %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "canmort",
	Short: "Canadian Mortgage Calculation & Projection Engine CLI",
	Long:  "Payment, penalty, stress-test, HELOC and Smith Maneuver calculators for Canadian mortgages",
}

// decimalFlag parses a required decimal flag or exits.
func decimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	raw, _ := cmd.Flags().GetString(name)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid --%s %q: %v", name, raw, err)
	}
	return value
}

func frequencyFlag(cmd *cobra.Command, name string) domain.PaymentFrequency {
	raw, _ := cmd.Flags().GetString(name)
	freq := domain.PaymentFrequency(raw)
	if _, ok := freq.PaymentsPerYear(); !ok {
		log.Fatalf("invalid --%s %q (monthly, semi-monthly, biweekly, accelerated-biweekly, weekly, accelerated-weekly)", name, raw)
	}
	return freq
}

func termTypeFlag(cmd *cobra.Command, name string) domain.TermType {
	raw, _ := cmd.Flags().GetString(name)
	switch t := domain.TermType(raw); t {
	case domain.TermFixed, domain.TermVariableChangingPayment, domain.TermVariableFixedPayment:
		return t
	}
	log.Fatalf("invalid --%s %q (fixed, variable-changing, variable-fixed)", name, raw)
	return domain.TermFixed
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [plan-file]",
	Short: "Run the full analysis for a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatalf("Failed to load plan: %v", err)
		}

		engine := calculation.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		result, err := engine.RunPlan(plan)
		if err != nil {
			log.Fatalf("Calculation failed: %v", err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(strings.ToLower(formatName))
		if formatter == nil {
			log.Fatalf("Unknown output format: %s (valid: console, csv, json)", formatName)
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatalf("Failed to format output: %v", err)
		}
		fmt.Print(string(data))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [plan-file]",
	Short: "Compare the Smith Maneuver strategy against prepayment-only",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatalf("Failed to load plan: %v", err)
		}

		engine := calculation.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		compareEngine := compare.NewCompareEngine(engine)
		set, err := compareEngine.Compare(plan, engine.Now())
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := compare.GetFormatterByName(strings.ToLower(formatName))
		if formatter == nil {
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", formatName)
		}
		text, err := formatter.Format(set)
		if err != nil {
			log.Fatalf("Failed to format output: %v", err)
		}
		fmt.Print(text)
	},
}

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Calculate the periodic payment for a balance",
	Run: func(cmd *cobra.Command, args []string) {
		balance := decimalFlag(cmd, "balance")
		rate := decimalFlag(cmd, "rate")
		months, _ := cmd.Flags().GetInt("amortization")
		freq := frequencyFlag(cmd, "frequency")

		payment, err := calculation.CalculatePayment(balance, rate, months, freq)
		if err != nil {
			log.Fatalf("Payment calculation failed: %v", err)
		}
		breakdown, err := calculation.CalculatePaymentBreakdown(calculation.BreakdownInput{
			Balance:              balance,
			RegularPaymentAmount: payment,
			AnnualRate:           rate,
			Frequency:            freq,
		})
		if err != nil {
			log.Fatalf("Breakdown failed: %v", err)
		}
		fmt.Printf("Payment:   %s (%s)\n", output.FormatCurrency(payment), freq)
		fmt.Printf("Interest:  %s\n", output.FormatCurrency(breakdown.Interest))
		fmt.Printf("Principal: %s\n", output.FormatCurrency(breakdown.Principal))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate a full amortization schedule",
	Run: func(cmd *cobra.Command, args []string) {
		balance := decimalFlag(cmd, "balance")
		rate := decimalFlag(cmd, "rate")
		months, _ := cmd.Flags().GetInt("amortization")
		freq := frequencyFlag(cmd, "frequency")
		prepay := decimalFlag(cmd, "prepayment")

		var events []calculation.PrepaymentEvent
		if prepay.GreaterThan(decimal.Zero) {
			events = append(events, calculation.PrepaymentEvent{
				Type:               calculation.PrepaymentPerPayment,
				Amount:             prepay,
				StartPaymentNumber: 1,
			})
		}
		schedule, err := calculation.GenerateSchedule(calculation.ScheduleInput{
			Principal:          balance,
			AnnualRate:         rate,
			AmortizationMonths: months,
			Frequency:          freq,
			StartDate:          calculation.NewEngine().Now(),
			Prepayments:        events,
		})
		if err != nil {
			log.Fatalf("Schedule generation failed: %v", err)
		}

		full, _ := cmd.Flags().GetBool("full")
		if full {
			fmt.Printf("%-6s %-12s %-12s %-12s %-12s %-14s\n", "#", "Payment", "Interest", "Principal", "Prepay", "Balance")
			for _, p := range schedule.Payments {
				fmt.Printf("%-6d %-12s %-12s %-12s %-12s %-14s\n",
					p.PaymentNumber,
					p.PaymentAmount.StringFixed(2),
					p.InterestPaid.StringFixed(2),
					p.PrincipalPaid.StringFixed(2),
					p.PrepaymentAmount.StringFixed(2),
					p.RemainingBalance.StringFixed(2))
			}
			fmt.Println()
		}
		s := schedule.Summary
		fmt.Printf("Payments:       %d\n", s.TotalPayments)
		fmt.Printf("Total Interest: %s\n", output.FormatCurrency(s.TotalInterest))
		fmt.Printf("Total Cost:     %s\n", output.FormatCurrency(s.TotalCost))
		if s.PayoffDate != nil {
			fmt.Printf("Paid Off:       %s (payment %d)\n", s.PayoffDate.Format("2006-01-02"), s.PayoffPaymentNumber)
		}
	},
}

var penaltyCmd = &cobra.Command{
	Use:   "penalty",
	Short: "Calculate the prepayment penalty to break a term",
	Run: func(cmd *cobra.Command, args []string) {
		balance := decimalFlag(cmd, "balance")
		rate := decimalFlag(cmd, "rate")
		market := decimalFlag(cmd, "market-rate")
		months, _ := cmd.Flags().GetInt("months-remaining")
		termType := termTypeFlag(cmd, "term-type")
		method, _ := cmd.Flags().GetString("method")

		result, err := calculation.PenaltyByMethod(method, balance, rate, market, months, termType)
		if err != nil {
			log.Fatalf("Penalty calculation failed: %v", err)
		}
		fmt.Printf("Penalty:          %s (%s)\n", output.FormatCurrency(result.Amount), result.Method)
		fmt.Printf("3-Month Interest: %s\n", output.FormatCurrency(result.ThreeMonthInterest))
		fmt.Printf("IRD:              %s\n", output.FormatCurrency(result.IRD))
	},
}

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run the B-20 stress test for a borrower",
	Run: func(cmd *cobra.Command, args []string) {
		months, _ := cmd.Flags().GetInt("amortization")
		result, err := calculation.CheckStressTest(calculation.StressTestInput{
			Principal:          decimalFlag(cmd, "balance"),
			ContractRate:       decimalFlag(cmd, "rate"),
			AmortizationMonths: months,
			GrossAnnualIncome:  decimalFlag(cmd, "income"),
			PropertyTax:        decimalFlag(cmd, "property-tax"),
			HeatingCosts:       decimalFlag(cmd, "heating"),
			CondoFees:          decimalFlag(cmd, "condo-fees"),
			OtherDebtPayments:  decimalFlag(cmd, "other-debt"),
		})
		if err != nil {
			log.Fatalf("Stress test failed: %v", err)
		}
		verdict := "FAIL"
		if result.Passed {
			verdict = "PASS"
		}
		fmt.Printf("Qualifying Rate:    %s\n", output.FormatRate(result.QualifyingRate))
		fmt.Printf("Qualifying Payment: %s\n", output.FormatCurrency(result.QualifyingPayment))
		fmt.Printf("GDS: %s (%s)  TDS: %s (%s)\n",
			output.FormatPercentage(result.GDS), result.GDSStatus,
			output.FormatPercentage(result.TDS), result.TDSStatus)
		fmt.Printf("Verdict: %s\n", verdict)
	},
}

var insuranceCmd = &cobra.Command{
	Use:   "insurance",
	Short: "Quote the default-insurance premium",
	Run: func(cmd *cobra.Command, args []string) {
		provider, _ := cmd.Flags().GetString("provider")
		discount, _ := cmd.Flags().GetInt("mli-discount")
		capitalize, _ := cmd.Flags().GetBool("capitalize")

		paymentType := calculation.PremiumUpfront
		if capitalize {
			paymentType = calculation.PremiumCapitalized
		}
		result, err := calculation.InsurancePremium(
			calculation.InsuranceProvider(provider),
			decimalFlag(cmd, "amount"),
			decimalFlag(cmd, "value"),
			calculation.MLISelectDiscount(discount),
			paymentType,
		)
		if err != nil {
			log.Fatalf("Insurance quote failed: %v", err)
		}
		fmt.Printf("LTV:           %s\n", output.FormatPercentage(result.LTV))
		fmt.Printf("Premium Rate:  %s\n", output.FormatPercentage(result.PremiumRate))
		fmt.Printf("Premium:       %s\n", output.FormatCurrency(result.Premium))
		fmt.Printf("Total Amount:  %s\n", output.FormatCurrency(result.TotalMortgageAmount))
	},
}

var helocCmd = &cobra.Command{
	Use:   "heloc",
	Short: "Calculate HELOC credit room and minimum payment",
	Run: func(cmd *cobra.Command, args []string) {
		homeValue := decimalFlag(cmd, "home-value")
		maxLTV := decimalFlag(cmd, "max-ltv")
		mortgageBalance := decimalFlag(cmd, "mortgage-balance")
		balance := decimalFlag(cmd, "balance")
		prime := decimalFlag(cmd, "prime")
		spread := decimalFlag(cmd, "spread")
		interestOnly, _ := cmd.Flags().GetBool("interest-only")

		limit := calculation.HelocCreditLimit(homeValue, maxLTV, mortgageBalance)
		paymentType := calculation.HelocPrincipalPlusInterest
		if interestOnly {
			paymentType = calculation.HelocInterestOnly
		}
		minPayment, err := calculation.HelocMinimumPayment(balance, prime, spread, paymentType, 0)
		if err != nil {
			log.Fatalf("HELOC calculation failed: %v", err)
		}
		daily, err := calculation.DailyInterest(balance, prime, spread)
		if err != nil {
			log.Fatalf("HELOC calculation failed: %v", err)
		}
		fmt.Printf("Credit Limit:    %s\n", output.FormatCurrency(limit))
		fmt.Printf("Available:       %s\n", output.FormatCurrency(decimal.Max(decimal.Zero, limit.Sub(balance))))
		fmt.Printf("Minimum Payment: %s (%s)\n", output.FormatCurrency(minPayment), paymentType)
		fmt.Printf("Daily Interest:  %s\n", output.FormatCurrency(daily))
	},
}

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Check trigger-rate risk for a variable-fixed mortgage",
	Run: func(cmd *cobra.Command, args []string) {
		analysis, err := calculation.MonitorTriggerRate(
			termTypeFlag(cmd, "term-type"),
			decimalFlag(cmd, "payment"),
			decimalFlag(cmd, "balance"),
			decimalFlag(cmd, "rate"),
			frequencyFlag(cmd, "frequency"),
		)
		if err != nil {
			log.Fatalf("Trigger analysis failed: %v", err)
		}
		fmt.Printf("Status: %s\n", analysis.Status)
		if analysis.Status != calculation.TriggerNotApplicable {
			fmt.Printf("Trigger Rate: %s\n", output.FormatRate(analysis.TriggerRate))
			fmt.Printf("Distance:     %s\n", output.FormatRate(analysis.DistanceToTrigger))
		}
	},
}

var recastCmd = &cobra.Command{
	Use:   "recast",
	Short: "Recast the payment after a lump-sum prepayment",
	Run: func(cmd *cobra.Command, args []string) {
		months, _ := cmd.Flags().GetInt("amortization")
		result, err := calculation.Recast(
			decimalFlag(cmd, "balance"),
			decimalFlag(cmd, "prepayment"),
			decimalFlag(cmd, "rate"),
			months,
			frequencyFlag(cmd, "frequency"),
		)
		if err != nil {
			log.Fatalf("Recast failed: %v", err)
		}
		if !result.CanRecast {
			fmt.Printf("Cannot recast: %s\n", result.Reason)
			return
		}
		fmt.Printf("New Balance: %s\n", output.FormatCurrency(result.NewBalance))
		fmt.Printf("New Payment: %s (was %s, saves %s)\n",
			output.FormatCurrency(result.NewPayment),
			output.FormatCurrency(result.OldPayment),
			output.FormatCurrency(result.Savings))
	},
}

var portCmd = &cobra.Command{
	Use:   "port",
	Short: "Port a mortgage to a new property",
	Run: func(cmd *cobra.Command, args []string) {
		result, err := calculation.Portability(calculation.PortabilityInput{
			CurrentBalance:   decimalFlag(cmd, "balance"),
			OriginalAmount:   decimalFlag(cmd, "original"),
			OldPropertyPrice: decimalFlag(cmd, "old-price"),
			NewPropertyPrice: decimalFlag(cmd, "new-price"),
			CurrentRate:      decimalFlag(cmd, "rate"),
			TopUpRate:        decimalFlag(cmd, "top-up-rate"),
		})
		if err != nil {
			log.Fatalf("Portability failed: %v", err)
		}
		if !result.CanPort {
			fmt.Printf("Cannot port: %s\n", result.Reason)
			return
		}
		fmt.Printf("Ported Amount: %s\n", output.FormatCurrency(result.PortedAmount))
		fmt.Printf("Top-Up:        %s\n", output.FormatCurrency(result.TopUpRequired))
		fmt.Printf("Blended Rate:  %s\n", output.FormatRate(result.BlendedRate))
		fmt.Printf("Total:         %s\n", output.FormatCurrency(result.TotalMortgage))
	},
}

var frequencyCmd = &cobra.Command{
	Use:   "frequency",
	Short: "Change payment frequency",
	Run: func(cmd *cobra.Command, args []string) {
		months, _ := cmd.Flags().GetInt("amortization")
		result, err := calculation.ChangeFrequency(
			decimalFlag(cmd, "balance"),
			decimalFlag(cmd, "rate"),
			months,
			frequencyFlag(cmd, "from"),
			frequencyFlag(cmd, "to"),
		)
		if err != nil {
			log.Fatalf("Frequency change failed: %v", err)
		}
		if !result.CanChange {
			fmt.Printf("Cannot change: %s\n", result.Reason)
			return
		}
		fmt.Printf("New Payment:     %s (%s)\n", output.FormatCurrency(result.NewPayment), result.NewFrequency)
		fmt.Printf("Annual Total:    %s (was %s)\n", output.FormatCurrency(result.AnnualPaymentNew), output.FormatCurrency(result.AnnualPaymentOld))
		if result.AnnualAccelerated.GreaterThan(decimal.Zero) {
			fmt.Printf("Extra Principal: %s per year\n", output.FormatCurrency(result.AnnualAccelerated))
		}
	},
}

var refinanceCmd = &cobra.Command{
	Use:   "refinance",
	Short: "Analyze breaking the term to refinance",
	Run: func(cmd *cobra.Command, args []string) {
		monthsRemaining, _ := cmd.Flags().GetInt("months-remaining")
		amortization, _ := cmd.Flags().GetInt("amortization")
		result, err := calculation.AnalyzeRefinance(calculation.RefinanceInput{
			Balance:                     decimalFlag(cmd, "balance"),
			CurrentRate:                 decimalFlag(cmd, "rate"),
			NewRate:                     decimalFlag(cmd, "new-rate"),
			MarketRate:                  decimalFlag(cmd, "market-rate"),
			MonthsRemainingInTerm:       monthsRemaining,
			RemainingAmortizationMonths: amortization,
			Frequency:                   frequencyFlag(cmd, "frequency"),
			TermType:                    termTypeFlag(cmd, "term-type"),
			ClosingCosts:                decimalFlag(cmd, "closing-costs"),
		})
		if err != nil {
			log.Fatalf("Refinance analysis failed: %v", err)
		}
		fmt.Printf("Penalty:          %s (%s)\n", output.FormatCurrency(result.Penalty.Amount), result.Penalty.Method)
		fmt.Printf("Payment:          %s -> %s\n", output.FormatCurrency(result.OldPayment), output.FormatCurrency(result.NewPayment))
		fmt.Printf("Interest Savings: %s\n", output.FormatCurrency(result.InterestSavings))
		fmt.Printf("Net Benefit:      %s\n", output.FormatCurrency(result.NetBenefit))
		if result.BreakEvenMonths > 0 {
			fmt.Printf("Break-Even:       %d months\n", result.BreakEvenMonths)
		}
		if result.Worthwhile {
			fmt.Println("Verdict: worthwhile")
		} else {
			fmt.Println("Verdict: not worthwhile")
		}
	},
}

var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "Blend-and-extend the current term at today's rate",
	Run: func(cmd *cobra.Command, args []string) {
		monthsRemaining, _ := cmd.Flags().GetInt("months-remaining")
		newTerm, _ := cmd.Flags().GetInt("new-term")
		amortization, _ := cmd.Flags().GetInt("amortization")
		result, err := calculation.BlendAndExtend(calculation.BlendAndExtendInput{
			Balance:                     decimalFlag(cmd, "balance"),
			CurrentRate:                 decimalFlag(cmd, "rate"),
			MarketRate:                  decimalFlag(cmd, "market-rate"),
			MonthsRemainingInTerm:       monthsRemaining,
			NewTermMonths:               newTerm,
			RemainingAmortizationMonths: amortization,
			Frequency:                   frequencyFlag(cmd, "frequency"),
		})
		if err != nil {
			log.Fatalf("Blend-and-extend failed: %v", err)
		}
		if !result.CanBlend {
			fmt.Printf("Cannot blend: %s\n", result.Reason)
			return
		}
		fmt.Printf("Blended Rate: %s\n", output.FormatRate(result.BlendedRate))
		fmt.Printf("Payment:      %s -> %s\n", output.FormatCurrency(result.OldPayment), output.FormatCurrency(result.NewPayment))
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	paymentCmd.Flags().String("balance", "0", "Mortgage balance")
	paymentCmd.Flags().String("rate", "0", "Annual rate as a decimal (0.0549 for 5.49%)")
	paymentCmd.Flags().Int("amortization", 300, "Amortization in months")
	paymentCmd.Flags().String("frequency", "monthly", "Payment frequency")

	scheduleCmd.Flags().String("balance", "0", "Mortgage balance")
	scheduleCmd.Flags().String("rate", "0", "Annual rate as a decimal")
	scheduleCmd.Flags().Int("amortization", 300, "Amortization in months")
	scheduleCmd.Flags().String("frequency", "monthly", "Payment frequency")
	scheduleCmd.Flags().String("prepayment", "0", "Extra principal per payment")
	scheduleCmd.Flags().Bool("full", false, "Print every payment row")

	penaltyCmd.Flags().String("balance", "0", "Mortgage balance")
	penaltyCmd.Flags().String("rate", "0", "Contract rate as a decimal")
	penaltyCmd.Flags().String("market-rate", "0", "Comparable market rate as a decimal")
	penaltyCmd.Flags().Int("months-remaining", 0, "Months remaining in the term")
	penaltyCmd.Flags().String("term-type", "fixed", "Term type (fixed, variable-changing, variable-fixed)")
	penaltyCmd.Flags().String("method", "", "Penalty method override (open_mortgage, three_month_interest)")

	stressCmd.Flags().String("balance", "0", "Requested mortgage amount")
	stressCmd.Flags().String("rate", "0", "Contract rate as a decimal")
	stressCmd.Flags().Int("amortization", 300, "Amortization in months")
	stressCmd.Flags().String("income", "0", "Gross annual income")
	stressCmd.Flags().String("property-tax", "0", "Monthly property tax")
	stressCmd.Flags().String("heating", "0", "Monthly heating costs")
	stressCmd.Flags().String("condo-fees", "0", "Monthly condo fees")
	stressCmd.Flags().String("other-debt", "0", "Other monthly debt payments")

	insuranceCmd.Flags().String("amount", "0", "Mortgage amount")
	insuranceCmd.Flags().String("value", "0", "Property value")
	insuranceCmd.Flags().String("provider", "cmhc", "Insurer (cmhc, sagen, genworth)")
	insuranceCmd.Flags().Int("mli-discount", 0, "MLI Select discount percent (0, 10, 20, 30)")
	insuranceCmd.Flags().Bool("capitalize", false, "Add the premium to the mortgage principal")

	helocCmd.Flags().String("home-value", "0", "Home value")
	helocCmd.Flags().String("max-ltv", "80", "Maximum combined LTV percent")
	helocCmd.Flags().String("mortgage-balance", "0", "First mortgage balance")
	helocCmd.Flags().String("balance", "0", "HELOC balance")
	helocCmd.Flags().String("prime", "0", "Prime rate in percentage points (6.45)")
	helocCmd.Flags().String("spread", "0.5", "Spread over prime in percentage points")
	helocCmd.Flags().Bool("interest-only", false, "Interest-only minimum payment")

	triggerCmd.Flags().String("payment", "0", "Fixed payment amount")
	triggerCmd.Flags().String("balance", "0", "Mortgage balance")
	triggerCmd.Flags().String("rate", "0", "Current rate as a decimal")
	triggerCmd.Flags().String("frequency", "monthly", "Payment frequency")
	triggerCmd.Flags().String("term-type", "variable-fixed", "Term type")

	recastCmd.Flags().String("balance", "0", "Mortgage balance")
	recastCmd.Flags().String("prepayment", "0", "Lump-sum prepayment")
	recastCmd.Flags().String("rate", "0", "Annual rate as a decimal")
	recastCmd.Flags().Int("amortization", 300, "Remaining amortization in months")
	recastCmd.Flags().String("frequency", "monthly", "Payment frequency")

	portCmd.Flags().String("balance", "0", "Current mortgage balance")
	portCmd.Flags().String("original", "0", "Original mortgage amount")
	portCmd.Flags().String("old-price", "0", "Current property price")
	portCmd.Flags().String("new-price", "0", "New property price")
	portCmd.Flags().String("rate", "0", "Current rate as a decimal")
	portCmd.Flags().String("top-up-rate", "0", "Rate for the top-up portion as a decimal")

	frequencyCmd.Flags().String("balance", "0", "Mortgage balance")
	frequencyCmd.Flags().String("rate", "0", "Annual rate as a decimal")
	frequencyCmd.Flags().Int("amortization", 300, "Remaining amortization in months")
	frequencyCmd.Flags().String("from", "monthly", "Current payment frequency")
	frequencyCmd.Flags().String("to", "accelerated-biweekly", "New payment frequency")

	refinanceCmd.Flags().String("balance", "0", "Mortgage balance")
	refinanceCmd.Flags().String("rate", "0", "Current rate as a decimal")
	refinanceCmd.Flags().String("new-rate", "0", "Refinance rate as a decimal")
	refinanceCmd.Flags().String("market-rate", "0", "Comparable market rate as a decimal")
	refinanceCmd.Flags().Int("months-remaining", 0, "Months remaining in the term")
	refinanceCmd.Flags().Int("amortization", 300, "Remaining amortization in months")
	refinanceCmd.Flags().String("frequency", "monthly", "Payment frequency")
	refinanceCmd.Flags().String("term-type", "fixed", "Term type")
	refinanceCmd.Flags().String("closing-costs", "0", "Legal and appraisal costs")

	blendCmd.Flags().String("balance", "0", "Mortgage balance")
	blendCmd.Flags().String("rate", "0", "Current rate as a decimal")
	blendCmd.Flags().String("market-rate", "0", "Market rate as a decimal")
	blendCmd.Flags().Int("months-remaining", 0, "Months remaining in the term")
	blendCmd.Flags().Int("new-term", 60, "New term length in months")
	blendCmd.Flags().Int("amortization", 300, "Remaining amortization in months")
	blendCmd.Flags().String("frequency", "monthly", "Payment frequency")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(penaltyCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(insuranceCmd)
	rootCmd.AddCommand(helocCmd)
	rootCmd.AddCommand(triggerCmd)
	rootCmd.AddCommand(recastCmd)
	rootCmd.AddCommand(portCmd)
	rootCmd.AddCommand(frequencyCmd)
	rootCmd.AddCommand(refinanceCmd)
	rootCmd.AddCommand(blendCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
