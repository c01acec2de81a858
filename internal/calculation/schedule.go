package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// PrepaymentType identifies how a scheduled prepayment recurs.
type PrepaymentType string

const (
	PrepaymentOneTime        PrepaymentType = "one-time"
	PrepaymentAnnual         PrepaymentType = "annual"
	PrepaymentPerPayment     PrepaymentType = "per-payment"
	PrepaymentMonthlyPercent PrepaymentType = "monthly-percent"
)

// PrepaymentEvent is an extra-principal event applied during schedule
// generation.
type PrepaymentEvent struct {
	Type               PrepaymentType
	Amount             decimal.Decimal
	StartPaymentNumber int
	RecurrenceMonth    time.Month      // annual events: calendar month they recur in
	MonthlyPercent     decimal.Decimal // monthly-percent events: % of the regular payment
}

// TermRenewalEvent changes the rate (and optionally payment or amortization)
// partway through a schedule, modeling term renewals and blend-and-extend.
type TermRenewalEvent struct {
	StartPaymentNumber         int
	NewRate                    decimal.Decimal
	NewPaymentAmount           *decimal.Decimal // variable-fixed: keep/replace the fixed payment
	ResetAmortizationMonths    *int             // standard renewal: reset to original amortization
	ExtendedAmortizationMonths *int             // blend-and-extend: extend beyond original
}

// ScheduleInput drives GenerateSchedule.
type ScheduleInput struct {
	Principal          decimal.Decimal
	AnnualRate         decimal.Decimal
	AmortizationMonths int
	Frequency          domain.PaymentFrequency
	StartDate          time.Time
	// FixedPaymentAmount, when positive, is used instead of solving the
	// annuity; projections for variable-fixed terms use the actual payment.
	FixedPaymentAmount decimal.Decimal
	Prepayments        []PrepaymentEvent
	TermRenewals       []TermRenewalEvent
	MaxPayments        int // default 600
}

// ScheduleSummary aggregates a generated schedule.
type ScheduleSummary struct {
	TotalPayments       int             `json:"totalPayments"`
	TotalPrincipal      decimal.Decimal `json:"totalPrincipal"`
	TotalInterest       decimal.Decimal `json:"totalInterest"`
	TotalPrepayments    decimal.Decimal `json:"totalPrepayments"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	PayoffDate          *time.Time      `json:"payoffDate,omitempty"`
	PayoffPaymentNumber int             `json:"payoffPaymentNumber,omitempty"`
}

// AmortizationSchedule is the full payment-by-payment projection.
type AmortizationSchedule struct {
	Payments []domain.PaymentRecord `json:"payments"`
	Summary  ScheduleSummary        `json:"summary"`
}

// paidOffThreshold: balances under one cent are treated as retired.
var paidOffThreshold = decimal.NewFromFloat(0.01)

// GenerateSchedule produces a complete amortization schedule with
// prepayments and term renewals. Payment n's remaining balance feeds
// payment n+1. When a fixed payment no longer covers interest the unpaid
// interest capitalizes (negative amortization) and the row is flagged.
func GenerateSchedule(in ScheduleInput) (*AmortizationSchedule, error) {
	if in.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidBalance
	}
	if in.AmortizationMonths <= 0 {
		return nil, ErrInvalidAmortization
	}
	perYear, err := PaymentsPerYear(in.Frequency)
	if err != nil {
		return nil, err
	}
	maxPayments := in.MaxPayments
	if maxPayments <= 0 {
		maxPayments = 600
	}

	balance := in.Principal
	rate := in.AnnualRate
	amortMonths := in.AmortizationMonths
	payment := in.FixedPaymentAmount
	if payment.LessThanOrEqual(decimal.Zero) {
		payment, err = CalculatePayment(balance, rate, amortMonths, in.Frequency)
		if err != nil {
			return nil, err
		}
	}

	var (
		records                              []domain.PaymentRecord
		cumPrincipal, cumInterest, cumPrepay decimal.Decimal
	)
	date := in.StartDate
	for number := 1; balance.GreaterThan(paidOffThreshold) && number <= maxPayments; number++ {
		if renewal := findRenewal(in.TermRenewals, number); renewal != nil {
			rate = renewal.NewRate
			if renewal.ExtendedAmortizationMonths != nil {
				amortMonths = *renewal.ExtendedAmortizationMonths
			} else if renewal.ResetAmortizationMonths != nil {
				amortMonths = *renewal.ResetAmortizationMonths
			}
			if renewal.NewPaymentAmount != nil {
				payment = *renewal.NewPaymentAmount
			} else {
				payment, err = CalculatePayment(balance, rate, amortMonths, in.Frequency)
				if err != nil {
					return nil, err
				}
			}
		}

		interest, err := InterestPortion(balance, rate, in.Frequency)
		if err != nil {
			return nil, err
		}

		triggerHit := payment.LessThanOrEqual(interest)
		principal := decimal.Zero
		unpaidInterest := decimal.Zero
		if triggerHit {
			unpaidInterest = interest.Sub(payment)
		} else {
			principal = roundCents(payment.Sub(interest))
			if principal.GreaterThan(balance) {
				principal = balance
			}
		}

		prepay := prepaymentsDue(in.Prepayments, number, perYear, date.Month(), payment)
		if triggerHit {
			if limit := balance.Add(unpaidInterest); prepay.GreaterThan(limit) {
				prepay = limit
			}
		} else if limit := balance.Sub(principal); prepay.GreaterThan(limit) {
			prepay = limit
		}

		if triggerHit {
			balance = balance.Add(unpaidInterest).Sub(prepay)
		} else {
			balance = balance.Sub(principal).Sub(prepay)
			if balance.IsNegative() {
				balance = decimal.Zero
			}
		}

		cumPrincipal = cumPrincipal.Add(principal).Add(prepay)
		cumInterest = cumInterest.Add(interest)
		cumPrepay = cumPrepay.Add(prepay)

		remaining := 0
		if balance.GreaterThan(paidOffThreshold) {
			remaining, err = RemainingAmortization(balance, payment.Add(prepay), rate, in.Frequency)
			if err != nil {
				return nil, err
			}
		}

		records = append(records, domain.PaymentRecord{
			PaymentNumber:               number,
			PaymentDate:                 date,
			PaymentAmount:               payment,
			PrincipalPaid:               principal,
			InterestPaid:                interest,
			PrepaymentAmount:            prepay,
			RemainingBalance:            balance,
			RemainingAmortizationMonths: remaining,
			EffectiveRate:               rate,
			TriggerRateHit:              triggerHit,
		})
		date = advancePaymentDate(date, in.Frequency)
	}

	summary := ScheduleSummary{
		TotalPayments:    len(records),
		TotalPrincipal:   cumPrincipal,
		TotalInterest:    cumInterest,
		TotalPrepayments: cumPrepay,
		TotalCost:        cumPrincipal.Add(cumInterest),
	}
	if n := len(records); n > 0 && records[n-1].RemainingBalance.LessThan(paidOffThreshold) {
		last := records[n-1]
		payoff := last.PaymentDate
		summary.PayoffDate = &payoff
		summary.PayoffPaymentNumber = last.PaymentNumber
	}
	return &AmortizationSchedule{Payments: records, Summary: summary}, nil
}

func findRenewal(renewals []TermRenewalEvent, paymentNumber int) *TermRenewalEvent {
	for i := range renewals {
		if renewals[i].StartPaymentNumber == paymentNumber {
			return &renewals[i]
		}
	}
	return nil
}

// prepaymentsDue sums the extra principal owed at a given payment number.
// Annual events fire in their recurrence month once per payment-year window.
func prepaymentsDue(events []PrepaymentEvent, number, perYear int, month time.Month, payment decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, ev := range events {
		switch ev.Type {
		case PrepaymentMonthlyPercent:
			if number >= ev.StartPaymentNumber {
				total = total.Add(payment.Mul(ev.MonthlyPercent).Div(hundred))
			}
		case PrepaymentOneTime:
			if number == ev.StartPaymentNumber {
				total = total.Add(ev.Amount)
			}
		case PrepaymentPerPayment:
			if number >= ev.StartPaymentNumber {
				total = total.Add(ev.Amount)
			}
		case PrepaymentAnnual:
			if number < ev.StartPaymentNumber || ev.RecurrenceMonth != month {
				continue
			}
			yearsSince := (number - ev.StartPaymentNumber) / perYear
			expected := ev.StartPaymentNumber + yearsSince*perYear
			if abs(number-expected) < perYear {
				total = total.Add(ev.Amount)
			}
		}
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// advancePaymentDate steps to the next payment date. Monthly clamps to the
// last valid day of the target month; semi-monthly aligns to the 1st and
// 15th, the common Canadian lender convention.
func advancePaymentDate(date time.Time, frequency domain.PaymentFrequency) time.Time {
	switch frequency {
	case domain.FrequencyMonthly:
		year, month, day := date.Date()
		first := time.Date(year, month+1, 1, 0, 0, 0, 0, date.Location())
		if last := first.AddDate(0, 1, -1).Day(); day > last {
			day = last
		}
		return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, date.Location())
	case domain.FrequencySemiMonthly:
		year, month, day := date.Date()
		if day < 15 {
			return time.Date(year, month, 15, 0, 0, 0, 0, date.Location())
		}
		return time.Date(year, month+1, 1, 0, 0, 0, 0, date.Location())
	case domain.FrequencyBiweekly, domain.FrequencyAcceleratedBiweekly:
		return date.AddDate(0, 0, 14)
	default:
		return date.AddDate(0, 0, 7)
	}
}
