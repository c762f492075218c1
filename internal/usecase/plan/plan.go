// Package plan holds the service plans account owners subscribe to and the
// commission function their plan supplies to every monetary operation.
package plan

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan is a user's service plan. Order matters: a plan change must move to
// a strictly higher plan.
type Plan int

const (
	Standard Plan = iota // 0.2% commission on transactions
	Student              // no commission
	Silver               // 0.1% commission above the RON threshold
	Gold                 // no commission
)

const (
	standardCommission = 1.002
	silverCommission   = 1.001
	silverThresholdRON = 500

	feeToSilver     = 100 // RON, from standard or student
	feeToGold       = 350 // RON, from standard or student
	feeSilverToGold = 250 // RON
)

var (
	// ErrDowngrade is reported when the target plan is below the current one
	ErrDowngrade = errors.New("you cannot downgrade your plan")

	// ErrSamePlan is reported when the target plan is already owned
	ErrSamePlan = errors.New("plan already owned")
)

// String returns the plan name as it appears in the command log
func (p Plan) String() string {
	switch p {
	case Student:
		return "student"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	default:
		return "standard"
	}
}

// Parse maps a command-log plan name onto a Plan
func Parse(name string) (Plan, error) {
	switch name {
	case "standard":
		return Standard, nil
	case "student":
		return Student, nil
	case "silver":
		return Silver, nil
	case "gold":
		return Gold, nil
	}
	return Standard, fmt.Errorf("unknown plan %q", name)
}

// Commission returns the multiplier applied to a transaction amount
// expressed in the reference currency (RON)
func (p Plan) Commission(refAmount float64) float64 {
	switch p {
	case Standard:
		return standardCommission
	case Silver:
		if refAmount > silverThresholdRON {
			return silverCommission
		}
		return 1
	default:
		return 1
	}
}

// UpgradeFee validates a plan change and returns the fee in RON
func UpgradeFee(current, next Plan) (float64, error) {
	if next == current {
		return 0, ErrSamePlan
	}
	if next < current {
		return 0, ErrDowngrade
	}
	if next != Silver && next != Gold {
		return 0, fmt.Errorf("cannot upgrade to the %s plan", next)
	}
	if current == Silver && next == Gold {
		return feeSilverToGold, nil
	}
	if next == Gold {
		return feeToGold, nil
	}
	return feeToSilver, nil
}

// ConvertFee converts a RON fee into the paying account's currency and
// rounds it to six decimal places, matching the record log's rounding
func ConvertFee(feeRON, rate float64) float64 {
	return decimal.NewFromFloat(feeRON * rate).Round(6).InexactFloat64()
}
