package analysis

import "fmt"

// Operation identifies one screening rule
type Operation string

// Supported operations
const (
	OpFilterByQuarter      Operation = "filter_by_quarter"
	OpMaturedWithBalance   Operation = "matured_with_balance"
	OpZeroInterest         Operation = "zero_interest_accounts"
	OpDisbursementWriteoff Operation = "disbursement_and_writeoff"
	OpDisbursementNPA      Operation = "disbursement_and_npa"
	OpSameDayClosure       Operation = "same_day_closure_disbursement"
)

var reportNames = map[Operation]string{
	OpFilterByQuarter:      "filtered_by_quarter",
	OpMaturedWithBalance:   "matured_with_balance",
	OpZeroInterest:         "zero_interest_accounts",
	OpDisbursementWriteoff: "disbursement_writeoff",
	OpDisbursementNPA:      "disbursement_npa",
	OpSameDayClosure:       "same_day_closure_disbursement",
}

// Operations lists every operation in a stable order
func Operations() []Operation {
	return []Operation{
		OpFilterByQuarter,
		OpMaturedWithBalance,
		OpZeroInterest,
		OpDisbursementWriteoff,
		OpDisbursementNPA,
		OpSameDayClosure,
	}
}

// ReportName returns the base name used for files holding the operation's result
func (o Operation) ReportName() string {
	if n, ok := reportNames[o]; ok {
		return n
	}
	return string(o)
}

// ParseOperation resolves an operation by name
func ParseOperation(s string) (Operation, error) {
	op := Operation(s)
	if _, ok := reportNames[op]; !ok {
		return "", fmt.Errorf("unknown operation %q", s)
	}
	return op, nil
}
