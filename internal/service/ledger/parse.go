package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
)

// savedDocument is the JSON shape a ledger persists as. Older documents
// may carry employeeName without the split name fields.
type savedDocument struct {
	Title          string                `json:"title"`
	PayPeriodStart string                `json:"payPeriodStart"`
	PayPeriodEnd   string                `json:"payPeriodEnd"`
	Employees      []payroll.PayrollData `json:"employees"`
}

// ParseSavedLedger reconstructs the payroll lines and pay period from a
// saved ledger document. Amounts come back exactly as stored; no figure is
// recomputed. The pay period dates are mandatory and must parse.
func ParseSavedLedger(blob []byte) ([]payroll.PayrollData, payroll.Period, error) {
	var doc savedDocument
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, payroll.Period{}, fmt.Errorf("decode saved ledger: %w", err)
	}

	if doc.PayPeriodStart == "" || doc.PayPeriodEnd == "" {
		return nil, payroll.Period{}, ledger.ErrMissingPeriod
	}
	start, err := parseDate(doc.PayPeriodStart)
	if err != nil {
		return nil, payroll.Period{}, ledger.ErrInvalidPeriod
	}
	end, err := parseDate(doc.PayPeriodEnd)
	if err != nil {
		return nil, payroll.Period{}, ledger.ErrInvalidPeriod
	}

	for i := range doc.Employees {
		normalizeNames(&doc.Employees[i])
	}

	return doc.Employees, payroll.Period{Start: start, End: end}, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// normalizeNames fills the split name fields from employeeName when a
// document predates them. "Last, First" splits on the first comma; a
// plain "First Middle Last" takes the final token as the last name.
func normalizeNames(line *payroll.PayrollData) {
	if line.FirstName == "" && line.LastName == "" && line.EmployeeName != "" {
		if last, first, found := strings.Cut(line.EmployeeName, ","); found {
			line.LastName = strings.TrimSpace(last)
			line.FirstName = strings.TrimSpace(first)
		} else {
			fields := strings.Fields(line.EmployeeName)
			if len(fields) > 0 {
				line.LastName = fields[len(fields)-1]
				line.FirstName = strings.Join(fields[:len(fields)-1], " ")
			}
		}
	}

	if line.EmployeeName == "" {
		switch {
		case line.LastName == "":
			line.EmployeeName = line.FirstName
		case line.FirstName == "":
			line.EmployeeName = line.LastName
		default:
			line.EmployeeName = line.LastName + ", " + line.FirstName
		}
	}
}
