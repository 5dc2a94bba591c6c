// Package sqlguard screens LLM-supplied filter values for SQL injection
// patterns before they are bound as query parameters.
package sqlguard

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// CheckResult describes an injection pattern detected in a filter value.
type CheckResult struct {
	Fingerprint string // libinjection fingerprint of the detected pattern
	FilterName  string // Name of the filter that failed the check
	Value       string // The value that was checked
}

// CheckFilterValue runs libinjection against a single filter value. All
// filter values are bound as parameters, never interpolated, so a hit here
// means the model was steered rather than that the query was at risk; the
// value is dropped and logged upstream.
//
// Returns nil when no injection pattern is detected.
func CheckFilterValue(filterName, value string) *CheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if !isSQLi {
		return nil
	}
	return &CheckResult{
		Fingerprint: string(fingerprint),
		FilterName:  filterName,
		Value:       value,
	}
}

// CleanValues returns the subset of values that pass the injection check,
// along with the results for any that were dropped.
func CleanValues(filterName string, values []string) ([]string, []*CheckResult) {
	var clean []string
	var dropped []*CheckResult
	for _, v := range values {
		if result := CheckFilterValue(filterName, v); result != nil {
			dropped = append(dropped, result)
			continue
		}
		clean = append(clean, v)
	}
	return clean, dropped
}
