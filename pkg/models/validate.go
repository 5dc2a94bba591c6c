package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaViolation reports a query value outside the closed schema. It always
// names the offending field so translation failures are diagnosable from
// logs alone.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation on %q: %s", e.Field, e.Reason)
}

// ParseQuery decodes raw JSON into a Query, normalizes it, and validates it.
// strict rejects unknown keys and is the variant used for LLM output, where
// an unrecognized field means the model invented schema.
func ParseQuery(raw []byte, strict bool) (*Query, error) {
	var q Query
	dec := json.NewDecoder(bytes.NewReader(raw))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&q); err != nil {
		return nil, &SchemaViolation{Field: "query", Reason: err.Error()}
	}
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// Normalize coerces explicit null / empty-string / empty-array values on
// optional fields to absent, and fills ordering and limit defaults. The
// text-generation capability frequently emits JSON null or "" for a field it
// did not use; treating those as present would fail validation for what is
// really a legitimate omission. Normalize must run before Validate, and it
// is idempotent.
func (q *Query) Normalize() {
	q.Task = Task(strings.ToLower(strings.TrimSpace(string(q.Task))))
	q.Metric = Metric(strings.ToLower(strings.TrimSpace(string(q.Metric))))
	q.Position = Position(strings.ToLower(strings.TrimSpace(string(q.Position))))
	q.OrderDirection = OrderDirection(strings.ToLower(strings.TrimSpace(string(q.OrderDirection))))

	q.Team = compactStrings(q.Team)
	if q.OrderDirection == "" {
		q.OrderDirection = OrderDesc
	}
	// Team queries keep a zero limit to mean "none given": the team planner
	// reads that as a single-team request rather than a ranked list.
	if q.Limit <= 0 {
		q.Limit = 0
		if q.Task != TaskTeam {
			q.Limit = DefaultLimit
		}
	}

	if q.Filters != nil {
		f := q.Filters
		f.Players = compactStrings(f.Players)
		f.Colleges = compactStrings(f.Colleges)
		f.Countries = compactStrings(f.Countries)
		if f.DraftYearRange.Empty() {
			f.DraftYearRange = nil
		}
		if f.AgeRange.Empty() {
			f.AgeRange = nil
		}
		if f.MinutesRange.Empty() {
			f.MinutesRange = nil
		}
		if f.SalaryRange.Empty() {
			f.SalaryRange = nil
		}
		f.FilterByMetric = Metric(strings.ToLower(strings.TrimSpace(string(f.FilterByMetric))))
		// filter_by_metric only means something alongside a threshold, and
		// is redundant when it coincides with the rank metric.
		if f.FilterByMetric == q.Metric {
			f.FilterByMetric = ""
		}
		f.OrderByAge = strings.ToLower(strings.TrimSpace(f.OrderByAge))
		if f.Empty() {
			q.Filters = nil
		}
	}
}

// Validate enforces the closed schema. Callers must Normalize first.
func (q *Query) Validate() error {
	if q.Task == "" {
		return &SchemaViolation{Field: "task", Reason: "required"}
	}
	if !Tasks[q.Task] {
		return &SchemaViolation{Field: "task", Reason: fmt.Sprintf("unknown task %q", q.Task)}
	}
	if q.Task != TaskTeam {
		if q.Metric == "" {
			return &SchemaViolation{Field: "metric", Reason: "required"}
		}
	}
	if q.Metric != "" && !ValidMetric(q.Metric) {
		return &SchemaViolation{Field: "metric", Reason: fmt.Sprintf("unknown metric %q", q.Metric)}
	}
	if q.Season <= 0 {
		return &SchemaViolation{Field: "season", Reason: "must be a positive year"}
	}
	if q.Position != "" && !Positions[q.Position] {
		return &SchemaViolation{Field: "position", Reason: fmt.Sprintf("unknown position %q", q.Position)}
	}
	if q.OrderDirection != OrderAsc && q.OrderDirection != OrderDesc {
		return &SchemaViolation{Field: "order_direction", Reason: "must be asc or desc"}
	}
	if q.Filters != nil && q.Filters.FilterByMetric != "" {
		if !ValidMetric(q.Filters.FilterByMetric) || q.Filters.FilterByMetric == MetricAll {
			return &SchemaViolation{Field: "filters.filter_by_metric", Reason: fmt.Sprintf("unknown metric %q", q.Filters.FilterByMetric)}
		}
	}
	return nil
}

func compactStrings[S ~[]string](in S) S {
	if len(in) == 0 {
		return nil
	}
	out := in[:0]
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
