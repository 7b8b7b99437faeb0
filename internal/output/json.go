package output

import (
	"encoding/json"
)

// JSONFormatter emits the whole report as indented json.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *PlanReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
