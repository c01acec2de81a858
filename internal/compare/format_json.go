package compare

import (
	"encoding/json"
)

// JSONFormatter marshals the full comparison set.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(set *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFormatterByName returns the comparison formatter with the given name,
// or nil when none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range []Formatter{TableFormatter{}, CSVFormatter{}, JSONFormatter{}} {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
