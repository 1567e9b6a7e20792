package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a recorded-session replay scenario.
//
// Scenarios hold the responses of a captured session in order, so a session
// can be re-run through the response mapper deterministically, offline.
type Scenario struct {
	// Name identifies the scenario; it doubles as the trace name when the
	// replay is recorded.
	Name string `yaml:"name"`

	// Description explains what the session captured.
	Description string `yaml:"description,omitempty"`

	// Steps are replayed in order.
	Steps []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one captured call.
type ScenarioStep struct {
	// Kind is "query" or "action"; empty defaults to "query".
	Kind string `yaml:"kind,omitempty"`

	// Type is the query type or action name (e.g., "Totals", "EndSession").
	Type string `yaml:"type"`

	// Response is the raw response body inline.
	Response string `yaml:"response,omitempty"`

	// ResponseFile is a path to the response body, relative to the
	// scenario file. Takes precedence over Response when set.
	ResponseFile string `yaml:"response_file,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
// ResponseFile paths are resolved against the scenario's directory and
// loaded into Response, so callers only ever read Response.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one step is required", path)
	}

	baseDir := filepath.Dir(path)
	for i := range scenario.Steps {
		step := &scenario.Steps[i]
		if step.Kind == "" {
			step.Kind = "query"
		}
		if step.Kind != "query" && step.Kind != "action" {
			return nil, fmt.Errorf("scenario %s: step %d: unknown kind %q", path, i+1, step.Kind)
		}
		if step.Type == "" {
			return nil, fmt.Errorf("scenario %s: step %d: type is required", path, i+1)
		}
		if step.ResponseFile != "" {
			body, err := os.ReadFile(filepath.Join(baseDir, step.ResponseFile))
			if err != nil {
				return nil, fmt.Errorf("scenario %s: step %d: %w", path, i+1, err)
			}
			step.Response = string(body)
		}
	}

	return &scenario, nil
}
