package fsm

import (
	"fmt"
	"io"
	"os"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// document mirrors the configuration file layout:
//
//	initial: idle
//	states:
//	  idle:
//	    transitions:
//	      start: running
//	  running:
//	    transitions:
//	      stop: idle
//
// States are kept as a raw node so that their declaration order survives decoding.
type document struct {
	Initial string    `yaml:"initial"`
	States  yaml.Node `yaml:"states"`
}

type stateDocument struct {
	Transitions map[string]string `yaml:"transitions" mapstructure:"transitions"`
}

// ParseConfig decodes a YAML document into a Config. JSON documents are accepted too.
// States keep the order in which the document lists them. The result is validated.
func ParseConfig(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ErrConfig{Reason: "cannot decode document", Err: err}
	}

	cfg := NewConfig(State(doc.Initial))

	switch doc.States.Kind {
	case 0:
		return nil, &ErrConfig{Reason: "states are required"}
	case yaml.MappingNode:
	default:
		return nil, &ErrConfig{Reason: fmt.Sprintf("states must be a mapping (line %d)", doc.States.Line)}
	}

	content := doc.States.Content
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i], content[i+1]
		name := State(key.Value)

		if cfg.Has(name) {
			return nil, &ErrConfig{Reason: fmt.Sprintf("state %q declared twice (line %d)", name, key.Line)}
		}

		var sd stateDocument
		if value.Tag != "!!null" {
			if err := value.Decode(&sd); err != nil {
				return nil, &ErrConfig{Reason: fmt.Sprintf("state %q", name), Err: err}
			}
		}

		cfg.State(name, toTransitions(sd.Transitions))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads and decodes a configuration document from r.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// LoadConfigFile reads and decodes the configuration document at path.
func LoadConfigFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	return LoadConfig(file)
}

// ConfigFromMap decodes a configuration held in generic maps, as produced by
// json.Unmarshal into map[string]any or by other loosely typed sources.
// Go maps carry no order, so states are declared in alphabetical order.
func ConfigFromMap(raw map[string]any) (*Config, error) {
	if raw == nil {
		return nil, &ErrConfig{Reason: "config is required"}
	}

	var doc struct {
		Initial string                   `mapstructure:"initial"`
		States  map[string]stateDocument `mapstructure:"states"`
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, &ErrConfig{Reason: "cannot decode map", Err: err}
	}

	var names g.Slice[State]
	for name := range doc.States {
		names.Push(State(name))
	}

	names.SortBy(cmp.Cmp)

	cfg := NewConfig(State(doc.Initial))
	for name := range names.Iter() {
		cfg.State(name, toTransitions(doc.States[string(name)].Transitions))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func toTransitions(raw map[string]string) Transitions {
	t := make(Transitions, len(raw))
	for event, to := range raw {
		t[Event(event)] = State(to)
	}

	return t
}
