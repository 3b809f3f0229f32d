package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/recordkit"
)

// Definition is a parsed schema document: the rule set plus the rename table.
// Mapping is the zero FieldMap when the document declares none.
type Definition struct {
	Rules   *RuleSet
	Mapping FieldMap
}

// LoadOption configures schema parsing.
type LoadOption func(*loadConfig)

type loadConfig struct {
	predicates map[string]Predicate
}

// WithPredicates registers named predicates referenced by schema documents.
// Multiple calls merge; later registrations win on name collisions.
func WithPredicates(reg map[string]Predicate) LoadOption {
	return func(cfg *loadConfig) {
		for name, p := range reg {
			cfg.predicates[name] = p
		}
	}
}

type fileSchema struct {
	Fields  []fileField       `yaml:"fields"`
	Mapping map[string]string `yaml:"mapping"`
}

type fileField struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	MaxLength     *int   `yaml:"max_length"`
	RequiredField *bool  `yaml:"required_field"`
	RequiredValue *bool  `yaml:"required_value"`
	Predicate     string `yaml:"predicate"`
}

// Parse builds a Definition from a YAML schema document. JSON documents parse
// too, since YAML is a superset of JSON.
func Parse(data []byte, opts ...LoadOption) (*Definition, error) {
	cfg := loadConfig{predicates: make(map[string]Predicate)}
	for _, opt := range opts {
		opt(&cfg)
	}

	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	rules := make([]FieldRule, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		var fieldOpts []FieldOption
		if f.Type != "" {
			kind, err := recordkit.ParseKind(f.Type)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			fieldOpts = append(fieldOpts, OfType(kind))
		}
		if f.MaxLength != nil {
			fieldOpts = append(fieldOpts, MaxLength(*f.MaxLength))
		}
		if f.RequiredField != nil && !*f.RequiredField {
			fieldOpts = append(fieldOpts, Optional())
		}
		if f.RequiredValue != nil && !*f.RequiredValue {
			fieldOpts = append(fieldOpts, AllowEmpty())
		}
		if f.Predicate != "" {
			p, ok := cfg.predicates[f.Predicate]
			if !ok {
				return nil, fmt.Errorf("%w: %q on field %q", ErrUnknownPredicate, f.Predicate, f.Name)
			}
			fieldOpts = append(fieldOpts, WithPredicate(p))
		}
		rules = append(rules, Field(f.Name, fieldOpts...))
	}

	rs, err := NewRuleSet(rules...)
	if err != nil {
		return nil, err
	}

	fm := FieldMap{}
	if len(doc.Mapping) > 0 {
		fm, err = NewFieldMap(doc.Mapping)
		if err != nil {
			return nil, err
		}
	}

	return &Definition{Rules: rs, Mapping: fm}, nil
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string, opts ...LoadOption) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	def, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return def, nil
}
