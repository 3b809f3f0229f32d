package processor

import "github.com/dmitrymomot/recordkit/schema"

// Config holds processor settings sourced from environment variables,
// loadable with the pkg/config loader.
type Config struct {
	// DuplicatePolicy is the textual policy name: "ignore", "filter", or
	// "abort".
	DuplicatePolicy string `env:"PROCESSOR_DUPLICATE_POLICY" envDefault:"ignore"`

	// Workers is the validate+map fan-out width. One means sequential.
	Workers int `env:"PROCESSOR_WORKERS" envDefault:"1"`
}

// NewFromConfig builds a processor from environment-sourced settings. Extra
// options apply on top of the configured policy and worker count.
func NewFromConfig(cfg Config, rules *schema.RuleSet, fields schema.FieldMap, opts ...Option) (*Processor, error) {
	policy, err := ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithDuplicatePolicy(policy),
		WithWorkers(cfg.Workers),
	}
	return New(rules, fields, append(base, opts...)...)
}
