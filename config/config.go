// Package config loads and validates solver settings from YAML.
//
// Example file:
//
//	start: AA
//	budget: 30
//	team_budget: 26
//	workers: 4
//	symmetric: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values for the canonical puzzle.
const (
	DefaultStart      = "AA"
	DefaultBudget     = 30
	DefaultTeamBudget = 26
	DefaultWorkers    = 1
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of one solve.
type Config struct {
	// Start names the valve every agent starts from.
	Start string `yaml:"start" validate:"required"`

	// Budget is the single-agent time budget in minutes.
	Budget int `yaml:"budget" validate:"gte=0,lte=1000"`

	// TeamBudget is the per-agent time budget of the two-agent variant.
	TeamBudget int `yaml:"team_budget" validate:"gte=0,lte=1000"`

	// Workers is the goroutine count used by the pair scan.
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`

	// Symmetric mirrors every declared tunnel when building the network.
	Symmetric bool `yaml:"symmetric"`
}

// Default returns the canonical settings: start at AA, 30 and 26 minutes,
// sequential pair scan.
func Default() Config {
	return Config{
		Start:      DefaultStart,
		Budget:     DefaultBudget,
		TeamBudget: DefaultTeamBudget,
		Workers:    DefaultWorkers,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report yaml field names rather than Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validate checks c against its field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}
