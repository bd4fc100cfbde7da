package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// BathDutyRule schedules a bath cleaning variant on the dates matched by an
// RRULE (e.g. draining cleans every Friday)
type BathDutyRule struct {
	RRule string `yaml:"rrule" validate:"required"`
	Type  string `yaml:"type" validate:"required,oneof=normal with_draining"`
}

// PointWeightOverrides optionally replaces individual point weights.
// Omitted entries keep the standard weight.
type PointWeightOverrides struct {
	Single       *float64 `yaml:"single,omitempty" validate:"omitempty,gt=0"`
	Double       *float64 `yaml:"double,omitempty" validate:"omitempty,gt=0"`
	Twin         *float64 `yaml:"twin,omitempty" validate:"omitempty,gt=0"`
	FamilyDouble *float64 `yaml:"familyDouble,omitempty" validate:"omitempty,gt=0"`
	Eco          *float64 `yaml:"eco,omitempty" validate:"omitempty,gt=0"`
}

// BathDutyCosts sets the point cost of each bath duty variant
type BathDutyCosts struct {
	Normal       *float64 `yaml:"normal,omitempty" validate:"omitempty,gte=0"`
	WithDraining *float64 `yaml:"withDraining,omitempty" validate:"omitempty,gte=0"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	PointWeights   PointWeightOverrides `yaml:"pointWeights,omitempty"`
	BathDutyCosts  BathDutyCosts        `yaml:"bathDutyCosts,omitempty"`
	SplitThreshold *float64             `yaml:"splitThreshold,omitempty" validate:"omitempty,gt=0,lte=1"`

	BathDutySchedule []BathDutyRule `yaml:"bathDutySchedule,omitempty" validate:"dive"`

	OAuth          *OAuthClientConfig `yaml:"oauth,omitempty"`
	GmailUserID    string   `yaml:"gmailUserID,omitempty"`
	GmailSender    string   `yaml:"gmailSender,omitempty"`
	PlanRecipients []string `yaml:"planRecipients,omitempty" validate:"dive,email"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration for the given environment.
// An empty env loads roomrota_config.yaml; otherwise the file name carries
// the environment suffix (roomrota_config_prod.yaml etc.).
func LoadWithEnv(env string) (*Config, error) {
	name := "roomrota_config.yaml"
	if env != "" {
		name = fmt.Sprintf("roomrota_config_%s.yaml", env)
	}

	path, err := findConfigFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax in
// the bath duty schedule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.BathDutySchedule {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in bathDutySchedule[%d]: %w", i, err)
		}
	}

	return nil
}

// EngineSettings resolves the allocation engine settings from the config,
// falling back to the standard defaults for anything not overridden
func (c *Config) EngineSettings() allocator.Settings {
	settings := allocator.DefaultSettings()

	if c.PointWeights.Single != nil {
		settings.Weights.Single = *c.PointWeights.Single
	}
	if c.PointWeights.Double != nil {
		settings.Weights.Double = *c.PointWeights.Double
	}
	if c.PointWeights.Twin != nil {
		settings.Weights.Twin = *c.PointWeights.Twin
	}
	if c.PointWeights.FamilyDouble != nil {
		settings.Weights.FamilyDouble = *c.PointWeights.FamilyDouble
	}
	if c.PointWeights.Eco != nil {
		settings.Weights.Eco = *c.PointWeights.Eco
	}
	if c.BathDutyCosts.Normal != nil {
		settings.BathCostNormal = *c.BathDutyCosts.Normal
	}
	if c.BathDutyCosts.WithDraining != nil {
		settings.BathCostWithDraining = *c.BathDutyCosts.WithDraining
	}
	if c.SplitThreshold != nil {
		settings.SplitThreshold = *c.SplitThreshold
	}

	return settings
}

// BathTypeFor resolves the bath cleaning variant for a date from the
// schedule. The first matching rule wins; no match means no bath duty.
func (c *Config) BathTypeFor(date time.Time) (model.BathCleaningType, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	for i, entry := range c.BathDutySchedule {
		rule, err := rrule.StrToRRule(entry.RRule)
		if err != nil {
			return model.BathNone, fmt.Errorf("invalid rrule in bathDutySchedule[%d]: %w", i, err)
		}

		// Anchor the rule shortly before the target date so Between only
		// has to scan a narrow window
		rule.DTStart(day.AddDate(0, 0, -7))
		occurrences := rule.Between(day.AddDate(0, 0, -1), day.AddDate(0, 0, 1), true)
		for _, occurrence := range occurrences {
			if occurrence.Year() == day.Year() && occurrence.YearDay() == day.YearDay() {
				bathType := model.BathCleaningType(entry.Type)
				if !bathType.IsValid() {
					return model.BathNone, fmt.Errorf("invalid bath type %q in bathDutySchedule[%d]", entry.Type, i)
				}
				return bathType, nil
			}
		}
	}

	return model.BathNone, nil
}

// findConfigFile searches for the config file in the current directory and
// the user's home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
