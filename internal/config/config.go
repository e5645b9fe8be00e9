package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/kubev2v/concrete-planner/internal/scenario"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type Config struct {
	Service *svcConfig
}

type svcConfig struct {
	LogLevel     string `envconfig:"CONCRETE_PLANNER_LOG_LEVEL" default:"info"`
	ScenarioFile string `envconfig:"CONCRETE_PLANNER_SCENARIO_FILE" default:""`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Scenario returns the built-in scenario, overlaid with the scenario file when one is configured.
func (c *Config) Scenario() (scenario.Config, error) {
	if c.Service == nil || c.Service.ScenarioFile == "" {
		return scenario.DefaultConfig(), nil
	}
	return LoadScenario(c.Service.ScenarioFile)
}

// LoadScenario reads a YAML scenario file. Fields absent from the file keep
// the values of scenario.DefaultConfig.
func LoadScenario(path string) (scenario.Config, error) {
	cfg := scenario.DefaultConfig()

	contents, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read scenario file")
	}
	if err := yaml.UnmarshalStrict(contents, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to unmarshal scenario file %s", path)
	}
	return cfg, nil
}
