package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/slotbroker/slotbroker/broker"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Participants int     `yaml:"participants"`
	Slots        int     `yaml:"slots"`
	Tasks        int     `yaml:"tasks"`
	Compute      float64 `yaml:"compute_seconds"`
	Resource     float64 `yaml:"resource_seconds"`
}

// GetScenarioConfig loads the named scenario preset from a YAML file.
// Returns nil when the file has no scenario under that name.
func GetScenarioConfig(scenarioFilePath string, scenarioName string) *broker.Config {
	// Read YAML file
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		panic(err)
	}

	// Parse YAML
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(err)
	}

	if scenario, scenarioExists := cfg.Scenarios[scenarioName]; scenarioExists {
		logrus.Infof("Using preset scenario %v\n", scenarioName)
		return &broker.Config{
			Participants:   scenario.Participants,
			Slots:          scenario.Slots,
			TasksPerWorker: scenario.Tasks,
			Compute:        time.Duration(scenario.Compute * float64(time.Second)),
			Resource:       time.Duration(scenario.Resource * float64(time.Second)),
		}
	}
	return nil
}
