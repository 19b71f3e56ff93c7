package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Scenario describes the virtual clients driven by the simulator.
type Scenario struct {
	Clients int `envconfig:"SIM_CLIENTS" default:"12"`
	// SIM_SWITCHERS clients move to the last catalogue room after auto-assignment
	Switchers int  `envconfig:"SIM_SWITCHERS" default:"3"`
	Typing    bool `envconfig:"SIM_TYPING" default:"true"`
	// SIM_LEAVERS clients disconnect before the final report
	Leavers int           `envconfig:"SIM_LEAVERS" default:"4"`
	Settle  time.Duration `envconfig:"SIM_SETTLE" default:"200ms"`
	Colours bool          `envconfig:"SIM_COLOURS" default:"true"`
}

func LoadScenario() (Scenario, error) {
	var scenario Scenario
	err := envconfig.Process("", &scenario)
	return scenario, err
}
