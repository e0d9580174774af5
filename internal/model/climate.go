package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ClimateMode selects how the climate file is interpreted by the simulator.
type ClimateMode string

const (
	// ModeContinuous simulates a multi-year continuous climate record.
	ModeContinuous ClimateMode = "continuous"
	// ModeSingleStorm simulates one design storm.
	ModeSingleStorm ClimateMode = "ss"
	// ModeSingleStormBatch simulates many storms, one run file per storm.
	ModeSingleStormBatch ClimateMode = "ss_batch"
)

// ParseClimateMode accepts the canonical names and their long forms.
func ParseClimateMode(s string) (ClimateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "continuous", "cont":
		return ModeContinuous, nil
	case "ss", "single-storm", "single_storm":
		return ModeSingleStorm, nil
	case "ss_batch", "ss-batch", "single-storm-batch", "single_storm_batch":
		return ModeSingleStormBatch, nil
	}

	return "", fmt.Errorf("climate mode %q: %w", s, ErrUnsupportedMode)
}

// Storm is one segment of a single-storm batch.
type Storm struct {
	ID  int    `yaml:"id" hcl:"id"`
	Key string `yaml:"key,omitempty" hcl:"key,optional"`
}

// BatchKey names the output subdirectory for the storm. It defaults to the
// storm id.
func (s Storm) BatchKey() string {
	if strings.TrimSpace(s.Key) != "" {
		return s.Key
	}

	return strconv.Itoa(s.ID)
}

// ModeLedger records the climate mode each hillslope output was produced with.
type ModeLedger map[WeppID]ClimateMode
