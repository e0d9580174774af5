package model

import "errors"

// Sentinel errors shared by the builders, the executor and the scheduler.
var (
	// Reference errors
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicateID      = errors.New("duplicate wepp id")
	ErrMissingInput     = errors.New("missing input file")

	// Watershed errors
	ErrTopologyMismatch    = errors.New("topology mismatch")
	ErrClimateModeMismatch = errors.New("climate mode mismatch")
	ErrRoutingIncapable    = errors.New("run file does not support routing")

	// Mode errors
	ErrUnsupportedMode = errors.New("unsupported climate mode")

	// Execution errors
	ErrSimulationFailed = errors.New("simulation failed")
	ErrDependencyCycle  = errors.New("cycle detected in run dependencies")
)
