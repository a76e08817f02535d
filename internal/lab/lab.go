// Package lab ties the interactive modes together. Each mode lives in
// its own subpackage and registers itself with the registry; this
// package holds the shared contracts the platform type-asserts against.
package lab

import "github.com/vovakirdan/gridkit/internal/scenario"

// ScenarioAware is implemented by modes that can replace their world
// with a loaded scenario. The platform checks for it after Reset and
// applies the requested scenario when present.
type ScenarioAware interface {
	ApplyScenario(s *scenario.Scenario)
}
