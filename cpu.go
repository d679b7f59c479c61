package towerfield

import "golang.org/x/sys/cpu"

// cpuHint reports the BMI2 feature flag the teacher core used to dispatch
// between two assembly Montgomery multiplication routines. This module's
// basefield facade is assembly-free and portable, so the hint is informational
// only: it is logged at Init so operators can see what the equivalent
// assembly-backed build would have chosen.
func cpuHint() string {
	if cpu.X86.HasBMI2 {
		return "bmi2"
	}
	return "generic"
}
