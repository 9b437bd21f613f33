//go:build !vstovsc_profiling

package utils

const PROFILING_ENABLED = false

/***************************************
 * Profiling Mode (disabled)
 ***************************************/

func StartProfiling() func() {
	return PurgeProfiling
}

func PurgeProfiling() {
}
