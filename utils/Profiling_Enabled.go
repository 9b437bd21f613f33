//go:build vstovsc_profiling

package utils

import (
	"runtime"
	"strings"

	"github.com/pkg/profile"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
)

const PROFILING_ENABLED = true

var LogProfiling = base.NewLogCategory("Profiling")

/***************************************
 * Profiling mode
 ***************************************/

type ProfilingMode byte

const (
	PROFILING_CPU ProfilingMode = iota
	PROFILING_MEMORY
	PROFILING_TRACE
)

func (x ProfilingMode) Mode() func(*profile.Profile) {
	switch x {
	case PROFILING_CPU:
		return profile.CPUProfile
	case PROFILING_MEMORY:
		return profile.MemProfile
	case PROFILING_TRACE:
		return profile.TraceProfile
	default:
		base.UnexpectedValue(x)
		return nil
	}
}
func (x ProfilingMode) String() string {
	switch x {
	case PROFILING_CPU:
		return "CPU"
	case PROFILING_MEMORY:
		return "MEM"
	case PROFILING_TRACE:
		return "TRACE"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x *ProfilingMode) Set(in string) (err error) {
	switch strings.ToUpper(in) {
	case PROFILING_CPU.String():
		*x = PROFILING_CPU
	case PROFILING_MEMORY.String():
		*x = PROFILING_MEMORY
	case PROFILING_TRACE.String():
		*x = PROFILING_TRACE
	default:
		err = base.MakeUnexpectedValueError(x, in)
	}
	return err
}

/***************************************
 * Profiling flags
 ***************************************/

type ProfilingFlags struct {
	Profiling ProfilingMode
}

var GetProfilingFlags = NewGlobalCommandParsableFlags("profiling options", &ProfilingFlags{
	Profiling: PROFILING_CPU,
})

func (flags *ProfilingFlags) Flags(cfv CommandFlagsVisitor) {
	cfv.Variable("Profiling", "set profiling mode", &flags.Profiling)
}

/***************************************
 * Profiler
 ***************************************/

var running_profiler interface {
	Stop()
}

func StartProfiling() func() {
	profiling := GetProfilingFlags().Profiling
	base.LogWarning(LogProfiling, "use %v profiling mode", profiling)
	if profiling == PROFILING_CPU {
		runtime.SetCPUProfileRate(300) // default is 100
	}
	running_profiler = profile.Start(
		profiling.Mode(),
		profile.NoShutdownHook,
		profile.ProfilePath("."))
	return PurgeProfiling
}

func PurgeProfiling() {
	if running_profiler != nil {
		running_profiler.Stop()
		running_profiler = nil
	}
}
