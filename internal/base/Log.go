package base

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var LogGlobal = NewLogCategory("Global")

/***************************************
 * Log categories
 ***************************************/

type LogCategory struct {
	Name string
}

func NewLogCategory(name string) *LogCategory {
	return &LogCategory{Name: name}
}

/***************************************
 * Log levels
 ***************************************/

type LogLevel int32

const (
	LOG_ALL LogLevel = iota
	LOG_DEBUG
	LOG_TRACE
	LOG_VERBOSE
	LOG_INFO
	LOG_CLAIM
	LOG_WARNING
	LOG_ERROR
	LOG_FATAL
)

func (x LogLevel) IsVisible(level LogLevel) bool {
	return int32(level) >= int32(x)
}
func (x LogLevel) Style(dst io.Writer) {
	switch x {
	case LOG_DEBUG:
		fmt.Fprint(dst, ANSI_FG0_MAGENTA, ANSI_FAINT)
	case LOG_TRACE:
		fmt.Fprint(dst, ANSI_FG0_CYAN, ANSI_FAINT)
	case LOG_VERBOSE:
		fmt.Fprint(dst, ANSI_FG0_BLUE)
	case LOG_INFO:
		fmt.Fprint(dst, ANSI_FG1_WHITE)
	case LOG_CLAIM:
		fmt.Fprint(dst, ANSI_FG1_GREEN, ANSI_BOLD)
	case LOG_WARNING:
		fmt.Fprint(dst, ANSI_FG0_YELLOW)
	case LOG_ERROR, LOG_FATAL:
		fmt.Fprint(dst, ANSI_FG1_RED, ANSI_BOLD)
	default:
		UnexpectedValue(x)
	}
}
func (x LogLevel) String() string {
	switch x {
	case LOG_ALL:
		return "ALL"
	case LOG_DEBUG:
		return "DEBUG"
	case LOG_TRACE:
		return "TRACE"
	case LOG_VERBOSE:
		return "VERBOSE"
	case LOG_INFO:
		return "INFO"
	case LOG_CLAIM:
		return "CLAIM"
	case LOG_WARNING:
		return "WARNING"
	case LOG_ERROR:
		return "ERROR"
	case LOG_FATAL:
		return "FATAL"
	default:
		UnexpectedValue(x)
		return ""
	}
}
func (x *LogLevel) Set(in string) error {
	switch strings.ToUpper(in) {
	case "ALL":
		*x = LOG_ALL
	case "DEBUG":
		*x = LOG_DEBUG
	case "TRACE":
		*x = LOG_TRACE
	case "VERBOSE":
		*x = LOG_VERBOSE
	case "INFO":
		*x = LOG_INFO
	case "CLAIM":
		*x = LOG_CLAIM
	case "WARNING":
		*x = LOG_WARNING
	case "ERROR":
		*x = LOG_ERROR
	case "FATAL":
		*x = LOG_FATAL
	default:
		return MakeUnexpectedValueError(x, in)
	}
	return nil
}

/***************************************
 * Basic logger
 ***************************************/

type basicLogger struct {
	MinimumLevel LogLevel
	ShowCategory bool
	Writer       io.Writer

	barrier sync.Mutex
}

var gLogger = basicLogger{
	MinimumLevel: LOG_INFO,
	ShowCategory: true,
	Writer:       os.Stderr,
}

func (x *basicLogger) IsVisible(level LogLevel) bool {
	return x.MinimumLevel.IsVisible(level)
}
func (x *basicLogger) Log(category *LogCategory, level LogLevel, msg string, args ...interface{}) {
	if !x.IsVisible(level) {
		return
	}

	x.barrier.Lock()
	defer x.barrier.Unlock()

	ansi := EnableAnsiColors()
	if ansi {
		level.Style(x.Writer)
	}
	if x.ShowCategory && category != nil {
		fmt.Fprintf(x.Writer, "%-10s ", category.Name)
	}
	fmt.Fprintf(x.Writer, msg, args...)
	if ansi {
		fmt.Fprint(x.Writer, ANSI_RESET)
	}
	fmt.Fprintln(x.Writer)
}

func SetLogVisibleLevel(level LogLevel) {
	gLogger.MinimumLevel = level
}
func IsLogLevelActive(level LogLevel) bool {
	return gLogger.IsVisible(level)
}

func LogDebug(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_DEBUG, msg, args...)
}
func LogTrace(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_TRACE, msg, args...)
}
func LogVerbose(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_VERBOSE, msg, args...)
}
func LogInfo(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_INFO, msg, args...)
}
func LogClaim(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_CLAIM, msg, args...)
}
func LogWarning(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_WARNING, msg, args...)
}
func LogError(category *LogCategory, msg string, args ...interface{}) {
	gLogger.Log(category, LOG_ERROR, msg, args...)
}
func LogFatal(msg string, args ...interface{}) {
	gLogger.Log(nil, LOG_FATAL, msg, args...)
	os.Exit(1)
}
func LogPanicIfFailed(category *LogCategory, err error) {
	if err != nil {
		LogError(category, "panic: caught error %v", err)
		panic(err)
	}
}

// LogForwardln relays raw subprocess output without styling.
func LogForwardln(msg string) {
	gLogger.barrier.Lock()
	defer gLogger.barrier.Unlock()
	fmt.Fprintln(gLogger.Writer, msg)
}

/***************************************
 * Errors
 ***************************************/

func MakeError(msg string, args ...interface{}) error {
	return fmt.Errorf(msg, args...)
}

func MakeUnexpectedValueError(dst interface{}, any interface{}) error {
	return fmt.Errorf("unexpected value for %T: %q", dst, any)
}

func UnexpectedValue(any interface{}) {
	panic(fmt.Errorf("unexpected value: %q", any))
}
