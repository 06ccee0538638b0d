package common

import (
	"log"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tol is the absolute tolerance used when comparing plane coordinates
const Tol = 1e-9

// Logger holds several logger instances with different prefixes
type Logger struct {
	Warn *log.Logger
	Info *log.Logger
	Err  *log.Logger
}

// GetNewLogger creates an instance of all needed loggers
func GetNewLogger() *Logger {
	return &Logger{
		Warn: log.New(os.Stderr, "[ Warn ] ", log.LstdFlags|log.Lshortfile),
		Info: log.New(os.Stderr, "[ Info ] ", log.LstdFlags|log.Lshortfile),
		Err:  log.New(os.Stderr, "[ Error ] ", log.LstdFlags|log.Lshortfile),
	}
}

// GetEnvInt reads integer from the env variable, returns def if it's empty or malformed
func GetEnvInt(name string, def int) int {
	val, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return def
	}
	return val
}

// GetEnvFloat reads float from the env variable, returns def if it's empty or malformed
func GetEnvFloat(name string, def float64) float64 {
	val, err := strconv.ParseFloat(os.Getenv(name), 64)
	if err != nil {
		return def
	}
	return val
}

// AlmostEqual reports whether a and b differ less than Tol
func AlmostEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tol)
}
