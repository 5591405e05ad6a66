package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/growthbook/internal/logger"
)

var (
	// ErrIO is returned when the data directory or database file cannot be accessed
	ErrIO = stderrors.New("io error")
	// ErrSchema is returned when the daily_pages table cannot be created
	ErrSchema = stderrors.New("schema error")
	// ErrConnection is returned when the database file cannot be opened
	ErrConnection = stderrors.New("connection error")
	// ErrQuery is returned when a read or write statement fails
	ErrQuery = stderrors.New("query error")
	// ErrConstraint is returned when a write violates a constraint the upsert does not resolve
	ErrConstraint = stderrors.New("constraint error")
)

// Wrap tags err with one of the sentinel kinds above and a short description of
// what was being attempted. A nil err stays nil.
func Wrap(kind error, what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", kind, what, err)
}

// Message flattens err into the single human-readable string handed to callers
// of the command boundary.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
