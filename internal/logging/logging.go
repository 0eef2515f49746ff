package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

// WarnfAlways prints a warning regardless of verbosity. Used for warnings
// the user must see, like impending destructive operations.
func (l Logger) WarnfAlways(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

// WarnfUser prints a user-facing warning without the log prefix.
func (l Logger) WarnfUser(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("⚠ ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
	}
}

// ErrorfAndReturn logs the error when debugging and returns it for the
// command layer to propagate.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	l.Errorf("%v", err)
	return err
}

// Fatalf prints the error and exits with a non-zero status.
func (l Logger) Fatalf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[fatal] ")+msg+"\n", args...)
	os.Exit(1)
}
