package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK and Fail; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// OK prints a success line to the output writer.
func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymOK+" "+msg))
}

// Fail prints an error line to the error writer.
func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(current.SymFail+" "+msg))
}
