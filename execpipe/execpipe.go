// Package execpipe runs external tools that produce descriptors on stdout.
package execpipe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/goaux/stacktrace/v2"
)

// CheckPath checks if the given executable exists in the system's PATH.
// It returns an error if the executable is not found, or nil if it is.
func CheckPath(executable string) error {
	_, err := stacktrace.Trace2(exec.LookPath(executable))
	return err
}

// Run executes name with args, feeding r to its stdin when r is not nil and
// copying its stdout to w. The command is killed when ctx is done.
//
// On failure the returned error includes the command name and the captured
// stderr.
func Run(ctx context.Context, w io.Writer, r io.Reader, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r
	cmd.Stdout = w
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err := stacktrace.Trace(cmd.Run()); err != nil {
		return fmt.Errorf("error: %s, cause=%w, stderr=%q", name, err, stderr.String())
	}
	return nil
}

// Output is like Run without stdin and returns stdout.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out := new(bytes.Buffer)
	if err := Run(ctx, out, nil, name, args...); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
