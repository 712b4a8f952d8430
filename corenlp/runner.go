package corenlp

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Runner executes one external process to completion. The default
// implementation shells out; tests inject fakes.
type Runner interface {
	Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return errors.New("pipeline timed out")
	}
	return err
}
