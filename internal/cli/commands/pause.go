package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// PausePrompt is shown before the process exits.
const PausePrompt = "Press Enter to exit..."

// WaitForEnter writes the prompt to out and blocks until a line (or EOF) is
// read from in.
func WaitForEnter(in io.Reader, out io.Writer) error {
	if in == nil {
		return nil
	}
	_, _ = fmt.Fprint(out, PausePrompt)
	_, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("waiting for input: %w", err)
	}
	return nil
}
