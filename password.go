package pdf

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ReadPassword prompts on prompt (written to out) and reads a password
// from the terminal backing fd without echoing it. It is a convenience for
// command-line producers that ask the user for a document's user or owner
// password interactively; it is never called internally.
func ReadPassword(out io.Writer, fd int, prompt string) (string, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", err
	}
	pwd, err := term.ReadPassword(fd)
	if _, err2 := fmt.Fprintln(out); err2 != nil && err == nil {
		err = err2
	}
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

// ReadPasswordStdin is a shorthand for ReadPassword against the process's
// standard input and output.
func ReadPasswordStdin(prompt string) (string, error) {
	return ReadPassword(os.Stdout, int(os.Stdin.Fd()), prompt)
}
