package keys

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// ReadPassword prompts on stderr and reads a password from the terminal with
// echo disabled.
//
// The terminal state is captured up front and restored on every exit path: a
// SIGINT or SIGTERM arriving mid-entry restores echo before the process dies,
// instead of leaving the shell dark.
func ReadPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal; use -k or -K")
	}

	state, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("reading terminal state: %w", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}

		_ = term.Restore(fd, state)

		signal.Reset(syscall.SIGINT, syscall.SIGTERM)
		_ = syscall.Kill(syscall.Getpid(), sig.(syscall.Signal))
	}()

	defer func() {
		signal.Stop(sigs)
		close(sigs)
	}()

	fmt.Fprint(os.Stderr, prompt)

	password, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	if len(password) == 0 {
		return nil, errors.New("empty password is not allowed")
	}

	return password, nil
}
