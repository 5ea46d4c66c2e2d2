package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const promptText = "Which nth prime should I find?: "

// PromptForN asks on out for the index of the prime to find and reads the
// answer from in, asking again until it gets an integer >= 1. It returns
// io.EOF if in ends before a valid answer arrives.
func PromptForN(in io.Reader, out io.Writer) (int, error) {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}

	for {
		fmt.Fprint(out, promptText)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return 0, io.EOF
		}

		raw := strings.TrimRight(line, "\r\n")
		n, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		switch {
		case parseErr != nil:
			fmt.Fprintf(out, "%s is not a valid number.  Please try again.\n\n", raw)
		case n < 1:
			fmt.Fprintf(out, "%s is not a valid number. Please enter an integer greater than or equal to 1.\n\n", raw)
		default:
			return int(n), nil
		}

		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
	}
}
