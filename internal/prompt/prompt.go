package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader prompts on out and reads validated values from in.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// New wraps the given streams. For a live session these are stdin and stdout;
// tests feed scripted input.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

// readLine returns the next trimmed input line, or io.EOF when the stream ends.
func (r *Reader) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Reader) reject(reason string) {
	fmt.Fprintf(r.out, "Invalid input: %s. Please try again.\n", reason)
}

// Text prompts until a non-empty line is entered.
func (r *Reader) Text(prompt string) (string, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			r.reject("input cannot be empty")
			continue
		}
		return line, nil
	}
}

// Int prompts until a line parses as an integer.
func (r *Reader) Int(prompt string) (int, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			r.reject("input cannot be empty")
			continue
		}
		value, convErr := strconv.Atoi(line)
		if convErr != nil {
			r.reject("enter a whole number")
			continue
		}
		return value, nil
	}
}

// IntInRange prompts until a line parses as an integer within [lo, hi].
func (r *Reader) IntInRange(prompt string, lo, hi int) (int, error) {
	for {
		value, err := r.Int(prompt)
		if err != nil {
			return 0, err
		}
		if value < lo || value > hi {
			r.reject(fmt.Sprintf("enter a number between %d and %d", lo, hi))
			continue
		}
		return value, nil
	}
}

// YesNo prompts until the line is one of yes/y/no/n, case-insensitive.
func (r *Reader) YesNo(prompt string) (bool, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		case "":
			r.reject("input cannot be empty")
		default:
			r.reject("enter 'yes' or 'no'")
		}
	}
}

// Acknowledge prints the prompt and consumes one line, empty or not. Used for
// the "press Enter to continue" pause between menu iterations.
func (r *Reader) Acknowledge(prompt string) error {
	fmt.Fprint(r.out, prompt)
	_, err := r.readLine()
	return err
}
