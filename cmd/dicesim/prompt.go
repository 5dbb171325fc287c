package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0xSalik/statsproject/internal/errors"
)

// prompter reads integers from a line based input, asking again until the
// answer is in range
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// Int64 asks for a value in [minValue, maxValue]
func (p *prompter) Int64(label string, minValue, maxValue int64) (int64, error) {
	for {
		fmt.Fprintf(p.out, "  - %s: ", label)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, errors.Wrapf(err, "failed to read %s", label)
			}
			return 0, errors.InvalidArgumentf("input closed before %s was entered", label)
		}

		value, err := strconv.ParseInt(strings.TrimSpace(p.in.Text()), 10, 64)
		if err == nil && value >= minValue && value <= maxValue {
			return value, nil
		}
	}
}

// Int asks for a value in [minValue, maxValue]
func (p *prompter) Int(label string, minValue, maxValue int) (int, error) {
	value, err := p.Int64(label, int64(minValue), int64(maxValue))
	return int(value), err
}
