// Package parser reads the textual valve description into core values.
//
// One valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Blank lines are ignored. Leading and trailing spaces are trimmed.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ccalmels/volcano/core"
)

// ErrMalformedLine is returned, wrapped with the 1-based line number, for
// any non-blank line that does not describe a valve.
var ErrMalformedLine = errors.New("parser: malformed valve line")

var valveRx = regexp.MustCompile(
	`^Valve (\w+) has flow rate=(\d+); (?:tunnels lead to valves|tunnel leads to valve) (\w+(?:, \w+)*)$`,
)

// Parse reads every valve from r in input order.
func Parse(r io.Reader) ([]core.Valve, error) {
	var (
		valves []core.Valve
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		valves = append(valves, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}

	return valves, nil
}

// ParseLine decodes a single valve description.
func ParseLine(line string) (core.Valve, error) {
	m := valveRx.FindStringSubmatch(line)
	if m == nil {
		return core.Valve{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return core.Valve{}, fmt.Errorf("%q: rate: %v: %w", line, err, ErrMalformedLine)
	}

	return core.Valve{
		Name:    m[1],
		Rate:    rate,
		Tunnels: strings.Split(m[3], ", "),
	}, nil
}

// ParseNetwork parses r and builds the Network in one step.
func ParseNetwork(r io.Reader, opts ...core.NetworkOption) (*core.Network, error) {
	valves, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return core.NewNetwork(valves, opts...)
}
