package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadCoordinate = errors.New("expected two integers")

// parsePair parses "a<sep>b" into two integers, e.g. "3,4" or "8x8".
func parsePair(s, sep string) (int, int, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), sep)
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w separated by %q", s, errBadCoordinate, sep)
	}
	a, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}

	return a, b, nil
}

// parseXY parses a coordinate written "x,y".
func parseXY(s string) (int, int, error) { return parsePair(s, ",") }

// parseSize parses board dimensions written "WxH".
func parseSize(s string) (int, int, error) { return parsePair(strings.ToLower(s), "x") }
