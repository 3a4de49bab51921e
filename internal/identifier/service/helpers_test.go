package service

import "errors"

// zeroSource always returns 0.
type zeroSource struct{}

func (zeroSource) IntN(n int) (int, error) { return 0, nil }

// errSource always fails.
type errSource struct{}

func (errSource) IntN(n int) (int, error) { return 0, errors.New("entropy unavailable") }

// fixedSource always returns the same value modulo n.
type fixedSource int

func (f fixedSource) IntN(n int) (int, error) { return int(f) % n, nil }
