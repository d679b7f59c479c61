package towerfield

import "errors"

// ErrZeroInverse is returned by inversion routines (Fp2, Fp6, Fp12, and their
// simultaneous-inversion batch forms) when the input is zero.
var ErrZeroInverse = errors.New("towerfield: inversion of zero element")

// ErrOutOfMemory is returned when scratch element storage cannot be obtained.
var ErrOutOfMemory = errors.New("towerfield: out of memory acquiring scratch elements")

// ErrNoCurve is returned by Init when the configured prime and extension
// parameters do not describe a usable pairing-friendly tower.
var ErrNoCurve = errors.New("towerfield: no curve configured")

// ErrInvalidEncoding is returned by byte-decoding constructors when the input
// length or canonical form does not match the configured field width.
var ErrInvalidEncoding = errors.New("towerfield: invalid element encoding")

// ErrNotInitialized is returned by operations invoked before Init.
var ErrNotInitialized = errors.New("towerfield: configuration not initialized")
