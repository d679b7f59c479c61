package towerfield

import (
	"math/big"

	"github.com/drand/towerfield/basefield"
	"github.com/drand/towerfield/internal/log"
)

// ExtensionStrategy selects the default multiplication/squaring schedule
// used by Fp2/Fp6/Fp12 operations that do not name a strategy explicitly
// (Mul/Sqr pick it up; MulBasic/MulLazyr always name their own).
type ExtensionStrategy int

const (
	// StrategyBasic reduces after every Fp multiplication.
	StrategyBasic ExtensionStrategy = iota
	// StrategyLazyr forms each Fp2 product in double-width Wide storage and
	// reduces once per output limb; Fp6 and Fp12 products are built from
	// those reduced Fp2 products.
	StrategyLazyr
)

// nonResidueCase is the p mod 8 branch selecting the closed form of MulNor
// (multiplication by the Fp2 cubic non-residue xi used to build Fp6).
type nonResidueCase int

const (
	caseP5Mod8 nonResidueCase = iota // xi = u
	caseP3Mod8                       // xi = 1 + u
	caseP7Mod8                       // xi = 2^k + u, k from CurveParamK
)

// Config is the single immutable, process-wide configuration object: the
// prime, the non-residues it implies, the Frobenius constants derived from
// them, and a logger. Built with functional options and installed with Init;
// every Fp2/Fp6/Fp12 routine in this module reads it through the package
// singleton set by Init, mirroring the core_init/core_clean lifecycle in
// external interfaces.
type Config struct {
	prime   *big.Int
	bits    int
	nrCase  nonResidueCase
	curveK  uint // only meaningful when nrCase == caseP7Mod8
	invTwo  *basefield.Element
	strategy ExtensionStrategy
	logger  log.Logger

	// frobeniusGamma1[i-1] = xi^((p^i-1)/3) for i in 1..5, used by Fp6 Frobenius.
	frobeniusGamma1 [5]*fp2Elem
	// frobeniusGamma2[i-1] = xi^(2(p^i-1)/3) for i in 1..5.
	frobeniusGamma2 [5]*fp2Elem
	// frobeniusGamma12[i-1] = xi^((p^i-1)/6) for i in 1..11, used by Fp12 Frobenius.
	frobeniusGamma12 [11]*fp2Elem
}

// ConfigOption applies one setting to a Config under construction.
type ConfigOption func(*Config)

// WithPrime sets the base field modulus. Required; Init fails without one.
func WithPrime(p *big.Int) ConfigOption {
	return func(c *Config) { c.prime = new(big.Int).Set(p) }
}

// WithCurveParamK sets the doubling count k used by MulNor's p=7(mod 8)
// branch (xi = 2^k + u). Ignored for other residue classes.
func WithCurveParamK(k uint) ConfigOption {
	return func(c *Config) { c.curveK = k }
}

// WithStrategy selects the default extension arithmetic strategy.
func WithStrategy(s ExtensionStrategy) ConfigOption {
	return func(c *Config) { c.strategy = s }
}

// WithLogger overrides the default logger.
func WithLogger(l log.Logger) ConfigOption {
	return func(c *Config) { c.logger = l }
}

var active *Config

// Init builds a Config from the given options, installs it as the active
// process-wide configuration, and precomputes the Frobenius constants the
// rest of the package depends on. Exactly one Init call is expected before
// any arithmetic; Clean tears it down.
func Init(opts ...ConfigOption) (*Config, error) {
	c := &Config{
		strategy: StrategyLazyr,
		logger:   log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.prime == nil || c.prime.Sign() <= 0 {
		return nil, ErrNoCurve
	}
	c.bits = c.prime.BitLen()
	basefield.Modulus = c.prime

	switch mod := new(big.Int).Mod(c.prime, big.NewInt(8)).Int64(); mod {
	case 5:
		c.nrCase = caseP5Mod8
	case 3:
		c.nrCase = caseP3Mod8
	case 7:
		c.nrCase = caseP7Mod8
	default:
		return nil, ErrNoCurve
	}

	invTwo := basefield.NewElement()
	two := basefield.NewElement().SetSmallInt(2)
	if ok := basefield.Inverse(invTwo, two); !ok {
		return nil, ErrNoCurve
	}
	c.invTwo = invTwo

	active = c
	c.precomputeFrobenius()

	c.logger.Debugw("towerfield configuration initialized",
		"bits", c.bits, "nrCase", int(c.nrCase), "strategy", int(c.strategy),
		"cpuHint", cpuHint())

	return c, nil
}

// Clean tears down the active configuration. After Clean, the operations
// that read the configuration (Fp2Halve, Fp2MulNor and the Fp6/Fp12 routines
// built on it, the Frobenius maps, TestCyc) return ErrNotInitialized until
// Init runs again; operations that do not read it are not guarded.
func Clean() {
	active = nil
	basefield.Modulus = nil
}

func requireActive() error {
	if active == nil {
		return ErrNotInitialized
	}
	return nil
}

// Strategy reports the configured default extension strategy.
func (c *Config) Strategy() ExtensionStrategy { return c.strategy }

// Bits reports the configured prime's bit-length (FP_BITS).
func (c *Config) Bits() int { return c.bits }
