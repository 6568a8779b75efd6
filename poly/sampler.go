package poly

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/noetherlab/noether/ring"
	"github.com/noetherlab/noether/utils"
)

// Sampler draws pseudo-random polynomials from a ring. Exponents are uniform
// in [0, MaxExponent] and coefficients are uniform integers in
// [-CoeffBound, CoeffBound], mapped into the base ring through FromInt64.
type Sampler struct {
	ring        *Ring
	prng        utils.PRNG
	maxExponent int
	coeffBound  int64
}

// NewSampler creates a sampler reading randomness from prng.
func NewSampler(r *Ring, prng utils.PRNG, maxExponent int, coeffBound int64) (*Sampler, error) {
	if maxExponent < 0 || maxExponent >= PackingBound {
		return nil, fmt.Errorf("the maximum exponent %d is out of the supported range [0, %d)", maxExponent, PackingBound)
	}
	if coeffBound < 1 {
		return nil, fmt.Errorf("the coefficient bound %d is not positive", coeffBound)
	}
	return &Sampler{
		ring:        r,
		prng:        prng,
		maxExponent: maxExponent,
		coeffBound:  coeffBound,
	}, nil
}

// NewSeededSampler creates a deterministic sampler whose key is derived from
// label. Two samplers with the same label and parameters produce the same
// stream of polynomials.
func NewSeededSampler(r *Ring, label string, maxExponent int, coeffBound int64) (*Sampler, error) {
	key := blake3.Sum256([]byte(label))
	prng, err := utils.NewKeyedPRNG(key[:])
	if err != nil {
		return nil, err
	}
	return NewSampler(r, prng, maxExponent, coeffBound)
}

func (s *Sampler) randUint64() uint64 {
	var buf [8]byte
	if _, err := s.prng.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// randInt64 returns a uniform value in [0, n). Modulo reduction introduces a
// bias below 2^-32 for the bounds accepted here, which is irrelevant for
// test-vector generation.
func (s *Sampler) randInt64(n int64) int64 {
	return int64(s.randUint64() % uint64(n))
}

// ReadNew samples a polynomial with at most terms monomials. Sampled terms
// that collide on the same monomial are added, and zero coefficients are
// dropped, so the result can carry fewer terms than requested.
func (s *Sampler) ReadNew(terms int) *Polynomial {
	coeffs := make(map[Monomial]ring.Element, terms)
	for t := 0; t < terms; t++ {
		exps := make([]int, s.ring.Ngens())
		for i := range exps {
			exps[i] = int(s.randInt64(int64(s.maxExponent) + 1))
		}
		m := monomialFromExponents(s.ring.Representation(), exps)
		c := s.ring.BaseRing().FromInt64(s.randInt64(2*s.coeffBound+1) - s.coeffBound)
		if prev, ok := coeffs[m]; ok {
			coeffs[m] = prev.Add(c)
		} else {
			coeffs[m] = c
		}
	}
	return s.ring.wrap(NewTerms(s.ring.BaseRing(), s.ring.Representation(), coeffs))
}
