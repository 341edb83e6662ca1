// Package waveform evaluates the mode-summed gravitational-wave strain on a
// fixed viewing plane for the heat-map overlay.
package waveform

import (
	"math"
	"math/cmplx"
)

// SYlm evaluates the spin-weighted spherical harmonic of spin weight s,
// degree l and order m at polar angle theta and azimuth phi, using the
// factorial-sum formula of Goldberg et al. (1967). The summand is written
// in half-angle sine/cosine powers, whose exponents are non-negative
// wherever the binomial prefactors are non-zero, so the evaluation stays
// finite at the poles.
func SYlm(s, l, m int, theta, phi float64) complex128 {
	sinHalf, cosHalf := math.Sincos(theta / 2)
	// Sincos returns (sin, cos); keep the names honest.
	sh, ch := sinHalf, cosHalf

	sum := 0.0
	for r := 0; r <= l-s; r++ {
		a := binomial(l-s, r)
		b := binomial(l+s, r+s-m)
		if a == 0 || b == 0 {
			continue
		}
		sign := 1.0
		if (l-r-s)%2 != 0 {
			sign = -1.0
		}
		sum += sign * a * b *
			powInt(ch, 2*r+s-m) * powInt(sh, 2*l-2*r-s+m)
	}

	norm := math.Sqrt(float64(2*l+1) / (4 * math.Pi) *
		factorial(l+m) * factorial(l-m) /
		(factorial(l+s) * factorial(l-s)))
	if m%2 != 0 {
		norm = -norm
	}

	return complex(norm*sum, 0) * cmplx.Exp(complex(0, float64(m)*phi))
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return factorial(n) / (factorial(k) * factorial(n-k))
}

func powInt(x float64, n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= x
	}
	return p
}
