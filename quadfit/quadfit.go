package quadfit

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for quadfit operations.
var (
	// ErrNonQuadratic indicates samples that no integer quadratic explains.
	ErrNonQuadratic = errors.New("quadfit: sequence is not quadratic")
	// ErrUnevenSamples indicates sample steps that are not an arithmetic sequence.
	ErrUnevenSamples = errors.New("quadfit: samples must be equally spaced and increasing")
	// ErrPhaseMismatch indicates a target off the sampling phase.
	ErrPhaseMismatch = errors.New("quadfit: target is not on the sampling phase")
)

// Sample is a reachable-plot count observed after Steps steps.
type Sample struct {
	Steps int64
	Count int64
}

// Quadratic holds the integer coefficients of A·k² + B·k + C.
type Quadratic struct {
	A, B, C int64
}

// Phase maps sample indices to step counts: steps = Offset + k·Period.
type Phase struct {
	Offset, Period int64
}

// Fit solves for the quadratic with f(0)=a0, f(1)=a1, f(2)=a2.
// Returns ErrNonQuadratic if the second difference is odd.
func Fit(a0, a1, a2 int64) (Quadratic, error) {
	d2 := a2 - 2*a1 + a0
	if d2%2 != 0 {
		return Quadratic{}, fmt.Errorf("%w: odd second difference %d", ErrNonQuadratic, d2)
	}
	a := d2 / 2
	return Quadratic{A: a, B: a1 - a0 - a, C: a0}, nil
}

// At evaluates the quadratic in int64 arithmetic. Use Eval when k is large.
func (q Quadratic) At(k int64) int64 {
	return q.A*k*k + q.B*k + q.C
}

// Eval evaluates the quadratic exactly.
func (q Quadratic) Eval(k int64) *big.Int {
	kk := big.NewInt(k)
	// Horner: (A·k + B)·k + C
	r := new(big.Int).Mul(big.NewInt(q.A), kk)
	r.Add(r, big.NewInt(q.B))
	r.Mul(r, kk)
	return r.Add(r, big.NewInt(q.C))
}

func (q Quadratic) String() string {
	return fmt.Sprintf("%d·k² + %d·k + %d", q.A, q.B, q.C)
}

// Verify checks an extra sample f(k) = count against q.
func Verify(q Quadratic, k, count int64) error {
	if got := q.Eval(k); got.Cmp(big.NewInt(count)) != 0 {
		return fmt.Errorf("%w: f(%d) = %s, observed %d", ErrNonQuadratic, k, got, count)
	}
	return nil
}

// FitSamples fits three equally spaced samples and returns the phase they
// were taken on.
func FitSamples(s [3]Sample) (Quadratic, Phase, error) {
	p := s[1].Steps - s[0].Steps
	if p <= 0 || s[2].Steps-s[1].Steps != p || s[0].Steps < 0 {
		return Quadratic{}, Phase{}, fmt.Errorf("%w: steps %d, %d, %d",
			ErrUnevenSamples, s[0].Steps, s[1].Steps, s[2].Steps)
	}
	q, err := Fit(s[0].Count, s[1].Count, s[2].Count)
	if err != nil {
		return Quadratic{}, Phase{}, err
	}
	return q, Phase{Offset: s[0].Steps, Period: p}, nil
}

// Steps returns the step count of sample index k.
func (p Phase) Steps(k int64) int64 { return p.Offset + k*p.Period }

// Index returns K such that target = Offset + K·Period.
// Returns ErrPhaseMismatch unless K is an exact non-negative integer.
func (p Phase) Index(target int64) (int64, error) {
	if p.Period <= 0 {
		return 0, fmt.Errorf("%w: period %d", ErrPhaseMismatch, p.Period)
	}
	d := target - p.Offset
	if d < 0 || d%p.Period != 0 {
		return 0, fmt.Errorf("%w: %d = %d + K·%d has no integer K ≥ 0",
			ErrPhaseMismatch, target, p.Offset, p.Period)
	}
	return d / p.Period, nil
}

// Extrapolate fits s and evaluates the quadratic at the index of target.
func Extrapolate(s [3]Sample, target int64) (*big.Int, Quadratic, error) {
	q, phase, err := FitSamples(s)
	if err != nil {
		return nil, Quadratic{}, err
	}
	k, err := phase.Index(target)
	if err != nil {
		return nil, Quadratic{}, err
	}
	return q.Eval(k), q, nil
}
