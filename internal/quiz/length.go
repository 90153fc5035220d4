package quiz

import "fmt"

// Length is a session length target: a finite count or the whole pool.
type Length struct {
	n   int
	all bool
}

// Finite returns a Length capped at n words. n must be positive.
func Finite(n int) Length {
	return Length{n: n}
}

// WholePool returns the Length that keeps every available word.
func WholePool() Length {
	return Length{all: true}
}

// DefaultLength matches the original app's session size.
var DefaultLength = Finite(10)

// IsAll reports whether the whole pool is requested.
func (l Length) IsAll() bool { return l.all }

// N returns the finite cap; meaningless when IsAll.
func (l Length) N() int { return l.n }

func (l Length) String() string {
	if l.all {
		return "all"
	}
	return fmt.Sprintf("%d", l.n)
}
