// Package testgen produces synthetic WWVB bitstreams for tests, the Go
// equivalent of original_source/DataGenerator.cpp: given a sequence of
// symbols, it emits the exact high/low run-length pattern WWVB uses for
// each one, looping forever over the supplied pattern.
package testgen

// SymbolKind is one of the three WWVB waveform shapes a Generator can
// emit.
type SymbolKind int

const (
	KindZero SymbolKind = iota
	KindOne
	KindMarker
)

// runLengths gives (high, low) sample counts for one symbol period,
// per spec.md §6's pulse-width table.
func runLengths(k SymbolKind) (high, low int) {
	switch k {
	case KindZero:
		return 12, 48
	case KindOne:
		return 30, 30
	default: // KindMarker
		return 48, 12
	}
}

// Generator emits one demodulated input bit per call to NextBit,
// looping over the configured symbol pattern indefinitely.
type Generator struct {
	pattern  []SymbolKind
	position int
	high     int
	low      int
}

// NewGenerator returns a Generator that repeats pattern forever.
func NewGenerator(pattern []SymbolKind) *Generator {
	g := &Generator{pattern: pattern}
	g.setCounts(pattern[0])
	return g
}

func (g *Generator) setCounts(k SymbolKind) {
	g.high, g.low = runLengths(k)
}

// NextBit returns the next demodulated sample: 1 while still in the
// current symbol's high phase, 0 during its low phase, then advances to
// the next symbol (wrapping to the start of the pattern at the end).
func (g *Generator) NextBit() byte {
	if g.high > 0 {
		g.high--
		return 1
	}
	if g.low > 0 {
		g.low--
		return 0
	}

	g.position++
	if g.position >= len(g.pattern) {
		g.position = 0
	}
	g.setCounts(g.pattern[g.position])

	g.high--
	return 1
}

// ReadBit implements tickctx.SampleSource so a Generator can drive the
// tick orchestrator directly in tests.
func (g *Generator) ReadBit() byte {
	return g.NextBit()
}

// NoisyGenerator wraps a Generator and flips each emitted bit for which
// the caller-supplied noise function returns true, modeling spec.md §8
// scenario 3's "5% symbol noise".
type NoisyGenerator struct {
	inner *Generator
	noise func() bool // returns true when this bit should be flipped
}

// NewNoisyGenerator wraps gen, calling shouldFlip before each bit to
// decide whether to invert it.
func NewNoisyGenerator(gen *Generator, shouldFlip func() bool) *NoisyGenerator {
	return &NoisyGenerator{inner: gen, noise: shouldFlip}
}

func (n *NoisyGenerator) ReadBit() byte {
	bit := n.inner.NextBit()
	if n.noise() {
		return bit ^ 1
	}
	return bit
}
