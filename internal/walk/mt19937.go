package walk

// MT19937 parameters.
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff

	// init_by_array always starts from this fixed state.
	mtArraySeed = 19650218
)

// MT19937 is a 32-bit Mersenne Twister stream.
//
// It implements math/rand/v2.Source, so it can back a *rand.Rand when a
// caller needs the wider API. An MT19937 is not safe for concurrent use;
// give each goroutine its own stream.
type MT19937 struct {
	state [mtN]uint32
	index int
}

// NewMT19937 creates a stream seeded from seed.
// Negative seeds use their absolute value.
func NewMT19937(seed int64) *MT19937 {
	m := &MT19937{}
	m.SeedWords(seedKey(seed)...)
	return m
}

// seedKey splits |seed| into little-endian 32-bit words.
// Zero still produces a single word.
func seedKey(seed int64) []uint32 {
	mag := uint64(seed)
	if seed < 0 {
		mag = -mag
	}
	lo, hi := uint32(mag), uint32(mag>>32)
	if hi == 0 {
		return []uint32{lo}
	}
	return []uint32{lo, hi}
}

// seedState fills the state from a single 32-bit value (init_genrand).
func (m *MT19937) seedState(s uint32) {
	m.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

// SeedWords reseeds the stream from an arbitrary-length key (init_by_array).
// An empty key is treated as the single word 0.
func (m *MT19937) SeedWords(key ...uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	m.seedState(mtArraySeed)

	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := m.state[i-1]
		m.state[i] = (m.state[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			m.state[0] = m.state[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := m.state[i-1]
		m.state[i] = (m.state[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			m.state[0] = m.state[mtN-1]
			i = 1
		}
	}
	m.state[0] = mtUpperMask
	m.index = mtN
}

// twist regenerates the whole state block.
func (m *MT19937) twist() {
	mag := func(y uint32) uint32 {
		if y&1 == 1 {
			return mtMatrixA
		}
		return 0
	}
	for kk := 0; kk < mtN; kk++ {
		y := (m.state[kk] & mtUpperMask) | (m.state[(kk+1)%mtN] & mtLowerMask)
		m.state[kk] = m.state[(kk+mtM)%mtN] ^ (y >> 1) ^ mag(y)
	}
	m.index = 0
}

// Uint32 returns the next tempered 32-bit output.
func (m *MT19937) Uint32() uint32 {
	if m.index >= mtN {
		m.twist()
	}
	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 joins two consecutive outputs, high word first.
func (m *MT19937) Uint64() uint64 {
	hi := uint64(m.Uint32())
	return hi<<32 | uint64(m.Uint32())
}

// Float64 returns a float in [0, 1) with 53-bit resolution.
func (m *MT19937) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uniform returns lo + (hi-lo)*r for the next Float64 r.
func (m *MT19937) Uniform(lo, hi float64) float64 {
	// The explicit conversion keeps the multiply from fusing with the add.
	return lo + float64((hi-lo)*m.Float64())
}
