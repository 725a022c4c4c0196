package insighting

import (
	"math/rand"
	"sync"
	"time"
)

// Picker fornece a aleatoriedade da análise simulada.
type Picker interface {
	// Pick devolve um índice em [0,n).
	Pick(n int) int
	// Jitter devolve a pequena variação somada ao potencial, em [0,5).
	Jitter() float64
}

type randomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPicker cria o Picker de produção. seed 0 usa o relógio.
func NewRandomPicker(seed int64) Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomPicker{rnd: rand.New(rand.NewSource(seed))}
}

func (p *randomPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

func (p *randomPicker) Jitter() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64() * MaxJitter
}

// FixedPicker devolve sempre o mesmo índice e jitter. Index negativo conta a partir do fim.
type FixedPicker struct {
	Index int
	Value float64
}

func (p FixedPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return ((p.Index % n) + n) % n
}

func (p FixedPicker) Jitter() float64 {
	return p.Value
}
