package piece

import "math/rand/v2"

// BagSize is the number of kinds in one shuffled bag.
const BagSize = len(Kinds)

// Queue is the sequence of upcoming kinds. It tops itself up with a freshly
// shuffled bag whenever fewer than BagSize kinds remain, so every aligned
// window of seven spawns holds each kind exactly once.
//
// The generator state is held by value so copying a Queue (with Clone)
// yields an independent queue that produces the same future.
type Queue struct {
	kinds []Kind
	src   rand.PCG
}

// NewQueue creates a queue seeded with the given values and fills it.
func NewQueue(seed1, seed2 uint64) *Queue {
	q := &Queue{src: *rand.NewPCG(seed1, seed2)}
	q.refill()
	return q
}

func (q *Queue) refill() {
	for len(q.kinds) < BagSize {
		bag := Kinds
		rand.New(&q.src).Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		q.kinds = append(q.kinds, bag[:]...)
	}
}

// Pop removes and returns the next kind.
func (q *Queue) Pop() Kind {
	q.refill()
	k := q.kinds[0]
	q.kinds = q.kinds[1:]
	q.refill()
	return k
}

// Peek returns up to n upcoming kinds without consuming them.
func (q *Queue) Peek(n int) []Kind {
	if n > len(q.kinds) {
		n = len(q.kinds)
	}
	out := make([]Kind, n)
	copy(out, q.kinds)
	return out
}

// Len reports how many kinds are currently queued.
func (q *Queue) Len() int {
	return len(q.kinds)
}

// Clone returns an independent copy of the queue and its generator.
func (q *Queue) Clone() *Queue {
	c := &Queue{src: q.src}
	c.kinds = append([]Kind(nil), q.kinds...)
	return c
}
