package tone

import "iter"

const blockLen = 32

// Timeline is an append and pop only sequence of on/off units packed 32 to a block.
type Timeline struct {
	blocks []uint32
	// lastLen is the number of units used in the last block.
	lastLen int
}

func (t *Timeline) Push(on bool) {
	if len(t.blocks) == 0 || t.lastLen >= blockLen {
		t.blocks = append(t.blocks, 0)
		t.lastLen = 0
	}
	if on {
		t.blocks[len(t.blocks)-1] |= 1 << t.lastLen
	}
	t.lastLen++
}

// Pop removes the last unit. It is a no-op on an empty timeline.
func (t *Timeline) Pop() {
	if len(t.blocks) == 0 {
		return
	}
	t.lastLen--
	t.blocks[len(t.blocks)-1] &^= 1 << t.lastLen
	if t.lastLen == 0 {
		t.blocks = t.blocks[:len(t.blocks)-1]
		t.lastLen = blockLen
	}
}

// At returns unit i. ok is false when i is out of range.
func (t *Timeline) At(i int) (on bool, ok bool) {
	if i < 0 || i >= t.Len() {
		return false, false
	}
	return t.blocks[i/blockLen]>>(i%blockLen)&1 == 1, true
}

// Runs yields maximal runs of equal units in order.
func (t *Timeline) Runs() iter.Seq2[bool, int] {
	return func(yield func(bool, int) bool) {
		n := t.Len()
		for i := 0; i < n; {
			on, _ := t.At(i)
			j := i + 1
			for j < n {
				next, _ := t.At(j)
				if next != on {
					break
				}
				j++
			}
			if !yield(on, j-i) {
				return
			}
			i = j
		}
	}
}

func (t *Timeline) Len() int {
	if len(t.blocks) == 0 {
		return 0
	}
	return (len(t.blocks)-1)*blockLen + t.lastLen
}
