package wordfilter

import (
	"sync"

	"github.com/chronos-tachyon/assert"
)

// Inputs of at most this many code units are normalized into a stack buffer;
// longer inputs borrow a pooled buffer for the duration of the call.
const stackBufferUnits = 512

var unitPool = sync.Pool{
	New: func() interface{} {
		ptr := new([]uint16)
		*ptr = make([]uint16, 0, 4*stackBufferUnits)
		return ptr
	},
}

func takeUnitBuffer(n int) *[]uint16 {
	ptr := unitPool.Get().(*[]uint16)
	if cap(*ptr) < n {
		*ptr = make([]uint16, 0, n)
	}
	return ptr
}

func giveUnitBuffer(ptr *[]uint16) {
	assert.NotNil(&ptr)
	assert.NotNil(ptr)
	*ptr = (*ptr)[:0]
	unitPool.Put(ptr)
}
