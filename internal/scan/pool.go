package scan

import "sync"

var paramsPool = sync.Pool{
	New: func() interface{} {
		s := make([]Range, 0, 8)
		return &s
	},
}

var tagPairsPool = sync.Pool{
	New: func() interface{} {
		s := make([]TagPair, 0, 16)
		return &s
	},
}

// GetParams returns a pooled, zero-length []Range for TokenizeLine's
// parameter accumulation.
func GetParams() []Range {
	p := paramsPool.Get().(*[]Range)
	return (*p)[:0]
}

// PutParams returns a params slice to the pool. Oversized slices are
// dropped rather than pooled so one pathological line can't pin a
// large backing array for the life of the process.
func PutParams(params []Range) {
	if cap(params) > 256 {
		return
	}
	params = params[:0]
	paramsPool.Put(&params)
}

// GetTagPairs returns a pooled, zero-length []TagPair.
func GetTagPairs() []TagPair {
	p := tagPairsPool.Get().(*[]TagPair)
	return (*p)[:0]
}

// PutTagPairs returns a tag-pair slice to the pool.
func PutTagPairs(pairs []TagPair) {
	if cap(pairs) > 256 {
		return
	}
	pairs = pairs[:0]
	tagPairsPool.Put(&pairs)
}
