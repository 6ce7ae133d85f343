package sorter

// Per-algorithm stepping rules. Each function performs one bounded unit of
// work and leaves every cursor inside [0, len). Decrements only happen
// behind explicit positivity checks, so none of the loops can walk off the
// front of the array.

// stepBogo checks the whole array for sortedness; if unsorted it performs
// one full reshuffle. The full-array granularity is inherent: there is no
// meaningful finer unit for bogosort.
func (e *Engine) stepBogo() {
	n := len(e.values)
	sorted := true
	for i := 1; i < n; i++ {
		if e.compare(i-1, i) {
			sorted = false
			break
		}
	}
	if sorted {
		e.complete()
		return
	}
	e.shuffle()
	e.metrics.Accesses += 2 * n
}

// stepBubble performs one adjacent comparison. j counts the swaps of the
// current pass; a pass that ends with j still zero is the early-exit proof
// that the array is sorted.
func (e *Engine) stepBubble() {
	n := len(e.values)
	if n < 2 {
		e.complete()
		return
	}
	if e.compare(e.i, e.i+1) {
		e.swapAt(e.i, e.i+1)
		e.j++
	}
	e.i++
	if e.i >= n-1 {
		if e.j == 0 {
			e.complete()
			return
		}
		e.i, e.j = 0, 0
	}
}

// stepQuick pops one pending range and, unless it is degenerate, runs a
// full Lomuto partition within this call. The partition is the one
// documented case where a step does more than O(1) work; it is bounded by
// the popped range, not the whole array.
func (e *Engine) stepQuick() {
	if len(e.stack) == 0 {
		e.complete()
		return
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if top.low >= top.high {
		return
	}
	p := e.partition(top.low, top.high)
	if p-1 > top.low {
		e.stack = append(e.stack, span{low: top.low, high: p - 1})
	}
	if p+1 < top.high {
		e.stack = append(e.stack, span{low: p + 1, high: top.high})
	}
}

// partition applies the Lomuto scheme around values[high] and returns the
// pivot's final position.
func (e *Engine) partition(low, high int) int {
	pivot := e.values[high]
	e.metrics.Accesses++
	i := low
	for j := low; j < high; j++ {
		e.metrics.Comparisons++
		e.metrics.Accesses++
		if e.values[j] <= pivot {
			if i != j {
				e.swapAt(i, j)
			}
			i++
		}
	}
	if i != high {
		e.swapAt(i, high)
	}
	return i
}

// stepInsertion sinks the element at j one position per call. j == 0 is the
// sentinel for "seed the next outer pass from i".
func (e *Engine) stepInsertion() {
	n := len(e.values)
	if e.i >= n {
		e.complete()
		return
	}
	if e.j == 0 {
		e.j = e.i
	}
	if e.compare(e.j-1, e.j) {
		e.swapAt(e.j-1, e.j)
		e.j--
		if e.j == 0 {
			e.i++
		}
	} else {
		e.i++
		e.j = 0
	}
}

// stepSelection advances the scanning cursor one position per call,
// tracking the running minimum in pivot; the call in which the scan falls
// off the end performs the swap and opens the next pass.
func (e *Engine) stepSelection() {
	n := len(e.values)
	if e.i >= n-1 {
		e.complete()
		return
	}
	if e.j == 0 && e.i > 0 {
		e.j = e.i
		e.pivot = e.i
	}
	e.j++
	if e.j >= n {
		if e.pivot != e.i {
			e.swapAt(e.i, e.pivot)
		}
		e.i++
		e.j = 0
		return
	}
	e.metrics.Comparisons++
	e.metrics.Accesses += 2
	if e.values[e.j] < e.values[e.pivot] {
		e.pivot = e.j
	}
}

// stepShell compares one gapped pair per call; pivot holds the gap. A pass
// that performed swaps (counted in j) repeats at the same gap, so by the
// time the gap shrinks to zero the final gap-1 phase has behaved exactly
// like bubble sort with early exit and the array is sorted.
func (e *Engine) stepShell() {
	n := len(e.values)
	if e.pivot == 0 {
		e.complete()
		return
	}
	if e.compare(e.i, e.i+e.pivot) {
		e.swapAt(e.i, e.i+e.pivot)
		e.j++
	}
	e.i++
	if e.i+e.pivot >= n {
		if e.j == 0 {
			e.pivot /= 2
		}
		e.i, e.j = 0, 0
	}
}

// stepCocktail performs one adjacent comparison of the current directional
// sub-pass. j is the low boundary, pivot the high boundary; each completed
// sub-pass settles one element and shrinks its boundary inward. The engine
// completes when the boundaries cross.
func (e *Engine) stepCocktail() {
	if e.j >= e.pivot {
		e.complete()
		return
	}
	if e.phase == 0 {
		if e.compare(e.i, e.i+1) {
			e.swapAt(e.i, e.i+1)
		}
		e.i++
		if e.i >= e.pivot {
			e.pivot--
			e.phase = 1
			e.i = e.pivot
		}
		return
	}
	e.metrics.Comparisons++
	e.metrics.Accesses += 2
	if e.values[e.i] < e.values[e.i-1] {
		e.swapAt(e.i-1, e.i)
	}
	e.i--
	if e.i <= e.j {
		e.j++
		e.phase = 0
		e.i = e.j
	}
}

// stepMerge runs bottom-up merge sort: pivot is the current run width, i
// the left edge of the next run pair. One call merges one run pair to
// completion, bounded by the pair's size in the same way a quick step is
// bounded by its partition.
func (e *Engine) stepMerge() {
	n := len(e.values)
	if e.pivot >= n {
		e.complete()
		return
	}
	lo := e.i
	mid := lo + e.pivot
	hi := lo + 2*e.pivot
	if mid > n {
		mid = n
	}
	if hi > n {
		hi = n
	}
	if mid < hi {
		e.mergeRuns(lo, mid, hi)
	}
	e.i += 2 * e.pivot
	if e.i >= n {
		e.i = 0
		e.pivot *= 2
	}
}

// mergeRuns merges the sorted runs [lo,mid) and [mid,hi) through the aux
// buffer. The <= keeps the merge stable.
func (e *Engine) mergeRuns(lo, mid, hi int) {
	copy(e.aux[lo:hi], e.values[lo:hi])
	e.metrics.Accesses += 2 * (hi - lo)
	left, right := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case left >= mid:
			e.values[k] = e.aux[right]
			right++
		case right >= hi:
			e.values[k] = e.aux[left]
			left++
		default:
			e.metrics.Comparisons++
			if e.aux[left] <= e.aux[right] {
				e.values[k] = e.aux[left]
				left++
			} else {
				e.values[k] = e.aux[right]
				right++
			}
		}
		e.metrics.Accesses += 2
	}
}

// stepHeap sifts one node per call. Phase 0 builds the max-heap from the
// last parent down; phase 1 extracts the maximum into the shrinking tail
// tracked by j. Each sift is bounded by the heap depth.
func (e *Engine) stepHeap() {
	n := len(e.values)
	if n < 2 {
		e.complete()
		return
	}
	if e.phase == 0 {
		e.i--
		e.siftDown(e.i, n)
		if e.i == 0 {
			e.phase = 1
		}
		return
	}
	if e.j <= 1 {
		e.complete()
		return
	}
	e.j--
	e.swapAt(0, e.j)
	e.siftDown(0, e.j)
}

func (e *Engine) siftDown(root, size int) {
	for {
		child := 2*root + 1
		if child >= size {
			return
		}
		if child+1 < size {
			e.metrics.Comparisons++
			e.metrics.Accesses += 2
			if e.values[child+1] > e.values[child] {
				child++
			}
		}
		e.metrics.Comparisons++
		e.metrics.Accesses += 2
		if e.values[root] >= e.values[child] {
			return
		}
		e.swapAt(root, child)
		root = child
	}
}

// stepRadix performs one stable binary LSD pass per call; pivot is the bit
// index. Like bogo, the natural unit here is a full pass over the array.
// Radix makes no ordering tests, so its comparison counter stays zero.
func (e *Engine) stepRadix() {
	const valueBits = 8
	if e.pivot >= valueBits {
		e.complete()
		return
	}
	bit := uint(e.pivot)
	k := 0
	for _, v := range e.values {
		e.metrics.Accesses++
		if v>>bit&1 == 0 {
			e.aux[k] = v
			e.metrics.Accesses++
			k++
		}
	}
	for _, v := range e.values {
		e.metrics.Accesses++
		if v>>bit&1 == 1 {
			e.aux[k] = v
			e.metrics.Accesses++
			k++
		}
	}
	copy(e.values, e.aux)
	e.metrics.Accesses += 2 * len(e.values)
	e.pivot++
}
