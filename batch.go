package jury

import (
	"fmt"
)

// Batch holds the correctness outcomes of a batch of simulated juries.
//
// Outcomes are stored row-major in one contiguous buffer indexed
// [expert][instance]. Within every instance (column), row r belongs to the
// expert with the r-th lowest competence, so the top-k experts of every
// instance are the last k rows.
type Batch struct {
	numExperts   int
	numInstances int
	outcomes     []uint8
}

// NewBatch returns a batch of the given shape with every outcome incorrect.
func NewBatch(numExperts, numInstances int) *Batch {
	return &Batch{
		numExperts:   numExperts,
		numInstances: numInstances,
		outcomes:     make([]uint8, numExperts*numInstances),
	}
}

// BatchFromRows builds a batch from one row of 0/1 outcomes per expert,
// ordered by ascending competence. All rows must have the same length.
func BatchFromRows(rows [][]uint8) *Batch {
	if len(rows) == 0 {
		return &Batch{}
	}

	b := NewBatch(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != b.numInstances {
			panic(fmt.Errorf("row %d has %d instances, expected %d", r, len(row), b.numInstances))
		}

		for i, v := range row {
			b.Set(r, i, v != 0)
		}
	}

	return b
}

func (b *Batch) NumExperts() int   { return b.numExperts }
func (b *Batch) NumInstances() int { return b.numInstances }

// Row returns the outcomes of the expert at rank r across all instances.
// The returned slice aliases the batch.
func (b *Batch) Row(r int) []uint8 {
	return b.outcomes[r*b.numInstances : (r+1)*b.numInstances]
}

// Set records whether the expert at rank r answered instance i correctly.
func (b *Batch) Set(r, i int, correct bool) {
	var v uint8
	if correct {
		v = 1
	}

	b.outcomes[r*b.numInstances+i] = v
}

// Get reports whether the expert at rank r answered instance i correctly.
func (b *Batch) Get(r, i int) bool {
	return b.outcomes[r*b.numInstances+i] != 0
}

// resize reshapes the batch, reusing its buffer when possible.
// Outcomes are not cleared.
func (b *Batch) resize(numExperts, numInstances int) {
	b.numExperts = numExperts
	b.numInstances = numInstances
	b.outcomes = extendUint8(b.outcomes, numExperts*numInstances)
}
