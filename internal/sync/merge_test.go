package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeByMaxTakesLargerQuantity(t *testing.T) {
	local := []Line{{ProductID: "A", Quantity: 2}}
	server := []Line{{ProductID: "A", Quantity: 1}, {ProductID: "B", Quantity: 3}}

	merged := MergeByMax(local, server)

	assert.Equal(t, []Line{{ProductID: "A", Quantity: 2}, {ProductID: "B", Quantity: 3}}, merged)
}

func TestMergeByMaxServerOrderingWins(t *testing.T) {
	local := []Line{{ProductID: "C", Quantity: 1}, {ProductID: "A", Quantity: 1}}
	server := []Line{{ProductID: "A", Quantity: 4}, {ProductID: "B", Quantity: 1}}

	merged := MergeByMax(local, server)

	// Server products first in server order, local-only products appended.
	assert.Equal(t, []Line{
		{ProductID: "A", Quantity: 4},
		{ProductID: "B", Quantity: 1},
		{ProductID: "C", Quantity: 1},
	}, merged)
}

func TestMergeByMaxEmptySides(t *testing.T) {
	assert.Empty(t, MergeByMax(nil, nil))

	onlyLocal := MergeByMax([]Line{{ProductID: "A", Quantity: 2}}, nil)
	assert.Equal(t, []Line{{ProductID: "A", Quantity: 2}}, onlyLocal)

	onlyServer := MergeByMax(nil, []Line{{ProductID: "B", Quantity: 1}})
	assert.Equal(t, []Line{{ProductID: "B", Quantity: 1}}, onlyServer)
}

func TestUnionProducts(t *testing.T) {
	merged := UnionProducts([]string{"C", "A"}, []string{"A", "B"})
	assert.Equal(t, []string{"A", "B", "C"}, merged)

	assert.Empty(t, UnionProducts(nil, nil))
	assert.Equal(t, []string{"X"}, UnionProducts([]string{"X", "X"}, nil))
}
