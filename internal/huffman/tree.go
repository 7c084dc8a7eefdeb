package huffman

import "container/heap"

// freqTable maps each byte value to its occurrence count.
type freqTable [256]uint64

func countFrequencies(data []byte) freqTable {
	var freqs freqTable
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// distinctSymbols returns the number of byte values with nonzero count.
func (f *freqTable) distinctSymbols() int {
	n := 0
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}

// node is one entry in the tree arena. Leaves carry a symbol and have
// both child indices set to noChild; internal nodes carry only the
// aggregate weight of their subtree.
type node struct {
	weight uint64
	symbol byte
	left   int
	right  int
}

const noChild = -1

func (n *node) isLeaf() bool { return n.left == noChild && n.right == noChild }

// tree is an arena-allocated Huffman tree. Nodes are addressed by index
// into the arena and the whole arena is dropped at once when the tree
// goes out of scope.
type tree struct {
	nodes []node
	root  int // noChild when built from an all-zero frequency table
}

// nodeHeap is a min-heap of arena indices ordered by node weight.
// Weight ties break toward the lower arena index. Leaves enter the
// arena in ascending symbol order and merged nodes strictly after, so
// the tie-break is deterministic: rebuilding from the same frequency
// table always yields an identical tree.
type nodeHeap struct {
	arena   *[]node
	indices []int
}

func (h *nodeHeap) Len() int { return len(h.indices) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.indices[i], h.indices[j]
	na, nb := (*h.arena)[a], (*h.arena)[b]
	if na.weight != nb.weight {
		return na.weight < nb.weight
	}
	return a < b
}

func (h *nodeHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}

func (h *nodeHeap) Push(x any) {
	h.indices = append(h.indices, x.(int))
}

func (h *nodeHeap) Pop() any {
	old := h.indices
	n := len(old)
	x := old[n-1]
	h.indices = old[:n-1]
	return x
}

// buildTree constructs the Huffman tree by repeatedly merging the two
// lowest-weight roots. An all-zero table yields an empty tree; a table
// with one distinct symbol yields a single-leaf tree.
func buildTree(freqs freqTable) tree {
	t := tree{root: noChild}

	h := &nodeHeap{arena: &t.nodes}
	for sym := 0; sym < 256; sym++ {
		if freqs[sym] == 0 {
			continue
		}
		t.nodes = append(t.nodes, node{
			weight: freqs[sym],
			symbol: byte(sym),
			left:   noChild,
			right:  noChild,
		})
		h.indices = append(h.indices, len(t.nodes)-1)
	}
	if len(h.indices) == 0 {
		return t
	}
	heap.Init(h)

	for h.Len() > 1 {
		a := heap.Pop(h).(int)
		b := heap.Pop(h).(int)
		t.nodes = append(t.nodes, node{
			weight: t.nodes[a].weight + t.nodes[b].weight,
			left:   a,
			right:  b,
		})
		heap.Push(h, len(t.nodes)-1)
	}
	t.root = h.indices[0]
	return t
}

// code is a variable-length bit sequence, most significant bit first.
type code struct {
	bits uint64
	n    int
}

// codeTable maps each symbol to its code. Unset entries have n == 0 and
// must never be referenced while encoding.
type codeTable [256]code

// buildCodeTable derives codes by depth-first traversal: 0 descends
// left, 1 descends right. A single-leaf tree gets the 1-bit code 0.
func (t *tree) buildCodeTable() codeTable {
	var table codeTable
	if t.root == noChild {
		return table
	}
	if t.nodes[t.root].isLeaf() {
		table[t.nodes[t.root].symbol] = code{bits: 0, n: 1}
		return table
	}
	t.assignCodes(t.root, 0, 0, &table)
	return table
}

func (t *tree) assignCodes(idx int, bits uint64, depth int, table *codeTable) {
	n := &t.nodes[idx]
	if n.isLeaf() {
		table[n.symbol] = code{bits: bits, n: depth}
		return
	}
	t.assignCodes(n.left, bits<<1, depth+1, table)
	t.assignCodes(n.right, bits<<1|1, depth+1, table)
}
