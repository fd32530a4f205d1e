// Package minimax implements game-tree generation and minimax evaluation
// with and without alpha-beta pruning.
package minimax

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Node is a game-tree node. A node with no children is a leaf and carries a
// value; internal nodes ignore Value.
type Node struct {
	Children []*Node
	Value    int
}

// Leaf reports whether the node is a terminal node.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Generate builds a random tree. The target depth is drawn from
// [3, maxDepth]; nodes at depth >= 3 may terminate early, non-leaf nodes
// have 2-3 children above the last level and 2-4 on it, and leaves carry
// values in [1, 20]. Returns the root and the target depth.
func Generate(rng *rand.Rand, maxDepth int) (*Node, int) {
	target := 3 + rng.Intn(maxDepth-3+1)

	var build func(depth int) *Node
	build = func(depth int) *Node {
		early := depth >= 3 && rng.Intn(2) == 1
		if depth == target || early {
			return &Node{Value: 1 + rng.Intn(20)}
		}
		var numChildren int
		if depth < target-1 {
			numChildren = 2 + rng.Intn(2) // 2-3
		} else {
			numChildren = 2 + rng.Intn(3) // 2-4
		}
		children := make([]*Node, numChildren)
		for i := range children {
			children[i] = build(depth + 1)
		}
		return &Node{Children: children}
	}

	return build(1), target
}

// AlphaBeta evaluates the tree with alpha-beta pruning, the maximizing
// player moving first. It returns the root value and the leaf values in the
// order they were visited; both are deterministic functions of children
// order and the beta <= alpha cutoff.
func AlphaBeta(root *Node) (int, []int) {
	var visited []int
	value := alphaBeta(root, math.MinInt, math.MaxInt, true, &visited)
	return value, visited
}

func alphaBeta(n *Node, alpha, beta int, maximizing bool, visited *[]int) int {
	if n.Leaf() {
		*visited = append(*visited, n.Value)
		return n.Value
	}

	if maximizing {
		best := math.MinInt
		for _, child := range n.Children {
			v := alphaBeta(child, alpha, beta, false, visited)
			if v > best {
				best = v
			}
			if v > alpha {
				alpha = v
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, child := range n.Children {
		v := alphaBeta(child, alpha, beta, true, visited)
		if v < best {
			best = v
		}
		if v < beta {
			beta = v
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// Minimax evaluates the tree without pruning. Kept as the reference for
// prune-correctness tests.
func Minimax(root *Node) int {
	return plain(root, true)
}

func plain(n *Node, maximizing bool) int {
	if n.Leaf() {
		return n.Value
	}
	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}
	for _, child := range n.Children {
		v := plain(child, !maximizing)
		if maximizing && v > best || !maximizing && v < best {
			best = v
		}
	}
	return best
}

// Render writes the tree as a nested list of leaf values, the form shown in
// question prompts, e.g. "[[3, 7], [2, [5, 1]]]".
func Render(n *Node) string {
	var b strings.Builder
	render(n, &b)
	return b.String()
}

func render(n *Node, b *strings.Builder) {
	if n.Leaf() {
		b.WriteString(strconv.Itoa(n.Value))
		return
	}
	b.WriteByte('[')
	for i, child := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		render(child, b)
	}
	b.WriteByte(']')
}

// CountLeaves returns the total number of leaves in the tree.
func CountLeaves(n *Node) int {
	if n.Leaf() {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += CountLeaves(child)
	}
	return total
}
