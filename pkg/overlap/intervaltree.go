package overlap

import "github.com/equipe22/hegpdup/pkg/span"

// intervalTree is a (deliberately unbalanced) augmented binary search tree
// over Span.Start, with each node caching the maximum End in its subtree
// so overlap queries can prune whole branches. It is hand-rolled: the
// retrieval pack that grounds this module carries no interval-tree
// library (see DESIGN.md), so this is a standard-library implementation
// of the "overlap index" trait from the design notes.
type intervalTree struct {
	root      *itNode
	byPayload map[int]Item
}

type itNode struct {
	item        Item
	maxEnd      uint32
	left, right *itNode
}

func newIntervalTree(items []Item) *intervalTree {
	t := &intervalTree{byPayload: make(map[int]Item)}
	for _, it := range items {
		t.insert(it)
	}
	return t
}

func (t *intervalTree) insert(it Item) {
	t.root = t.insertNode(t.root, it)
}

// less orders two items the same way insertion does: by Start, then by
// Payload to break ties between equal-start spans deterministically.
func less(a, b Item) bool {
	if a.Span.Start != b.Span.Start {
		return a.Span.Start < b.Span.Start
	}
	return a.Payload < b.Payload
}

func (t *intervalTree) insertNode(n *itNode, it Item) *itNode {
	if n == nil {
		t.byPayload[it.Payload] = it
		return &itNode{item: it, maxEnd: it.Span.End}
	}
	if less(it, n.item) {
		n.left = t.insertNode(n.left, it)
	} else {
		n.right = t.insertNode(n.right, it)
	}
	if it.Span.End > n.maxEnd {
		n.maxEnd = it.Span.End
	}
	return n
}

// Remove deletes the item with the given payload from the tree, if
// present, and recomputes augmentation along the affected path.
func (t *intervalTree) Remove(payload int) {
	key, ok := t.byPayload[payload]
	if !ok {
		return
	}
	delete(t.byPayload, payload)
	t.root = t.removeNode(t.root, key)
}

func (t *intervalTree) removeNode(n *itNode, key Item) *itNode {
	if n == nil {
		return nil
	}
	switch {
	case n.item.Payload == key.Payload && n.item.Span == key.Span:
		switch {
		case n.left == nil:
			return t.recomputeMax(n.right)
		case n.right == nil:
			return t.recomputeMax(n.left)
		default:
			successor := t.min(n.right)
			successorKey := successor.item
			n.item = successorKey
			n.right = t.removeNode(n.right, successorKey)
		}
	case less(key, n.item):
		n.left = t.removeNode(n.left, key)
	default:
		n.right = t.removeNode(n.right, key)
	}
	return t.recomputeMax(n)
}

func (t *intervalTree) min(n *itNode) *itNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *intervalTree) recomputeMax(n *itNode) *itNode {
	if n == nil {
		return nil
	}
	n.maxEnd = n.item.Span.End
	if n.left != nil && n.left.maxEnd > n.maxEnd {
		n.maxEnd = n.left.maxEnd
	}
	if n.right != nil && n.right.maxEnd > n.maxEnd {
		n.maxEnd = n.right.maxEnd
	}
	return n
}

// Overlapping returns every live payload whose span overlaps q.
func (t *intervalTree) Overlapping(q span.Span) []int {
	var out []int
	t.overlapping(t.root, q, &out)
	return out
}

func (t *intervalTree) overlapping(n *itNode, q span.Span, out *[]int) {
	if n == nil || n.maxEnd <= q.Start {
		return
	}
	if n.left != nil {
		t.overlapping(n.left, q, out)
	}
	if n.item.Span.Overlaps(q) {
		*out = append(*out, n.item.Payload)
	}
	if n.item.Span.Start < q.End {
		t.overlapping(n.right, q, out)
	}
}
