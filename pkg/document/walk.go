package document

import "strconv"

// WalkFunc is called for every node with its positional key and nesting depth
// (1 for the children of the root). Returning an error stops the walk.
type WalkFunc func(n *Node, key string, depth int) error

type walkFrame struct {
	node  *Node
	key   string
	depth int
}

// Walk visits the content of root depth-first in document order. Keys are
// derived the same way the renderer derives them: parent key, "-", index.
// It uses an explicit stack, so nesting depth is bounded only by memory.
func Walk(root *Node, keyPrefix string, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	stack := pushChildren(nil, root.Content, keyPrefix, 1)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(f.node, f.key, f.depth); err != nil {
			return err
		}
		if f.node != nil && !f.node.IsText() {
			stack = pushChildren(stack, f.node.Content, f.key, f.depth+1)
		}
	}
	return nil
}

// pushChildren pushes nodes in reverse so the first child is popped first.
func pushChildren(stack []walkFrame, nodes []*Node, parentKey string, depth int) []walkFrame {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{node: nodes[i], key: ChildKey(parentKey, i), depth: depth})
	}
	return stack
}

// ChildKey derives the key of the i-th child of parentKey.
func ChildKey(parentKey string, i int) string {
	return parentKey + "-" + strconv.Itoa(i)
}

// Depth returns the maximum nesting depth below root; a document whose blocks
// hold only text has depth 2.
func Depth(root *Node) int {
	max := 0
	_ = Walk(root, "", func(_ *Node, _ string, depth int) error {
		if depth > max {
			max = depth
		}
		return nil
	})
	return max
}
