package autodiff

import (
	"slices"

	"github.com/born-ml/mynet/internal/autodiff/ops"
)

// Backward computes the gradient of root with respect to every node it
// depends on.
//
// Algorithm:
//  1. Seed root's gradient with 1 (∂root/∂root)
//  2. Order the reachable nodes topologically, root last
//  3. Walk the order from root to leaves, applying each operation's local
//     derivative rule with the node's accumulated gradient
//  4. Each rule adds its contributions into the operands' gradients
//
// Every node's rule runs exactly once, after all of its consumers have
// contributed, so a node shared by several paths receives the sum of all
// path gradients.
//
// Gradients are not cleared: calling Backward again without ZeroGrad adds
// the new contributions on top of the previous ones. Only the root's
// gradient is overwritten by the seed.
func Backward(root *Value) {
	order := TopologicalOrder(root)

	root.grad = 1
	root.hasGrad = true

	for _, v := range slices.Backward(order) {
		if v.op == ops.Leaf {
			continue
		}
		v.propagate()
	}
}

// propagate applies v's derivative rule to its operands.
func (v *Value) propagate() {
	n := v.op.Arity()
	var in [ops.MaxArity]float64
	for i := 0; i < n; i++ {
		in[i] = v.parents[i].data
	}

	contrib := ops.Backward(v.op, in, v.data, v.grad)
	for i := 0; i < n; i++ {
		v.parents[i].accumulate(contrib[i])
	}
}

// TopologicalOrder returns every node reachable from root through its
// operands, ordered so that each node comes after all of its operands.
// The root is last and every node appears exactly once.
//
// Reachable nodes with an unset gradient are populated with zero, so after
// a backward pass HasGrad reports true for the whole dependency closure.
func TopologicalOrder(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]struct{})

	var visit func(v *Value)
	visit = func(v *Value) {
		if _, seen := visited[v]; seen {
			return
		}
		visited[v] = struct{}{}
		v.hasGrad = true

		for _, p := range v.parents[:v.op.Arity()] {
			visit(p)
		}
		order = append(order, v)
	}
	visit(root.node())

	return order
}
