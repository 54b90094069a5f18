package syntax

// Item constrains typed views over module-item syntax nodes. The type
// parameter is the view itself (FnItem, StructItem, ImplItem); the methods
// must work on the zero value so that generic code can recover the kind tag
// and construct views without an instance.
type Item[N any] interface {
	// Syntax returns the underlying node.
	Syntax() *Node
	// ItemKind returns the node kind this view accepts. Must not touch state.
	ItemKind() NodeKind
	// Cast wraps n if its kind matches, reporting success. Must not touch state.
	Cast(n *Node) (N, bool)
}

// FnItem is a typed view over a NodeFn node.
type FnItem struct{ node *Node }

func (v FnItem) Syntax() *Node      { return v.node }
func (FnItem) ItemKind() NodeKind   { return NodeFn }
func (FnItem) Cast(n *Node) (FnItem, bool) {
	if n == nil || n.Kind != NodeFn {
		return FnItem{}, false
	}
	return FnItem{node: n}, true
}

// Name returns the declared function name.
func (v FnItem) Name() string { return v.node.Name() }

// Body returns the function's block node, nil for bodyless declarations.
func (v FnItem) Body() *Node { return v.node.FirstOfKind(NodeBlock) }

// StructItem is a typed view over a NodeStruct node.
type StructItem struct{ node *Node }

func (v StructItem) Syntax() *Node    { return v.node }
func (StructItem) ItemKind() NodeKind { return NodeStruct }
func (StructItem) Cast(n *Node) (StructItem, bool) {
	if n == nil || n.Kind != NodeStruct {
		return StructItem{}, false
	}
	return StructItem{node: n}, true
}

// Name returns the declared struct name.
func (v StructItem) Name() string { return v.node.Name() }

// Fields returns the struct's field nodes.
func (v StructItem) Fields() []*Node { return v.node.ChildrenOfKind(NodeField) }

// ImplItem is a typed view over a NodeImpl node.
type ImplItem struct{ node *Node }

func (v ImplItem) Syntax() *Node    { return v.node }
func (ImplItem) ItemKind() NodeKind { return NodeImpl }
func (ImplItem) Cast(n *Node) (ImplItem, bool) {
	if n == nil || n.Kind != NodeImpl {
		return ImplItem{}, false
	}
	return ImplItem{node: n}, true
}

// Name returns the name of the type the impl block extends.
func (v ImplItem) Name() string { return v.node.Name() }

// Fns returns the functions declared inside the impl block.
func (v ImplItem) Fns() []FnItem {
	nodes := v.node.ChildrenOfKind(NodeFn)
	out := make([]FnItem, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, FnItem{node: n})
	}
	return out
}

// AsFn wraps n as a FnItem view.
func AsFn(n *Node) (FnItem, bool) { return FnItem{}.Cast(n) }

// AsStruct wraps n as a StructItem view.
func AsStruct(n *Node) (StructItem, bool) { return StructItem{}.Cast(n) }

// AsImpl wraps n as an ImplItem view.
func AsImpl(n *Node) (ImplItem, bool) { return ImplItem{}.Cast(n) }
