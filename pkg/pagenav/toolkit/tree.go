package toolkit

import "github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"

// Node is the surface bookkeeping shared by providers: geometry, visibility,
// opacity and children ordered back to front. A provider embeds Node in its
// surface type and calls Init once; the embedding type then satisfies Surface.
type Node struct {
	owner    Surface
	parent   *Node
	children []*Node
	w, h     int32
	x, y     int32
	hidden   bool
	opacity  uint8
	deleted  bool
	onDelete func()
}

// Init attaches n under parent (nil for a root) with size w x h, fully opaque.
// owner is the surface embedding n. onDelete, if set, runs once n is detached.
func (n *Node) Init(owner Surface, parent *Node, w, h int32, onDelete func()) {
	n.owner = owner
	n.parent = parent
	n.w, n.h = w, h
	n.opacity = constants.OpacityCover
	n.onDelete = onDelete
	if parent != nil {
		parent.children = append(parent.children, n)
	}
}

func (n *Node) Size() (int32, int32)     { return n.w, n.h }
func (n *Node) Position() (int32, int32) { return n.x, n.y }
func (n *Node) SetPosition(x, y int32)   { n.x, n.y = x, y }
func (n *Node) SetSize(w, h int32)       { n.w, n.h = w, h }
func (n *Node) Hidden() bool             { return n.hidden }
func (n *Node) SetHidden(hidden bool)    { n.hidden = hidden }
func (n *Node) Opacity() uint8           { return n.opacity }
func (n *Node) SetOpacity(opa uint8)     { n.opacity = opa }
func (n *Node) Deleted() bool            { return n.deleted }

// Owner returns the surface embedding n.
func (n *Node) Owner() Surface { return n.owner }

// Children returns the live children, back to front.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// ZIndex returns the position of n among its siblings (higher is in front),
// or -1 for a root or deleted node.
func (n *Node) ZIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *Node) MoveToFront() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			copy(siblings[i:], siblings[i+1:])
			siblings[len(siblings)-1] = n
			return
		}
	}
}

// Delete deletes the children, detaches n from its parent and runs the
// onDelete hook. Deleting twice is a no-op.
func (n *Node) Delete() {
	if n.deleted {
		return
	}
	for _, c := range n.Children() {
		c.Delete()
	}
	n.deleted = true
	if n.parent != nil {
		siblings := n.parent.children
		for i, c := range siblings {
			if c == n {
				n.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	if n.onDelete != nil {
		n.onDelete()
	}
}

// Shown reports whether n and every ancestor are live, not hidden and at
// least minOpacity opaque.
func (n *Node) Shown(minOpacity uint8) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.hidden || cur.deleted || cur.opacity < minOpacity {
			return false
		}
	}
	return true
}

// Origin returns the position of n relative to the root.
func (n *Node) Origin() (int32, int32) {
	var x, y int32
	for cur := n; cur != nil; cur = cur.parent {
		x += cur.x
		y += cur.y
	}
	return x, y
}
