package industry

import "sort"

// RequirementNode is one node of the expansion tree rooted at the
// requested output. Quantities are post-bonus and rounded per the
// per-run rounding rules. The tree is created fresh per resolve() call
// and never persisted.
type RequirementNode struct {
	ItemID   int64
	Quantity int64 // total across all runs of the parent

	// IsIntermediate is true when the node is built from its own
	// blueprint rather than bought as a raw input.
	IsIntermediate    bool
	SourceBlueprintID int64 // zero for raw leaves
	Runs              int64 // blueprint runs needed, zero for raw leaves
	MELevel           int   // effective levels applied at this node
	TELevel           int
	TimeSeconds       int64 // production time for this node's runs, zero for leaves

	Children []*RequirementNode
}

// NewRawLeaf creates a terminal node for a material that must be bought
func NewRawLeaf(itemID, quantity int64) *RequirementNode {
	return &RequirementNode{
		ItemID:   itemID,
		Quantity: quantity,
	}
}

// NewIntermediate creates a node that is manufactured from its children
func NewIntermediate(itemID, quantity, blueprintID, runs int64, me, te int) *RequirementNode {
	return &RequirementNode{
		ItemID:            itemID,
		Quantity:          quantity,
		IsIntermediate:    true,
		SourceBlueprintID: blueprintID,
		Runs:              runs,
		MELevel:           me,
		TELevel:           te,
		Children:          make([]*RequirementNode, 0),
	}
}

// AddChild appends an input requirement to this node
func (n *RequirementNode) AddChild(child *RequirementNode) {
	n.Children = append(n.Children, child)
}

// IsLeaf reports whether this node terminates the expansion
func (n *RequirementNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// TotalDepth returns the maximum depth of the tree from this node
func (n *RequirementNode) TotalDepth() int {
	if n.IsLeaf() {
		return 1
	}
	maxChildDepth := 0
	for _, child := range n.Children {
		if d := child.TotalDepth(); d > maxChildDepth {
			maxChildDepth = d
		}
	}
	return maxChildDepth + 1
}

// TotalTimeSeconds returns the critical-path production time: the node's
// own time plus the slowest child chain. Sibling subtrees are assumed to
// run in parallel job slots.
func (n *RequirementNode) TotalTimeSeconds() int64 {
	longestChild := int64(0)
	for _, child := range n.Children {
		if t := child.TotalTimeSeconds(); t > longestChild {
			longestChild = t
		}
	}
	return n.TimeSeconds + longestChild
}

// CountNodes returns the total number of nodes in the tree
func (n *RequirementNode) CountNodes() int {
	count := 1
	for _, child := range n.Children {
		count += child.CountNodes()
	}
	return count
}

// FlatMaterialMap aggregates leaf quantities by item across the whole
// tree. Only raw, non-manufactured materials appear in it; intermediate
// quantities are implied by their subtrees. Derived, never independently
// mutated.
type FlatMaterialMap map[int64]int64

// Flatten walks the tree and sums every raw leaf into a FlatMaterialMap,
// merging duplicates from different branches.
func (n *RequirementNode) Flatten() FlatMaterialMap {
	flat := make(FlatMaterialMap)
	n.flattenInto(flat)
	return flat
}

func (n *RequirementNode) flattenInto(flat FlatMaterialMap) {
	if !n.IsIntermediate {
		flat[n.ItemID] += n.Quantity
		return
	}
	for _, child := range n.Children {
		child.flattenInto(flat)
	}
}

// SortedItemIDs returns the material item ids in ascending order, giving
// callers a deterministic iteration order for display.
func (m FlatMaterialMap) SortedItemIDs() []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
