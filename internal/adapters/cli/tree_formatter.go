package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/industry-go/internal/application/planning/types"
)

// TreeFormatter provides rich visualization of requirement trees
type TreeFormatter struct {
	showResearch bool
}

// NewTreeFormatter creates a new tree formatter. With showResearch the
// per-node blueprint research levels and job times are printed too.
func NewTreeFormatter(showResearch bool) *TreeFormatter {
	return &TreeFormatter{showResearch: showResearch}
}

// FormatTree renders a requirement tree with build/buy indicators
func (f *TreeFormatter) FormatTree(root *types.RequirementNodeDTO) string {
	if root == nil {
		return "(empty tree)\n"
	}

	var builder strings.Builder
	f.formatNode(&builder, root, "", true, true)
	return builder.String()
}

// formatNode recursively formats a node and its children
func (f *TreeFormatter) formatNode(builder *strings.Builder, node *types.RequirementNodeDTO, prefix string, isLast bool, isRoot bool) {
	var linePrefix string
	if isRoot {
		linePrefix = ""
	} else if isLast {
		linePrefix = prefix + "└── "
	} else {
		linePrefix = prefix + "├── "
	}

	method := "BUY"
	if node.IsIntermediate {
		method = "BUILD"
	}

	detail := ""
	if node.IsIntermediate {
		detail = fmt.Sprintf(", %d runs", node.Runs)
		if f.showResearch {
			detail += fmt.Sprintf(", ME%d/TE%d, %s",
				node.MELevel, node.TELevel, formatDuration(node.TimeSeconds))
		}
	}

	builder.WriteString(fmt.Sprintf("%s%d x %d [%s%s]\n",
		linePrefix, node.Quantity, node.ItemID, method, detail))

	if len(node.Children) > 0 {
		var childPrefix string
		if isRoot {
			childPrefix = ""
		} else if isLast {
			childPrefix = prefix + "    "
		} else {
			childPrefix = prefix + "│   "
		}

		for i, child := range node.Children {
			isLastChild := i == len(node.Children)-1
			f.formatNode(builder, child, childPrefix, isLastChild, false)
		}
	}
}

// FormatTreeSummary creates a compact summary of the tree
func (f *TreeFormatter) FormatTreeSummary(root *types.RequirementNodeDTO) string {
	if root == nil {
		return "No requirement tree"
	}

	totalNodes, buildCount, depth := summarize(root, 1)
	buyCount := totalNodes - buildCount

	return fmt.Sprintf("Tree: %d nodes (%d BUY, %d BUILD), depth=%d",
		totalNodes, buyCount, buildCount, depth)
}

// summarize walks the tree counting nodes and the deepest level
func summarize(node *types.RequirementNodeDTO, level int) (total, builds, depth int) {
	total = 1
	depth = level
	if node.IsIntermediate {
		builds = 1
	}
	for _, child := range node.Children {
		t, b, d := summarize(child, level+1)
		total += t
		builds += b
		if d > depth {
			depth = d
		}
	}
	return total, builds, depth
}
