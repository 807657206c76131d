package aa

import (
	"fmt"
	"strings"

	"go.lepak.sg/ordmap/tree"
)

// String returns a string representation of the tree, with each
// node's level after a slash. A tree holding 1 to 7 looks like this:
//
//	4/3
//	├─L─2/2
//	│   ├─L─1/1
//	│   └─R─3/1
//	└─R─6/2
//	    ├─L─5/1
//	    └─R─7/1
func (t *Tree[K, V]) String() string {
	return t.Sprint(false)
}

// Sprint is String, and also prints values if withValues is true.
func (t *Tree[K, V]) Sprint(withValues bool) string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false, withValues)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[K, V any](sb *strings.Builder, n *tree.Node[K, V],
	prefix, branch string, initial, isMid, withValues bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	if withValues {
		fmt.Fprintf(sb, "%v=%v/%d", n.Key, n.Value, n.Level)
	} else {
		fmt.Fprintf(sb, "%v/%d", n.Key, n.Level)
	}
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil, withValues)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false, withValues)
	}
}
