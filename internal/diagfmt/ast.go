package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"pubsweep/internal/ast"
	"pubsweep/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTTree prints the declaration tree of one parsed file.
func FormatASTTree(w io.Writer, b *ast.Builder, fid ast.FileID, fs *source.FileSet) error {
	root := buildFileTreeNode(b, fid, fs)
	printTree(w, root, "", true, true)
	return nil
}

// ASTNodeJSON is the JSON shape of one declaration-tree node.
type ASTNodeJSON struct {
	Label    string        `json:"label"`
	Children []ASTNodeJSON `json:"children,omitempty"`
}

// FormatASTJSON prints the declaration tree of one parsed file as JSON.
func FormatASTJSON(w io.Writer, b *ast.Builder, fid ast.FileID, fs *source.FileSet) error {
	root := buildFileTreeNode(b, fid, fs)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonNode(root))
}

func jsonNode(n *treeNode) ASTNodeJSON {
	out := ASTNodeJSON{Label: n.label}
	for _, child := range n.children {
		out.Children = append(out.Children, jsonNode(child))
	}
	return out
}

func buildFileTreeNode(b *ast.Builder, fid ast.FileID, fs *source.FileSet) *treeNode {
	file := b.Files.Get(fid)
	if file == nil {
		return &treeNode{label: fmt.Sprintf("File[%d]: <nil>", fid)}
	}
	header := "File"
	if fs != nil {
		if srcFile := fs.Get(file.Source); srcFile != nil {
			header = srcFile.DisplayPath()
		}
	}
	root := &treeNode{label: fmt.Sprintf("%s (%d items)", header, len(file.Items))}
	for _, id := range file.Items {
		root.children = append(root.children, buildItemTreeNode(b, id))
	}
	return root
}

func buildItemTreeNode(b *ast.Builder, id ast.ItemID) *treeNode {
	item := b.Items.Get(id)
	if item == nil {
		return &treeNode{label: "<nil>"}
	}
	node := &treeNode{label: item.Kind.String()}

	switch {
	case item.Kind.IsSimple():
		decl := b.Items.Simple(id)
		node.label += nameAndVis(b, decl.Name, decl.Vis)
	case item.Kind == ast.ItemStruct:
		decl := b.Items.Struct(id)
		node.label += nameAndVis(b, decl.Name, decl.Vis)
		for _, f := range decl.Fields {
			node.children = append(node.children, &treeNode{
				label: "field" + nameAndVis(b, f.Name, f.Vis),
			})
		}
	case item.Kind == ast.ItemUnion:
		decl := b.Items.Union(id)
		node.label += nameAndVis(b, decl.Name, decl.Vis)
		for _, f := range decl.Fields {
			node.children = append(node.children, &treeNode{
				label: "field" + nameAndVis(b, f.Name, f.Vis),
			})
		}
	case item.Kind == ast.ItemMod:
		decl := b.Items.Mod(id)
		node.label += nameAndVis(b, decl.Name, decl.Vis)
		if !decl.HasBody {
			node.label += " (out-of-line)"
		}
		for _, child := range decl.Items {
			node.children = append(node.children, buildItemTreeNode(b, child))
		}
	case item.Kind == ast.ItemImpl:
		decl := b.Items.Impl(id)
		if decl.HasTrait {
			node.label += " (trait)"
		}
		for _, m := range decl.Members {
			node.children = append(node.children, memberTreeNode(b, m))
		}
	case item.Kind == ast.ItemForeign:
		decl := b.Items.Foreign(id)
		if decl.Abi != source.NoStringID {
			node.label += " " + b.Interner.MustLookup(decl.Abi)
		}
		for _, m := range decl.Members {
			node.children = append(node.children, memberTreeNode(b, m))
		}
	}
	return node
}

func memberTreeNode(b *ast.Builder, m ast.Member) *treeNode {
	label := memberKindLabel(m.Kind) + nameAndVis(b, m.Name, m.Vis)
	return &treeNode{label: label}
}

func memberKindLabel(k ast.MemberKind) string {
	switch k {
	case ast.MemberConst:
		return "const"
	case ast.MemberFn:
		return "fn"
	case ast.MemberStatic:
		return "static"
	case ast.MemberType:
		return "type"
	case ast.MemberMacro:
		return "macro"
	default:
		return "other"
	}
}

func nameAndVis(b *ast.Builder, name source.StringID, vis ast.Visibility) string {
	out := ""
	if name != source.NoStringID {
		out += " " + b.Interner.MustLookup(name)
	}
	if vis == ast.VisPublic {
		out += " [pub]"
	}
	return out
}

func printTree(w io.Writer, node *treeNode, prefix string, isLast, isRoot bool) {
	if isRoot {
		fmt.Fprintln(w, node.label)
	} else {
		branch := "├── "
		if isLast {
			branch = "└── "
		}
		fmt.Fprintln(w, prefix+branch+node.label)
	}
	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}
	for i, child := range node.children {
		printTree(w, child, childPrefix, i == len(node.children)-1, false)
	}
}
