package tree

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/net/html"

	"github.com/benoitkugler/webstyle/css/parser"
	"github.com/benoitkugler/webstyle/logger"
)

// Element is a node of the document tree. The style resolution only
// needs the tree structure and the winning declarations of each element,
// the cascade being resolved upstream.
type Element interface {
	// Parent returns nil for the root element.
	Parent() Element
	Children() []Element
	// Declarations returns the declarations applying to the element,
	// in cascade order : a later declaration overrides an earlier one
	// of the same importance.
	Declarations() []parser.Declaration
}

// Node is the in-memory [Element] implementation.
type Node struct {
	Tag string

	parent       *Node
	children     []*Node
	declarations []parser.Declaration
}

var _ Element = (*Node)(nil)

// NewNode returns an element whose declarations are read from
// [style], with the syntax of a style attribute.
// Declarations which can't be parsed are skipped and reported
// in the returned error, the node is always valid.
func NewNode(tag, style string) (*Node, error) {
	declarations, errs := parser.ParseDeclarationList(style)
	return &Node{Tag: tag, declarations: declarations}, multierr.Combine(errs...)
}

// MustNode is the same as [NewNode] but panics on invalid declarations.
func MustNode(tag, style string, children ...*Node) *Node {
	n, err := NewNode(tag, style)
	if err != nil {
		panic(fmt.Sprintf("invalid style %q: %s", style, err))
	}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

// AppendChild adds [child] as last child of [n], and returns [n].
func (n *Node) AppendChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) Declarations() []parser.Declaration { return n.declarations }

// Iter returns the node and its descendants, in document order.
func (n *Node) Iter() []*Node {
	out := []*Node{n}
	for _, child := range n.children {
		out = append(out, child.Iter()...)
	}
	return out
}

// Path returns a selector identifying the node in its tree,
// such as `html > body > p:nth-child(2)`.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.Tag
	}
	index := 1
	for _, sibling := range n.parent.children {
		if sibling == n {
			break
		}
		index++
	}
	return fmt.Sprintf("%s > %s:nth-child(%d)", n.parent.Path(), n.Tag, index)
}

func (n *Node) String() string { return n.Path() }

// ParseHTML parses an HTML document and returns its root element.
// The declarations of each element are read from its `style` attribute.
// Invalid declarations are logged and ignored.
func ParseHTML(r io.Reader) (*Node, error) {
	logger.ProgressLogger.Info("Step 1 - Parsing HTML")

	document, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("invalid html input : %s", err)
	}

	// html.Parse wraps the <html> tag
	root := document.FirstChild
	for root != nil && root.Type != html.ElementNode {
		root = root.NextSibling
	}
	if root == nil {
		return nil, fmt.Errorf("invalid html input : missing root element")
	}
	return convertNode(root), nil
}

func convertNode(node *html.Node) *Node {
	out := &Node{Tag: node.Data}
	for _, attr := range node.Attr {
		if attr.Namespace != "" || attr.Key != "style" {
			continue
		}
		declarations, errs := parser.ParseDeclarationList(attr.Val)
		for _, err := range errs {
			logger.WarningLogger.Warnf("Ignored declaration in style attribute of <%s>: %s", node.Data, err)
		}
		out.declarations = declarations
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out.AppendChild(convertNode(child))
		}
	}
	return out
}

// ParseHTMLString is a convenience wrapper around [ParseHTML].
func ParseHTMLString(content string) (*Node, error) {
	return ParseHTML(strings.NewReader(content))
}
