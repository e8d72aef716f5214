package converter

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NodeKind distinguishes element nodes from text nodes.
type NodeKind int

const (
	KindElement NodeKind = iota
	KindText
)

// Node is the minimal DOM surface the conversion walks. The production
// implementation wraps a parsed HTML tree; tests may substitute an in-memory
// one.
type Node interface {
	Kind() NodeKind
	// Tag returns the lower-case element name, empty for text nodes.
	Tag() string
	// Text returns the node's text content, concatenated across descendants
	// for elements.
	Text() string
	// Attr returns the value of the named attribute, empty when absent.
	Attr(name string) string
	// HasClass reports whether the element carries the CSS class.
	HasClass(name string) bool
	// Style returns one property value from the inline style attribute.
	Style(property string) string
	Parent() Node
	NextSibling() Node
	Children() []Node
}

// htmlNode adapts a parsed *html.Node to the Node interface. Comment and
// doctype nodes are invisible to the conversion.
type htmlNode struct {
	n *html.Node
}

func (h htmlNode) Kind() NodeKind {
	if h.n.Type == html.TextNode {
		return KindText
	}
	return KindElement
}

func (h htmlNode) Tag() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(h.n.Data)
}

func (h htmlNode) Text() string {
	if h.n.Type == html.TextNode {
		return h.n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(h.n)
	return sb.String()
}

func (h htmlNode) Attr(name string) string {
	for _, attr := range h.n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val
		}
	}
	return ""
}

func (h htmlNode) HasClass(name string) bool {
	return hasClass(h.Attr("class"), name)
}

func (h htmlNode) Style(property string) string {
	return styleProperty(h.Attr("style"), property)
}

func (h htmlNode) Parent() Node {
	if h.n.Parent == nil || !isContentNode(h.n.Parent) {
		return nil
	}
	return htmlNode{h.n.Parent}
}

func (h htmlNode) NextSibling() Node {
	for next := h.n.NextSibling; next != nil; next = next.NextSibling {
		if isContentNode(next) {
			return htmlNode{next}
		}
	}
	return nil
}

func (h htmlNode) Children() []Node {
	var children []Node
	for child := h.n.FirstChild; child != nil; child = child.NextSibling {
		if isContentNode(child) {
			children = append(children, htmlNode{child})
		}
	}
	return children
}

func isContentNode(n *html.Node) bool {
	return n.Type == html.ElementNode || n.Type == html.TextNode
}

// parseContainer parses an HTML fragment and locates the element whose
// children are the note's top-level nodes: the schema root div when the note
// wraps its content in exactly one, the synthesized body otherwise.
func parseContainer(source string) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, err
	}

	body := doc.Find("body").First()
	if len(body.Nodes) == 0 {
		return nil, errors.New("document has no body")
	}

	if len(body.Children().Nodes) == 1 {
		if root := body.ChildrenFiltered("div[data-schema-version]"); len(root.Nodes) == 1 {
			return htmlNode{root.Nodes[0]}, nil
		}
	}
	return htmlNode{body.Nodes[0]}, nil
}

func hasClass(classAttr, name string) bool {
	for _, class := range strings.Fields(classAttr) {
		if class == name {
			return true
		}
	}
	return false
}

func styleProperty(styleAttr, property string) string {
	for _, decl := range strings.Split(styleAttr, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), property) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// findDescendant returns the first node in depth-first order for which match
// reports true, or nil.
func findDescendant(n Node, match func(Node) bool) Node {
	for _, child := range n.Children() {
		if match(child) {
			return child
		}
		if found := findDescendant(child, match); found != nil {
			return found
		}
	}
	return nil
}

func findByClass(n Node, class string) Node {
	return findDescendant(n, func(candidate Node) bool {
		return candidate.Kind() == KindElement && candidate.HasClass(class)
	})
}

func findByTag(n Node, tag string) Node {
	return findDescendant(n, func(candidate Node) bool {
		return candidate.Tag() == tag
	})
}
