package adapters

import (
	"bytes"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/antchfx/xmlquery"

	"vspcatalog/internal/ports"
)

// XMLDocumentAdapter parses geometry documents into an XPath-queryable tree.
type XMLDocumentAdapter struct{}

func NewXMLDocumentAdapter() XMLDocumentAdapter {
	return XMLDocumentAdapter{}
}

func (a XMLDocumentAdapter) Load(path string) (ports.DocumentPort, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("geometry file not found: " + path).
			WithCause(err)
	}
	return a.Parse(data)
}

func (a XMLDocumentAdapter) Parse(data []byte) (ports.DocumentPort, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse geometry document").
			WithCause(err)
	}
	return xmlDocument{root: root}, nil
}

type xmlDocument struct {
	root *xmlquery.Node
}

// Text returns the text of the first node matching path, or "" when
// nothing matches or the expression is invalid.
func (d xmlDocument) Text(path string) string {
	node, err := xmlquery.Query(d.root, path)
	if err != nil || node == nil {
		return ""
	}
	return node.InnerText()
}

func (d xmlDocument) Node(path string) (ports.DocumentNode, bool) {
	node, err := xmlquery.Query(d.root, path)
	if err != nil || node == nil {
		return nil, false
	}
	return xmlNode{node: node}, true
}

func (d xmlDocument) Nodes(path string) []ports.DocumentNode {
	nodes, err := xmlquery.QueryAll(d.root, path)
	if err != nil {
		return nil
	}
	out := make([]ports.DocumentNode, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, xmlNode{node: node})
	}
	return out
}

func (d xmlDocument) Attr(node ports.DocumentNode, name string, fallback string) string {
	if node == nil {
		return fallback
	}
	return node.Attr(name, fallback)
}

type xmlNode struct {
	node *xmlquery.Node
}

func (n xmlNode) Name() string {
	return n.node.Data
}

func (n xmlNode) Text() string {
	return strings.TrimSpace(n.node.InnerText())
}

func (n xmlNode) Attr(name string, fallback string) string {
	for _, attr := range n.node.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return fallback
}

// Children returns element children only; text and comments are skipped.
func (n xmlNode) Children() []ports.DocumentNode {
	var out []ports.DocumentNode
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			out = append(out, xmlNode{node: child})
		}
	}
	return out
}

var (
	_ ports.DocumentLoaderPort = XMLDocumentAdapter{}
	_ ports.DocumentPort       = xmlDocument{}
)
