package ports

// DocumentNode is a read-only element of a parsed geometry document.
type DocumentNode interface {
	// Name is the element name.
	Name() string
	// Text is the concatenated character data of the element.
	Text() string
	// Attr returns the named attribute or fallback when absent.
	Attr(name string, fallback string) string
	// Children returns the element children in document order.
	Children() []DocumentNode
}

// DocumentPort is path-based lookup over a parsed document. Paths are
// absolute XPath expressions; they double as variable locators.
type DocumentPort interface {
	Text(path string) string
	Node(path string) (DocumentNode, bool)
	Nodes(path string) []DocumentNode
	Attr(node DocumentNode, name string, fallback string) string
}

// DocumentLoaderPort parses geometry documents.
type DocumentLoaderPort interface {
	Load(path string) (DocumentPort, error)
	Parse(data []byte) (DocumentPort, error)
}
