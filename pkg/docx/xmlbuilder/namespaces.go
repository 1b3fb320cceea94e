package xmlbuilder

// Namespace is a prefix binding declared on part roots.
type Namespace struct {
	Prefix string
	URI    string
}

// namespaces is declared on every part root in this order. Unused prefixes
// stay: consumers compare the root verbatim.
var namespaces = [...]Namespace{
	{"o", "urn:schemas-microsoft-com:office:office"},
	{"r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"},
	{"v", "urn:schemas-microsoft-com:vml"},
	{"w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"},
	{"w10", "urn:schemas-microsoft-com:office:word"},
	{"wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"},
	{"wps", "http://schemas.microsoft.com/office/word/2010/wordprocessingShape"},
	{"wpg", "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"},
	{"mc", "http://schemas.openxmlformats.org/markup-compatibility/2006"},
	{"wp14", "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"},
	{"w14", "http://schemas.microsoft.com/office/word/2010/wordml"},
}

const ignorable = "w14 wp14"

// Namespaces returns a copy of the root namespace table in emission order.
func Namespaces() []Namespace {
	out := make([]Namespace, len(namespaces))
	copy(out, namespaces[:])
	return out
}
