// Package xmlfile loads, edits and saves XML files in place. Saving keeps
// the original BOM and line endings, and skips the write when the
// serialized bytes are unchanged.
package xmlfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/zerr"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// File is an XML document loaded for a single load-mutate-save cycle.
type File struct {
	*etree.Document

	path   string
	bom    bool
	crlf   bool
	exists bool
	digest uint64
	mode   os.FileMode
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // callers resolve the path
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}

	f := &File{
		Document: etree.NewDocument(),
		path:     path,
		exists:   true,
		digest:   xxhash.Sum64(data),
		mode:     info.Mode().Perm(),
	}

	body, hasBOM := bytes.CutPrefix(data, utf8BOM)
	f.bom = hasBOM
	f.crlf = bytes.Contains(body, []byte("\r\n"))

	if err := f.ReadFromBytes(body); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse file"), "path", path)
	}
	f.canonical()
	return f, nil
}

// LoadOrCreate loads the file at path, or starts a new document with the
// given root element when the file does not exist.
func LoadOrCreate(path, root string) (*File, error) {
	f, err := Load(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	f = &File{
		Document: etree.NewDocument(),
		path:     path,
		mode:     domain.FilePerm,
	}
	f.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	f.AddChild(etree.NewText("\n"))
	f.CreateElement(root).AddChild(etree.NewText("\n"))
	f.AddChild(etree.NewText("\n"))
	f.canonical()
	return f, nil
}

// Read parses the file at path for read-only use, ignoring a leading BOM.
func Read(path string) (*etree.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // callers resolve the path
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(bytes.TrimPrefix(data, utf8BOM)); err != nil {
		return nil, err
	}
	return doc, nil
}

// canonical makes attribute values carrying CR/LF or tabs serialize as
// character references so they survive the next parse.
func (f *File) canonical() {
	f.WriteSettings.CanonicalAttrVal = true
}

// Path returns the file's location.
func (f *File) Path() string {
	return f.path
}

// Save writes the document back. It reports whether the file changed.
func (f *File) Save() (bool, error) {
	out, err := f.WriteToBytes()
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to serialize file"), "path", f.path)
	}

	if f.crlf {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	if f.bom {
		out = append(append([]byte{}, utf8BOM...), out...)
	}

	sum := xxhash.Sum64(out)
	if f.exists && sum == f.digest {
		return false, nil
	}

	if !f.exists {
		if err := os.MkdirAll(filepath.Dir(f.path), domain.DirPerm); err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", f.path)
		}
	}
	if err := os.WriteFile(f.path, out, f.mode); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write file"), "path", f.path)
	}
	f.exists = true
	f.digest = sum
	return true, nil
}

// AppendChild appends a new element to parent, indented one level deeper
// than parent.
func AppendChild(parent *etree.Element, tag string) *etree.Element {
	child := etree.NewElement(tag)
	outer := indentOf(parent)
	inner := outer + indentUnit(outer)

	n := len(parent.Child)
	if n > 0 {
		if cd, ok := parent.Child[n-1].(*etree.CharData); ok && isBlank(cd) {
			parent.InsertChildAt(n-1, etree.NewText("\n"+inner))
			parent.InsertChildAt(n, child)
			return child
		}
	}

	parent.AddChild(etree.NewText("\n" + inner))
	parent.AddChild(child)
	parent.AddChild(etree.NewText("\n" + outer))
	return child
}

// InsertChildAfter inserts a new element directly after sibling, on its own
// line with the sibling's indentation. A nil sibling places the element
// first in parent.
func InsertChildAfter(parent, sibling *etree.Element, tag string) *etree.Element {
	if sibling == nil {
		first := parent.ChildElements()
		if len(first) == 0 {
			return AppendChild(parent, tag)
		}
		return insertAt(parent, first[0].Index(), indentOf(first[0]), tag, true)
	}
	return insertAt(parent, sibling.Index()+1, indentOf(sibling), tag, false)
}

// insertAt places a new element at idx. With before set, the element goes
// ahead of the indentation already preceding idx.
func insertAt(parent *etree.Element, idx int, indent, tag string, before bool) *etree.Element {
	if before && idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && isBlank(cd) {
			idx--
		}
	}
	child := etree.NewElement(tag)
	parent.InsertChildAt(idx, etree.NewText("\n"+indent))
	parent.InsertChildAt(idx+1, child)
	return child
}

// RemoveChild detaches child from parent along with its leading indentation.
func RemoveChild(parent, child *etree.Element) {
	idx := child.Index()
	if idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && isBlank(cd) {
			parent.RemoveChildAt(idx - 1)
		}
	}
	parent.RemoveChild(child)
}

// indentOf returns the whitespace preceding el on its own line.
func indentOf(el *etree.Element) string {
	parent := el.Parent()
	if parent == nil {
		return ""
	}
	idx := el.Index()
	if idx <= 0 {
		return ""
	}
	cd, ok := parent.Child[idx-1].(*etree.CharData)
	if !ok || !isBlank(cd) {
		return ""
	}
	ws := cd.Data
	if i := strings.LastIndex(ws, "\n"); i >= 0 {
		return ws[i+1:]
	}
	return ""
}

// isBlank reports whether cd holds only whitespace. CharData created in
// memory does not carry etree's whitespace flag, so the text is inspected.
func isBlank(cd *etree.CharData) bool {
	return strings.TrimLeft(cd.Data, " \t\r\n") == ""
}

func indentUnit(outer string) string {
	if strings.Contains(outer, "\t") {
		return "\t"
	}
	return "  "
}
