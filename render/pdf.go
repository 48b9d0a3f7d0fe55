package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/tsawler/vitae/font"
	"github.com/tsawler/vitae/model"
)

// Metadata is written to the document information dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string

	// CreationDate fixes the creation and modification dates. The zero
	// value uses the time of rendering.
	CreationDate time.Time
}

// DocumentID returns a stable identifier derived from the title and author,
// so regenerating the same document yields the same id.
func (m Metadata) DocumentID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("vitae:"+m.Title+"\x00"+m.Author))
}

// Options configures a PDF surface.
type Options struct {
	Page     model.PageSize
	Metadata Metadata

	// Compress deflates content streams.
	Compress bool
}

// DefaultOptions returns options for a compressed A4 page.
func DefaultOptions() Options {
	return Options{Page: model.A4, Compress: true}
}

// PDF is a single-page layout.Surface backed by fpdf. Coordinates passed to
// it are PDF user space (origin bottom-left, y up); fpdf works top-down, so
// every y is flipped against the page height.
type PDF struct {
	doc    *fpdf.Fpdf
	height float64
}

// NewPDF creates a surface with one empty page.
func NewPDF(opts Options) (*PDF, error) {
	if !(opts.Page.Width > 0 && opts.Page.Height > 0) {
		return nil, fmt.Errorf("invalid page size %.2fx%.2f", opts.Page.Width, opts.Page.Height)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: opts.Page.Width, Ht: opts.Page.Height},
	})
	doc.SetCompression(opts.Compress)
	doc.SetCatalogSort(true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	m := opts.Metadata
	doc.SetTitle(m.Title, true)
	doc.SetAuthor(m.Author, true)
	doc.SetSubject(m.Subject, true)
	keywords := m.Keywords
	if keywords != "" {
		keywords += " "
	}
	doc.SetKeywords(keywords+"id:"+m.DocumentID().String(), true)
	if m.Creator != "" {
		doc.SetCreator(m.Creator, true)
	}
	if !m.CreationDate.IsZero() {
		doc.SetCreationDate(m.CreationDate)
		doc.SetModificationDate(m.CreationDate)
	}

	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)
	if err := doc.Error(); err != nil {
		return nil, err
	}
	return &PDF{doc: doc, height: opts.Page.Height}, nil
}

// Text draws s with its baseline starting at (x, y).
func (p *PDF) Text(x, y float64, s string, face font.Face, c model.Color) error {
	if err := face.Validate(); err != nil {
		return err
	}
	encoded, err := font.EncodeWinAnsi(s)
	if err != nil {
		return err
	}
	p.doc.SetFont(face.Family, face.Style(), face.Size)
	p.doc.SetTextColor(int(c.R), int(c.G), int(c.B))
	p.doc.Text(x, p.height-y, encoded)
	return p.doc.Error()
}

// Line strokes a line between two points.
func (p *PDF) Line(x1, y1, x2, y2, width float64, c model.Color) {
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetLineWidth(width)
	p.doc.Line(x1, p.height-y1, x2, p.height-y2)
}

// Link adds a URI link annotation over the given rectangle.
func (p *PDF) Link(x, y, w, h float64, url string) {
	p.doc.LinkString(x, p.height-(y+h), w, h, url)
}

// WriteTo writes the finished document to w.
func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.doc.Output(cw)
	return cw.n, err
}

// Save writes the document to path. The parent directory is created when it
// does not exist. The file is written under a temporary name in the same
// directory and renamed over path, so an existing file is replaced only by a
// complete document.
func (p *PDF) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
