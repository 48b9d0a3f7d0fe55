// Package render provides the PDF drawing surface used by the layout
// package.
//
// A [PDF] holds exactly one page. Blocks draw on it through the
// layout.Surface methods using PDF user space coordinates, and [PDF.Save]
// writes the finished file:
//
//	surface, err := render.NewPDF(render.DefaultOptions())
//	if err != nil {
//	    // handle error
//	}
//	_, err = layout.Place(surface, x, y, width, block)
//	err = surface.Save("./assets/cv.pdf")
//
// Text uses the standard 14 fonts with WinAnsiEncoding, so no font files
// are embedded.
package render
