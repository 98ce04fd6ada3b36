package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// SVG is a Surface that records shapes and serializes them as an SVG
// document. Gradient fills become native linearGradient defs in user
// space, so the output stays resolution independent.
type SVG struct {
	w, h  int
	defs  strings.Builder
	body  strings.Builder
	grads int
}

// NewSVG creates an empty SVG surface of the given pixel size.
func NewSVG(w, h int) (*SVG, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", w, h)
	}
	return &SVG{w: w, h: h}, nil
}

func (s *SVG) FillRect(r Rect, f Fill) {
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), s.fillRef(f))
}

func (s *SVG) FillPolygon(p Polygon, f Fill) {
	if len(p) < 3 {
		return
	}
	var pts strings.Builder
	for i, pt := range p {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%s,%s", num(pt.X), num(pt.Y))
	}
	fmt.Fprintf(&s.body, `<polygon points="%s" fill="%s"/>`+"\n", pts.String(), s.fillRef(f))
}

func (s *SVG) FillDisc(d Disc, f Fill) {
	if d.R <= 0 {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(d.CX), num(d.CY), num(d.R), s.fillRef(f))
}

// fillRef registers gradient fills under defs and returns the SVG fill
// attribute value for f.
func (s *SVG) fillRef(f Fill) string {
	switch fill := f.(type) {
	case Solid:
		return svgColor(fill.Color)
	case LinearGradient:
		id := fmt.Sprintf("grad%d", s.grads)
		s.grads++
		fmt.Fprintf(&s.defs,
			`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
			id, num(fill.X0), num(fill.Y0), num(fill.X1), num(fill.Y1))
		for _, stop := range fill.Stops {
			fmt.Fprintf(&s.defs, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
				num(stop.Pos), svgColor(stop.Color), num(float64(stop.Color.A)/255))
		}
		s.defs.WriteString("</linearGradient>\n")
		return "url(#" + id + ")"
	default:
		return "none"
	}
}

// WriteTo serializes the recorded document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var doc strings.Builder
	fmt.Fprintf(&doc,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.w, s.h, s.w, s.h)
	if s.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.WriteString(s.defs.String())
		doc.WriteString("</defs>\n")
	}
	doc.WriteString(s.body.String())
	doc.WriteString("</svg>\n")

	n, err := io.WriteString(w, doc.String())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write svg: %w", err)
	}
	return int64(n), nil
}

func svgColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// num formats coordinates compactly, trimming trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
