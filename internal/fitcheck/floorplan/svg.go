package floorplan

import (
	"encoding/xml"
	"io"
	"strings"

	"placement-service/internal/fitcheck/models"

	"github.com/paulmach/orb"
)

// ============================================================
// XML Structures
// ============================================================

type svgDocument struct {
	XMLName xml.Name `xml:"svg"`
	svgGroup
}

type svgGroup struct {
	Rects  []svgRect  `xml:"rect"`
	Paths  []svgPath  `xml:"path"`
	Groups []svgGroup `xml:"g"`
}

type svgRect struct {
	ID     string  `xml:"id,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type svgPath struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

// ============================================================
// Elements
// ============================================================

type ElementKind string

const (
	KindRoom    ElementKind = "room"
	KindDoor    ElementKind = "door"
	KindWindow  ElementKind = "window"
	KindArchway ElementKind = "archway"
)

// Element is a classified floor-plan shape reduced to its bounding box in SVG units.
type Element struct {
	ID    string
	Kind  ElementKind
	Bound orb.Bound
}

// ParseSVG decodes an SVG floor plan and keeps the rooms and openings,
// including those nested in <g> groups.
func ParseSVG(r io.Reader) ([]Element, error) {
	var doc svgDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	var elements []Element
	collect(doc.svgGroup, &elements)
	return elements, nil
}

func collect(doc svgGroup, out *[]Element) {
	for _, rect := range doc.Rects {
		kind := classifyElementByID(rect.ID)
		if kind == "" {
			continue
		}
		*out = append(*out, Element{
			ID:   rect.ID,
			Kind: kind,
			Bound: orb.Bound{
				Min: orb.Point{rect.X, rect.Y},
				Max: orb.Point{rect.X + rect.Width, rect.Y + rect.Height},
			},
		})
	}

	for _, path := range doc.Paths {
		kind := classifyElementByID(path.ID)
		if kind == "" {
			continue
		}
		points, err := ParsePath(path.D)
		if err != nil {
			continue
		}
		*out = append(*out, Element{
			ID:    path.ID,
			Kind:  kind,
			Bound: orb.MultiPoint(points).Bound(),
		})
	}

	for _, group := range doc.Groups {
		collect(group, out)
	}
}

func classifyElementByID(id string) ElementKind {
	switch {
	case strings.HasPrefix(id, "Door_"):
		return KindDoor
	case strings.HasPrefix(id, "Window_"):
		return KindWindow
	case strings.HasPrefix(id, "Arch_"), strings.HasPrefix(id, "Archway_"):
		return KindArchway
	case strings.HasPrefix(id, "Room_"), strings.HasSuffix(id, "_room"), strings.HasSuffix(id, "_Room"):
		return KindRoom
	}
	return ""
}

func (k ElementKind) openingType() models.OpeningType {
	switch k {
	case KindDoor:
		return models.OpeningDoor
	case KindWindow:
		return models.OpeningWindow
	}
	return models.OpeningArchway
}
