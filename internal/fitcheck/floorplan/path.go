package floorplan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ============================================================
// Path Parser
// ============================================================

var pathCommand = regexp.MustCompile(`([MmLlHhVvZz])([^MmLlHhVvZz]*)`)

// ParsePath turns an SVG path made of M, L, H, V and Z commands into points.
// Repeated coordinate pairs after M/L are treated as implicit line-tos.
func ParsePath(d string) ([]orb.Point, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var points []orb.Point
	var x, y float64

	for _, match := range pathCommand.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		coords := parseCoords(match[2])

		switch cmd {
		case "M", "L":
			for i := 0; i+1 < len(coords); i += 2 {
				x, y = coords[i], coords[i+1]
				points = append(points, orb.Point{x, y})
			}
		case "m", "l":
			for i := 0; i+1 < len(coords); i += 2 {
				x += coords[i]
				y += coords[i+1]
				points = append(points, orb.Point{x, y})
			}
		case "H", "h":
			for _, c := range coords {
				if cmd == "H" {
					x = c
				} else {
					x += c
				}
				points = append(points, orb.Point{x, y})
			}
		case "V", "v":
			for _, c := range coords {
				if cmd == "V" {
					y = c
				} else {
					y += c
				}
				points = append(points, orb.Point{x, y})
			}
		case "Z", "z":
			if len(points) > 0 {
				x, y = points[0][0], points[0][1]
				points = append(points, points[0])
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("path %q has no drawable points", d)
	}
	return points, nil
}

func parseCoords(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var coords []float64
	for _, part := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		if val, err := strconv.ParseFloat(part, 64); err == nil {
			coords = append(coords, val)
		}
	}
	return coords
}
