// Package geometry describes rectangular page regions handed to the engine.
//
// Coordinates are opaque integers in the engine's page coordinate space
// (PDF points, origin bottom-left). No bounds checking is done here.
package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// Area is a rectangle given by its top-left and bottom-right corners
type Area struct {
	xTopLeft     int
	yTopLeft     int
	xBottomRight int
	yBottomRight int
}

// NewArea creates an area from its four corner coordinates
func NewArea(xTopLeft, yTopLeft, xBottomRight, yBottomRight int) Area {
	return Area{
		xTopLeft:     xTopLeft,
		yTopLeft:     yTopLeft,
		xBottomRight: xBottomRight,
		yBottomRight: yBottomRight,
	}
}

// XTopLeft returns the x coordinate of the top-left corner
func (a Area) XTopLeft() int { return a.xTopLeft }

// YTopLeft returns the y coordinate of the top-left corner
func (a Area) YTopLeft() int { return a.yTopLeft }

// XBottomRight returns the x coordinate of the bottom-right corner
func (a Area) XBottomRight() int { return a.xBottomRight }

// YBottomRight returns the y coordinate of the bottom-right corner
func (a Area) YBottomRight() int { return a.yBottomRight }

// Coords returns the area as "x1,y1,x2,y2"
func (a Area) Coords() string {
	return strings.Join([]string{
		strconv.Itoa(a.xTopLeft),
		strconv.Itoa(a.yTopLeft),
		strconv.Itoa(a.xBottomRight),
		strconv.Itoa(a.yBottomRight),
	}, ",")
}

// String implements fmt.Stringer
func (a Area) String() string {
	return a.Coords()
}

// ParseArea parses an "x1,y1,x2,y2" string
func ParseArea(value string) (Area, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return Area{}, fmt.Errorf("area %q must have 4 comma separated coordinates", value)
	}

	var coords [4]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Area{}, fmt.Errorf("area %q has invalid coordinate %q: %w", value, part, err)
		}
		coords[i] = n
	}

	return NewArea(coords[0], coords[1], coords[2], coords[3]), nil
}

// Areas is an ordered, append-only list of areas. The order is kept when
// the areas are rendered as repeated flags.
type Areas struct {
	areas []Area
}

// AreasFrom creates a list holding a single area
func AreasFrom(xTopLeft, yTopLeft, xBottomRight, yBottomRight int) *Areas {
	return NewAreas(NewArea(xTopLeft, yTopLeft, xBottomRight, yBottomRight))
}

// NewAreas creates a list from the given areas, in order
func NewAreas(areas ...Area) *Areas {
	list := &Areas{}
	for _, area := range areas {
		list.Push(area)
	}
	return list
}

// Add appends an area built from four coordinates
func (a *Areas) Add(xTopLeft, yTopLeft, xBottomRight, yBottomRight int) *Areas {
	return a.Push(NewArea(xTopLeft, yTopLeft, xBottomRight, yBottomRight))
}

// Push appends an area
func (a *Areas) Push(area Area) *Areas {
	a.areas = append(a.areas, area)
	return a
}

// Len returns the number of areas
func (a *Areas) Len() int {
	if a == nil {
		return 0
	}
	return len(a.areas)
}

// All returns a copy of the areas in insertion order
func (a *Areas) All() []Area {
	if a == nil {
		return nil
	}
	out := make([]Area, len(a.areas))
	copy(out, a.areas)
	return out
}

// ToDelimitedString prefixes every area's coordinates with join, so
// " -T " yields " -T 1,2,3,4 -T 5,6,7,8".
func (a *Areas) ToDelimitedString(join string) string {
	if a.Len() == 0 {
		return join
	}

	coords := make([]string, 0, len(a.areas))
	for _, area := range a.areas {
		coords = append(coords, area.Coords())
	}
	return join + strings.Join(coords, join)
}

// Args renders the areas as repeated flag/value pairs for an argv list
func (a *Areas) Args(flag string) []string {
	args := make([]string, 0, a.Len()*2)
	for _, area := range a.All() {
		args = append(args, flag, area.Coords())
	}
	return args
}
