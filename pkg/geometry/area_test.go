package geometry

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaCoords(t *testing.T) {
	tests := []struct {
		a, b, c, d int
	}{
		{0, 0, 0, 0},
		{10, 20, 30, 40},
		{-5, 700, 612, -1},
		{316, 499, 566, 337},
	}

	for _, tt := range tests {
		area := NewArea(tt.a, tt.b, tt.c, tt.d)
		assert.Equal(t, fmt.Sprintf("%d,%d,%d,%d", tt.a, tt.b, tt.c, tt.d), area.Coords())
		assert.Equal(t, area.Coords(), area.String())
		assert.Equal(t, tt.a, area.XTopLeft())
		assert.Equal(t, tt.b, area.YTopLeft())
		assert.Equal(t, tt.c, area.XBottomRight())
		assert.Equal(t, tt.d, area.YBottomRight())
	}
}

func TestAreasToDelimitedString(t *testing.T) {
	first := NewArea(1, 2, 3, 4)
	second := NewArea(5, 6, 7, 8)

	areas := NewAreas().Push(first).Push(second)

	assert.Equal(t, " -T "+first.Coords()+" -T "+second.Coords(), areas.ToDelimitedString(" -T "))
	assert.Equal(t, " -R 1,2,3,4", AreasFrom(1, 2, 3, 4).ToDelimitedString(" -R "))
}

func TestAreasKeepInsertionOrder(t *testing.T) {
	areas := AreasFrom(9, 9, 9, 9).Add(1, 1, 1, 1).Push(NewArea(5, 5, 5, 5))

	require.Equal(t, 3, areas.Len())
	want := []string{"-T", "9,9,9,9", "-T", "1,1,1,1", "-T", "5,5,5,5"}
	if diff := cmp.Diff(want, areas.Args("-T")); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestAreasAllReturnsCopy(t *testing.T) {
	areas := AreasFrom(1, 2, 3, 4)
	all := areas.All()
	all[0] = NewArea(0, 0, 0, 0)

	assert.Equal(t, "1,2,3,4", areas.All()[0].Coords())
}

func TestNilAreas(t *testing.T) {
	var areas *Areas
	assert.Equal(t, 0, areas.Len())
	assert.Empty(t, areas.Args("-T"))
}

func TestParseArea(t *testing.T) {
	area, err := ParseArea("10, 20,30,40")
	require.NoError(t, err)
	assert.Equal(t, NewArea(10, 20, 30, 40), area)

	_, err = ParseArea("1,2,3")
	assert.Error(t, err)

	_, err = ParseArea("1,2,x,4")
	assert.Error(t, err)
}
