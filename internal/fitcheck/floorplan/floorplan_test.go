package floorplan

import (
	"errors"
	"strings"
	"testing"

	"placement-service/internal/fitcheck/models"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1000" height="800">
  <rect id="Wall_1" x="100" y="100" width="400" height="10"/>
  <rect id="Room_living" x="100" y="100" width="400" height="500"/>
  <g id="openings">
    <rect id="Door_1" x="160" y="595" width="80" height="10"/>
    <path id="Window_1" d="M 495 300 h 10 v 120 h -10 Z"/>
  </g>
  <rect id="Window_far" x="300" y="350" width="10" height="10"/>
  <rect id="Hall_room" x="500" y="100" width="100" height="100"/>
</svg>`

func TestParsePath_Commands(t *testing.T) {
	points, err := ParsePath("M 10 20 l 5 0 H 40 v 10 V 50 h -30 z")
	require.NoError(t, err)

	assert.Equal(t, []orb.Point{
		{10, 20}, {15, 20}, {40, 20}, {40, 30}, {40, 50}, {10, 50}, {10, 20},
	}, points)
}

func TestParsePath_ImplicitLineTo(t *testing.T) {
	points, err := ParsePath("M0,0 10,0 10,10")
	require.NoError(t, err)

	assert.Equal(t, []orb.Point{{0, 0}, {10, 0}, {10, 10}}, points)
}

func TestParsePath_Empty(t *testing.T) {
	_, err := ParsePath("   ")
	require.Error(t, err)
}

func TestParseSVG_ClassifiesElements(t *testing.T) {
	elements, err := ParseSVG(strings.NewReader(planSVG))
	require.NoError(t, err)

	kinds := map[string]ElementKind{}
	for _, e := range elements {
		kinds[e.ID] = e.Kind
	}

	assert.Equal(t, KindRoom, kinds["Room_living"])
	assert.Equal(t, KindRoom, kinds["Hall_room"])
	assert.Equal(t, KindDoor, kinds["Door_1"])
	assert.Equal(t, KindWindow, kinds["Window_1"])
	assert.NotContains(t, kinds, "Wall_1")
}

func TestParseSVG_Malformed(t *testing.T) {
	_, err := ParseSVG(strings.NewReader("<svg><rect"))
	require.Error(t, err)
}

func TestRoomFromSVG_LargestRoomAndOpenings(t *testing.T) {
	room, err := RoomFromSVG(strings.NewReader(planSVG), ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 400.0, room.Width)
	assert.Equal(t, 500.0, room.Length)
	assert.Equal(t, DefaultRoomHeightCM, room.Height)

	require.Len(t, room.Openings, 2)

	door := room.Openings[0]
	assert.Equal(t, models.OpeningDoor, door.Type)
	assert.Equal(t, models.WallSouth, door.Position.Wall)
	assert.Equal(t, 100.0, door.Position.DistanceFromCorner)
	assert.Equal(t, 80.0, door.Dimensions.Width)
	assert.Equal(t, 215.0, door.Dimensions.Height)

	window := room.Openings[1]
	assert.Equal(t, models.OpeningWindow, window.Type)
	assert.Equal(t, models.WallEast, window.Position.Wall)
	assert.Equal(t, 240.0, window.Position.DistanceFromCorner)
	assert.Equal(t, 120.0, window.Dimensions.Width)
}

func TestRoomFromSVG_SelectByIDAndScale(t *testing.T) {
	room, err := RoomFromSVG(strings.NewReader(planSVG), ImportOptions{RoomID: "Hall_room", Scale: 2, HeightCM: 250})
	require.NoError(t, err)

	assert.Equal(t, 200.0, room.Width)
	assert.Equal(t, 200.0, room.Length)
	assert.Equal(t, 250.0, room.Height)
}

func TestRoomFromSVG_NoRoom(t *testing.T) {
	_, err := RoomFromSVG(strings.NewReader(`<svg><rect id="Door_1" x="0" y="0" width="10" height="10"/></svg>`), ImportOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRoom))
}

func TestRoomFromSVG_UnknownRoomID(t *testing.T) {
	_, err := RoomFromSVG(strings.NewReader(planSVG), ImportOptions{RoomID: "Room_missing"})
	assert.True(t, errors.Is(err, ErrNoRoom))
}
