//go:build !(cgo && linux)

package detection

import (
	"reflect"
	"testing"
)

func TestFindContoursTraceOrder(t *testing.T) {
	mask := maskFrom(t,
		".......",
		".###...",
		".###...",
		".###...",
		".......",
	)

	contours := FindContours(mask)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	want := []Point{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}, {3, 2}, {3, 1}, {2, 1}}
	if !reflect.DeepEqual(contours[0].Points, want) {
		t.Errorf("points = %v, want %v", contours[0].Points, want)
	}
}

func TestFindContoursScanOrder(t *testing.T) {
	mask := maskFrom(t,
		"#######",
		"#.....#",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#.....#",
		"#######",
	)

	contours := FindContours(mask)
	if len(contours) != 3 {
		t.Fatalf("got %d contours, want 3", len(contours))
	}
	wantParents := []int{-1, 0, 1}
	wantHoles := []bool{false, true, false}
	for i, c := range contours {
		if c.Parent != wantParents[i] || c.Hole != wantHoles[i] {
			t.Errorf("contour %d: parent=%d hole=%v, want parent=%d hole=%v",
				i, c.Parent, c.Hole, wantParents[i], wantHoles[i])
		}
	}
}

func TestFindContoursRevisitsPinchPixels(t *testing.T) {
	mask := maskFrom(t,
		"##..",
		"##..",
		"..##",
		"..##",
	)

	contours := FindContours(mask)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if n := len(contours[0].Points); n != 10 {
		t.Errorf("got %d border points, want 10", n)
	}
}
