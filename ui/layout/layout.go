// Package layout holds toolkit-free sizing and slider arithmetic used by the Tk views.
package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WindowPosition returns a Tk geometry string that only places the window.
// Leaving out the size lets the window keep growing to fit the preview and controls.
func WindowPosition(x, y int) string {
	return fmt.Sprintf("%+d%+d", x, y)
}

// SliderBound returns the upper bound for slider index: even indices are x values and
// use maxX, odd indices are y values and use maxY.
func SliderBound(index, maxX, maxY int) int {
	if index%2 == 1 {
		return maxY
	}
	return maxX
}

// SliderStep converts a raw scale position to a whole pixel. ttk scales report fractional
// positions while dragging; ok is false when the text does not parse or the rounded value
// equals last, so only whole-pixel changes are forwarded.
func SliderStep(raw string, last int) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return last, false
	}
	n := int(math.Round(f))
	if n == last {
		return last, false
	}
	return n, true
}
