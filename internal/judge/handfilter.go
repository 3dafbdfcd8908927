package judge

import "math"

// FilterByHandProximity implements the Hand Proximity Filter (§4.2): given
// one camera's detections, it returns the non-hand detections whose
// bounding-box center lies within maxDistancePx of the nearest hand
// detection's center. If no hand is present, every non-hand detection is
// returned unchanged.
//
// The filter is pure and idempotent: calling it twice with the same
// maxDistancePx on its own output returns the same set, since the output
// never contains hand detections: the second call finds no hands and
// passes its input through unchanged.
func FilterByHandProximity(detections []Detection, maxDistancePx float64) []Detection {
	var hands, rest []Detection
	for _, d := range detections {
		if d.IsHand() {
			hands = append(hands, d)
		} else {
			rest = append(rest, d)
		}
	}

	if len(hands) == 0 {
		return rest
	}

	kept := make([]Detection, 0, len(rest))
	for _, d := range rest {
		if nearestHandDistance(d, hands) <= maxDistancePx {
			kept = append(kept, d)
		}
	}
	return kept
}

// nearestHandDistance returns the Euclidean distance from d's bbox center to
// the closest hand's bbox center.
func nearestHandDistance(d Detection, hands []Detection) float64 {
	dx, dy := d.BBox.Center()

	min := math.Inf(1)
	for _, h := range hands {
		hx, hy := h.BBox.Center()
		dist := math.Hypot(dx-hx, dy-hy)
		if dist < min {
			min = dist
		}
	}
	return min
}
