package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hand(x1, y1, x2, y2 float64) Detection {
	return Detection{BBox: BBox{x1, y1, x2, y2}, Confidence: 0.9, ClassID: HandClassID, ClassName: "hand"}
}

func product(classID int, name string, x1, y1, x2, y2, conf float64) Detection {
	return Detection{BBox: BBox{x1, y1, x2, y2}, Confidence: conf, ClassID: classID, ClassName: name}
}

func TestFilterByHandProximity_NoHandsPassesEverythingThrough(t *testing.T) {
	dets := []Detection{
		product(9, "vita500", 400, 400, 440, 460, 0.8),
		product(26, "chickenmayo_rice", 0, 0, 20, 20, 0.7),
	}

	out := FilterByHandProximity(dets, 150)
	assert.Len(t, out, 2)
}

func TestFilterByHandProximity_KeepsNearDropsFar(t *testing.T) {
	dets := []Detection{
		hand(260, 60, 300, 100),
		product(26, "chickenmayo_rice", 280, 80, 320, 120, 0.49),
		product(9, "vita500", 900, 900, 940, 940, 0.85),
	}

	out := FilterByHandProximity(dets, 150)
	assert.Len(t, out, 1)
	assert.Equal(t, 26, out[0].ClassID)
}

func TestFilterByHandProximity_ExactlyAtBoundaryIsKept(t *testing.T) {
	// hand center at (0,0), product center at (150,0): distance exactly 150.
	dets := []Detection{
		hand(-10, -10, 10, 10),
		product(9, "vita500", 140, -10, 160, 10, 0.5),
	}

	out := FilterByHandProximity(dets, 150)
	assert.Len(t, out, 1)
}

func TestFilterByHandProximity_MultipleHandsUsesNearest(t *testing.T) {
	dets := []Detection{
		hand(-1000, -1000, -980, -980),
		hand(290, 90, 310, 110),
		product(26, "chickenmayo_rice", 280, 80, 320, 120, 0.49),
	}

	out := FilterByHandProximity(dets, 50)
	assert.Len(t, out, 1)
	assert.Equal(t, 26, out[0].ClassID)
}

func TestFilterByHandProximity_Idempotent(t *testing.T) {
	dets := []Detection{
		hand(260, 60, 300, 100),
		product(26, "chickenmayo_rice", 280, 80, 320, 120, 0.49),
		product(9, "vita500", 900, 900, 940, 940, 0.85),
	}

	once := FilterByHandProximity(dets, 150)
	twice := FilterByHandProximity(once, 150)
	assert.Equal(t, once, twice)
}
