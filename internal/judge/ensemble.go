package judge

import (
	"sort"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/config"
)

// TopK implements the per-camera Top-K extraction step of §4.3: sort
// detections by confidence descending, keeping the first config.TopK.
// Ties are broken by larger bbox area, then by ascending class_id, so the
// result is fully deterministic.
func TopK(detections []Detection) []Detection {
	sorted := make([]Detection, len(detections))
	copy(sorted, detections)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.BBox.Area() != b.BBox.Area() {
			return a.BBox.Area() > b.BBox.Area()
		}
		return a.ClassID < b.ClassID
	})

	if len(sorted) > config.TopK {
		sorted = sorted[:config.TopK]
	}
	return sorted
}

// viewSighting tracks, per class, the best confidence seen and the distinct
// set of cameras it was seen in.
type viewSighting struct {
	classID     int
	className   string
	baseScore   float64
	camerasSeen map[string]bool
}

// Ensemble implements the multi-view ensemble of §4.3: given the per-camera
// top-K lists, it fuses them into a single ranked candidate list of at most
// config.TopK entries, applying the cross-view bonus to classes seen in two
// or more cameras and dropping classes absent from the catalog.
func Ensemble(perCameraTopK [][]Detection, cat catalog.Reader) []Candidate {
	sightings := make(map[int]*viewSighting)

	for _, camDetections := range perCameraTopK {
		seenThisCamera := make(map[int]bool)
		for _, d := range camDetections {
			if d.IsHand() {
				continue
			}
			s, ok := sightings[d.ClassID]
			if !ok {
				s = &viewSighting{
					classID:     d.ClassID,
					className:   d.ClassName,
					camerasSeen: make(map[string]bool),
				}
				sightings[d.ClassID] = s
			}
			if d.Confidence > s.baseScore {
				s.baseScore = d.Confidence
			}
			if !seenThisCamera[d.ClassID] {
				cam := d.CameraID
				if cam == "" {
					cam = "unknown"
				}
				s.camerasSeen[cam] = true
				seenThisCamera[d.ClassID] = true
			}
		}
	}

	candidates := make([]Candidate, 0, len(sightings))
	for _, s := range sightings {
		product, ok := cat.LookupByID(s.classID)
		if !ok {
			// Unknown class: silently dropped per §4.6 ("missing catalog
			// entries for detected classes are silently dropped").
			continue
		}

		nCameras := len(s.camerasSeen)
		score := s.baseScore
		if nCameras >= 2 {
			score = s.baseScore * (1 + config.CrossViewBonus*float64(nCameras-1))
		}

		cameras := make([]string, 0, nCameras)
		for cam := range s.camerasSeen {
			cameras = append(cameras, cam)
		}
		sort.Strings(cameras)

		candidates = append(candidates, Candidate{
			ProductID:  product.ID,
			Name:       product.Name,
			Category:   product.Category,
			FusedScore: score,
			Cameras:    cameras,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].FusedScore != candidates[j].FusedScore {
			return candidates[i].FusedScore > candidates[j].FusedScore
		}
		return candidates[i].ProductID < candidates[j].ProductID
	})

	if len(candidates) > config.TopK {
		candidates = candidates[:config.TopK]
	}
	return candidates
}
