package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Mutation errors. A missing target is always reported, never silently
// ignored, so callers can surface the miss.
var (
	ErrVersionIndex    = errors.New("version index out of range")
	ErrFeatureNotFound = errors.New("feature not found")
	ErrLastVersion     = errors.New("cannot delete the last remaining version")
	ErrBlankTitle      = errors.New("title must not be blank")
	ErrBadQuadrant     = errors.New("quadrant must be between 1 and 4")
)

// NewID returns a fresh 32-char identifier.
func NewID() string {
	return uuid.NewString()[:32]
}

// All mutations below are copy-on-write: they build a new Roadmap value and
// leave the receiver untouched. Versions whose feature list changes get a
// fresh slice; unaffected versions are reused as-is.

func (r Roadmap) checkIndex(idx int) error {
	if idx < 0 || idx >= len(r) {
		return ErrVersionIndex
	}
	return nil
}

func (r Roadmap) clone() Roadmap {
	out := make(Roadmap, len(r))
	copy(out, r)
	return out
}

// copyFeatures replaces version idx's feature slice with a copy so the old
// roadmap value never aliases the new one.
func (r Roadmap) copyFeatures(idx int) Roadmap {
	out := r.clone()
	features := make([]Feature, len(r[idx].Features))
	copy(features, r[idx].Features)
	out[idx].Features = features
	return out
}

// MoveFeature transfers a feature from one version to another. The feature is
// removed from the source and appended to the end of the target, so a
// same-version move reorders the feature to the end of its list.
func (r Roadmap) MoveFeature(fromIdx int, featureID string, toIdx int) (Roadmap, error) {
	if err := r.checkIndex(fromIdx); err != nil {
		return nil, err
	}
	if err := r.checkIndex(toIdx); err != nil {
		return nil, err
	}

	pos := -1
	for i, f := range r[fromIdx].Features {
		if f.ID == featureID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, ErrFeatureNotFound
	}
	moved := r[fromIdx].Features[pos]

	out := r.copyFeatures(fromIdx)
	out[fromIdx].Features = append(out[fromIdx].Features[:pos], out[fromIdx].Features[pos+1:]...)
	if toIdx != fromIdx {
		out = out.copyFeatures(toIdx)
	}
	out[toIdx].Features = append(out[toIdx].Features, moved)
	return out, nil
}

// IdeaInput carries the fields of the idea intake form.
type IdeaInput struct {
	Title      string
	EffortMin  int
	EffortMax  int
	Impact     int
	Complexity int
}

// AddIdea appends a new feature to the last version, regardless of which view
// submitted it. Dates default to a 30-day window starting today.
func (r Roadmap) AddIdea(in IdeaInput, now time.Time) (Roadmap, error) {
	if len(r) == 0 {
		return nil, ErrVersionIndex
	}
	if in.Title == "" {
		return nil, ErrBlankTitle
	}
	last := len(r) - 1
	out := r.copyFeatures(last)
	out[last].Features = append(out[last].Features, Feature{
		ID:         NewID(),
		Title:      in.Title,
		EffortMin:  in.EffortMin,
		EffortMax:  in.EffortMax,
		Impact:     in.Impact,
		Complexity: in.Complexity,
		Category:   CategoryIdea,
		DevStatus:  StatusNotStarted,
		Assignee:   AssigneeNone,
		Eisenhower: nil,
		StartDate:  now.Format(DateLayout),
		EndDate:    now.AddDate(0, 0, 30).Format(DateLayout),
	})
	return out, nil
}

// UpdateFeatureStatus sets the development status of a feature located within
// the given version only. Callers own the version index; a stale index after a
// move reports ErrFeatureNotFound.
func (r Roadmap) UpdateFeatureStatus(versionIdx int, featureID, status string) (Roadmap, error) {
	return r.patchFeature(versionIdx, featureID, func(f *Feature) {
		f.DevStatus = status
	})
}

// UpdateFeatureEisenhower classifies a feature into a quadrant (1-4) or
// unclassifies it (nil). Unlike the status update it searches every version,
// relying on feature ids being unique across the whole roadmap.
func (r Roadmap) UpdateFeatureEisenhower(featureID string, quadrant *int) (Roadmap, error) {
	if quadrant != nil && (*quadrant < QuadrantDoNow || *quadrant > QuadrantDrop) {
		return nil, ErrBadQuadrant
	}
	for vi := range r {
		for fi, f := range r[vi].Features {
			if f.ID == featureID {
				out := r.copyFeatures(vi)
				out[vi].Features[fi].Eisenhower = quadrant
				return out, nil
			}
		}
	}
	return nil, ErrFeatureNotFound
}

// UpdateFeatureDates sets both dates together so a card never holds a
// half-updated range. end < start is accepted.
func (r Roadmap) UpdateFeatureDates(versionIdx int, featureID, startDate, endDate string) (Roadmap, error) {
	return r.patchFeature(versionIdx, featureID, func(f *Feature) {
		f.StartDate = startDate
		f.EndDate = endDate
	})
}

func (r Roadmap) patchFeature(versionIdx int, featureID string, patch func(*Feature)) (Roadmap, error) {
	if err := r.checkIndex(versionIdx); err != nil {
		return nil, err
	}
	for fi, f := range r[versionIdx].Features {
		if f.ID == featureID {
			out := r.copyFeatures(versionIdx)
			patch(&out[versionIdx].Features[fi])
			return out, nil
		}
	}
	return nil, ErrFeatureNotFound
}

// DeleteFeature removes a feature from the given version.
func (r Roadmap) DeleteFeature(versionIdx int, featureID string) (Roadmap, error) {
	if err := r.checkIndex(versionIdx); err != nil {
		return nil, err
	}
	for fi, f := range r[versionIdx].Features {
		if f.ID == featureID {
			out := r.copyFeatures(versionIdx)
			out[versionIdx].Features = append(out[versionIdx].Features[:fi], out[versionIdx].Features[fi+1:]...)
			return out, nil
		}
	}
	return nil, ErrFeatureNotFound
}

// AddVersion appends a new empty bucket to the end of the roadmap.
func (r Roadmap) AddVersion(name, color string, limit int) (Roadmap, error) {
	if name == "" {
		return nil, ErrBlankTitle
	}
	out := r.clone()
	out = append(out, Version{
		ID:       NewID(),
		Name:     name,
		Color:    color,
		Limit:    limit,
		Features: []Feature{},
	})
	return out, nil
}

// VersionPatch carries the editable fields of a version. Nil fields are left
// unchanged.
type VersionPatch struct {
	Name  *string
	Color *string
	Limit *int
}

// EditVersion merges the patch into the version at the given index.
func (r Roadmap) EditVersion(versionIdx int, patch VersionPatch) (Roadmap, error) {
	if err := r.checkIndex(versionIdx); err != nil {
		return nil, err
	}
	out := r.clone()
	if patch.Name != nil {
		out[versionIdx].Name = *patch.Name
	}
	if patch.Color != nil {
		out[versionIdx].Color = *patch.Color
	}
	if patch.Limit != nil {
		out[versionIdx].Limit = *patch.Limit
	}
	return out, nil
}

// DeleteVersion removes the version and all its features. A roadmap must keep
// at least one version.
func (r Roadmap) DeleteVersion(versionIdx int) (Roadmap, error) {
	if err := r.checkIndex(versionIdx); err != nil {
		return nil, err
	}
	if len(r) == 1 {
		return nil, ErrLastVersion
	}
	out := make(Roadmap, 0, len(r)-1)
	out = append(out, r[:versionIdx]...)
	out = append(out, r[versionIdx+1:]...)
	return out, nil
}

// FindFeature locates a feature by id across all versions and reports the
// version index holding it.
func (r Roadmap) FindFeature(featureID string) (versionIdx int, feature Feature, ok bool) {
	for vi := range r {
		for _, f := range r[vi].Features {
			if f.ID == featureID {
				return vi, f, true
			}
		}
	}
	return -1, Feature{}, false
}

// FeatureCount is the total number of features across all versions.
func (r Roadmap) FeatureCount() int {
	n := 0
	for _, v := range r {
		n += len(v.Features)
	}
	return n
}
