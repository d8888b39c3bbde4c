package entity

import "errors"

// Category kinds.
const (
	KindOpex = "opex"
	KindCogs = "cogs"
)

var (
	ErrBadCategoryKind  = errors.New("category kind must be opex or cogs")
	ErrCategoryNotFound = errors.New("cost category not found")
)

// Settings mutations are copy-on-write like roadmap mutations, so a replaced
// settings document never shares category slices with its predecessor.
// Amounts and names are deliberately unvalidated: permissive input, display is
// the only guard.

func (s Settings) categories(kind string) ([]CostCategory, error) {
	switch kind {
	case KindOpex:
		return s.OpexCategories, nil
	case KindCogs:
		return s.CogsCategories, nil
	default:
		return nil, ErrBadCategoryKind
	}
}

func (s Settings) withCategories(kind string, cats []CostCategory) Settings {
	out := s
	if kind == KindOpex {
		out.OpexCategories = cats
	} else {
		out.CogsCategories = cats
	}
	return out
}

// AddCategory appends a named cost item to the given pool.
func (s Settings) AddCategory(kind, name string, amount float64) (Settings, error) {
	cats, err := s.categories(kind)
	if err != nil {
		return Settings{}, err
	}
	out := make([]CostCategory, len(cats), len(cats)+1)
	copy(out, cats)
	out = append(out, CostCategory{ID: NewID(), Name: name, Amount: amount})
	return s.withCategories(kind, out), nil
}

// CategoryPatch carries the editable fields of a cost category. Nil fields
// are left unchanged.
type CategoryPatch struct {
	Name   *string
	Amount *float64
}

// UpdateCategory merges the patch into the category with the given id.
func (s Settings) UpdateCategory(kind, id string, patch CategoryPatch) (Settings, error) {
	cats, err := s.categories(kind)
	if err != nil {
		return Settings{}, err
	}
	out := make([]CostCategory, len(cats))
	copy(out, cats)
	for i := range out {
		if out[i].ID == id {
			if patch.Name != nil {
				out[i].Name = *patch.Name
			}
			if patch.Amount != nil {
				out[i].Amount = *patch.Amount
			}
			return s.withCategories(kind, out), nil
		}
	}
	return Settings{}, ErrCategoryNotFound
}

// RemoveCategory drops the category with the given id from the pool.
func (s Settings) RemoveCategory(kind, id string) (Settings, error) {
	cats, err := s.categories(kind)
	if err != nil {
		return Settings{}, err
	}
	for i := range cats {
		if cats[i].ID == id {
			out := make([]CostCategory, 0, len(cats)-1)
			out = append(out, cats[:i]...)
			out = append(out, cats[i+1:]...)
			return s.withCategories(kind, out), nil
		}
	}
	return Settings{}, ErrCategoryNotFound
}

// SetCogsMultiplier replaces the complexity multiplier. Values below 1 would
// shrink cost with complexity; accepted anyway, the domain intent is >= 1.
func (s Settings) SetCogsMultiplier(value float64) Settings {
	out := s
	out.CogsMultiplier = value
	return out
}
