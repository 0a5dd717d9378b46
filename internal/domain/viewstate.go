package domain

import "fmt"

// DotCount is the number of slide indicator dots on the page.
// It is deliberately independent of the catalog length: the dots are decorative
// and never change which cards are shown.
const DotCount = 4

// ViewState is the ephemeral state of one mounted landing page.
// It lives for a single render and is never persisted.
type ViewState struct {
	CurrentSlide int
}

// NewViewState returns the state of a freshly mounted page.
func NewViewState() ViewState {
	return ViewState{CurrentSlide: 0}
}

// SelectSlide marks the dot at index as active.
// Indices outside [0, DotCount) return ErrValidation and leave the state unchanged.
func (s *ViewState) SelectSlide(index int) error {
	if index < 0 || index >= DotCount {
		return fmt.Errorf("slide %d: %w: must be between 0 and %d", index, ErrValidation, DotCount-1)
	}
	s.CurrentSlide = index
	return nil
}

// IsActive reports whether the dot at index is the selected one.
func (s ViewState) IsActive(index int) bool {
	return s.CurrentSlide == index
}
