package domain

import "time"

// Animation describes a one-shot entrance transition: the element starts at
// FromOpacity and the given offset, and settles at full opacity and zero offset
// after Delay + Duration. It is an intent handed to the renderer, not a timer.
type Animation struct {
	FromOpacity float64
	FromX       int // pixels
	FromY       int // pixels
	Delay       time.Duration
	Duration    time.Duration
}

// Hover describes a hover-triggered transform on a card.
type Hover struct {
	Scale    float64
	Duration time.Duration
}

const (
	entranceDuration = 300 * time.Millisecond
	staggerStep      = 200 * time.Millisecond
)

// CardHover is the scale-up applied to a card under the pointer.
var CardHover = Hover{Scale: 1.05, Duration: 200 * time.Millisecond}

// HeroHeadingAnimation fades the heading in while sliding it up 20px.
func HeroHeadingAnimation() Animation {
	return Animation{FromOpacity: 0, FromY: 20, Duration: entranceDuration}
}

// HeroParagraphAnimation fades the paragraph in after the heading.
func HeroParagraphAnimation() Animation {
	return Animation{FromOpacity: 0, Delay: staggerStep, Duration: entranceDuration}
}

// HeroButtonAnimation fades the call-to-action in last.
func HeroButtonAnimation() Animation {
	return Animation{FromOpacity: 0, Delay: 2 * staggerStep, Duration: entranceDuration}
}

// CardAnimation slides card index in from 50px to the right, staggered by index.
func CardAnimation(index int) Animation {
	if index < 0 {
		index = 0
	}
	return Animation{
		FromOpacity: 0,
		FromX:       50,
		Delay:       time.Duration(index) * staggerStep,
		Duration:    entranceDuration,
	}
}
