package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/foxico-landing/internal/domain"
)

func TestHeroAnimations_staggered(t *testing.T) {
	assert.Equal(t, time.Duration(0), domain.HeroHeadingAnimation().Delay)
	assert.Equal(t, 200*time.Millisecond, domain.HeroParagraphAnimation().Delay)
	assert.Equal(t, 400*time.Millisecond, domain.HeroButtonAnimation().Delay)

	assert.Equal(t, 20, domain.HeroHeadingAnimation().FromY)
	assert.Zero(t, domain.HeroParagraphAnimation().FromY)
}

func TestCardAnimation_delayIsIndexTimesStep(t *testing.T) {
	for i := 0; i < 5; i++ {
		a := domain.CardAnimation(i)
		assert.Equal(t, time.Duration(i)*200*time.Millisecond, a.Delay)
		assert.Equal(t, 50, a.FromX)
		assert.Zero(t, a.FromOpacity)
	}
	assert.Zero(t, domain.CardAnimation(-1).Delay)
}
