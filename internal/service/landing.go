// Package service contains the presentation logic for the Foxico landing page.
// It turns the destination catalog and the per-mount ViewState into a
// render-ready domain.LandingView. No HTML lives here.
package service

import (
	"fmt"

	"github.com/pkordes/foxico-landing/internal/domain"
)

// Static page copy.
const (
	brandName      = "Foxico"
	greeting       = "Hello, Anney!"
	heroHeading    = "INDONESIA"
	heroParagraph  = "As the largest archipelago country in the world, Indonesia is blessed with so many different people, cultures, customs, traditions, artworks, food, animals, plants, landscapes, and everything that makes it special like no other."
	ctaLabel       = "Explore"
	detailsLabel   = "View details →"
	logoImage      = "/logo.png"
	backgroundPath = "/thailand-temple.jpg"
	backgroundAlt  = "Thailand Temple Background"
)

// navLabels are the decorative placeholder links in the navigation bar.
var navLabels = []string{"News", "Destinations", "Blog", "Contact"}

// LandingService builds the landing page view model.
// It is safe for concurrent use: the catalog is immutable and each call
// works on its own copy of the ViewState.
type LandingService struct {
	catalog domain.Catalog
}

// NewLandingService constructs a LandingService over an already-loaded catalog.
func NewLandingService(c domain.Catalog) *LandingService {
	return &LandingService{catalog: c}
}

// Mount returns the state of a freshly mounted page.
func (s *LandingService) Mount() domain.ViewState {
	return domain.NewViewState()
}

// SelectSlide applies a dot click to state.
// Out-of-range indices return an error wrapping domain.ErrValidation and leave
// state untouched.
func (s *LandingService) SelectSlide(state *domain.ViewState, index int) error {
	if err := state.SelectSlide(index); err != nil {
		return fmt.Errorf("service.LandingService.SelectSlide: %w", err)
	}
	return nil
}

// NavigateToDestination returns the navigation target of the card for id.
func (s *LandingService) NavigateToDestination(id int) (string, error) {
	d, err := s.catalog.ByID(id)
	if err != nil {
		return "", fmt.Errorf("service.LandingService.NavigateToDestination: %w", err)
	}
	return d.Link, nil
}

// Build renders the view model for state.
// The result depends only on the catalog and state; calling it twice with the
// same inputs yields equal views.
func (s *LandingService) Build(state domain.ViewState) domain.LandingView {
	return domain.LandingView{
		Brand:          brandName,
		LogoImage:      logoImage,
		BackgroundPath: backgroundPath,
		BackgroundAlt:  backgroundAlt,
		NavLinks:       buildNavLinks(),
		Greeting:       greeting,
		Hero:           domain.Hero{
			Heading:            heroHeading,
			HeadingAnimation:   domain.HeroHeadingAnimation(),
			Paragraph:          heroParagraph,
			ParagraphAnimation: domain.HeroParagraphAnimation(),
			CTALabel:           ctaLabel,
			CTAAnimation:       domain.HeroButtonAnimation(),
		},
		Cards: s.buildCards(),
		Dots:  buildDots(state),
	}
}

func buildNavLinks() []domain.NavLink {
	links := make([]domain.NavLink, 0, len(navLabels))
	for _, l := range navLabels {
		links = append(links, domain.NavLink{Label: l, Href: "#"})
	}
	return links
}

// buildCards maps every destination, in catalog order, to a card.
// The slide state is intentionally not an input: dots never change the cards.
func (s *LandingService) buildCards() []domain.Card {
	dests := s.catalog.All()
	cards := make([]domain.Card, 0, len(dests))
	for i, d := range dests {
		cards = append(cards, domain.Card{
			Key:          d.ID,
			Title:        d.Title,
			Image:        d.Image,
			Link:         d.Link,
			Stars:        domain.ClampRating(d.Rating),
			Animation:    domain.CardAnimation(i),
			Hover:        domain.CardHover,
			DetailsLabel: detailsLabel,
		})
	}
	return cards
}

func buildDots(state domain.ViewState) []domain.Dot {
	dots := make([]domain.Dot, domain.DotCount)
	for i := range dots {
		dots[i] = domain.Dot{Index: i, Active: state.IsActive(i)}
	}
	return dots
}
