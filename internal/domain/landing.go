package domain

// NavLink is a static entry in the navigation bar.
type NavLink struct {
	Label string
	Href  string
}

// Hero is the heading block on the left of the page.
type Hero struct {
	Heading            string
	HeadingAnimation   Animation
	Paragraph          string
	ParagraphAnimation Animation
	CTALabel           string
	CTAAnimation       Animation
}

// Card is the render model for one destination card.
type Card struct {
	Key          int
	Title        string
	Image        string
	Link         string
	Stars        int
	Animation    Animation
	Hover        Hover
	DetailsLabel string
}

// Dot is one slide indicator.
type Dot struct {
	Index  int
	Active bool
}

// LandingView is the complete, render-ready description of the landing page.
// It is a pure function of the catalog and the ViewState.
type LandingView struct {
	Brand          string
	LogoImage      string
	BackgroundAlt  string
	BackgroundPath string
	NavLinks       []NavLink
	Greeting       string
	Hero           Hero
	Cards          []Card
	Dots           []Dot
}
