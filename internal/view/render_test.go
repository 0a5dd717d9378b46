package view_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/pkordes/foxico-landing/internal/domain"
	"github.com/pkordes/foxico-landing/internal/service"
	"github.com/pkordes/foxico-landing/internal/view"
	"github.com/pkordes/foxico-landing/testutil"
)

// ---- helpers ---------------------------------------------------------------

// fakeSizer reports fixed sizes for the paths it knows.
type fakeSizer map[string][2]int

func (f fakeSizer) Size(path string) (int, int, bool) {
	s, ok := f[path]
	return s[0], s[1], ok
}

var _ view.ImageSizer = fakeSizer(nil)

func defaultView(t *testing.T, slide int) domain.LandingView {
	t.Helper()
	c, err := domain.NewCatalog(domain.DefaultDestinations())
	require.NoError(t, err)
	svc := service.NewLandingService(c)

	state := svc.Mount()
	require.NoError(t, svc.SelectSlide(&state, slide))
	return svc.Build(state)
}

func render(t *testing.T, r *view.Renderer, v domain.LandingView, nonce string) (*html.Node, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, v, nonce))
	out := buf.String()
	return testutil.ParseHTML(t, strings.NewReader(out)), out
}

func styleText(t *testing.T, doc *html.Node) string {
	t.Helper()
	styles := testutil.ByTag(doc, "style")
	require.Len(t, styles, 1)
	return testutil.Text(styles[0])
}

// ---- dots ------------------------------------------------------------------

func TestRender_initialDotActive(t *testing.T) {
	doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, 0), "")

	dots := testutil.ByClass(doc, "dot")
	require.Len(t, dots, 4)
	for i, d := range dots {
		assert.Equal(t, i == 0, testutil.HasClass(d, "dot--active"), "dot %d", i)
		assert.Equal(t, i == 0, testutil.HasAttr(d, "aria-current"), "dot %d", i)
	}
}

func TestRender_selectedDotActive(t *testing.T) {
	for slide := 0; slide < domain.DotCount; slide++ {
		doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, slide), "")

		active := testutil.ByClass(doc, "dot--active")
		require.Len(t, active, 1, "slide %d", slide)
		assert.Equal(t, "/?slide="+strconv.Itoa(slide), testutil.Attr(active[0], "href"))
	}
}

// ---- cards -----------------------------------------------------------------

func TestRender_threeCardsInOrderForEverySlide(t *testing.T) {
	wantTitles := []string{"Buddha Temple, Thailand", "Broken Beach, Bali", "Kerala"}
	wantLinks := []string{"/destinations/thailand", "/destinations/bali", "/destinations/kerala"}

	for slide := 0; slide < domain.DotCount; slide++ {
		doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, slide), "")

		cards := testutil.ByClass(doc, "card")
		require.Len(t, cards, 3, "slide %d", slide)
		for i, c := range cards {
			titles := testutil.ByClass(c, "card__title")
			require.Len(t, titles, 1)
			assert.Equal(t, wantTitles[i], testutil.Text(titles[0]))
			assert.Equal(t, "a", c.Data)
			assert.Equal(t, wantLinks[i], testutil.Attr(c, "href"))
		}
	}
}

func TestRender_starCountMatchesRating(t *testing.T) {
	ratings := []int{-2, 0, 1, 2, 3, 4, 5, 8}
	var dests []domain.Destination
	for i, r := range ratings {
		dests = append(dests, domain.Destination{ID: i, Title: "d", Image: "/d.jpg", Link: "/d", Rating: r})
	}
	c, err := domain.NewCatalog(dests)
	require.NoError(t, err)
	v := service.NewLandingService(c).Build(domain.NewViewState())

	doc, _ := render(t, view.NewRenderer("", nil), v, "")

	cards := testutil.ByClass(doc, "card")
	require.Len(t, cards, len(ratings))
	for i, card := range cards {
		stars := testutil.ByClass(card, "star")
		assert.Len(t, stars, domain.ClampRating(ratings[i]), "rating %d", ratings[i])
	}
}

// TestRender_detailsHiddenUntilHover verifies that every card carries the
// "view details" affordance and that the stylesheet keeps it out of the
// visible and accessible tree unless the card is hovered or focused.
func TestRender_detailsHiddenUntilHover(t *testing.T) {
	doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, 0), "")

	for _, card := range testutil.ByClass(doc, "card") {
		details := testutil.ByClass(card, "card__details")
		require.Len(t, details, 1)
		assert.Equal(t, "View details →", testutil.Text(details[0]))
	}

	css := styleText(t, doc)
	assert.Regexp(t, `\.card__details\{[^}]*visibility:hidden`, css)
	assert.Regexp(t, `\.card:hover \.card__details[^{]*\{visibility:visible`, css)
	assert.Contains(t, css, ".card:hover{transform:scale(1.05)}")
}

// ---- animation -------------------------------------------------------------

func TestRender_animationDelays(t *testing.T) {
	doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, 0), "")
	css := styleText(t, doc)

	// Hero: heading, paragraph, button; then one per card.
	wantDelays := []string{"0ms", "200ms", "400ms", "0ms", "200ms", "400ms"}
	for i, d := range wantDelays {
		assert.Regexp(t, `\.enter-`+strconv.Itoa(i)+`\{[^}]*ease-out `+d+` both\}`, css, "element %d", i)
	}

	slots := testutil.ByClass(doc, "card-slot")
	require.Len(t, slots, 3)
	assert.True(t, testutil.HasClass(slots[1], "enter-4"))
	assert.Contains(t, css, ".enter-3{--from-opacity:0;--from-x:50px;--from-y:0px;")
	assert.Contains(t, css, ".enter-0{--from-opacity:0;--from-x:0px;--from-y:20px;")
}

// ---- chrome ----------------------------------------------------------------

func TestRender_navigationBar(t *testing.T) {
	doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, 0), "")

	navs := testutil.ByClass(doc, "nav__links")
	require.Len(t, navs, 1)
	var labels []string
	for _, a := range testutil.ByTag(navs[0], "a") {
		labels = append(labels, testutil.Text(a))
		assert.Equal(t, "#", testutil.Attr(a, "href"))
	}
	assert.Equal(t, []string{"News", "Destinations", "Blog", "Contact"}, labels)
	assert.Contains(t, testutil.Text(navs[0]), "Hello, Anney!")

	hero := testutil.ByClass(doc, "hero__heading")
	require.Len(t, hero, 1)
	assert.Equal(t, "INDONESIA", testutil.Text(hero[0]))
}

func TestRender_imagesUseAssetPrefixAndSizes(t *testing.T) {
	sizes := fakeSizer{"/bali-beach.jpg": {1200, 1600}}
	doc, _ := render(t, view.NewRenderer("/static", sizes), defaultView(t, 0), "")

	images := testutil.ByClass(doc, "card__image")
	require.Len(t, images, 3)
	assert.Equal(t, "/static/thailand-temple.jpg", testutil.Attr(images[0], "src"))
	assert.False(t, testutil.HasAttr(images[0], "width"))

	assert.Equal(t, "/static/bali-beach.jpg", testutil.Attr(images[1], "src"))
	assert.Equal(t, "1200", testutil.Attr(images[1], "width"))
	assert.Equal(t, "1600", testutil.Attr(images[1], "height"))
	assert.Equal(t, "Broken Beach, Bali", testutil.Attr(images[1], "alt"))
}

func TestRender_nonceOnStylesheet(t *testing.T) {
	doc, _ := render(t, view.NewRenderer("/static", nil), defaultView(t, 0), "abc123")

	styles := testutil.ByTag(doc, "style")
	require.Len(t, styles, 1)
	assert.Equal(t, "abc123", testutil.Attr(styles[0], "nonce"))
	assert.Empty(t, testutil.ByTag(doc, "script"))
}

func TestRender_escapesCatalogText(t *testing.T) {
	c, err := domain.NewCatalog([]domain.Destination{
		{ID: 1, Title: `<script>alert("x")</script>`, Image: "/x.jpg", Link: `/d?a=1&b="2"`, Rating: 1},
	})
	require.NoError(t, err)
	v := service.NewLandingService(c).Build(domain.NewViewState())

	doc, raw := render(t, view.NewRenderer("", nil), v, "")

	assert.NotContains(t, raw, "<script>")
	assert.Empty(t, testutil.ByTag(doc, "script"))
	cards := testutil.ByClass(doc, "card")
	require.Len(t, cards, 1)
	assert.Equal(t, `/d?a=1&b="2"`, testutil.Attr(cards[0], "href"))
	assert.Equal(t, `<script>alert("x")</script>`, testutil.Text(testutil.ByClass(cards[0], "card__title")[0]))
}

func TestRender_isDeterministic(t *testing.T) {
	r := view.NewRenderer("/static", nil)
	v := defaultView(t, 2)

	_, first := render(t, r, v, "n")
	_, second := render(t, r, v, "n")

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "<!DOCTYPE html>"))
}
