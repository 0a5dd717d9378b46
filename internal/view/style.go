package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/foxico-landing/internal/domain"
)

// baseCSS is the static part of the stylesheet. Per-element animation rules
// are appended by styleSheet.animation.
const baseCSS = `*,*::before,*::after{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",Roboto,sans-serif;color:#fff}
a{color:inherit;text-decoration:none}
.page{position:relative;min-height:100vh}
.backdrop{position:fixed;inset:0;z-index:0}
.backdrop__image{width:100%;height:100%;object-fit:cover}
.backdrop__overlay{position:absolute;inset:0;background:rgba(30,58,138,.4);backdrop-filter:blur(2px)}
.content{position:relative;z-index:10}
.nav{position:absolute;top:0;width:100%;z-index:50;padding:1.5rem;display:flex;justify-content:space-between;align-items:center}
.nav__brand{display:flex;align-items:center;font-size:1.5rem;font-weight:700}
.nav__brand img{margin-right:.5rem}
.nav__links{display:flex;align-items:center;gap:2rem}
.nav__links a:hover{color:#bfdbfe}
.nav__user{display:flex;align-items:center}
.nav__avatar{width:2rem;height:2rem;border-radius:9999px;background:#fff;margin-right:.5rem}
.hero{position:relative;height:100vh;padding:0 3rem;display:flex;align-items:center}
.hero__copy{width:50%}
.hero__heading{font-size:6rem;font-weight:700;margin:0 0 1.5rem}
.hero__text{color:#f3f4f6;font-size:1.125rem;margin:0 0 2rem;max-width:42rem}
.hero__cta{display:flex;align-items:center;gap:.5rem;background:#3b82f6;color:#fff;border:0;border-radius:9999px;padding:.75rem 2rem;font-size:1rem;cursor:pointer;transition:background-color .2s}
.hero__cta:hover{background:#2563eb}
.hero__cta svg{width:1rem;height:1rem}
.cards{position:absolute;right:3rem;display:flex;gap:1.5rem}
.card{position:relative;display:block;width:18rem;height:24rem;border-radius:1rem;overflow:hidden;background:rgba(255,255,255,.1);backdrop-filter:blur(16px);box-shadow:0 10px 15px rgba(0,0,0,.1);cursor:pointer}
.card__image{width:100%;height:100%;object-fit:cover;transition:transform .3s}
.card:hover .card__image{transform:scale(1.05)}
.card__caption{position:absolute;bottom:0;width:100%;padding:1rem;background:linear-gradient(to top,rgba(0,0,0,.6),transparent)}
.card__title{margin:0;font-weight:600;font-size:1rem}
.card__stars{display:flex;margin-top:.5rem}
.star{width:1rem;height:1rem;fill:#facc15}
.card__details{display:inline-block;margin-top:.75rem;font-size:.875rem;background:rgba(255,255,255,.2);padding:.25rem .75rem;border-radius:9999px;visibility:hidden;opacity:0;transition:opacity .3s,visibility .3s}
.card:hover .card__details,.card:focus-visible .card__details{visibility:visible;opacity:1}
.dots{position:absolute;left:3rem;top:50%;transform:translateY(-50%);display:flex;flex-direction:column;gap:1rem}
.dot{display:block;width:.5rem;height:.5rem;border-radius:9999px;background:rgba(255,255,255,.5);cursor:pointer}
.dot--active{background:#fff}
@keyframes enter{from{opacity:var(--from-opacity);transform:translate(var(--from-x),var(--from-y))}to{opacity:1;transform:none}}
@media (prefers-reduced-motion:reduce){[class*="enter-"]{animation:none!important}}
`

// styleSheet accumulates generated rules while the document tree is built.
// Generated rules are keyed by class so that no element needs an inline
// style attribute, which the content security policy forbids.
type styleSheet struct {
	rules []string
	next  int
}

// animation registers a one-shot entrance for a and returns the class to put
// on the animated element.
func (s *styleSheet) animation(a domain.Animation) string {
	class := fmt.Sprintf("enter-%d", s.next)
	s.next++
	s.rules = append(s.rules, fmt.Sprintf(
		".%s{--from-opacity:%s;--from-x:%dpx;--from-y:%dpx;animation:enter %s ease-out %s both}",
		class, formatFloat(a.FromOpacity), a.FromX, a.FromY, ms(a.Duration), ms(a.Delay),
	))
	return class
}

// hover registers the card hover transform.
func (s *styleSheet) hover(selector string, h domain.Hover) {
	s.rules = append(s.rules, fmt.Sprintf(
		"%s{transition:transform %s}%s:hover{transform:scale(%s)}",
		selector, ms(h.Duration), selector, formatFloat(h.Scale),
	))
}

func (s *styleSheet) String() string {
	var b strings.Builder
	b.WriteString(baseCSS)
	for _, r := range s.rules {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func formatFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}
