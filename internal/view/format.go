package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
)

const (
	maxStars   = 5
	filledStar = "★"
	emptyStar  = "☆"
)

// Stars renders a rating as five glyphs. A missing rating counts as 0 and
// out-of-range ratings are clamped to [0,5].
func Stars(rating *float64) string {
	r := 0.0
	if rating != nil && !math.IsNaN(*rating) {
		r = math.Max(0, math.Min(maxStars, *rating))
	}
	full := int(math.Floor(r))
	return strings.Repeat(filledStar, full) + strings.Repeat(emptyStar, maxStars-full)
}

// MatchScore renders a 0..1 relevance as "87% match", or "" when absent.
func MatchScore(score *float64) string {
	if score == nil {
		return ""
	}
	return fmt.Sprintf("%d%% match", int(math.Round(*score*100)))
}

// Discount returns the rounded percentage saved against the original
// price. ok is false unless the original price is above the current one.
func Discount(p backend.Product) (percent int, ok bool) {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0, false
	}
	o := *p.OriginalPrice
	return int(math.Round((o - p.Price) / o * 100)), true
}

// DiscountLabel renders Discount as "10% off", or "" when there is none.
func DiscountLabel(p backend.Product) string {
	percent, ok := Discount(p)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d%% off", percent)
}

// Price formats an amount in dollars with two decimals.
func Price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// OriginalPrice formats the struck-through price, or "" when the product
// has none.
func OriginalPrice(p backend.Product) string {
	if p.OriginalPrice == nil || *p.OriginalPrice == 0 {
		return ""
	}
	return Price(*p.OriginalPrice)
}

// ReviewCount returns the number of reviews, 0 when unknown.
func ReviewCount(p backend.Product) int {
	if p.ReviewCount == nil {
		return 0
	}
	return *p.ReviewCount
}

var specIcons = map[string]string{
	"processor": "💻",
	"storage":   "💾",
	"memory":    "🧠",
	"graphics":  "🖼️",
	"display":   "🖥️",
	"battery":   "🔋",
}

// DefaultSpecIcon is shown for spec keys without a dedicated icon.
const DefaultSpecIcon = "📊"

// SpecIcon picks the icon for a spec key, case-insensitively.
func SpecIcon(key string) string {
	if icon, ok := specIcons[strings.ToLower(key)]; ok {
		return icon
	}
	return DefaultSpecIcon
}

// SpecLabel upper-cases the first letter of a spec key.
func SpecLabel(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}

// CardTags returns the short tags shown on a product card: the category,
// the processor's first two words and the graphics card's third word.
func CardTags(p backend.Product) []string {
	var tags []string
	if p.Category != "" {
		tags = append(tags, p.Category)
	}
	if cpu, ok := p.Specs.Get("processor"); ok {
		if words := strings.Fields(cpu); len(words) >= 2 {
			tags = append(tags, words[0]+" "+words[1])
		} else if len(words) == 1 {
			tags = append(tags, words[0])
		}
	}
	if gpu, ok := p.Specs.Get("graphics"); ok {
		if words := strings.Fields(gpu); len(words) >= 3 {
			tags = append(tags, words[2])
		}
	}
	return tags
}

// HealthWidth clamps a health percentage to [0,100] for use as a CSS width.
func HealthWidth(percentage float64) string {
	if math.IsNaN(percentage) {
		percentage = 0
	}
	p := math.Max(0, math.Min(100, percentage))
	return strconv.FormatFloat(p, 'f', -1, 64)
}
