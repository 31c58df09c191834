// Package retailer holds the affiliate routing rules: which partner retailer
// a gift should link to, and how its search URL is built.
package retailer

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"giftmuse/pkg/utils"
)

type Key string

const (
	Amazon    Key = "amazon"
	Etsy      Key = "etsy"
	Noths     Key = "noths"
	VirginExp Key = "virginexp"
)

var displayNames = map[Key]string{
	Amazon:    "Amazon",
	Etsy:      "Etsy",
	Noths:     "Not On The High Street",
	VirginExp: "Virgin Experience Days",
}

var searchTemplates = map[Key]string{
	Amazon:    "https://www.amazon.co.uk/s?k=%s",
	Etsy:      "https://www.etsy.com/uk/search?q=%s",
	Noths:     "https://www.notonthehighstreet.com/search?term=%s",
	VirginExp: "https://www.virginexperiencedays.co.uk/search?query=%s",
}

// Config is the routing policy. Rules are evaluated in order and the first
// one whose tags intersect the gift's tags wins; retailer availability is
// gated by affiliate-program approval, so changing the line-up is a data
// edit here rather than a code change. Routing every rule to Default is the
// valid "only one program approved" configuration.
type Config struct {
	Rules     []utils.MatchRule[Key]
	Default   Key
	AmazonTag string
}

// DefaultConfig returns the full four-retailer routing policy.
func DefaultConfig(amazonTag string) Config {
	return Config{
		Rules: []utils.MatchRule[Key]{
			// Experience vouchers only, never physical products.
			{Values: []string{"experience"}, Result: VirginExp},
			{Values: []string{"personalised", "personalized", "custom", "handmade", "unique"}, Result: Noths},
		},
		Default:   Amazon,
		AmazonTag: amazonTag,
	}
}

// Select picks the retailer for a gift's tag set. Stable for a given input:
// the result decides which affiliate program is credited.
func (c Config) Select(tags []string) Key {
	return utils.FirstMatch(tags, c.Rules, c.Default)
}

func DisplayName(key Key) string {
	return displayNames[key]
}

var (
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// CleanSearchTerm normalises a product name into a retailer search term:
// parenthetical and bracketed asides are dropped, slashes become spaces,
// whitespace is collapsed. Idempotent.
func CleanSearchTerm(term string) string {
	term = parenRe.ReplaceAllString(term, " ")
	term = bracketRe.ReplaceAllString(term, " ")
	term = strings.ReplaceAll(term, "/", " ")
	term = spaceRe.ReplaceAllString(term, " ")
	return strings.TrimSpace(term)
}

// SearchURL builds the retailer search link for a raw product name. The
// second return is false only for a key outside the configured set, which
// Select can never produce but callers taking keys off the wire can.
func (c Config) SearchURL(key Key, rawTerm string) (string, bool) {
	tmpl, ok := searchTemplates[key]
	if !ok {
		return "", false
	}
	u := fmt.Sprintf(tmpl, url.QueryEscape(CleanSearchTerm(rawTerm)))
	if key == Amazon && c.AmazonTag != "" {
		u += "&tag=" + url.QueryEscape(c.AmazonTag)
	}
	return u, true
}
