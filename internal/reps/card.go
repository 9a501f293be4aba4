package reps

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/talkto/internal/types"
)

// Party badge identifiers.
const (
	BadgeDemocrat    = "democrat"
	BadgeRepublican  = "republican"
	BadgeIndependent = "independent"
	BadgeNeutral     = "neutral"
)

// BuildCard derives the display fields for a representative in a bucket.
func BuildCard(rep types.Representative, bucket types.Bucket) types.ClassifiedRepresentative {
	return types.ClassifiedRepresentative{
		Representative: rep,
		Bucket:         bucket,
		Title:          Title(rep, bucket),
		PartyName:      PartyName(rep.Party),
		PartyBadge:     PartyBadge(rep.Party),
		PhoneDisplay:   FormatPhone(rep.Phone),
		PhoneDial:      DialDigits(rep.Phone),
		ContactURL:     ContactURL(rep.URL),
	}
}

// PartyBadge maps free-text party affiliation to a badge identifier.
func PartyBadge(party string) string {
	p := strings.ToLower(party)
	switch {
	case strings.Contains(p, "democrat"):
		return BadgeDemocrat
	case strings.Contains(p, "republican"):
		return BadgeRepublican
	case strings.Contains(p, "independent"):
		return BadgeIndependent
	default:
		return BadgeNeutral
	}
}

// PartyName normalizes free-text party affiliation for display.
func PartyName(party string) string {
	p := strings.ToLower(party)
	switch {
	case strings.Contains(p, "democrat"):
		return "Democrat"
	case strings.Contains(p, "republican"):
		return "Republican"
	case strings.Contains(p, "independent"):
		return "Independent"
	case strings.Contains(p, "libertarian"):
		return "Libertarian"
	case strings.Contains(p, "green"):
		return "Green"
	case party != "":
		return party
	default:
		return "Unknown"
	}
}

// DialDigits strips everything but digits from a phone number.
func DialDigits(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatPhone renders US numbers as "(AAA) BBB-CCCC". Other input is returned unchanged.
func FormatPhone(phone string) string {
	digits := DialDigits(phone)
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("(%s) %s-%s", digits[1:4], digits[4:7], digits[7:])
	default:
		return phone
	}
}

// ContactURL points congressional websites at their contact form.
func ContactURL(website string) string {
	if website == "" {
		return ""
	}
	u, err := url.Parse(website)
	if err != nil || u.Host == "" {
		return website
	}
	host := strings.ToLower(u.Hostname())
	if strings.HasSuffix(host, ".senate.gov") || strings.HasSuffix(host, ".house.gov") {
		return strings.TrimSuffix(website, "/") + "/contact"
	}
	return website
}
