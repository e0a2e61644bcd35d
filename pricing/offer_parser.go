package pricing

import (
	"regexp"
	"strconv"

	"liveaboard-booking/models"
)

type offerPattern struct {
	name string
	re   *regexp.Regexp
}

// offerPatterns is evaluated top to bottom and the first match wins. Later
// patterns are broader and would misread the phrasings caught above them, so
// this order is part of the parser's contract.
var offerPatterns = []offerPattern{
	{"paid-plus-foc", regexp.MustCompile(`(?i)(\d+)\s*paid\s*\+\s*(\d+)\s*foc`)},
	{"pax-then-foc", regexp.MustCompile(`(?i)(\d+)\s*pax\b.*?\b(\d+)\s*foc`)},
	{"plus-notation", regexp.MustCompile(`(\d+)\s*\+\s*(\d+)`)},
	{"number-then-foc", regexp.MustCompile(`(?i)(\d+)\b.*?\b(\d+)\s*foc`)},
}

// offerPlanName is the broad filter deciding which rate plans carry offers
var offerPlanName = regexp.MustCompile(`(?i)\b(group|charter|foc)\b|free\s+of\s+charge`)

// OfferPatterns lists the parser's pattern names in evaluation order
func OfferPatterns() []string {
	names := make([]string, len(offerPatterns))
	for i, p := range offerPatterns {
		names[i] = p.name
	}
	return names
}

// IsOfferPlanName reports whether a rate plan name looks like a group, charter
// or FOC offer and should be handed to ParseOffer.
func IsOfferPlanName(name string) bool {
	return offerPlanName.MatchString(name)
}

// ParseOffer extracts {requiredPaid, bonusFree} from a rate plan name.
// It returns nil when no pattern matches or either number is below 1.
func ParseOffer(name string) *models.ParsedOffer {
	for _, p := range offerPatterns {
		m := p.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		paid, err1 := strconv.Atoi(m[1])
		free, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil || paid < 1 || free < 1 {
			return nil
		}
		return &models.ParsedOffer{Source: name, RequiredPaid: paid, BonusFree: free}
	}
	return nil
}

// ParseOffers parses every offer-bearing rate plan of a trip, keeping plan order
func ParseOffers(plans []models.RatePlan) []models.ParsedOffer {
	var offers []models.ParsedOffer
	for _, rp := range plans {
		if !IsOfferPlanName(rp.Name) {
			continue
		}
		if offer := ParseOffer(rp.Name); offer != nil {
			offers = append(offers, *offer)
		}
	}
	return offers
}
