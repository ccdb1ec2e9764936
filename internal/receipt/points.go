package receipt

import (
	"math"
	"strings"
	"time"
)

// Point values for the individual scoring rules.
const (
	pointsPerAlphanumeric   = 1
	pointsRoundDollarTotal  = 50
	pointsQuarterTotal      = 25
	pointsPerItemPair       = 5
	descriptionBonusRate    = 0.2
	pointsOddPurchaseDay    = 6
	pointsAfternoonPurchase = 10
)

// pointsRule is a pure scoring function over a normalized receipt.
type pointsRule func(*Receipt) int64

// pointsRules is the fixed, ordered rule set. Each rule is independent; the
// final score is their sum.
var pointsRules = []pointsRule{
	retailerNamePoints,
	roundDollarTotalPoints,
	quarterMultipleTotalPoints,
	itemPairPoints,
	descriptionLengthPoints,
	oddPurchaseDayPoints,
	afternoonPurchasePoints,
}

// CalculatePoints scores a normalized receipt. It is deterministic and never
// fails for a well-formed receipt.
func CalculatePoints(r *Receipt) int64 {
	var total int64
	for _, rule := range pointsRules {
		total += rule(r)
	}
	return total
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// retailerNamePoints awards one point per alphanumeric character in the
// retailer name.
func retailerNamePoints(r *Receipt) int64 {
	var count int64
	for _, c := range r.Retailer {
		if isAlphanumeric(c) {
			count++
		}
	}
	return count * pointsPerAlphanumeric
}

// totalCents converts the receipt total to integer cents so the modulus checks
// below are exact.
func totalCents(r *Receipt) int64 {
	return int64(math.Round(r.Total * 100))
}

// roundDollarTotalPoints awards 50 points when the total has no fractional
// part.
func roundDollarTotalPoints(r *Receipt) int64 {
	if totalCents(r)%100 == 0 {
		return pointsRoundDollarTotal
	}
	return 0
}

// quarterMultipleTotalPoints awards 25 points when the total is a multiple of
// 0.25.
func quarterMultipleTotalPoints(r *Receipt) int64 {
	if totalCents(r)%25 == 0 {
		return pointsQuarterTotal
	}
	return 0
}

// itemPairPoints awards 5 points for every two items, rounding down.
func itemPairPoints(r *Receipt) int64 {
	return int64(len(r.Items)/2) * pointsPerItemPair
}

// descriptionLengthPoints awards ceil(price * 0.2) points for every item whose
// trimmed description length is a multiple of 3.
func descriptionLengthPoints(r *Receipt) int64 {
	var total int64
	for _, item := range r.Items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if len(trimmed)%3 == 0 {
			total += int64(math.Ceil(item.Price * descriptionBonusRate))
		}
	}
	return total
}

// oddPurchaseDayPoints awards 6 points when the day of the month is odd.
func oddPurchaseDayPoints(r *Receipt) int64 {
	if r.PurchaseDate.Day()%2 != 0 {
		return pointsOddPurchaseDay
	}
	return 0
}

// afternoonPurchasePoints awards 10 points when the purchase time falls in
// [14:00, 16:00). A purchase time that does not parse as HH:MM earns nothing.
func afternoonPurchasePoints(r *Receipt) int64 {
	t, err := time.Parse("15:04", r.PurchaseTime)
	if err != nil {
		return 0
	}
	minutes := t.Hour()*60 + t.Minute()
	if minutes >= 14*60 && minutes < 16*60 {
		return pointsAfternoonPurchase
	}
	return 0
}
