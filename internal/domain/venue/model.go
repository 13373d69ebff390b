package venue

import "strings"

// Stadium is a ground, unique by (name, city).
type Stadium struct {
	ID       string `json:"-"`
	Name     string `json:"name" validate:"required"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Locality string `json:"locality"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

// SplitName splits a raw feed venue on its first comma: the head is the
// stadium name and the remainder its locality.
func SplitName(raw string) (name, locality string) {
	head, tail, _ := strings.Cut(raw, ",")
	return strings.TrimSpace(head), strings.TrimSpace(tail)
}
