package phone

import (
	"fmt"
	"strings"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/nyaruka/phonenumbers"
)

// Normalizer formats guest phone numbers as E.164. Numbers without a country
// code are read in the default region.
type Normalizer struct {
	region string
}

var _ interfaces.PhoneNormalizer = (*Normalizer)(nil)

func NewNormalizer(region string) *Normalizer {
	return &Normalizer{region: strings.ToUpper(region)}
}

func (n *Normalizer) Normalize(raw string) (string, error) {
	num := strings.TrimSpace(raw)
	if strings.HasPrefix(num, "00") {
		num = "+" + num[2:]
	}

	parsed, err := phonenumbers.Parse(num, n.region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("is not a valid phone number")
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
