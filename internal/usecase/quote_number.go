package usecase

import (
	"strings"
	"time"
	"unicode"
)

// GenerateQuoteNumber produces YYMMDD-HHmm from the local timestamp,
// with the upper-cased first letter of each client-name word appended
// as -INITIALS. An empty or whitespace-only name adds no suffix.
//
// The number is generated once at quote creation and again only when
// the client name is edited; it is frozen in stored state otherwise.
func GenerateQuoteNumber(clientName string, now time.Time) string {
	num := now.Format("060102-1504")

	var initials strings.Builder
	for _, part := range strings.Fields(clientName) {
		r := []rune(part)[0]
		initials.WriteRune(unicode.ToUpper(r))
	}
	if initials.Len() > 0 {
		num += "-" + initials.String()
	}
	return num
}
