package usecase

import (
	"testing"
	"time"
)

func TestGenerateQuoteNumber(t *testing.T) {
	now := time.Date(2025, time.March, 7, 14, 5, 33, 0, time.UTC)

	t.Run("timestamp only when name empty", func(t *testing.T) {
		if got := GenerateQuoteNumber("", now); got != "250307-1405" {
			t.Fatalf("unexpected quote number: %s", got)
		}
	})

	t.Run("whitespace-only name adds no suffix", func(t *testing.T) {
		if got := GenerateQuoteNumber("   ", now); got != "250307-1405" {
			t.Fatalf("unexpected quote number: %s", got)
		}
	})

	t.Run("initials from each word upper-cased", func(t *testing.T) {
		if got := GenerateQuoteNumber("jane p doe", now); got != "250307-1405-JPD" {
			t.Fatalf("unexpected quote number: %s", got)
		}
	})

	t.Run("extra spacing between words ignored", func(t *testing.T) {
		if got := GenerateQuoteNumber("  Mary   Ann  ", now); got != "250307-1405-MA" {
			t.Fatalf("unexpected quote number: %s", got)
		}
	})
}
