package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/storyline-app/storyline-cli/internal/client/models"
)

var (
	// "5만원", "5.5만원" — the amount precedes the 만원 (10,000 won) unit
	manwonPattern = regexp.MustCompile(`([+-]?\d+(?:[.,]\d+)?)\s*만원`)
	// comma-grouped amounts like "57,000"
	groupedPattern = regexp.MustCompile(`[+-]?\d{1,3}(?:,\d{3})+`)
	// last resort: any number
	numberPattern = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?`)

	incomePattern  = regexp.MustCompile(`수입|입금|매출|판매|들어옴`)
	expensePattern = regexp.MustCompile(`지출|비용|구매|결제|나감|출금`)
)

// QuickParse recognizes amounts and income/expense keywords in free text
// and shapes them into a record. The full text stays as the title; records
// default to expense when no keyword decides otherwise.
func QuickParse(text string) models.Record {
	t := strings.TrimSpace(text)

	var raw string
	hasManwon := false
	if m := manwonPattern.FindStringSubmatch(t); m != nil {
		raw = m[1]
		hasManwon = true
	} else if m := groupedPattern.FindString(t); m != "" {
		raw = m
	} else if m := numberPattern.FindString(t); m != "" {
		raw = m
	}

	var amount float64
	if raw != "" {
		n, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err == nil {
			amount = n
			if hasManwon {
				amount *= 10000
			}
		}
	}

	typ := models.TypeExpense
	if incomePattern.MatchString(t) {
		typ = models.TypeIncome
	}
	if expensePattern.MatchString(t) {
		typ = models.TypeExpense
	}

	return models.Record{Title: t, Amount: amount, Type: typ}
}
