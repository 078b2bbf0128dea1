package usecasees

import (
	"regexp"
	"strconv"
	"strings"

	"pairtrader/internal/usecasees/structs"
	"pairtrader/models"
)

const (
	ReasonProblematic      = "problematic ticker!"
	ReasonCurrencyMismatch = "currency mismatch!"
)

var (
	numberPattern   = regexp.MustCompile(`[+-]?\d+(\.\d+)?`)
	nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// TickerLookup resolves a candidate symbol against the instrument registry.
// A nil result means the symbol is not registered; the parser then skips the
// sectype-specific normalization for that leg.
type TickerLookup func(symbol string) *models.Ticker

type legToken struct {
	mult    float64
	hasMult bool
	symbol  string
}

// tokenizeLeg splits one `[mult*][XCH:]SYMBOL` leg. The multiplier is the
// first numeric literal before the `*`; the exchange prefix is dropped.
func tokenizeLeg(raw string) legToken {
	tok := legToken{mult: 1}

	if i := strings.Index(raw, "*"); i >= 0 {
		if m := numberPattern.FindString(raw[:i]); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				tok.mult = v
				tok.hasMult = true
			}
		}
		raw = raw[i+1:]
	}

	if i := strings.Index(raw, ":"); i >= 0 {
		raw = raw[i+1:]
	}

	tok.symbol = raw

	return tok
}

// normalizeStock applies the venue convention for share classes: a dot
// becomes a space (BF.A -> "BF A"). Any other punctuation is stripped and
// flagged; the stripped form is what gets persisted.
func normalizeStock(symbol string) (string, string) {
	if strings.Contains(symbol, ".") {
		return strings.ReplaceAll(symbol, ".", " "), ""
	}

	if stripped := nonAlnumPattern.ReplaceAllString(symbol, ""); stripped != symbol {
		return stripped, ReasonProblematic
	}

	return symbol, ""
}

// normalizeCash reinterprets a 6-char FX code as XXX.YYY and requires the
// quote currency to match the registered one.
func normalizeCash(symbol string, ticker *models.Ticker) (string, string) {
	if len(symbol) != 6 {
		return symbol, ReasonProblematic
	}

	norm := symbol[:3] + "." + symbol[3:]

	if symbol[3:] != ticker.Currency {
		return norm, ReasonCurrencyMismatch
	}

	return norm, ""
}

// normalizeCrypto re-splits base/quote on the last 3 chars; the quote must be
// the registered currency and USD specifically.
func normalizeCrypto(symbol string, ticker *models.Ticker) (string, string) {
	stripped := strings.ReplaceAll(symbol, ".", "")
	if len(stripped) <= 3 {
		return symbol, ReasonProblematic
	}

	base := stripped[:len(stripped)-3]
	quote := stripped[len(stripped)-3:]
	norm := base + "." + quote

	if quote != ticker.Currency || quote != "USD" {
		return norm, ReasonCurrencyMismatch
	}

	return norm, ""
}

func normalizeLeg(symbol string, lookup TickerLookup) (string, string) {
	ticker := lookup(symbol)
	if ticker == nil {
		return symbol, ""
	}

	switch ticker.SecType {
	case models.SecTypeCash:
		return normalizeCash(symbol, ticker)
	case models.SecTypeCrypto:
		return normalizeCrypto(symbol, ticker)
	default:
		return normalizeStock(symbol)
	}
}

// ParseTicker turns a compound instrument expression
// `[h1*]XCH1:SYM1[-[h2*]XCH2:SYM2]` into its structured form. Failures never
// abort the parse: every leg that could be read stays in the result so the
// signal is persisted flagged instead of dropped.
func ParseTicker(raw string, lookup TickerLookup) structs.ParseResult {
	res := structs.ParseResult{
		Hedge: 1,
		OK:    true,
	}

	fail := func(reason string) {
		if res.OK {
			res.OK = false
			res.Reason = reason
		}
	}

	segments := strings.Split(raw, "-")
	if len(segments) > 2 {
		fail(ReasonProblematic)
		return res
	}

	leg1 := tokenizeLeg(segments[0])
	if leg1.hasMult && leg1.mult != 1 {
		// only the second leg's multiplier means anything
		fail(ReasonProblematic)
	}

	sym1, reason := normalizeLeg(leg1.symbol, lookup)
	if reason != "" {
		fail(reason)
	}

	res.Kind = models.KindSingle
	res.Ticker1 = sym1

	if len(segments) == 1 {
		return res
	}

	leg2 := tokenizeLeg(segments[1])
	res.Hedge = leg2.mult

	sym2, reason := normalizeLeg(leg2.symbol, lookup)
	if reason != "" {
		fail(reason)
	}

	res.Kind = models.KindPair
	res.Ticker2 = sym2

	return res
}
