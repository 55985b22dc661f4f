package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Filter matches a ticker. Tickers are compared after trimming and
// uppercasing, the same normalization the form applies on submit.
type Filter interface {
	Match(ticker string) bool
}

// Parse builds a filter from an expression:
// - Comma-separated tickers: "AAPL,msft"
// - Glob: "PETR*"
// - Regex: "/^[A-Z]{4}[0-9]$/"
// - Anything else: case-insensitive substring
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always(true), nil
	}
	if strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") && len(expr) > 2 {
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("ticker filter %q: %w", expr, err)
		}
		return Regex{re: re}, nil
	}
	if strings.Contains(expr, ",") {
		set := map[string]struct{}{}
		for _, p := range strings.Split(expr, ",") {
			if p = normalize(p); p != "" {
				set[p] = struct{}{}
			}
		}
		return TickerSet{set: set}, nil
	}
	if strings.ContainsAny(expr, "*?[") {
		pattern := normalize(expr)
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("ticker filter %q: %w", expr, err)
		}
		return Glob{pattern: pattern}, nil
	}
	return Substr{needle: normalize(expr)}, nil
}

func normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

type Always bool

func (a Always) Match(string) bool { return bool(a) }

type TickerSet struct{ set map[string]struct{} }

func (e TickerSet) Match(ticker string) bool {
	_, ok := e.set[normalize(ticker)]
	return ok
}

type Glob struct{ pattern string }

func (g Glob) Match(ticker string) bool {
	ok, _ := filepath.Match(g.pattern, normalize(ticker))
	return ok
}

// Regex matches against the normalized ticker.
type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(ticker string) bool { return r.re.MatchString(normalize(ticker)) }

// Substr matches if the ticker contains needle, ignoring case.
type Substr struct{ needle string }

func (s Substr) Match(ticker string) bool {
	return strings.Contains(normalize(ticker), s.needle)
}

func (g Glob) String() string   { return fmt.Sprintf("glob:%s", g.pattern) }
func (s Substr) String() string { return fmt.Sprintf("substr:%s", s.needle) }
func (r Regex) String() string  { return fmt.Sprintf("regex:%s", r.re) }
