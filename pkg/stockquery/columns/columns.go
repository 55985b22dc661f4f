package columns

import (
	"sort"
	"strings"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// Resolver converts a replay result into the cell value for a column.
type Resolver func(r types.Result) string

// Registry maps column keys to resolvers.
var Registry = map[string]Resolver{}

// Default is the column order used when none is requested.
var Default = []string{"name", "ticker", "start", "end", "status"}

var aliases = map[string]string{
	"sym":        "ticker",
	"symbol":     "ticker",
	"from":       "start",
	"start_date": "start",
	"to":         "end",
	"end_date":   "end",
}

func init() {
	Registry["name"] = func(r types.Result) string { return r.Request.Name }
	Registry["input"] = func(r types.Result) string { return r.Request.Ticker }
	Registry["preset"] = func(r types.Result) string { return r.Request.Preset }
	Registry["ticker"] = func(r types.Result) string {
		if r.Query == nil {
			return ""
		}
		return r.Query.Ticker
	}
	Registry["start"] = func(r types.Result) string {
		if r.Query == nil {
			return r.Request.Start
		}
		return r.Query.StartDate
	}
	Registry["end"] = func(r types.Result) string {
		if r.Query == nil {
			return r.Request.End
		}
		return r.Query.EndDate
	}
	Registry["status"] = func(r types.Result) string {
		if r.OK() {
			return "ok"
		}
		return r.Reason
	}
}

// Canonical resolves a column name or alias to its registry key.
func Canonical(name string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[k]; ok {
		k = a
	}
	_, ok := Registry[k]
	return k, ok
}

// Compute returns the canonical column list for the requested names,
// de-duplicated in first-seen order. A request with no non-blank names
// yields Default.
func Compute(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return append([]string(nil), Default...), nil
	}
	out := make([]string, 0, len(requested))
	seen := map[string]struct{}{}
	for _, name := range requested {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, ok := Canonical(name)
		if !ok {
			return nil, &UnknownColumnError{Name: name, Available: available()}
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	if len(out) == 0 {
		return append([]string(nil), Default...), nil
	}
	return out, nil
}

// Value renders column col for r. Unknown columns render empty.
func Value(col string, r types.Result) string {
	if k, ok := Canonical(col); ok {
		return Registry[k](r)
	}
	return ""
}

// UnknownColumnError reports an unknown column name.
type UnknownColumnError struct {
	Name      string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return "unknown column: " + e.Name + "; available: " + strings.Join(e.Available, ", ")
}

func available() []string {
	keys := make([]string, 0, len(Registry))
	for k := range Registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
