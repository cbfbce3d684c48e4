package validation

import (
	"sort"
	"sync"
)

// Process-wide registry of known violation codes. Hosts can expose it to
// clients (e.g. through an allErrorCodes query) so the set of codes a
// deployment may emit is discoverable.
var codeRegistry = struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}{codes: make(map[string]struct{})}

// RegisterCode records code as a known violation code. Registering the same
// code twice is a no-op. The canned kinds register their codes on first use;
// implementers defining new kinds should register theirs at init time.
func RegisterCode(code string) {
	codeRegistry.mu.Lock()
	codeRegistry.codes[code] = struct{}{}
	codeRegistry.mu.Unlock()
}

// KnownCodes returns every registered violation code, sorted.
func KnownCodes() []string {
	codeRegistry.mu.RLock()
	out := make([]string, 0, len(codeRegistry.codes))
	for code := range codeRegistry.codes {
		out = append(out, code)
	}
	codeRegistry.mu.RUnlock()
	sort.Strings(out)
	return out
}

func init() {
	for _, code := range []string{
		"EmptyString",
		"InvalidEmailFormat",
		"NegativeValue",
		"NotInRange",
		"LengthNotInRange",
	} {
		RegisterCode(code)
	}
}
