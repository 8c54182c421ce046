package extract

// MergeEmails combines registered supplier emails with freshly discovered
// ones. Registered entries come first; discovered entries already present
// are dropped. The merge is idempotent: merging a result with itself yields
// the same list.
func MergeEmails(registered, discovered []string) []string {
	seen := make(map[string]struct{}, len(registered)+len(discovered))
	out := make([]string, 0, len(registered)+len(discovered))

	for _, addr := range registered {
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	for _, addr := range discovered {
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}

	return out
}
