package preference

// prependHistory puts path first, drops any earlier occurrence and keeps at
// most limit entries, evicting from the tail. The result is a fresh slice.
func prependHistory(paths []string, path string, limit int) []string {
	out := make([]string, 0, min(len(paths)+1, limit))
	out = append(out, path)
	for _, p := range paths {
		if len(out) >= limit {
			break
		}
		if p == path {
			continue
		}
		out = append(out, p)
	}
	return out
}

// removePath returns a new slice with all occurrences of target removed.
func removePath(paths []string, target string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == target {
			continue
		}
		out = append(out, p)
	}
	return out
}

// dedupePaths keeps the first occurrence of every path, in order.
func dedupePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// trimHistory caps paths at limit entries, discarding the oldest.
func trimHistory(paths []string, limit int) []string {
	if len(paths) > limit {
		return paths[:limit]
	}
	return paths
}
