package grammar

// Parse runs rules to a fixpoint over text and returns every node the
// chart contains, terminal and non-terminal alike (spec.md §4.4). The
// caller (the candidate tagger) is responsible for filtering,
// prioritizing and selecting a non-overlapping subset.
func Parse(text string, rules []Rule) []Node {
	c := newChart(text)

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for _, rule := range rules {
			for _, n := range c.applyRule(rule) {
				if c.add(n) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	out := make([]Node, len(c.all))
	for i, n := range c.all {
		out[i] = *n
	}
	return out
}
