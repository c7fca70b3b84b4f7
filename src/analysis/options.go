package analysis

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

func distinctInts(df dataframe.DataFrame, col string) []int {
	seen := map[int]bool{}
	for _, v := range columnFloats(df, col) {
		if math.IsNaN(v) {
			continue
		}
		seen[int(v)] = true
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func distinctStrings(df dataframe.DataFrame, col string) []string {
	seen := map[string]bool{}
	for _, v := range columnStrings(df, col) {
		if v == "" {
			continue
		}
		seen[v] = true
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
