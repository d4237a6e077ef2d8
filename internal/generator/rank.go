package generator

import "sort"

type rankedItem struct {
	Key   string
	Count int
}

// rank counts items and orders them by descending count; equal counts keep
// the order in which the items were first seen
func rank(items []string) []rankedItem {
	index := make(map[string]int)
	var ranked []rankedItem
	for _, item := range items {
		if i, ok := index[item]; ok {
			ranked[i].Count++
			continue
		}
		index[item] = len(ranked)
		ranked = append(ranked, rankedItem{Key: item, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// mostCommon returns the top ranked item, or def when items is empty
func mostCommon(items []string, def string) string {
	ranked := rank(items)
	if len(ranked) == 0 {
		return def
	}
	return ranked[0].Key
}
