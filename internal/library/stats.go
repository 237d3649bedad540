package library

// FieldCount is one grouping bucket in the statistics breakdowns.
type FieldCount struct {
	Value string
	Count int
}

// Stats aggregates catalog-wide numbers. Genre and author buckets group by
// exact string — values differing only in case count separately — and appear
// in first-occurrence order.
type Stats struct {
	Total     int
	ReadCount int
	ByGenre   []FieldCount
	ByAuthor  []FieldCount
}

// PercentRead reports the share of read records in [0.0, 100.0].
func (s Stats) PercentRead() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ReadCount) / float64(s.Total) * 100
}

// Stats computes the aggregate view of the catalog.
func (c *Catalog) Stats() Stats {
	stats := Stats{Total: len(c.books)}

	genreIndex := make(map[string]int)
	authorIndex := make(map[string]int)
	for _, b := range c.books {
		if b.Read {
			stats.ReadCount++
		}
		if i, ok := genreIndex[b.Genre]; ok {
			stats.ByGenre[i].Count++
		} else {
			genreIndex[b.Genre] = len(stats.ByGenre)
			stats.ByGenre = append(stats.ByGenre, FieldCount{Value: b.Genre, Count: 1})
		}
		if i, ok := authorIndex[b.Author]; ok {
			stats.ByAuthor[i].Count++
		} else {
			authorIndex[b.Author] = len(stats.ByAuthor)
			stats.ByAuthor = append(stats.ByAuthor, FieldCount{Value: b.Author, Count: 1})
		}
	}
	return stats
}
