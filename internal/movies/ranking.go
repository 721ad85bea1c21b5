package movies

// AssignRankings numbers the movies 1..N in list order. The input is
// expected to be sorted by rating descending; the first entry gets
// rank 1.
func AssignRankings(list []Movie) {
	for i := range list {
		list[i].Ranking = i + 1
	}
}
