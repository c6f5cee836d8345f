package bucket

// Walk returns the sum of |x - y| over the ascending pairing of the units in
// a and b.
//
// The outer loop visits every bucket of a once. The cursor j over b is shared
// across the whole loop and never reset, and left tracks how many units of
// bucket j are still unpaired, so neither table is modified. Runs of units are
// paired in one step: min(countA, left) pairs at the same two values add the
// same distance.
//
// Both tables must cover the same domain and hold the same total; if b runs
// out first the remaining units of a are ignored.
func Walk(a, b *Table) int64 {
	var (
		total int64
		j     = -1
		left  uint64
		n     = len(b.counts)
	)

	for i, ca := range a.counts {
		for ca > 0 {
			if left == 0 {
				j++
				for j < n && b.counts[j] == 0 {
					j++
				}
				if j == n {
					return total
				}
				left = b.counts[j]
			}

			m := min(ca, left)
			total += int64(m) * absDiff(i, j)
			ca -= m
			left -= m
		}
	}

	return total
}

// WalkSparse computes the same result as Walk but visits only occupied
// buckets, using the occupancy bitmaps of both tables. It wins when the number
// of distinct values is far below the table size.
func WalkSparse(a, b *Table) int64 {
	itA := a.Occupancy().Iterator()
	itB := b.Occupancy().Iterator()

	var (
		total int64
		j     int
		left  uint64
	)

	for itA.HasNext() {
		i := int(itA.Next())
		ca := a.counts[i]
		for ca > 0 {
			if left == 0 {
				if !itB.HasNext() {
					return total
				}
				j = int(itB.Next())
				left = b.counts[j]
			}

			m := min(ca, left)
			total += int64(m) * absDiff(i, j)
			ca -= m
			left -= m
		}
	}

	return total
}

func absDiff(i, j int) int64 {
	if i > j {
		return int64(i - j)
	}
	return int64(j - i)
}
