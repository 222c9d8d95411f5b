package scenario

// dontCare marks a row slot that no required pair constrains yet.
const dontCare = -1

// pair identifies value vi of parameter i combined with value vj of parameter j.
type pair struct {
	i, vi, j, vj int
}

// coveringArray returns rows of value indexes such that every pair of values
// from any two parameters appears in at least one row. sizes holds the number
// of values of each parameter. Rows are built in parameter order: the first
// two parameters are fully combined, then each further parameter extends the
// existing rows greedily and appends rows for pairs that are still missing.
func coveringArray(sizes []int) [][]int {
	for _, size := range sizes {
		if size == 0 {
			return nil
		}
	}

	switch len(sizes) {
	case 0:
		return nil
	case 1:
		rows := make([][]int, 0, sizes[0])
		for v := 0; v < sizes[0]; v++ {
			rows = append(rows, []int{v})
		}
		return rows
	}

	rows := make([][]int, 0, sizes[0]*sizes[1])
	for a := 0; a < sizes[0]; a++ {
		for b := 0; b < sizes[1]; b++ {
			row := make([]int, len(sizes))
			for k := range row {
				row[k] = dontCare
			}
			row[0], row[1] = a, b
			rows = append(rows, row)
		}
	}

	for k := 2; k < len(sizes); k++ {
		uncovered := make(map[pair]struct{})
		for i := 0; i < k; i++ {
			for vi := 0; vi < sizes[i]; vi++ {
				for vk := 0; vk < sizes[k]; vk++ {
					uncovered[pair{i: i, vi: vi, j: k, vj: vk}] = struct{}{}
				}
			}
		}

		// Horizontal growth.
		for _, row := range rows {
			best, bestGain := 0, -1
			for vk := 0; vk < sizes[k]; vk++ {
				gain := 0
				for i := 0; i < k; i++ {
					if _, ok := uncovered[pair{i: i, vi: row[i], j: k, vj: vk}]; ok {
						gain++
					}
				}
				if gain > bestGain {
					best, bestGain = vk, gain
				}
			}
			row[k] = best
			for i := 0; i < k; i++ {
				delete(uncovered, pair{i: i, vi: row[i], j: k, vj: best})
			}
		}

		// Vertical growth, visiting missing pairs in a stable order.
		var extra [][]int
		for i := 0; i < k; i++ {
			for vi := 0; vi < sizes[i]; vi++ {
				for vk := 0; vk < sizes[k]; vk++ {
					if _, ok := uncovered[pair{i: i, vi: vi, j: k, vj: vk}]; !ok {
						continue
					}
					merged := false
					for _, row := range extra {
						if row[k] == vk && row[i] == dontCare {
							row[i] = vi
							merged = true
							break
						}
					}
					if !merged {
						row := make([]int, len(sizes))
						for n := range row {
							row[n] = dontCare
						}
						row[i], row[k] = vi, vk
						extra = append(extra, row)
					}
				}
			}
		}
		for _, row := range extra {
			for n := 0; n < k; n++ {
				if row[n] == dontCare {
					row[n] = 0
				}
			}
		}
		rows = append(rows, extra...)
	}

	return rows
}
