package model

func TaskIDs(tasks []Task) map[int]bool {
	out := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		out[t.ID] = true
	}
	return out
}

// NextID returns the smallest non-negative integer not present in used.
func NextID(used map[int]bool) int {
	id := 0
	for used[id] {
		id++
	}
	return id
}

func FindByID(tasks []Task, id int) (int, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}
