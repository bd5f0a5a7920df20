package poverty

import "github.com/google/uuid"

// newID returns a fresh random identifier guaranteed to be absent from
// existing. Collisions are vanishingly rare with uuid v4; the loop keeps the
// guarantee unconditional.
func newID(existing []string) string {
	for {
		id := uuid.NewString()
		if !contains(existing, id) {
			return id
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// hasDuplicates reports whether ids holds the same value twice.
func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
