package chore

import "time"

// Complete stamps the first chore matching name and location as done on now's
// date and returns its index. Only LastCompleted changes; no history is kept.
func Complete(chores []Chore, name, location string, now time.Time) (int, error) {
	for i := range chores {
		if chores[i].Matches(name, location) {
			chores[i].LastCompleted = DateOf(now)
			return i, nil
		}
	}
	return -1, ErrChoreNotFound
}
