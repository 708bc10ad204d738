package service

const (
	BadgeQuizChampion = "Quiz Champion"
	BadgeQuizMaster   = "Quiz Master"
	BadgeQuizExplorer = "Quiz Explorer"
)

// ApplyScore accumulates the earned score into the user's points and walks
// the badge ladder. The ladder is a strict else-if chain evaluated once per
// call: only the highest threshold whose badge is still missing awards, so a
// jump from 10 to 150 points grants "Quiz Champion" alone and the lower
// tiers are never backfilled. Points never decrease; badges are append-only
// and deduplicated.
func ApplyScore(points int, badges []string, earned int) (int, []string) {
	newPoints := points + earned
	if newPoints >= 100 && !hasBadge(badges, BadgeQuizChampion) {
		return newPoints, appendBadge(badges, BadgeQuizChampion)
	} else if newPoints >= 50 && !hasBadge(badges, BadgeQuizMaster) {
		return newPoints, appendBadge(badges, BadgeQuizMaster)
	} else if newPoints >= 25 && !hasBadge(badges, BadgeQuizExplorer) {
		return newPoints, appendBadge(badges, BadgeQuizExplorer)
	}
	return newPoints, badges
}

// AwardedBadge returns the badge appended by ApplyScore, or "" when the call
// left the badge set unchanged.
func AwardedBadge(before, after []string) string {
	if len(after) > len(before) {
		return after[len(after)-1]
	}
	return ""
}

func hasBadge(badges []string, badge string) bool {
	for _, b := range badges {
		if b == badge {
			return true
		}
	}
	return false
}

func appendBadge(badges []string, badge string) []string {
	out := make([]string, len(badges), len(badges)+1)
	copy(out, badges)
	return append(out, badge)
}
