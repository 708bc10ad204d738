package service

import (
	"reflect"
	"testing"
)

func TestApplyScoreThresholds(t *testing.T) {
	testCases := []struct {
		name           string
		points         int
		badges         []string
		earned         int
		expectedPoints int
		expectedBadges []string
	}{
		{
			name:           "below first threshold awards nothing",
			points:         0,
			badges:         []string{},
			earned:         20,
			expectedPoints: 20,
			expectedBadges: []string{},
		},
		{
			name:           "crossing 25 awards explorer",
			points:         0,
			badges:         []string{},
			earned:         30,
			expectedPoints: 30,
			expectedBadges: []string{BadgeQuizExplorer},
		},
		{
			name:           "crossing 50 awards master",
			points:         30,
			badges:         []string{BadgeQuizExplorer},
			earned:         25,
			expectedPoints: 55,
			expectedBadges: []string{BadgeQuizExplorer, BadgeQuizMaster},
		},
		{
			name:           "crossing 100 awards champion",
			points:         90,
			badges:         []string{BadgeQuizExplorer, BadgeQuizMaster},
			earned:         15,
			expectedPoints: 105,
			expectedBadges: []string{BadgeQuizExplorer, BadgeQuizMaster, BadgeQuizChampion},
		},
		{
			name:           "jump from 0 to 150 awards champion only",
			points:         0,
			badges:         []string{},
			earned:         150,
			expectedPoints: 150,
			expectedBadges: []string{BadgeQuizChampion},
		},
		{
			name:           "held champion lets the next call fill in master",
			points:         150,
			badges:         []string{BadgeQuizChampion},
			earned:         10,
			expectedPoints: 160,
			expectedBadges: []string{BadgeQuizChampion, BadgeQuizMaster},
		},
		{
			name:           "all badges held leaves the set unchanged",
			points:         200,
			badges:         []string{BadgeQuizChampion, BadgeQuizMaster, BadgeQuizExplorer},
			earned:         50,
			expectedPoints: 250,
			expectedBadges: []string{BadgeQuizChampion, BadgeQuizMaster, BadgeQuizExplorer},
		},
		{
			name:           "zero score still evaluates the ladder",
			points:         25,
			badges:         []string{},
			earned:         0,
			expectedPoints: 25,
			expectedBadges: []string{BadgeQuizExplorer},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotPoints, gotBadges := ApplyScore(tc.points, tc.badges, tc.earned)
			if gotPoints != tc.expectedPoints {
				t.Errorf("expected points %d, got %d", tc.expectedPoints, gotPoints)
			}
			if !reflect.DeepEqual(gotBadges, tc.expectedBadges) {
				t.Errorf("expected badges %v, got %v", tc.expectedBadges, gotBadges)
			}
		})
	}
}

func TestApplyScoreMonotonic(t *testing.T) {
	for _, earned := range []int{0, 1, 10, 150} {
		for _, points := range []int{0, 24, 99, 500} {
			newPoints, _ := ApplyScore(points, nil, earned)
			if newPoints < points {
				t.Errorf("points decreased: %d + %d -> %d", points, earned, newPoints)
			}
		}
	}
}

func TestApplyScoreDoesNotMutateInput(t *testing.T) {
	badges := []string{BadgeQuizExplorer}
	_, newBadges := ApplyScore(40, badges, 20)

	if len(badges) != 1 || badges[0] != BadgeQuizExplorer {
		t.Errorf("input badge slice was mutated: %v", badges)
	}
	if len(newBadges) != 2 {
		t.Errorf("expected a new badge to be appended, got %v", newBadges)
	}
}

func TestAwardedBadge(t *testing.T) {
	before := []string{BadgeQuizExplorer}
	_, after := ApplyScore(40, before, 20)

	if got := AwardedBadge(before, after); got != BadgeQuizMaster {
		t.Errorf("expected %q, got %q", BadgeQuizMaster, got)
	}
	if got := AwardedBadge(before, before); got != "" {
		t.Errorf("expected no badge, got %q", got)
	}
}
