package scoring

import (
	"testing"

	"github.com/KirkDiggler/initials/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(team, row, column int, text string) *models.Answer {
	return &models.Answer{
		GameID:     "test-game-id",
		TeamNumber: team,
		RowIndex:   row,
		Column:     column,
		Text:       text,
	}
}

func teamAnswer(team, row int, word1, word2 string) []*models.Answer {
	return []*models.Answer{
		answer(team, row, models.ColumnFirstWord, word1),
		answer(team, row, models.ColumnSecondWord, word2),
	}
}

func entry(t *testing.T, entries []*models.ScoreEntry, row, team int) *models.ScoreEntry {
	t.Helper()
	e := find(entries, row, team)
	require.NotNil(t, e)
	return e
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "apple pie", Normalize("Apple ", " Pie"))
	assert.Equal(t, Normalize("apple pie", ""), Normalize("Apple", "  Pie"))
	assert.Equal(t, "apple pie", Normalize(" Apple\t ", "  Pie \n"))
	assert.Equal(t, "", Normalize("  ", ""))
}

func TestScoreboard_SharedMatch(t *testing.T) {
	answers := append(
		teamAnswer(1, 0, "Apple", "Pie"),
		teamAnswer(2, 0, "apple ", " PIE")...,
	)

	entries := Scoreboard(2, answers, nil, nil)
	require.Len(t, entries, models.NumRows*2)

	for team := 1; team <= 2; team++ {
		e := entry(t, entries, 0, team)
		assert.Equal(t, models.ClassificationSharedMatch, e.Classification)
		assert.Equal(t, models.ScoreSharedMatch, e.Score)
		assert.True(t, e.Overridable)
	}
}

func TestScoreboard_SoleAnswer(t *testing.T) {
	entries := Scoreboard(2, teamAnswer(1, 4, "Brigham", "Young"), nil, nil)

	e := entry(t, entries, 4, 1)
	assert.Equal(t, models.ClassificationSoleAnswer, e.Classification)
	assert.Equal(t, models.ScoreSoleAnswer, e.Score)

	other := entry(t, entries, 4, 2)
	assert.Equal(t, models.ClassificationNoAnswer, other.Classification)
	assert.Equal(t, models.ScoreNoAnswer, other.Score)
	assert.False(t, other.Overridable)
}

func TestScoreboard_TwoMatchOneDiffers(t *testing.T) {
	answers := append(teamAnswer(1, 2, "Cold", "Xylophone"), teamAnswer(2, 2, "cold", "xylophone")...)
	answers = append(answers, teamAnswer(3, 2, "Cat", "Xray")...)

	entries := Scoreboard(3, answers, nil, nil)

	assert.Equal(t, models.ScoreSharedMatch, entry(t, entries, 2, 1).Score)
	assert.Equal(t, models.ScoreSharedMatch, entry(t, entries, 2, 2).Score)

	e := entry(t, entries, 2, 3)
	assert.Equal(t, models.ClassificationUniqueButContested, e.Classification)
	assert.Equal(t, models.ScoreUniqueButContested, e.Score)
}

func TestScoreboard_BothAnsweredDifferently(t *testing.T) {
	// Row 0 prompt "A","Z": Alpha answers "Apple Zebra", Bravo "Ant Zone".
	// Both answered, neither matches, so both are unique-but-contested.
	answers := append(teamAnswer(1, 0, "Apple", "Zebra"), teamAnswer(2, 0, "Ant", "Zone")...)

	entries := Scoreboard(2, answers, nil, nil)

	for team := 1; team <= 2; team++ {
		e := entry(t, entries, 0, team)
		assert.Equal(t, models.ClassificationUniqueButContested, e.Classification)
		assert.Equal(t, models.ScoreUniqueButContested, e.Score)
	}
}

func TestScoreboard_SingleWordIsNoAnswer(t *testing.T) {
	answers := []*models.Answer{
		answer(1, 7, models.ColumnFirstWord, "Hydrogen"),
		answer(1, 7, models.ColumnSecondWord, "   "),
	}

	entries := Scoreboard(2, answers, nil, nil)

	e := entry(t, entries, 7, 1)
	assert.Equal(t, models.ClassificationNoAnswer, e.Classification)
	assert.Equal(t, models.ScoreNoAnswer, e.Score)
	assert.False(t, e.Overridable)
}

func TestScoreboard_OverrideApplies(t *testing.T) {
	answers := append(teamAnswer(1, 0, "Apple", "Zebra"), teamAnswer(2, 0, "Ant", "Zone")...)
	overrides := []*models.ScoreOverride{{
		GameID:     "test-game-id",
		RowIndex:   0,
		TeamNumber: 1,
		Score:      models.ScoreSoleAnswer,
		AnswerKey:  Normalize("Apple", "Zebra"),
	}}

	entries := Scoreboard(2, answers, overrides, nil)

	// Override replaces the score but not the classification.
	e := entry(t, entries, 0, 1)
	assert.Equal(t, models.ScoreSoleAnswer, e.Score)
	assert.Equal(t, models.ClassificationUniqueButContested, e.Classification)
	assert.Equal(t, models.ScoreUniqueButContested, entry(t, entries, 0, 2).Score)
}

func TestScoreboard_OverrideLapsesWhenAnswerChanges(t *testing.T) {
	answers := append(teamAnswer(1, 0, "Aardvark", "Zoo"), teamAnswer(2, 0, "Ant", "Zone")...)
	overrides := []*models.ScoreOverride{{
		RowIndex:   0,
		TeamNumber: 1,
		Score:      models.ScoreSoleAnswer,
		AnswerKey:  Normalize("Apple", "Zebra"),
	}}

	entries := Scoreboard(2, answers, overrides, nil)

	assert.Equal(t, models.ScoreUniqueButContested, entry(t, entries, 0, 1).Score)
}

func TestScoreboard_InvalidValidationForcesZero(t *testing.T) {
	answers := append(teamAnswer(1, 0, "Apple", "Zebra"), teamAnswer(2, 0, "Ant", "Zone")...)
	overrides := []*models.ScoreOverride{{
		RowIndex:   0,
		TeamNumber: 1,
		Score:      models.ScoreSoleAnswer,
		AnswerKey:  Normalize("Apple", "Zebra"),
	}}
	validations := []*models.AnswerValidation{{
		RowIndex:   0,
		TeamNumber: 1,
		Status:     models.ValidationStatusInvalid,
		AnswerKey:  Normalize("Apple", "Zebra"),
	}}

	entries := Scoreboard(2, answers, overrides, validations)

	e := entry(t, entries, 0, 1)
	assert.Equal(t, models.ScoreNoAnswer, e.Score)
	assert.Equal(t, models.ValidationStatusInvalid, e.ValidationStatus)
}

func TestScoreboard_ValidValidationKeepsScoreAndURL(t *testing.T) {
	answers := teamAnswer(1, 0, "Apple", "Zebra")
	validations := []*models.AnswerValidation{{
		RowIndex:   0,
		TeamNumber: 1,
		Status:     models.ValidationStatusValid,
		URL:        "https://en.wikipedia.org/wiki/Apple_Zebra",
		AnswerKey:  Normalize("Apple", "Zebra"),
	}}

	entries := Scoreboard(2, answers, nil, validations)

	e := entry(t, entries, 0, 1)
	assert.Equal(t, models.ScoreSoleAnswer, e.Score)
	assert.Equal(t, models.ValidationStatusValid, e.ValidationStatus)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Apple_Zebra", e.ValidationURL)
}

func TestTeamTotals(t *testing.T) {
	answers := teamAnswer(1, 0, "Apple", "Zebra")                          // 5
	answers = append(answers, teamAnswer(1, 1, "Big", "Yard")...)          // contested, 3
	answers = append(answers, teamAnswer(2, 1, "Bright", "Yellow")...)     // contested, 3
	answers = append(answers, teamAnswer(1, 2, "Cold", "Xylophone")...)    // match, 1
	answers = append(answers, teamAnswer(2, 2, "cold ", " Xylophone ")...) // match, 1

	entries := Scoreboard(3, answers, nil, nil)
	totals := TeamTotals(3, entries)
	require.Len(t, totals, 3)

	assert.Equal(t, 1, totals[0].TeamNumber)
	assert.Equal(t, "Alpha", totals[0].TeamName)
	assert.Equal(t, 9, totals[0].Total)

	assert.Equal(t, 2, totals[1].TeamNumber)
	assert.Equal(t, 4, totals[1].Total)

	// Ties keep team-number order.
	assert.Equal(t, 3, totals[2].TeamNumber)
	assert.Equal(t, 0, totals[2].Total)

	var sum int
	for _, e := range entries {
		if e.TeamNumber == 1 {
			sum += e.Score
		}
	}
	assert.Equal(t, totals[0].Total, sum)
}
