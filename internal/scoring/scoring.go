// Package scoring turns the flat set of submitted answers into the
// per-row, per-team score matrix. It is pure: callers load state from the
// repositories and recompute from scratch on every change.
package scoring

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/initials/internal/models"
)

// Normalize builds the comparison key for a two-word answer: each word
// trimmed, joined by a single space, whitespace collapsed, lowercased.
func Normalize(word1, word2 string) string {
	joined := strings.TrimSpace(word1) + " " + strings.TrimSpace(word2)
	return strings.ToLower(strings.Join(strings.Fields(joined), " "))
}

// cell holds one team's raw words for a row
type cell struct {
	word1 string
	word2 string
}

func (c cell) answered() bool {
	return strings.TrimSpace(c.word1) != "" && strings.TrimSpace(c.word2) != ""
}

// Scoreboard computes the full score matrix: models.NumRows entries per
// team, ordered by row then team number. Overrides and validations are
// honored only while the team's current answer still normalizes to the
// key they were recorded against.
func Scoreboard(numTeams int, answers []*models.Answer, overrides []*models.ScoreOverride, validations []*models.AnswerValidation) []*models.ScoreEntry {
	cells := collectCells(answers)

	entries := make([]*models.ScoreEntry, 0, models.NumRows*numTeams)
	for row := 0; row < models.NumRows; row++ {
		entries = append(entries, scoreRow(row, numTeams, cells[row])...)
	}

	applyOverrides(entries, overrides)
	applyValidations(entries, validations)

	return entries
}

// collectCells groups answers into per-row, per-team word pairs.
func collectCells(answers []*models.Answer) map[int]map[int]cell {
	cells := make(map[int]map[int]cell)
	for _, answer := range answers {
		teams := cells[answer.RowIndex]
		if teams == nil {
			teams = make(map[int]cell)
			cells[answer.RowIndex] = teams
		}

		c := teams[answer.TeamNumber]
		switch answer.Column {
		case models.ColumnFirstWord:
			c.word1 = answer.Text
		case models.ColumnSecondWord:
			c.word2 = answer.Text
		}
		teams[answer.TeamNumber] = c
	}
	return cells
}

// scoreRow classifies every team for one row.
func scoreRow(row, numTeams int, teams map[int]cell) []*models.ScoreEntry {
	keys := make(map[int]string, numTeams)
	answeredCount := 0

	for team := 1; team <= numTeams; team++ {
		if c, ok := teams[team]; ok && c.answered() {
			keys[team] = Normalize(c.word1, c.word2)
			answeredCount++
		}
	}

	entries := make([]*models.ScoreEntry, 0, numTeams)
	for team := 1; team <= numTeams; team++ {
		entry := &models.ScoreEntry{
			RowIndex:   row,
			TeamNumber: team,
			TeamName:   models.TeamName(team),
		}

		c := teams[team]
		entry.Word1 = c.word1
		entry.Word2 = c.word2

		key, answered := keys[team]
		if !answered {
			entry.Classification = models.ClassificationNoAnswer
			entry.Score = models.ScoreNoAnswer
			entries = append(entries, entry)
			continue
		}

		entry.Answered = true
		entry.Overridable = true

		shared := false
		for other, otherKey := range keys {
			if other != team && otherKey == key {
				shared = true
				break
			}
		}

		switch {
		case shared:
			entry.Classification = models.ClassificationSharedMatch
			entry.Score = models.ScoreSharedMatch
		case answeredCount == 1:
			entry.Classification = models.ClassificationSoleAnswer
			entry.Score = models.ScoreSoleAnswer
		default:
			entry.Classification = models.ClassificationUniqueButContested
			entry.Score = models.ScoreUniqueButContested
		}

		entries = append(entries, entry)
	}

	return entries
}

func applyOverrides(entries []*models.ScoreEntry, overrides []*models.ScoreOverride) {
	for _, override := range overrides {
		entry := find(entries, override.RowIndex, override.TeamNumber)
		if entry == nil || !entry.Answered {
			continue
		}
		if Normalize(entry.Word1, entry.Word2) != override.AnswerKey {
			continue
		}
		entry.Score = override.Score
	}
}

// applyValidations runs after overrides: a still-current invalid verdict
// forces the score to zero regardless of any prior override.
func applyValidations(entries []*models.ScoreEntry, validations []*models.AnswerValidation) {
	for _, validation := range validations {
		entry := find(entries, validation.RowIndex, validation.TeamNumber)
		if entry == nil || !entry.Answered {
			continue
		}
		if Normalize(entry.Word1, entry.Word2) != validation.AnswerKey {
			continue
		}

		entry.ValidationStatus = validation.Status
		entry.ValidationURL = validation.URL
		if validation.Status == models.ValidationStatusInvalid {
			entry.Score = models.ScoreNoAnswer
		}
	}
}

func find(entries []*models.ScoreEntry, row, team int) *models.ScoreEntry {
	for _, entry := range entries {
		if entry.RowIndex == row && entry.TeamNumber == team {
			return entry
		}
	}
	return nil
}

// TeamTotals sums each team's scores and sorts descending by total.
// Ties keep team-number order.
func TeamTotals(numTeams int, entries []*models.ScoreEntry) []*models.TeamTotal {
	totals := make([]*models.TeamTotal, numTeams)
	for team := 1; team <= numTeams; team++ {
		totals[team-1] = &models.TeamTotal{
			TeamNumber: team,
			TeamName:   models.TeamName(team),
		}
	}

	for _, entry := range entries {
		if entry.TeamNumber >= 1 && entry.TeamNumber <= numTeams {
			totals[entry.TeamNumber-1].Total += entry.Score
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return totals
}
