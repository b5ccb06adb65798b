package models

import (
	"fmt"
)

// natoAlphabet provides the display names for teams 1..26.
var natoAlphabet = [NumRows]string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel",
	"India", "Juliet", "Kilo", "Lima", "Mike", "November", "Oscar", "Papa",
	"Quebec", "Romeo", "Sierra", "Tango", "Uniform", "Victor", "Whiskey",
	"X-ray", "Yankee", "Zulu",
}

// TeamName returns the display name for a 1-based team number.
func TeamName(teamNumber int) string {
	if teamNumber < 1 || teamNumber > NumRows {
		return fmt.Sprintf("Team %d", teamNumber)
	}
	return natoAlphabet[teamNumber-1]
}
