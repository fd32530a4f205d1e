package eval

import (
	"fmt"

	"github.com/SmauRobert/SmartTest/internal/race"
	"github.com/SmauRobert/SmartTest/internal/textmatch"
)

// raceNameDistance is the edit-distance slack when matching the user's
// answer against the winning algorithm name.
const raceNameDistance = 3

// gradeRace runs the contenders, determines the real winner, and grades
// the user's pick against it. note is appended as closing commentary.
func gradeRace(contenders []race.Contender, ans, note string) *Result {
	outcomes := race.Run(contenders)
	winner, _ := race.Winner(outcomes)

	feedback := []string{
		fmt.Sprintf("The fastest algorithm for this instance was %s.", winner.Name),
		"",
		race.Report(outcomes),
	}
	if note != "" {
		feedback = append(feedback, "", note)
	}

	if textmatch.AreSimilar(ans, winner.Name, raceNameDistance) {
		return &Result{
			Score:     100,
			Feedback:  append([]string{"Correct!"}, feedback...),
			IsCorrect: true,
		}
	}
	return &Result{
		Score:    0,
		Feedback: append([]string{fmt.Sprintf("Your answer was '%s'.", ans)}, feedback...),
	}
}
