package review

import "fmt"

// Score is the user's recall grade for an answered sentence.
type Score int

const (
	Hard Score = iota + 1
	Good
	Easy
)

func (s Score) String() string {
	switch s {
	case Hard:
		return "Hard"
	case Good:
		return "Good"
	case Easy:
		return "Easy"
	}
	return fmt.Sprintf("Score(%d)", int(s))
}

// ParseScore converts interactive answer input into a Score. Anything
// but "1", "2" or "3" is rejected.
func ParseScore(input string) (Score, error) {
	switch input {
	case "1":
		return Hard, nil
	case "2":
		return Good, nil
	case "3":
		return Easy, nil
	}
	return 0, fmt.Errorf("score %q is not one of 1, 2 or 3", input)
}
