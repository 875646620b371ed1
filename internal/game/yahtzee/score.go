package yahtzee

import "strconv"

// Score is the result of scoring one category against one roll.
type Score int

// Int returns the score as a plain integer.
func (s Score) Int() int {
	return int(s)
}

func (s Score) String() string {
	return strconv.Itoa(int(s))
}
