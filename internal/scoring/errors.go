package scoring

import (
	"errors"
	"fmt"
)

// ErrInvalidOptionIndex is matched by every *InvalidOptionError.
var ErrInvalidOptionIndex = errors.New("option index out of range")

// InvalidOptionError reports an answer whose option index does not exist
// for the referenced question.
type InvalidOptionError struct {
	QuestionID string
	Index      int
	Options    int
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("question %s: option index %d out of range [0, %d)", e.QuestionID, e.Index, e.Options)
}

func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOptionIndex
}
