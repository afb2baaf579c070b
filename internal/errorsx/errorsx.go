package errorsx

import (
	"fmt"
	"log"
)

// Compact returns the first error in the set, if any.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// MaybeLog logs if an error occurred.
func MaybeLog(err error) error {
	if err == nil {
		return err
	}

	log.Output(2, fmt.Sprintln(err))
	return err
}
