package options

import (
	"fmt"
	"strconv"
)

// ParseIDs converts entry id arguments.
func ParseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid entry id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
