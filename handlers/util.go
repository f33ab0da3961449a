package handlers

import "strconv"

func parseID(s string, out *int64) error {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*out = id
	return nil
}
