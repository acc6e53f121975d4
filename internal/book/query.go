package book

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseFilter builds a Filter from list query parameters.
//
// reading and finished accept "1" or "true" for true and "0" or "false" for
// false; an empty value is treated as absent. Any other value is an error.
// name is matched as a case-insensitive substring.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter
	var err error

	if f.Reading, err = parseFlag(q, "reading"); err != nil {
		return Filter{}, err
	}
	if f.Finished, err = parseFlag(q, "finished"); err != nil {
		return Filter{}, err
	}
	f.Name = q.Get("name")
	return f, nil
}

func parseFlag(q url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	var v bool
	switch strings.ToLower(raw) {
	case "":
		return nil, nil
	case "1", "true":
		v = true
	case "0", "false":
		v = false
	default:
		return nil, fmt.Errorf("%s: unrecognized value %q", key, raw)
	}
	return &v, nil
}
