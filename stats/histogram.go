package stats

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Histogram represents counts with integer keys
type Histogram map[int]uint64

// Update updates all counts from another Histogram instance.
func (h Histogram) Update(other Histogram) {
	for k, v := range other {
		h[k] += v
	}
}

// Total returns the sum of all counts in the Histogram
func (h Histogram) Total() (sum uint64) {
	for _, v := range h {
		sum += v
	}
	return
}

// MarshalJSON returns a JSON representation of a Histogram, numerically sorting the keys.
func (h Histogram) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	var keys []int
	for k := range h {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, "\"%d\":%d", k, h[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parse a JSON representation of a Histogram.
func (h *Histogram) UnmarshalJSON(b []byte) (err error) {
	smap, imap := make(map[string]uint64), Histogram{}
	if err = json.Unmarshal(b, &smap); err == nil {
		for key, value := range smap {
			// JSON objects have string key - need to convert to int
			if intKey, err := strconv.Atoi(key); err == nil {
				imap[intKey] = value
			}
		}
		*h = imap
	}
	return
}
