package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a day-precision timestamp with a lenient JSON codec, used for
// release dates coming from forms.
type Date struct {
	time.Time
}

// releaseDateLayouts lists the accepted input forms, tried in order. Forms
// submit plain dates; RFC 3339 covers clients that send full timestamps.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("release date must be a string: %w", err)
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unrecognized release date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}

	return json.Marshal(d.Time.Format("2006-01-02"))
}
