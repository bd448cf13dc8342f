package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// dateLayouts are the accepted forms of a transaction date: full timestamps
// and bare calendar dates such as "2024-01-15".
var dateLayouts = []string{time.RFC3339Nano, time.DateOnly}

// ParseDate parses a transaction date. Calendar dates are taken as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
}

// UnmarshalJSON accepts calendar dates as well as timestamps, and treats a
// missing status as posted.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	type plain Transaction
	aux := struct {
		*plain
		Date string `json:"date"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	date, err := ParseDate(aux.Date)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	t.Date = date
	if t.Status == "" {
		t.Status = StatusPosted
	}
	return nil
}

// UnmarshalJSON accepts a grade written as a number (1.5) or as text ("INC").
func (s *EnrolledSubject) UnmarshalJSON(b []byte) error {
	type plain EnrolledSubject
	aux := struct {
		*plain
		Grade json.RawMessage `json:"grade,omitempty"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Grade)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		s.Grade = ""
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &s.Grade); err != nil {
			return fmt.Errorf("subject %s: grade: %w", s.Code, err)
		}
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return fmt.Errorf("subject %s: grade %s is neither text nor a number", s.Code, raw)
		}
		s.Grade = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return nil
}
