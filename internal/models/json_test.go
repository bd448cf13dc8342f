package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-01-15", want: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2024-01-15T10:30:00Z", want: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)},
		{in: "2024-01-15T10:30:00+08:00", want: time.Date(2024, time.January, 15, 2, 30, 0, 0, time.UTC)},
		{in: "", wantErr: true},
		{in: "15/01/2024", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransaction_UnmarshalJSON(t *testing.T) {
	var tx Transaction
	if err := json.Unmarshal([]byte(`{"id":"t1","date":"2024-01-15","amount":20000,"type":"tuition"}`), &tx); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if tx.Status != StatusPosted {
		t.Errorf("Status = %q, want posted", tx.Status)
	}
	if tx.Amount.IntPart() != 20000 || tx.Type != TxTuition {
		t.Errorf("tx = %+v", tx)
	}

	// what the store and the exports write must read back
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back Transaction
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal of %s failed: %v", b, err)
	}
	if !back.Date.Equal(tx.Date) {
		t.Errorf("date = %v, want %v", back.Date, tx.Date)
	}

	if err := json.Unmarshal([]byte(`{"id":"t9","date":"yesterday","amount":1,"type":"misc"}`), &tx); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}

func TestEnrolledSubject_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body    string
		want    string
		wantErr bool
	}{
		{body: `{"code":"CS101","units":3,"grade":1.5,"status":"completed"}`, want: "1.5"},
		{body: `{"code":"CS101","units":3,"grade":2,"status":"completed"}`, want: "2"},
		{body: `{"code":"CS101","units":3,"grade":"INC","status":"completed"}`, want: "INC"},
		{body: `{"code":"CS101","units":3,"grade":null,"status":"enrolled"}`, want: ""},
		{body: `{"code":"CS101","units":3,"status":"enrolled"}`, want: ""},
		{body: `{"code":"CS101","units":3,"grade":true}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var s EnrolledSubject
			err := json.Unmarshal([]byte(tt.body), &s)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if s.Grade != tt.want || s.Code != "CS101" || s.Units != 3 {
				t.Errorf("got %+v, want grade %q", s, tt.want)
			}
		})
	}
}
