package util

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", in: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", in: "2024-03-05T10:30:00Z", want: time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)},
		{name: "offset normalized to utc", in: "2024-03-05T10:30:00+02:00", want: time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)},
		{name: "millis", in: "2024-03-05T10:30:00.123Z", want: time.Date(2024, 3, 5, 10, 30, 0, 123e6, time.UTC)},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "bad month", in: "2024-13-01", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseISODateEndIsInclusiveForDates(t *testing.T) {
	got, err := ParseISODateEnd("2024-03-05")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 5, 23, 59, 59, 999e6, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = ParseISODateEnd("2024-03-05T10:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp bound was shifted: %v", got)
	}
}

func TestFormatISOMillis(t *testing.T) {
	in := time.Date(2024, 3, 5, 10, 30, 0, 0, time.FixedZone("x", 3600))
	if got := FormatISOMillis(in); got != "2024-03-05T09:30:00.000Z" {
		t.Errorf("got %s", got)
	}
}
