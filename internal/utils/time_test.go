package utils

import (
	"testing"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty is local", timezone: ""},
		{name: "Local", timezone: "Local"},
		{name: "UTC", timezone: "UTC"},
		{name: "IANA name", timezone: "America/New_York"},
		{name: "invalid", timezone: "Mars/Olympus_Mons", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if ValidateTimezone(tt.timezone) == tt.wantErr {
				t.Errorf("ValidateTimezone(%q) disagrees with LoadLocation", tt.timezone)
			}
		})
	}
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2026, 10, 13, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		want    models.Day
		wantErr bool
	}{
		{input: "", want: "2026-10-13"},
		{input: "today", want: "2026-10-13"},
		{input: "yesterday", want: "2026-10-12"},
		{input: "tomorrow", want: "2026-10-14"},
		{input: "+30", want: "2026-11-12"},
		{input: "-2", want: "2026-10-11"},
		{input: "2027-01-05", want: "2027-01-05"},
		{input: "+3x", wantErr: true},
		{input: "13/10/2026", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveDay(tt.input, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
