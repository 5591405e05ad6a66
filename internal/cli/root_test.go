package cli

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "empty means today", arg: "", want: "2024-03-01"},
		{name: "today", arg: "today", want: "2024-03-01"},
		{name: "keyword case", arg: "Today", want: "2024-03-01"},
		{name: "yesterday crosses leap day", arg: "yesterday", want: "2024-02-29"},
		{name: "tomorrow", arg: "tomorrow", want: "2024-03-02"},
		{name: "literal date", arg: "2023-12-31", want: "2023-12-31"},
		{name: "single digit month", arg: "2024-3-1", wantErr: true},
		{name: "impossible date", arg: "2023-02-30", wantErr: true},
		{name: "slashes", arg: "2024/03/01", wantErr: true},
		{name: "garbage", arg: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.arg, now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ResolveDate(%q) = %q, want error", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) returned unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestValidateHappiness(t *testing.T) {
	for _, h := range []int64{1, 5, 10} {
		if err := ValidateHappiness(h); err != nil {
			t.Errorf("ValidateHappiness(%d) returned unexpected error: %v", h, err)
		}
	}
	for _, h := range []int64{-1, 0, 11} {
		if err := ValidateHappiness(h); err == nil {
			t.Errorf("ValidateHappiness(%d) should fail", h)
		}
	}
}
