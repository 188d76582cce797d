package runner

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		arg  string
		want Mode
	}{
		{"odds", ModeOdds},
		{"standings", ModeStandings},
		{" ODDS ", ModeOdds},
		{"", ModeAll},
		{"all", ModeAll},
		{"weather", ModeAll},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.arg); got != tt.want {
			t.Fatalf("ParseMode(%q) = %s, want %s", tt.arg, got, tt.want)
		}
	}
}

func TestModeIncludes(t *testing.T) {
	if !ModeAll.includesOdds() || !ModeAll.includesStandings() {
		t.Fatalf("expected all to include both workflows")
	}
	if ModeOdds.includesStandings() || ModeStandings.includesOdds() {
		t.Fatalf("expected single modes to exclude the other workflow")
	}
}
