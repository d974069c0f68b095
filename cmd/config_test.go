package cmd

import "testing"

func TestParseHourRange(t *testing.T) {
	start, end, err := parseHourRange("8-21")
	if err != nil {
		t.Fatalf("parseHourRange failed: %v", err)
	}
	if start != 8 || end != 21 {
		t.Errorf("expected 8-21, got %d-%d", start, end)
	}

	for _, bad := range []string{"8", "a-21", "8-b", "21-8", "0-25"} {
		if _, _, err := parseHourRange(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
