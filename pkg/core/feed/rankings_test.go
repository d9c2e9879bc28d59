package feed

import "testing"

const rankingsDoc = `
<html><body>
<table>
  <tr><th>ID</th><th>Player</th><th>Dynasty</th><th>Redraft</th></tr>
  <tr><td>p100</td><td>Alpha WR</td><td>#8</td><td>12</td></tr>
  <tr><td> p200 </td><td>Beta RB</td><td>44</td><td>-</td></tr>
  <tr><td>p300</td><td>Gamma TE</td><td>-</td><td>-</td></tr>
  <tr><td></td><td>No ID</td><td>3</td><td>3</td></tr>
  <tr><td>p400</td><td>Short Row</td></tr>
</table>
</body></html>`

func TestParseRankingsHTML(t *testing.T) {
	overlays, err := ParseRankingsHTML(rankingsDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// Only the two rows with at least one parseable rank survive.
	if len(overlays) != 2 {
		t.Fatalf("got %d overlays, want 2: %v", len(overlays), overlays)
	}

	alpha := overlays["p100"]
	if alpha.DynastyRank == nil || *alpha.DynastyRank != 8 {
		t.Errorf("p100 dynasty = %v, want 8 (the # prefix strips)", alpha.DynastyRank)
	}
	if alpha.RedraftRank == nil || *alpha.RedraftRank != 12 {
		t.Errorf("p100 redraft = %v, want 12", alpha.RedraftRank)
	}

	beta := overlays["p200"]
	if beta.DynastyRank == nil || *beta.DynastyRank != 44 {
		t.Errorf("p200 dynasty = %v, want 44 (id whitespace trims)", beta.DynastyRank)
	}
	if beta.RedraftRank != nil {
		t.Errorf("p200 redraft = %v, want nil for a '-' cell", *beta.RedraftRank)
	}

	if _, ok := overlays["p300"]; ok {
		t.Error("row with no parseable rank should be skipped")
	}
	if _, ok := overlays["p400"]; ok {
		t.Error("short row should be skipped")
	}
}

func TestParseRankCell(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"#8", intPtr(8)},
		{"  15 ", intPtr(15)},
		{"-", nil},
		{"", nil},
		{"0", nil},
		{"-3", nil},
		{"abc", nil},
	}
	for _, tc := range cases {
		got := parseRankCell(tc.in)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("parseRankCell(%q) = %d, want nil", tc.in, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("parseRankCell(%q) = %v, want %d", tc.in, got, *tc.want)
		}
	}
}

func intPtr(i int) *int { return &i }
