package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cap_valuation/pkg/models"
)

// ParseRankingsHTML extracts ranking overlays from an HTML rankings export.
// Expected table shape: one row per player with cells
// [player id, player name, dynasty rank, redraft rank]. Rows with an empty
// id or no parseable rank are skipped rather than failing the document.
func ParseRankingsHTML(html string) (models.RankOverlays, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("rankings html: %w", err)
	}

	overlays := make(models.RankOverlays)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return // Header or malformed row
		}

		id := strings.TrimSpace(cells.Eq(0).Text())
		if id == "" {
			return
		}

		overlay := models.RankOverlay{
			DynastyRank: parseRankCell(cells.Eq(2).Text()),
			RedraftRank: parseRankCell(cells.Eq(3).Text()),
		}
		if overlay.DynastyRank == nil && overlay.RedraftRank == nil {
			return
		}
		overlays[id] = overlay
	})

	return overlays, nil
}

// parseRankCell reads a rank number from a table cell. Sites decorate ranks
// with "#" prefixes and whitespace; unparseable cells read as unranked.
func parseRankCell(text string) *int {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "#")
	if s == "" || s == "-" {
		return nil
	}
	rank, err := strconv.Atoi(s)
	if err != nil || rank <= 0 {
		return nil
	}
	return &rank
}
