package supplier

import (
	"fmt"
	"testing"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/extract"
)

func TestBuildAssignsDenseSequentialIDs(t *testing.T) {
	t.Parallel()

	arts := []domain.CanonicalArticle{
		{Title: "one", Body: "a"},
		{Title: "two", Body: "b"},
		{Title: "three", Body: "c"},
	}

	for i, art := range arts {
		rec := Build(i, art, extract.Extraction{Supplier: "X", Location: "Y"}, nil, "Global", 0.6)
		want := fmt.Sprintf("S%03d", i+1)
		if rec.ID != want {
			t.Fatalf("record %d id = %s, want %s", i, rec.ID, want)
		}
	}
}

func TestBuildPopulatesRecord(t *testing.T) {
	t.Parallel()

	art := domain.CanonicalArticle{
		Title:       "Chip shortage deepens",
		Body:        "The semiconductor crunch continues.",
		PublishedAt: "2026-08-01T10:00:00Z",
	}
	coords := &domain.Coordinates{Lat: 25.03, Lng: 121.56}

	rec := Build(0, art, extract.Extraction{Supplier: "TSMC", Location: "Taiwan"}, coords, "Asia-Pacific", 0.75)

	if rec.Name != "TSMC" || rec.Location != "Taiwan" || rec.Region != "Asia-Pacific" {
		t.Fatalf("unexpected identity fields: %+v", rec)
	}
	if rec.RiskScore != 0.75 || rec.RiskLevel != domain.RiskHigh {
		t.Fatalf("risk level inconsistent with score: %+v", rec)
	}
	if rec.Category != CategoryElectronics {
		t.Fatalf("unexpected category: %s", rec.Category)
	}
	if rec.RecentNews != art.Title || rec.LastUpdated != art.PublishedAt {
		t.Fatalf("headline/timestamp not copied: %+v", rec)
	}
	if rec.Trend != "increasing" {
		t.Fatalf("unexpected trend: %s", rec.Trend)
	}
	if rec.Lat == nil || rec.Lng == nil || *rec.Lat != 25.03 || *rec.Lng != 121.56 {
		t.Fatalf("coordinates not copied: %+v", rec)
	}
	if rec.LLMSummary != nil {
		t.Fatal("summary must be absent before the summarizer stage")
	}
}

func TestBuildWithoutCoordinates(t *testing.T) {
	t.Parallel()

	rec := Build(4, domain.CanonicalArticle{Title: "t", Body: "b"}, extract.Extraction{Supplier: domain.UnknownSupplier, Location: domain.UnknownLocation}, nil, domain.RegionGlobal, 0.9)

	if rec.Lat != nil || rec.Lng != nil {
		t.Fatalf("expected absent coordinates: %+v", rec)
	}
	if rec.ID != "S005" {
		t.Fatalf("unexpected id: %s", rec.ID)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"New CHIP factory announced", CategoryElectronics},
		{"Semiconductor exports fall", CategoryElectronics},
		{"Wheat prices spike", CategoryGeneral},
		{"", CategoryGeneral},
	}

	for _, tc := range cases {
		if got := Classify(tc.text); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}
