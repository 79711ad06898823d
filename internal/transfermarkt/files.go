package transfermarkt

import (
	"context"
	"fmt"
	"os"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/strength"

	"github.com/PuerkitoBio/goquery"
)

// FileSource reads previously saved participants and fixtures pages instead of
// fetching them, the competition passed to its methods is ignored.
type FileSource struct {
	ParticipantsPath string
	FixturesPath     string
	Lenient          bool

	Tel telemetry.API
}

func readDocument(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return goquery.NewDocumentFromReader(f)
}

func (s FileSource) Valuations(_ context.Context, _ Competition) (strength.TeamValuation, error) {
	doc, err := readDocument(s.ParticipantsPath)
	if err != nil {
		return nil, fmt.Errorf("transfermarkt: read participants: %w", err)
	}
	return ParseValuations(doc, s.Lenient, s.Tel)
}

func (s FileSource) Fixtures(_ context.Context, _ Competition) (*strength.OpponentMap, error) {
	doc, err := readDocument(s.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("transfermarkt: read fixtures: %w", err)
	}
	return ParseFixtures(doc, s.Tel), nil
}
