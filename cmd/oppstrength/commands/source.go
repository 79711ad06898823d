package commands

import (
	"errors"
	"fmt"
	"os"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/pipeline"
	"oppstrength/internal/selection"
	"oppstrength/internal/transfermarkt"
)

func resolveCompetition() (transfermarkt.Competition, error) {
	if *competition != "" {
		c, ok := transfermarkt.LookupCompetition(*competition)
		if !ok {
			return transfermarkt.Competition{}, fmt.Errorf("unknown competition %q", *competition)
		}
		return c, nil
	}

	prompt, err := selection.NewPrompt()
	if err != nil {
		return transfermarkt.Competition{}, err
	}
	defer prompt.Close()
	return selection.Select(prompt, os.Stdout)
}

func newSource(tel telemetry.API) (pipeline.Source, error) {
	if *listingFile != "" || *fixtureFile != "" {
		if *listingFile == "" || *fixtureFile == "" {
			return nil, errors.New("--listing and --fixtures must be given together")
		}
		return transfermarkt.FileSource{
			ParticipantsPath: *listingFile,
			FixturesPath:     *fixtureFile,
			Lenient:          cfg.Lenient,
			Tel:              tel,
		}, nil
	}

	opts, err := cfg.ClientOptions()
	if err != nil {
		return nil, err
	}
	client, err := transfermarkt.NewClient(opts, tel)
	if err != nil {
		return nil, err
	}
	return client, nil
}
