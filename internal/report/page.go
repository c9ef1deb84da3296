package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
)

//go:embed templates/standings.html
var templateFS embed.FS

var standingsTemplate = template.Must(template.ParseFS(templateFS, "templates/standings.html"))

type pageData struct {
	Doc    matchup.Document
	Teams  map[string]matchup.TeamDocument
	Winner string
}

// WritePage renders the standings page for doc.
func WritePage(w io.Writer, doc matchup.Document) error {
	data := pageData{
		Doc: doc,
		Teams: map[string]matchup.TeamDocument{
			"team1": doc.Team1,
			"team2": doc.Team2,
		},
		Winner: winnerLine(doc),
	}
	if err := standingsTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render standings: %w", err)
	}
	return nil
}

func winnerLine(doc matchup.Document) string {
	t1, t2 := doc.Team1, doc.Team2
	switch {
	case t1.TotalPoints > t2.TotalPoints:
		return fmt.Sprintf("%s WINS by %.2f points!", t1.Name, t1.TotalPoints-t2.TotalPoints)
	case t2.TotalPoints > t1.TotalPoints:
		return fmt.Sprintf("%s WINS by %.2f points!", t2.Name, t2.TotalPoints-t1.TotalPoints)
	default:
		return "TIE GAME!"
	}
}
