// Package mcpserver exposes the latest matchup as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/service"
)

// Matchups is the read side of the tracker.
type Matchups interface {
	Latest() (*service.Snapshot, error)
	FindPlayer(query string) ([]service.PlayerScore, error)
}

type SummaryArgs struct{}

type TopPerformersArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of performers (default 5)"`
}

type PlayerScoreArgs struct {
	Name string `json:"name" jsonschema:"Player name or part of it (required)"`
}

// Summary is the matchup_summary payload.
type Summary struct {
	RunID       string                `json:"run_id"`
	GeneratedAt string                `json:"generated_at"`
	Weekend     string                `json:"weekend"`
	Teams       []TeamTotal           `json:"teams"`
	Winner      string                `json:"winner,omitempty"`
	Margin      float64               `json:"margin"`
	Tie         bool                  `json:"tie"`
	Ingest      service.IngestSummary `json:"ingest"`
}

type TeamTotal struct {
	Name        string  `json:"name"`
	TotalPoints float64 `json:"total_points"`
}

// NewServer registers the matchup tools.
func NewServer(src Matchups, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nfl-playoff-tracker",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "matchup_summary",
		Description: "Team totals, winner and margin for the current matchup",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SummaryArgs) (*mcp.CallToolResult, any, error) {
		snap, err := src.Latest()
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(json.MarshalIndent(summarize(snap), "", "  "))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "top_performers",
		Description: "Highest scoring rostered players across both teams",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TopPerformersArgs) (*mcp.CallToolResult, any, error) {
		if args.Limit < 0 {
			return toolError(fmt.Errorf("limit must not be negative")), nil, nil
		}
		snap, err := src.Latest()
		if err != nil {
			return toolError(err), nil, nil
		}
		limit := args.Limit
		if limit == 0 {
			limit = matchup.DefaultTopN
		}
		rows := matchup.PerformerRows(matchup.Rank(snap.Result.Entries(), limit))
		return toolJSON(json.MarshalIndent(rows, "", "  "))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_score",
		Description: "Score and stat line of rostered players matching a name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerScoreArgs) (*mcp.CallToolResult, any, error) {
		if args.Name == "" {
			return toolError(fmt.Errorf("name is required")), nil, nil
		}
		found, err := src.FindPlayer(args.Name)
		if err != nil {
			return toolError(err), nil, nil
		}
		if len(found) == 0 {
			return toolError(fmt.Errorf("no rostered player matches %q", args.Name)), nil, nil
		}
		return toolJSON(json.MarshalIndent(found, "", "  "))
	})

	return server
}

// Handler serves server over streamable HTTP with JSON responses.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func summarize(snap *service.Snapshot) Summary {
	r := snap.Result
	outcome := r.Outcome()
	return Summary{
		RunID:       snap.RunID,
		GeneratedAt: snap.Document.GeneratedAt,
		Weekend:     r.Weekend,
		Teams: []TeamTotal{
			{Name: r.Team1.Name, TotalPoints: r.Team1.Total},
			{Name: r.Team2.Name, TotalPoints: r.Team2.Total},
		},
		Winner: outcome.Winner,
		Margin: outcome.Margin,
		Tie:    outcome.Tie,
		Ingest: snap.Ingest,
	}
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, service.ErrNotReady) {
		err = fmt.Errorf("%w; try again after the first refresh", err)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
