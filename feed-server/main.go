package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/dylanscardvault/sleeper-feed/internal/config"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ServerConfig struct {
	DataRoot    string
	SnapshotRel string
	PlayersRel  string
	Caps        config.Config
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		dataRoot    = flag.String("data-root", "data/sleeper", "root directory for cached Sleeper JSON")
		snapshot    = flag.String("snapshot", "latest.json", "snapshot file relative to data root")
		players     = flag.String("players", "players.json", "optional players file relative to data root")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via SLEEPER_FEED_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	cfg := ServerConfig{
		DataRoot:    *dataRoot,
		SnapshotRel: *snapshot,
		PlayersRel:  *players,
		Caps:        config.Default(),
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sleeper-feed",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_digest",
		Description: "Rendered text digest for the cached league snapshot",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DigestArgs) (*mcp.CallToolResult, any, error) {
		text, err := buildDigestText(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(text), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "matchups",
		Description: "Paired matchups with resolved team names and margin classification",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MatchupsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMatchupsOutput(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "standings",
		Description: "League standings from roster records",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StandingsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildStandingsOutput(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "trending",
		Description: "League-wide trending adds and drops with player labels",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TrendingArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTrendingOutput(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_lookup",
		Description: "Resolve a roster id to its display name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamLookupArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamLookup(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("SLEEPER_FEED_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("SLEEPER_FEED_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.Printf("MCP HTTP server listening on %s%s", *addr, *mcpPath)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
