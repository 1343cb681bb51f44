package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gridgames/samegame/game/engine"
	"github.com/gridgames/samegame/game/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"SameGame",
		"2.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`SameGame - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Clear the grid of colored tiles. Click a group of two or more adjacent
same-colored tiles to select it, then validate to remove it. Removing a
group of n tiles scores (n-2) squared points, so large groups pay far
better than pairs.

AVAILABLE TOOLS:
- game_state: Get the current grid and score
- select_tiles: Preview a group selection at (row, col) - requires intent explanation
- validate_move: Commit the cached selection and collect the points
- hint: Find the highest-scoring move on the grid
- new_game: Start a fresh round, optionally switching difficulty
- reset_game: Reset the current round
- scoreboard: Show recorded wins, best first
- clear_scoreboard: Wipe the scoreboard
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_rules: Get the variant rules text
- game_instructions: Get comprehensive game instructions and strategy
- describe_tile: Get detailed info about a specific grid tile

NOTE: The 'intent' parameter on select_tiles serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "select_tiles",
		Description: "Preview a group selection at grid coordinates. The group is cached, not removed; call validate_move to commit it. Selecting a lone tile silently clears the selection.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the tile to select (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the tile to select (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this selection (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleSelect)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_move",
		Description: "Commit the cached selection: remove the tiles, apply the pending score and settle the round outcome",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleValidate)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "hint",
		Description: "Find the highest-scoring move on the current grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHint)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a fresh round, optionally switching difficulty (easy, medium, hard)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"easy", "medium", "hard"},
					"description": "Difficulty for the new round (optional)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNewGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"easy", "medium", "hard"},
					"description": "Difficulty for the reset round (optional)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "scoreboard",
		Description: "Show recorded wins, best score first",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleScoreboard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "clear_scoreboard",
		Description: "Remove every entry from the scoreboard",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleClearScoreboard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the variant rules text for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameRules)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and strategy",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_tile",
		Description: "Get detailed information about a specific tile in the grid: its color value, whether it is part of the cached selection and how large its connected group is.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the tile to describe (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the tile to describe (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeTile)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state service.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"row": row,
		"col": col,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/select", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/validate", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.HintResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/hint", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatHintResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	difficulty, _ := args["difficulty"].(string)

	body := map[string]string{}
	if difficulty != "" {
		body["difficulty"] = difficulty
	}

	var response struct {
		Message string             `json:"message"`
		State   *service.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/new-game", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	difficulty, _ := args["difficulty"].(string)

	body := map[string]string{}
	if difficulty != "" {
		body["difficulty"] = difficulty
	}

	var response struct {
		Message string             `json:"message"`
		State   *service.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleScoreboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count  int                  `json:"count"`
		Scores []service.ScoreEntry `json:"scores"`
	}

	err := c.apiCall("GET", "/api/scoreboard", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No scores recorded yet. Win a round to get on the board!"), nil
	}

	result := fmt.Sprintf("High Scores (%d):\n\n", response.Count)
	for i, entry := range response.Scores {
		result += fmt.Sprintf("%d. %s — %d points (%s)\n",
			i+1, entry.Name, entry.Score, entry.Difficulty)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleClearScoreboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := c.apiCall("DELETE", "/api/scoreboard", nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Scoreboard cleared."), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Grid: %dx%d\n\n",
			config.Name, config.Description, config.GridHeight, config.GridWidth)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Rules string `json:"rules"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/rules", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response.Rules), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 SameGame - Complete Instructions

GAME OBJECTIVE:
Clear the grid. Tiles come in a small set of colors, shown as digits.
Adjacent same-colored tiles (up/down/left/right, no diagonals) form
groups. Remove groups; empty the grid to win.

GAME MECHANICS:
• Selection: select_tiles at (row, col) caches the whole connected group
• Commitment: validate_move removes the cached group and scores it
• Scoring: removing n tiles scores (n-2)² points; pairs score 0
• Compaction: after removal, tiles slide left within their row and
  emptied rows are dropped, so coordinates SHIFT after every move
• Victory: remove every tile from the grid
• Game over: no group of two or more adjacent same-colored tiles remains

GRID DISPLAY:
• Digits 0-7 - tile color classes
• [n] - tile is part of the cached selection
• Rows are jagged after removals: shorter rows are normal late in a round

🤖 AI AGENTS - SUCCESS STRATEGIES:

⚠️ COORDINATE FRESHNESS (MOST COMMON FAILURE POINT):
The grid compacts after EVERY committed move. Coordinates from a previous
game_state response are stale the moment validate_move succeeds.

1. **Always re-read state**: call game_state (or read the state returned
   by validate_move) before choosing the next selection
2. **Never replay coordinates**: a tile that was at (3,5) is probably
   somewhere else now, or gone
3. **Lone tiles are silent**: selecting a lone tile clears the selection
   with no error; check selected_count in the response

🎯 SCORING STRATEGY:
- (n-2)² rewards LARGE groups: a 10-group scores 64, five pairs score 0
- Work the board to merge same-colored regions before removing them
- Remove small separating groups first so large regions can connect
- A greedy hint-following strategy clears boards but rarely maximizes score

🧩 ENDGAME AWARENESS:
- The round ends the moment no valid group remains, win or lose
- Count remaining colors: isolated singles can never be removed
- Use hint to check whether any move remains before committing a plan

🔄 ITERATIVE LOOP:
1. game_state: read the fresh grid
2. select_tiles: preview a group and its pending score
3. validate_move: commit, read the new grid from the response
4. Repeat; use hint when stuck

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Wins are recorded on the shared scoreboard automatically

DIFFICULTY LEVELS:
- easy: 2 colors, groups are everywhere
- medium: 3 colors, the default
- hard: 4 colors, isolated tiles are a real danger

Remember: re-read the grid after every committed move, favor big groups
over quick pairs, and watch for the dead-board condition. Good luck! 🟦🟥🟩`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	// Get the current game state to access the grid
	var state service.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Check bounds against the jagged grid
	if row < 0 || row >= len(state.Grid) {
		return mcp.NewToolResultError(fmt.Sprintf("Row %d is out of bounds. Grid currently has %d rows (0-%d)",
			row, len(state.Grid), len(state.Grid)-1)), nil
	}
	if col < 0 || col >= len(state.Grid[row]) {
		return mcp.NewToolResultError(fmt.Sprintf("Column %d is out of bounds. Row %d currently has %d tiles (0-%d)",
			col, row, len(state.Grid[row]), len(state.Grid[row])-1)), nil
	}

	tile := state.Grid[row][col]
	groupSize := connectedGroupSize(state.Grid, row, col)

	selectedNote := "not part of the cached selection"
	if tile.Selected {
		selectedNote = "part of the cached selection (validate_move will remove it)"
	}

	removable := "NOT removable on its own"
	pending := 0
	if groupSize >= 2 {
		removable = "removable"
		if groupSize > 2 {
			pending = (groupSize - 2) * (groupSize - 2)
		}
	}

	result := fmt.Sprintf(`Tile at position (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
Color value: %d
Selected: %s
Connected group size: %d (%s)
Score if removed: %d

Groups connect up/down/left/right only; diagonals do not count.
Remember that coordinates shift after every committed move.`,
		row, col,
		tile.Value,
		selectedNote,
		groupSize, removable,
		pending)

	return mcp.NewToolResultText(result), nil
}

// connectedGroupSize counts the same-colored tiles reachable from (row,col)
// on a jagged grid without mutating it.
func connectedGroupSize(grid [][]engine.Tile, row, col int) int {
	type pos struct{ r, c int }
	target := grid[row][col].Value
	seen := map[pos]bool{{row, col}: true}
	stack := []pos{{row, col}}
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, n := range []pos{{p.r - 1, p.c}, {p.r + 1, p.c}, {p.r, p.c - 1}, {p.r, p.c + 1}} {
			if n.r < 0 || n.r >= len(grid) || n.c < 0 || n.c >= len(grid[n.r]) {
				continue
			}
			if seen[n] || grid[n.r][n.c].Value != target {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return count
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *service.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header
	result.WriteString(fmt.Sprintf("Score: %d | Pending: %d | Difficulty: %s | State: %s\n",
		state.Score, state.PendingIncrement, state.Difficulty, state.State))
	if state.SelectedCount > 0 {
		result.WriteString(fmt.Sprintf("Selected: %d tiles\n", state.SelectedCount))
	}
	if state.BestMove != nil {
		result.WriteString(fmt.Sprintf("Best move: (%d,%d)\n", state.BestMove.Row, state.BestMove.Col))
	}
	result.WriteString("\n")

	// Grid: digits for color values, brackets around the cached selection
	if len(state.Grid) == 0 {
		result.WriteString("(grid is empty)\n")
	}
	for _, row := range state.Grid {
		for _, tile := range row {
			if tile.Selected {
				result.WriteString(fmt.Sprintf("[%d]", tile.Value))
			} else {
				result.WriteString(fmt.Sprintf(" %d ", tile.Value))
			}
		}
		result.WriteString("\n")
	}

	// Status
	switch state.State {
	case engine.Won:
		result.WriteString("\n🎉 VICTORY!")
	case engine.Lost:
		result.WriteString("\n💀 GAME OVER")
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = "✗ Move failed\n"
	}

	if result.Message != "" {
		response += fmt.Sprintf("Message: %s\n", strings.TrimRight(result.Message, "\n"))
	}
	if result.SelectedCount > 0 {
		response += fmt.Sprintf("Selection: %d tiles, pending score %d\n",
			result.SelectedCount, result.PendingIncrement)
	}
	if result.ScoreDelta > 0 {
		response += fmt.Sprintf("Scored: +%d\n", result.ScoreDelta)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			msg := strings.TrimRight(event.Message, "\n")
			if msg != "" {
				response += fmt.Sprintf("- %s: %s\n", event.Type, msg)
			} else {
				response += fmt.Sprintf("- %s\n", event.Type)
			}
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatHintResult(result *service.HintResult) string {
	if !result.Found {
		return "No move available: the grid has no group of two or more adjacent same-colored tiles.\n\n" +
			formatGameState(result.GameState)
	}

	return fmt.Sprintf("Best move: select (%d,%d) for %d points\n\n%s",
		result.Move.Row, result.Move.Col, result.PendingIncrement,
		formatGameState(result.GameState))
}
