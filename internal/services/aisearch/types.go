package aisearch

// chatRequest is the OpenAI-style chat-completions request body
type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []tool        `json:"tools"`
	ToolChoice toolChoice    `json:"tool_choice"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type toolChoice struct {
	Type     string  `json:"type"`
	Function toolRef `json:"function"`
}

type toolRef struct {
	Name string `json:"name"`
}

// chatResponse keeps only the fields needed to find the tool call
type chatResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

type toolArguments struct {
	Games []toolGame `json:"games"`
}

// toolGame mirrors one entry of the tool's games array
type toolGame struct {
	BGGID         *float64 `json:"bggId"`
	Name          string   `json:"name"`
	YearPublished *float64 `json:"yearPublished"`
	MinPlayers    *float64 `json:"minPlayers"`
	MaxPlayers    *float64 `json:"maxPlayers"`
	PlayingTime   *float64 `json:"playingTime"`
	MinAge        *float64 `json:"minAge"`
	Description   *string  `json:"description"`
	Rating        *float64 `json:"rating"`
	Weight        *float64 `json:"weight"`
	Categories    []string `json:"categories"`
	Mechanics     []string `json:"mechanics"`
}

func number(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func text(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// searchTool describes the function the model is forced to call
func searchTool() tool {
	game := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"bggId":         number("BoardGameGeek ID"),
			"name":          text("Game name in English"),
			"yearPublished": number("Year published"),
			"minPlayers":    number("Minimum players"),
			"maxPlayers":    number("Maximum players"),
			"playingTime":   number("Average playing time in minutes"),
			"minAge":        number("Minimum recommended age"),
			"description":   text("Brief game description (1-2 sentences)"),
			"rating":        number("BGG average rating (1-10)"),
			"weight":        number("Complexity weight (1-5)"),
			"categories":    stringList("Game categories"),
			"mechanics":     stringList("Game mechanics"),
		},
		"required":             []string{"bggId", "name"},
		"additionalProperties": false,
	}

	return tool{
		Type: "function",
		Function: toolFunction{
			Name:        toolName,
			Description: "Return a list of board games matching the search query",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"games": map[string]any{"type": "array", "items": game},
				},
				"required":             []string{"games"},
				"additionalProperties": false,
			},
		},
	}
}
