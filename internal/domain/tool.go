package domain

const ContentTypeText = "text"

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult é o envelope devolvido por toda ferramenta, inclusive em caso de erro
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

func NewTextResult(text string) *ToolResult {
	return &ToolResult{Content: []Content{{Type: ContentTypeText, Text: text}}}
}

func NewErrorResult(message string) *ToolResult {
	return &ToolResult{
		Content: []Content{{Type: ContentTypeText, Text: "Error: " + message}},
		IsError: true,
	}
}

type ToolArgument struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Arguments   []ToolArgument `json:"arguments"`
}
