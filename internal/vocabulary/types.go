package vocabulary

// Config is the root of vocabulary.toml.
type Config struct {
	App         App         `toml:"app" json:"app"`
	Executables Executables `toml:"executables" json:"executables"`
	MCPTools    MCPTools    `toml:"mcp_tools" json:"mcp_tools"`
	Actions     Actions     `toml:"actions" json:"actions"`
}

// App holds the application identity.
type App struct {
	NameLocalized string `toml:"name_zh" json:"name_zh"`
	NameEnglish   string `toml:"name_en" json:"name_en"`
	Description   string `toml:"description" json:"description"`
}

// Executables holds binary names. They are expected to match the [[bin]]
// declarations of the build manifest.
type Executables struct {
	GUIName       string `toml:"gui_name" json:"gui_name"`
	MCPServerName string `toml:"mcp_server_name" json:"mcp_server_name"`
}

// MCPTools holds the three tools exposed over MCP, keyed by role.
type MCPTools struct {
	Interaction Tool `toml:"interaction" json:"interaction"`
	Memory      Tool `toml:"memory" json:"memory"`
	Search      Tool `toml:"search" json:"search"`
}

// Tool describes one MCP tool.
type Tool struct {
	ID          string `toml:"id" json:"id"`                   // protocol-facing identifier
	Name        string `toml:"name" json:"name"`               // label shown to users
	Description string `toml:"description" json:"description"`
}

// Actions holds action-verb labels.
type Actions struct {
	MemoryAdd    string `toml:"memory_add" json:"memory_add"`
	MemoryRecall string `toml:"memory_recall" json:"memory_recall"`
}

// Source is a loaded configuration together with the bytes it came from.
type Source struct {
	Path   string
	Raw    []byte
	Digest string // hex SHA-256 of Raw
	Config *Config

	// Document is the whole parsed file, including tables Config does not
	// model.
	Document map[string]interface{}
}

// DefaultFileName is the conventional config file name at the project root.
const DefaultFileName = "vocabulary.toml"
