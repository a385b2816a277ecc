package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# DataPlatform configuration
version: "1.0"

ui:
  # Theme for the workspace: brand, high-contrast, minimal
  theme: brand
  # Width of the side panel in columns
  sidebar_width: 24
  # Draw the workspace on the alternate screen buffer
  alt_screen: true
  # Re-read the theme section when this file changes
  auto_reload: true

theme:
  # Brand palette (#RRGGBB, #RGB or ANSI color number)
  brand:
    yellow: "#F2C811"
    dark: "#333333"
    light: "#F3F2F1"
    border: "#EDEBE9"
  # Regions the palette applies to. Regions: welcome/title, welcome/action,
  # workspace/sidebar, workspace/heading, workspace/result,
  # workspace/action, footer/help
  content:
    - "welcome/*"
    - "workspace/*"

session:
  # Analysis result shown when the session starts
  initial_result: ""
  # File whose contents replace the analysis result whenever it changes
  result_file: ""
  # Quiet period before a changed file is re-read
  reload_debounce: 100ms

output:
  # Color output: auto, always, never
  color_mode: auto
  verbose: false
  # Log destination while the workspace is open (empty disables logging there)
  log_file: ""
  emoji: true
`
}

// MinimalSampleConfig returns a compact configuration with essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: brand
theme:
  content: ["welcome/*", "workspace/*"]
session:
  result_file: ""
`
}
