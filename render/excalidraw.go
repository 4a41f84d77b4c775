package render

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// IsExcalidrawFile reports whether path has an .excalidraw extension.
func IsExcalidrawFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".excalidraw")
}

// ValidateExcalidraw checks the structural marker: the content must be valid
// JSON with a top-level "type" of "excalidraw".
func ValidateExcalidraw(content string) bool {
	var doc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return false
	}
	return doc.Type == "excalidraw"
}

// RenderExcalidrawHTML generates a self-contained page that renders the scene
// read-only via the Excalidraw CDN bundle. The JSON is embedded in a
// <script type="application/json"> tag, so the only escaping needed is
// closing-tag sequences.
func RenderExcalidrawHTML(jsonContent string, dark bool) string {
	theme := "light"
	if dark {
		theme = "dark"
	}
	safeJSON := strings.ReplaceAll(jsonContent, "</script>", "<\\/script>")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>html, body, #root { margin: 0; height: 100%%; }</style>
<script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
<script src="https://unpkg.com/@excalidraw/excalidraw/dist/excalidraw.production.min.js"></script>
</head>
<body>
<div id="root"></div>
<script type="application/json" id="scene-data">%s</script>
<script>
const scene = JSON.parse(document.getElementById("scene-data").textContent);
const App = () => React.createElement(ExcalidrawLib.Excalidraw, {
    initialData: scene,
    viewModeEnabled: true,
    theme: "%s",
});
ReactDOM.createRoot(document.getElementById("root")).render(React.createElement(App));
</script>
</body>
</html>`, safeJSON, theme)
}
