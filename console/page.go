package console

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
)

// Examples shown on the sketch page, from the original tool's landing page.
var Examples = []string{
	"電池と抵抗とLEDを直列に接続",
	"電源、抵抗、コンデンサの基本回路",
	"LEDとスイッチと電池の回路",
	"抵抗とコンデンサの並列回路",
	"インダクタと抵抗を含む回路",
}

// handleIndex serves the sketch page. When the templates directory is
// available the page renders through templar; otherwise the embedded page
// is served so the console works from any working directory.
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := map[string]any{
		"Title":    "Circuit Sketcher",
		"Examples": Examples,
	}

	var buf bytes.Buffer
	if err := ws.renderIndexTemplate(&buf, data); err != nil {
		slog.Debug("serving embedded index page", "reason", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(indexHTML))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// renderIndexTemplate renders into a buffer so a template failure can fall
// back to the embedded page before anything is written to the response.
// MustLoad panics on a missing template; that is translated to an error.
func (ws *WebServer) renderIndexTemplate(buf *bytes.Buffer, data map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("index template unavailable: %v", r)
		}
	}()
	templates := ws.templates.MustLoad("index.html", "")
	return ws.templates.RenderHtmlTemplate(buf, templates[0], "", data, nil)
}

// indexHTML is the embedded sketch page, kept in step with
// templates/index.html. The original tool served its page the same way,
// as an inline template constant.
const indexHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Circuit Sketcher</title>
  <style>
    body { font-family: Arial, sans-serif; max-width: 1200px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
    .container { background-color: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
    h1 { color: #333; text-align: center; }
    label { display: block; margin-bottom: 10px; font-weight: bold; color: #555; }
    textarea { width: 100%; height: 120px; padding: 10px; border: 1px solid #ddd; border-radius: 4px; font-size: 14px; resize: vertical; }
    button { background-color: #007bff; color: white; padding: 12px 24px; border: none; border-radius: 4px; cursor: pointer; font-size: 16px; margin-top: 10px; }
    button:hover { background-color: #0056b3; }
    button:disabled { background-color: #ccc; cursor: not-allowed; }
    .circuit-display { border: 1px solid #ddd; border-radius: 4px; padding: 20px; background-color: #fafafa; min-height: 200px; display: flex; align-items: center; justify-content: center; }
    .examples { background-color: #e9ecef; padding: 15px; border-radius: 4px; margin-top: 10px; }
    .error { color: #dc3545; background-color: #f8d7da; padding: 10px; border-radius: 4px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Circuit Sketcher</h1>
    <div class="input-section">
      <label for="description">Describe your circuit:</label>
      <textarea id="description" placeholder="例: 電池と抵抗とLEDを直列に接続した回路"></textarea>
      <button onclick="generateCircuit()">Generate</button>
      <div class="examples">
        <h3>Examples</h3>
        <ul>
          <li>電池と抵抗とLEDを直列に接続</li>
          <li>電源、抵抗、コンデンサの基本回路</li>
          <li>LEDとスイッチと電池の回路</li>
          <li>抵抗とコンデンサの並列回路</li>
          <li>インダクタと抵抗を含む回路</li>
        </ul>
      </div>
    </div>
    <div class="output-section">
      <h2>Schematic</h2>
      <div id="circuit-display" class="circuit-display">
        <p>Enter a description above and press Generate.</p>
      </div>
    </div>
  </div>
  <script>
    async function generateCircuit() {
      const description = document.getElementById('description').value;
      const displayDiv = document.getElementById('circuit-display');
      const button = document.querySelector('button');
      button.disabled = true;
      try {
        const response = await fetch('/api/generate', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify({ description: description })
        });
        if (!response.ok) {
          throw new Error('server returned ' + response.status);
        }
        const data = await response.json();
        displayDiv.innerHTML = data.svg;
      } catch (error) {
        displayDiv.innerHTML = '<p class="error">Error: ' + error.message + '</p>';
      } finally {
        button.disabled = false;
      }
    }
    document.getElementById('description').addEventListener('keypress', function(e) {
      if (e.key === 'Enter' && e.ctrlKey) {
        generateCircuit();
      }
    });
  </script>
</body>
</html>
`
