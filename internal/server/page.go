package server

import (
	"html/template"
	"net/http"

	"github.com/footprintcalc/embedkit/internal/logging"
)

// pageTemplate renders the embed documentation page. Each snippet gets a code
// block, a copy button, and a hidden confirmation element named
// "<id>-notification". The script keeps one pending hide timer per
// notification: re-copying clears the old timer so the confirmation stays up
// for a full two seconds from the latest click.
var pageTemplate = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Embed the Carbon Footprint Calculator</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
  h1 { font-size: 1.6rem; }
  section { margin: 2rem 0; }
  pre { background: #f4f4f8; border: 1px solid #ddd; border-radius: 6px; padding: 1rem; overflow-x: auto; }
  button.copy { margin-top: .5rem; padding: .4rem 1rem; border: none; border-radius: 4px; background: #2e7d32; color: #fff; cursor: pointer; }
  button.copy:hover { background: #1b5e20; }
  .notification { display: none; margin-left: .75rem; color: #2e7d32; font-weight: 600; }
  .notification.visible { display: inline; }
</style>
</head>
<body>
<h1>Embed the Carbon Footprint Calculator</h1>
<p>Copy any of the snippets below into your website to embed the calculator.</p>
{{range .Snippets}}
<section>
  <h2>{{.Title}}</h2>
  <p>{{.Description}}</p>
  <pre><code id="{{.ID}}">{{.Content}}</code></pre>
  <button class="copy" onclick="copyToClipboard('{{.ID}}')">Copy code</button>
  <span class="notification" id="{{.ID}}-notification">Copied!</span>
</section>
{{end}}
<script>
var hideTimers = {};
function copyToClipboard(id) {
  var text = document.getElementById(id).textContent;
  navigator.clipboard.writeText(text).then(function () {
    var note = document.getElementById(id + '-notification');
    note.classList.add('visible');
    if (hideTimers[id]) {
      clearTimeout(hideTimers[id]);
    }
    hideTimers[id] = setTimeout(function () {
      note.classList.remove('visible');
      delete hideTimers[id];
    }, 2000);
  });
}
</script>
</body>
</html>
`))

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Snippets []struct {
			ID, Title, Description, Content string
		}
	}{}
	for _, sn := range s.catalog.All() {
		data.Snippets = append(data.Snippets, struct {
			ID, Title, Description, Content string
		}{sn.ID, sn.Title, sn.Description, sn.Content})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		logging.Error("render embed page: %v", err)
	}
}
