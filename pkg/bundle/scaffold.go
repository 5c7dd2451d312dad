package bundle

import (
	"bytes"
	"html/template"
)

// The problem statement is the only user text in the page; html/template
// escapes it.
var indexTmpl = template.Must(template.New("index.html").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>{{.Name}}</title>
  <link rel="stylesheet" href="styles.css" />
</head>
<body>
  <div class="wrap">
    <h1>{{.Name}}</h1>
    <p class="muted"><strong>Problem:</strong> {{.Problem}}</p>

    <div class="card">
      <h2>System image</h2>
      <div class="img">
        <img src="../assets/system-image.svg" alt="System architecture visualization" style="width:100%;height:auto"/>
      </div>
      <p class="muted">Deterministic visualization suitable for architecture docs.</p>
    </div>

    <div class="card">
      <h2>Boundaries</h2>
      <ul class="muted">
        <li>No implied production readiness</li>
        <li>No implied security or compliance</li>
        <li>Anything not stated is unknown</li>
      </ul>
      <p class="muted">See README.md, architecture.md, assumptions.md, DISCLAIMER.md</p>
    </div>
  </div>
</body>
</html>`))

func renderIndex(name, problem string) (string, error) {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct{ Name, Problem string }{name, problem})
	return buf.String(), err
}

const stylesCSS = `:root{--bg0:#070b14;--bg1:#0b1220;--text:rgba(255,255,255,.92);--muted:rgba(255,255,255,.70);--border:rgba(255,255,255,.10);--shadow:0 16px 48px rgba(0,0,0,.45)}
*{box-sizing:border-box}html,body{height:100%}
body{margin:0;font-family:system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial;color:var(--text);
background:radial-gradient(900px 520px at 12% 8%, rgba(192,132,252,.18), transparent 60%),
radial-gradient(900px 520px at 82% 26%, rgba(92,200,255,.14), transparent 55%),
linear-gradient(180deg,var(--bg0),var(--bg1))}
.wrap{max-width:980px;margin:0 auto;padding:28px 18px}
.card{border:1px solid var(--border);background:rgba(255,255,255,.03);border-radius:18px;padding:16px;margin-top:14px;box-shadow:var(--shadow)}
.muted{color:var(--muted);line-height:1.55}
.img{border:1px dashed rgba(255,255,255,.18);border-radius:16px;padding:12px;background:rgba(0,0,0,.18)}`
