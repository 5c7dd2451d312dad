package bundle

import (
	"bytes"
	"text/template"
)

var readmeTmpl = template.Must(template.New("README.md").Parse(`# {{.Name}}

This repository is the result of a proof-first engine that turns one written problem into tangible first-build infrastructure.

**System type:** {{.SystemType}}  
**Problem statement:** “{{.Problem}}”

## What this produces
- A deterministic (but type-shaped) system visualization
- A documented architecture boundary
- A static scaffold suitable for iteration
- Explicit assumptions and limitations

## What this does NOT mean (critical)
- Not production-ready
- Not security-audited
- Not compliance-validated
- No backend implied unless explicitly added

## Status
- Proof Engine
- v1.0-proof

![Status](https://img.shields.io/badge/status-v1.0--proof-success)

## Included files
{{- range .Files}}
- {{.}}
{{- end}}

## Run
Open static/index.html directly, or serve with:
- python -m http.server 8080

## Ownership
You control the outputs.`))

type readmeData struct {
	Name       string
	SystemType string
	Problem    string
	Files      []string
}

func renderReadme(d readmeData) string {
	var buf bytes.Buffer
	// The template only ranges over strings; execution cannot fail.
	_ = readmeTmpl.Execute(&buf, d)
	return buf.String()
}

const architectureDoc = `# System Boundary

Inside:
- Request intake
- Parsing and structuring
- Deterministic artifact generation (docs + scaffold + visualization)

Outside:
- Hosting environment
- Data sources unless explicitly provided
- External services unless explicitly integrated

# Flow
Input -> Logic -> Automation -> Output
Optional: State/Storage (explicit only)

# Non-goals
- Production claims
- Security guarantees
- Compliance guarantees`

const assumptionsDoc = `# Assumptions Disclosure (Explicit)

Rule:
- Anything not stated verbatim is unknown.

Assumption: The request can be represented as a typed template (type-shaped architecture)
Reason: Ensures the diagram is not the same shape for every request.

Assumption: Default delivery is a static scaffold
Reason: Tangible output without implying backend services

Unknowns:
- Scale targets
- Security requirements
- Compliance requirements
- Data quality/availability

If unknowns become required, state them explicitly and regenerate.`

const disclaimerDoc = `# Meaning and Limitations (Critical)

These generated files are a starting point.

They do NOT mean:
- Complete system
- Production readiness
- Security validation
- Compliance validation

Maturity promotion is explicit and evidence-based:
Static artifact -> Prototype -> Systemized application -> Production system.`
