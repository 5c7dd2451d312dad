package server

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/proofgen/pkg/buildinfo"
	"github.com/matzehuels/proofgen/pkg/bundle"
	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/errors"
	"github.com/matzehuels/proofgen/pkg/pipeline"
	"github.com/matzehuels/proofgen/pkg/session"
)

type generateRequest struct {
	SystemType  string   `json:"system_type"`
	Problem     string   `json:"problem"`
	Formats     []string `json:"formats,omitempty"`
	PromptStyle string   `json:"prompt_style,omitempty"`
}

type fileEntry struct {
	Path string `json:"path"`
	Size int    `json:"size"`
	URL  string `json:"url"`
}

type bundleResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ZipName        string            `json:"zip_name"`
	SystemType     string            `json:"system_type"`
	Problem        string            `json:"problem"`
	Title          string            `json:"title"`
	Archetype      archetype.Kind    `json:"archetype"`
	Accent         string            `json:"accent"`
	Prompt         string            `json:"prompt"`
	NegativePrompt string            `json:"negative_prompt"`
	SVG            string            `json:"svg"`
	Files          []fileEntry       `json:"files"`
	Artifacts      map[string]string `json:"artifacts"`
	Concat         string            `json:"concat,omitempty"`
	Cached         bool              `json:"cached"`
	CreatedAt      time.Time         `json:"created_at"`
	ExpiresAt      time.Time         `json:"expires_at"`
}

func (s *Server) summarize(rec *record, withConcat bool) bundleResponse {
	res := rec.Result
	base := "/api/bundles/" + rec.ID
	resp := bundleResponse{
		ID:             rec.ID,
		Name:           res.Bundle.Name,
		ZipName:        res.Bundle.ZipName(),
		SystemType:     res.Input.SystemType,
		Problem:        res.Input.Problem,
		Title:          res.Title,
		Archetype:      res.Kind,
		Accent:         res.Accent,
		Prompt:         res.Prompt,
		NegativePrompt: bundle.NegativePrompt,
		SVG:            string(res.Diagram.SVG),
		Artifacts:      make(map[string]string, len(res.Artifacts)),
		Cached:         res.CacheInfo.RenderHit && res.CacheInfo.BundleHit,
		CreatedAt:      rec.CreatedAt,
		ExpiresAt:      rec.CreatedAt.Add(s.cfg.ResultTTL),
	}
	for _, f := range res.Bundle.Files {
		resp.Files = append(resp.Files, fileEntry{
			Path: f.Path,
			Size: len(f.Content),
			URL:  base + "/files/" + f.Path,
		})
	}
	for format := range res.Artifacts {
		resp.Artifacts[format] = base + "/artifacts/" + format
	}
	if withConcat {
		resp.Concat = res.Bundle.Concat()
	}
	return resp
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "Request body must be JSON."))
		return
	}
	if err := errors.CheckRequestSize(req.SystemType, req.Problem); err != nil {
		writeError(w, r, err)
		return
	}

	formats := append([]string{pipeline.FormatSVG}, s.cfg.Formats...)
	formats = append(formats, req.Formats...)

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		SystemType:  req.SystemType,
		Problem:     req.Problem,
		Formats:     formats,
		PromptStyle: req.PromptStyle,
	})
	if err != nil {
		if !errors.IsValidation(err) {
			s.logger.Error("generate failed", "err", err)
		}
		writeError(w, r, err)
		return
	}

	if s.sessions != nil {
		if err := session.SaveLast(r.Context(), s.sessions, res.Input.SystemType, res.Input.Problem); err != nil {
			s.logger.Warn("save session failed", "err", err)
		}
	}

	rec := s.putResult(res)
	s.logger.Info("generated bundle", "id", rec.ID, "name", res.Bundle.Name, "template", res.Kind)
	writeJSON(w, http.StatusCreated, s.summarize(rec, false))
}

func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getResult(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.summarize(rec, true))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getResult(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if r.URL.Query().Has("download") {
		w.Header().Set("Content-Disposition", `attachment; filename="system-image.svg"`)
	}
	_, _ = w.Write(rec.Result.Diagram.SVG)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getResult(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	format := chi.URLParam(r, "format")
	data, ok := rec.Result.Artifacts[format]
	if !ok {
		writeError(w, r, notFound("format %q was not rendered for this bundle", format))
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+rec.Result.Bundle.Name+"."+pipeline.FileExt(format)+`"`)
	_, _ = w.Write(data)
}

func (s *Server) handleZip(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getResult(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := rec.Result.Bundle.WriteZip(&buf); err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "build zip"))
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rec.Result.Bundle.ZipName()+`"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getResult(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	p := chi.URLParam(r, "*")
	if err := errors.ValidatePath(p); err != nil {
		writeError(w, r, err)
		return
	}
	f, ok := rec.Result.Bundle.File(p)
	if !ok {
		writeError(w, r, notFound("no file %q in bundle", p))
		return
	}
	w.Header().Set("Content-Type", contentType(strings.TrimPrefix(path.Ext(p), ".")))
	_, _ = w.Write([]byte(f.Content))
}

type templateEntry struct {
	Kind    archetype.Kind `json:"kind"`
	Keyword string         `json:"keyword,omitempty"`
	Title   string         `json:"title"`
	Footer  string         `json:"footer"`
	Nodes   []string       `json:"nodes"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	kinds := archetype.Kinds()
	out := make([]templateEntry, 0, len(kinds))
	for _, k := range kinds {
		tpl := archetype.ForKind(k, "")
		e := templateEntry{
			Kind:    k,
			Keyword: archetype.Keyword(k),
			Title:   tpl.Title,
			Footer:  tpl.Footer,
		}
		for _, n := range tpl.Nodes {
			e.Nodes = append(e.Nodes, n.Label)
		}
		out = append(out, e)
	}
	writeJSON(w, http.StatusOK, out)
}

type sessionResponse struct {
	SystemType string    `json:"system_type"`
	Problem    string    `json:"problem"`
	UpdatedAt  time.Time `json:"updated_at"`
	Message    string    `json:"message"`
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		writeError(w, r, errors.New(errors.ErrCodeSessionNotFound, "Sessions are disabled."))
		return
	}
	last, err := session.LoadLast(r.Context(), s.sessions)
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "load session"))
		return
	}
	if last == nil {
		writeError(w, r, errors.New(errors.ErrCodeSessionNotFound, "No saved request."))
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		SystemType: last.SystemType,
		Problem:    last.Problem,
		UpdatedAt:  last.UpdatedAt,
		Message:    session.LoadedMessage,
	})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions != nil {
		if err := session.ClearLast(r.Context(), s.sessions); err != nil {
			writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "clear session"))
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func contentType(ext string) string {
	switch ext {
	case "svg", pipeline.FormatNodelink:
		return "image/svg+xml"
	case "md":
		return "text/markdown; charset=utf-8"
	case "txt", "toml", pipeline.FormatDOT:
		return "text/plain; charset=utf-8"
	case "json":
		return "application/json"
	}
	if t := mime.TypeByExtension("." + ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
