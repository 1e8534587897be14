package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/renoworks/renoquote/internal/engine"
	"github.com/renoworks/renoquote/internal/export"
	"github.com/renoworks/renoquote/internal/importer"
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/project"
	"github.com/renoworks/renoquote/internal/store"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := project.LoadSettings(s.settingsPath)
	if err != nil {
		s.log.Error("failed to load settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	s.writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid settings body")
		return
	}
	if settings.Currency == "" {
		settings.Currency = "$"
	}
	if err := project.SaveSettings(s.settingsPath, settings); err != nil {
		s.log.Error("failed to save settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	s.writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.log.Error("failed to list projects", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

type createProjectRequest struct {
	Name   string `json:"name"`
	Client string `json:"client"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.writeError(w, http.StatusBadRequest, "project name is required")
		return
	}

	p := model.NewProject(req.Name, req.Client)
	if err := s.store.SaveProject(r.Context(), p); err != nil {
		s.log.Error("failed to save project", "id", p.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save project")
		return
	}
	s.log.Info("project created", "id", p.ID, "name", p.Name)
	s.writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.DeleteProject(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		s.log.Error("failed to delete project", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePutDesign replaces one workflow's design snapshot, recomputes the
// whole project, and saves it. The response is the updated project so the
// client sees the reconciled item lists immediately.
func (s *Server) handlePutDesign(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	workflow := model.Workflow(chi.URLParam(r, "workflow"))

	if err := decodeDesign(r.Body, workflow, p); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := project.LoadSettings(s.settingsPath)
	if err != nil {
		s.log.Error("failed to load settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	engine.Recompute(p, settings)

	if err := s.store.SaveProject(r.Context(), p); err != nil {
		s.log.Error("failed to save project", "id", p.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save project")
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// decodeDesign unmarshals the request body into the matching design field.
func decodeDesign(body io.Reader, workflow model.Workflow, p *model.Project) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var err error
	switch workflow {
	case model.WorkflowDemolition:
		err = dec.Decode(&p.Demolition)
	case model.WorkflowShowerWalls:
		err = dec.Decode(&p.ShowerWalls)
	case model.WorkflowShowerBase:
		err = dec.Decode(&p.ShowerBase)
	case model.WorkflowFloors:
		err = dec.Decode(&p.Floors)
	case model.WorkflowFinishings:
		err = dec.Decode(&p.Finishings)
	case model.WorkflowStructural:
		err = dec.Decode(&p.Structural)
	case model.WorkflowTrades:
		err = dec.Decode(&p.Trades)
	default:
		return fmt.Errorf("unknown workflow %q", workflow)
	}
	if err != nil {
		return fmt.Errorf("invalid %s design: %v", workflow, err)
	}
	return nil
}

// handlePutItems replaces one workflow's item lists with hand-edited values.
// Items arriving without an id are treated as new custom additions.
func (s *Server) handlePutItems(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	workflow := model.Workflow(chi.URLParam(r, "workflow"))
	if !validWorkflow(workflow) {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown workflow %q", workflow))
		return
	}

	var set model.ItemSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item set body")
		return
	}
	stampCustomItems(&set, string(workflow))

	current := p.ItemsFor(workflow)
	set.FlatFeeMode = current.FlatFeeMode
	p.Items[workflow] = &set
	p.Touch()

	if err := s.store.SaveProject(r.Context(), p); err != nil {
		s.log.Error("failed to save project", "id", p.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save project")
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// stampCustomItems fills ids and origin on items the client added by hand.
func stampCustomItems(set *model.ItemSet, scope string) {
	for i := range set.Labor {
		if set.Labor[i].ID == "" {
			set.Labor[i].ID = model.NewCustomID()
			set.Labor[i].Origin = model.OriginCustom
		}
		if set.Labor[i].Scope == "" {
			set.Labor[i].Scope = scope
		}
	}
	for i := range set.Materials {
		if set.Materials[i].ID == "" {
			set.Materials[i].ID = model.NewCustomID()
			set.Materials[i].Origin = model.OriginCustom
		}
		if set.Materials[i].Scope == "" {
			set.Materials[i].Scope = scope
		}
	}
	for i := range set.FlatFees {
		if set.FlatFees[i].ID == "" {
			set.FlatFees[i].ID = model.NewCustomID()
			set.FlatFees[i].Origin = model.OriginCustom
		}
		if set.FlatFees[i].Scope == "" {
			set.FlatFees[i].Scope = scope
		}
	}
}

// handleImportItems appends custom items parsed from an uploaded CSV to one
// workflow's lists.
func (s *Server) handleImportItems(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	workflow := model.Workflow(chi.URLParam(r, "workflow"))
	if !validWorkflow(workflow) {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown workflow %q", workflow))
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, 4<<20))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	result := importer.ImportCSV(data, workflow)
	if len(result.Errors) > 0 {
		s.writeError(w, http.StatusBadRequest, strings.Join(result.Errors, "; "))
		return
	}

	set := p.ItemsFor(workflow)
	set.Labor = append(set.Labor, result.Labor...)
	set.Materials = append(set.Materials, result.Materials...)
	p.Touch()

	if err := s.store.SaveProject(r.Context(), p); err != nil {
		s.log.Error("failed to save project", "id", p.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save project")
		return
	}
	s.log.Info("items imported", "project", p.ID, "workflow", workflow,
		"labor", len(result.Labor), "materials", len(result.Materials))
	s.writeJSON(w, http.StatusOK, result)
}

type totalsResponse struct {
	Workflows map[model.Workflow]engine.Totals `json:"workflows"`
	Subtotal  float64                          `json:"subtotal"`
	Pricing   engine.PriceBreakdown            `json:"pricing"`
}

func (s *Server) handleGetTotals(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	settings, err := project.LoadSettings(s.settingsPath)
	if err != nil {
		s.log.Error("failed to load settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	perWorkflow, grand := engine.ProjectTotals(p)
	breakdown := engine.FinalPrice(grand.Grand, settings.MarkupPercent, settings.DiscountPercent, settings.TaxRate)
	s.writeJSON(w, http.StatusOK, totalsResponse{
		Workflows: perWorkflow,
		Subtotal:  grand.Grand,
		Pricing:   breakdown,
	})
}

func (s *Server) handleEstimatePDF(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, "application/pdf", ".pdf", export.ExportPDF)
}

func (s *Server) handleEstimateXLSX(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx", export.ExportXLSX)
}

// serveExport renders an estimate document to a temp file and streams it.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, contentType, ext string,
	render func(string, *model.Project, model.Settings) error) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	settings, err := project.LoadSettings(s.settingsPath)
	if err != nil {
		s.log.Error("failed to load settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("renoquote-%s%s", p.ID, ext))
	defer os.Remove(path)
	if err := render(path, p, settings); err != nil {
		s.log.Error("failed to render estimate", "id", p.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to render estimate")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to read estimate")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "estimate-"+p.ID+ext))
	if _, err := io.Copy(w, f); err != nil {
		s.log.Error("failed to stream estimate", "id", p.ID, "error", err)
	}
}

// loadProject fetches the project named in the URL, writing the error
// response itself when the load fails.
func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (*model.Project, bool) {
	id := chi.URLParam(r, "id")
	p, err := s.store.GetProject(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "project not found")
		return nil, false
	}
	if err != nil {
		s.log.Error("failed to load project", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load project")
		return nil, false
	}
	return p, true
}

func validWorkflow(w model.Workflow) bool {
	for _, v := range model.AllWorkflows {
		if v == w {
			return true
		}
	}
	return false
}
