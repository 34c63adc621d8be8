package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"chemexplorer/internal/models"
	"chemexplorer/internal/server/storage"
)

// CompoundsHandler serves the searchable compound catalog
type CompoundsHandler struct {
	logger    *slog.Logger
	compounds storage.CompoundStorage
}

// NewCompoundsHandler creates the catalog handler
func NewCompoundsHandler(logger *slog.Logger, compounds storage.CompoundStorage) *CompoundsHandler {
	return &CompoundsHandler{
		logger:    logger,
		compounds: compounds,
	}
}

// List handles GET /compounds
func (h *CompoundsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := buildFilter(r.URL.Query())
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	compounds, err := h.compounds.ListCompounds(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list compounds", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if compounds == nil {
		compounds = []models.Compound{}
	}

	sendJSON(h.logger, w, compounds, http.StatusOK)
}

// buildFilter translates query parameters into storage bounds. The named
// buckets override the corresponding numeric range when both are present:
// solubility wins over logp_min/logp_max, druglikeness over qed_min/qed_max,
// synthesizability over sas_min/sas_max.
func buildFilter(params url.Values) (storage.CompoundFilter, error) {
	var filter storage.CompoundFilter

	parse := func(name string) (*float64, error) {
		raw := params.Get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", name, raw)
		}
		return &v, nil
	}

	var err error
	if filter.LogPMin, err = parse("logp_min"); err != nil {
		return filter, err
	}
	if filter.LogPMax, err = parse("logp_max"); err != nil {
		return filter, err
	}
	if filter.QEDMin, err = parse("qed_min"); err != nil {
		return filter, err
	}
	if filter.QEDMax, err = parse("qed_max"); err != nil {
		return filter, err
	}
	if filter.SASMin, err = parse("sas_min"); err != nil {
		return filter, err
	}
	if filter.SASMax, err = parse("sas_max"); err != nil {
		return filter, err
	}

	if solubility := params.Get("solubility"); solubility != "" {
		switch strings.ToLower(solubility) {
		case "good":
			filter.LogPMin = nil
			filter.LogPMax = ptr(3.0)
		case "poor":
			filter.LogPMin = ptr(3.0 + epsilon)
			filter.LogPMax = nil
		default:
			return filter, fmt.Errorf("invalid solubility: %q", solubility)
		}
	}

	if druglikeness := params.Get("druglikeness"); druglikeness != "" {
		switch strings.ToLower(druglikeness) {
		case "high":
			filter.QEDMin = ptr(0.67 + epsilon)
			filter.QEDMax = nil
		case "moderate":
			filter.QEDMin = ptr(0.5 + epsilon)
			filter.QEDMax = ptr(0.67)
		case "low":
			filter.QEDMin = nil
			filter.QEDMax = ptr(0.5)
		default:
			return filter, fmt.Errorf("invalid druglikeness: %q", druglikeness)
		}
	}

	if synthesizability := params.Get("synthesizability"); synthesizability != "" {
		switch strings.ToLower(synthesizability) {
		case "easy":
			filter.SASMin = nil
			filter.SASMax = ptr(3.0)
		case "moderate":
			filter.SASMin = ptr(3.0 + epsilon)
			filter.SASMax = ptr(6.0)
		case "hard":
			filter.SASMin = ptr(6.0 + epsilon)
			filter.SASMax = nil
		default:
			return filter, fmt.Errorf("invalid synthesizability: %q", synthesizability)
		}
	}

	filter.SMILES = params.Get("smile")

	return filter, nil
}

// epsilon turns the storage layer's inclusive bounds into the strict
// comparisons the bucket definitions use
const epsilon = 1e-9

func ptr(v float64) *float64 { return &v }
