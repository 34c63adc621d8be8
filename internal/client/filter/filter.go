package filter

import (
	"fmt"
	"net/url"
)

// Field names, identical to the server's query parameters.
const (
	FieldLogPMin          = "logp_min"
	FieldLogPMax          = "logp_max"
	FieldSolubility       = "solubility" // good | poor
	FieldQEDMin           = "qed_min"
	FieldQEDMax           = "qed_max"
	FieldDruglikeness     = "druglikeness" // high | moderate | low
	FieldSASMin           = "sas_min"
	FieldSASMax           = "sas_max"
	FieldSynthesizability = "synthesizability" // easy | moderate | hard
	FieldSmile            = "smile"            // SMILES substring
)

// Criteria is the explicit set of optional filter fields, one per recognized
// query parameter. Fields hold the user's literal input; the empty string
// means absent and imposes no constraint. No cross-field validation happens
// at this layer: min may legally exceed max, and an enum filter may overlap
// the numeric pair it buckets (solubility good = logP 0-3, poor = logP > 3;
// druglikeness high = QED > 0.67, moderate = 0.5-0.67, low <= 0.5;
// synthesizability easy = SAS 1-3, moderate = 3-6, hard > 6). Overlapping
// constraints are both forwarded; resolving the conflict is the server's
// concern.
type Criteria struct {
	LogPMin          string
	LogPMax          string
	Solubility       string
	QEDMin           string
	QEDMax           string
	Druglikeness     string
	SASMin           string
	SASMax           string
	Synthesizability string
	Smile            string
}

// Values serializes the criteria into query parameters. Only fields with a
// non-empty value are included; the output depends on nothing but the current
// field values.
func (c Criteria) Values() url.Values {
	params := url.Values{}

	set := func(field, value string) {
		if value != "" {
			params.Set(field, value)
		}
	}

	set(FieldLogPMin, c.LogPMin)
	set(FieldLogPMax, c.LogPMax)
	set(FieldSolubility, c.Solubility)
	set(FieldQEDMin, c.QEDMin)
	set(FieldQEDMax, c.QEDMax)
	set(FieldDruglikeness, c.Druglikeness)
	set(FieldSASMin, c.SASMin)
	set(FieldSASMax, c.SASMax)
	set(FieldSynthesizability, c.Synthesizability)
	set(FieldSmile, c.Smile)

	return params
}

// Model owns the current filter criteria.
type Model struct {
	criteria Criteria
}

// NewModel creates a model with all fields absent.
func NewModel() *Model {
	return &Model{}
}

// Set overwrites one named field with the given value. Setting a field to the
// empty string makes it absent again. Unknown field names are rejected.
func (m *Model) Set(field, value string) error {
	switch field {
	case FieldLogPMin:
		m.criteria.LogPMin = value
	case FieldLogPMax:
		m.criteria.LogPMax = value
	case FieldSolubility:
		m.criteria.Solubility = value
	case FieldQEDMin:
		m.criteria.QEDMin = value
	case FieldQEDMax:
		m.criteria.QEDMax = value
	case FieldDruglikeness:
		m.criteria.Druglikeness = value
	case FieldSASMin:
		m.criteria.SASMin = value
	case FieldSASMax:
		m.criteria.SASMax = value
	case FieldSynthesizability:
		m.criteria.Synthesizability = value
	case FieldSmile:
		m.criteria.Smile = value
	default:
		return fmt.Errorf("unknown filter field %q", field)
	}
	return nil
}

// Clear resets all fields to absent.
func (m *Model) Clear() {
	m.criteria = Criteria{}
}

// Criteria returns a copy of the current criteria.
func (m *Model) Criteria() Criteria {
	return m.criteria
}

// Values serializes the current criteria, omitting absent fields.
func (m *Model) Values() url.Values {
	return m.criteria.Values()
}
