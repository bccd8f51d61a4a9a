package http

import (
	"net/http"

	"propdesk/config"
	"propdesk/format"
)

type optionsResponse struct {
	PropertyTypes     []string `json:"property_types"`
	PropertyStatuses  []string `json:"property_statuses"`
	PublishStatuses   []string `json:"publish_statuses"`
	LeadStatuses      []string `json:"lead_statuses"`
	AgentStatuses     []string `json:"agent_statuses"`
	ConstructionYears []int    `json:"construction_years"`
	PropertyFor       []string `json:"property_for"`
	VisitSlots        []string `json:"visit_slots"`
	AgentFeeAmount    float64  `json:"agent_fee_amount"`
	AgentFeeLabel     string   `json:"agent_fee_label"`
	PageSize          int      `json:"page_size"`
}

type OptionsHandler struct {
	body optionsResponse
}

func NewOptionsHandler(opts config.Options) *OptionsHandler {
	return &OptionsHandler{body: optionsResponse{
		PropertyTypes:     opts.PropertyTypes(),
		PropertyStatuses:  opts.PropertyStatuses(),
		PublishStatuses:   opts.PublishStatuses(),
		LeadStatuses:      opts.LeadStatuses(),
		AgentStatuses:     opts.AgentStatuses(),
		ConstructionYears: opts.ConstructionYears(),
		PropertyFor:       opts.PropertyFor(),
		VisitSlots:        opts.VisitSlots(),
		AgentFeeAmount:    opts.AgentFeeAmount(),
		AgentFeeLabel:     format.FormatINR(opts.AgentFeeAmount()),
		PageSize:          opts.PageSize(),
	}}
}

func (h *OptionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.body)
}
