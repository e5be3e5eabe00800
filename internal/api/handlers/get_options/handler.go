package get_options

import (
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

type Handler struct {
	refdata ReferenceData
	logger  Logger
}

func NewHandler(refdata ReferenceData, logger Logger) *Handler {
	return &Handler{
		refdata: refdata,
		logger:  logger,
	}
}

// Handle GET /api/v1/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := &OptionsResponse{
		Genders:           toOptions(h.refdata.Genders(ctx)),
		ResidenceStatuses: toOptions(h.refdata.ResidenceStatuses(ctx)),
		Regions:           toOptions(h.refdata.Regions(ctx)),
		Parishes:          toOptions(h.refdata.Parishes(ctx)),
		Zones:             toOptions(h.refdata.Zones(ctx)),
		PostalCodes:       toOptions(h.refdata.PostalCodes(ctx)),
		CitiesByParish:    map[string][]OptionPayload{},
	}

	for parish, cities := range h.refdata.AllCitiesByParish(ctx) {
		resp.CitiesByParish[parish] = toOptions(cities)
	}

	for _, slot := range h.refdata.DocumentSlots(ctx) {
		docTypes, err := h.refdata.DocumentTypes(ctx, slot.Key)
		if err != nil {
			h.logger.Error("GET /options - Failed to load document types: key=%s, error=%v", slot.Key, err)
			handlers.RespondInternalError(w)
			return
		}
		resp.DocumentSlots = append(resp.DocumentSlots, DocumentSlotPayload{
			Key:      slot.Key,
			Title:    slot.Title,
			Required: slot.Required,
			DocTypes: toOptions(docTypes),
		})
	}

	for _, lang := range h.refdata.Languages(ctx) {
		resp.Languages = append(resp.Languages, LanguagePayload{
			Code:      lang.Code,
			Label:     lang.Label,
			Dir:       lang.Dir,
			Mandatory: lang.Mandatory,
		})
	}

	for _, theme := range h.refdata.Themes(ctx) {
		resp.Themes = append(resp.Themes, ThemePayload{
			Name:  theme.Name,
			Label: theme.Label,
			Vars:  theme.Vars,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func toOptions(opts []domain.Option) []OptionPayload {
	out := make([]OptionPayload, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionPayload{Code: o.Code, Label: o.Label})
	}
	return out
}
