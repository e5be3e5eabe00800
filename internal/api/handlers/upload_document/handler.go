package upload_document

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
)

const (
	msgInvalidForm      = "invalid multipart form, expected a 'file' part"
	msgSessionNotFound  = "session not found"
	msgWrongStep        = "documents can only be changed on the upload step"
	msgDocumentNotFound = "document slot not found"
)

// maxUploadBytes caps a single document upload at 5 MiB
const maxUploadBytes = 5 << 20

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/documents/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())
	key := mux.Vars(r)["key"]

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /wizard/documents/%s - Invalid multipart form: %v", key, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /wizard/documents/%s - Missing file part: %v", key, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("POST /wizard/documents/%s - Failed to read upload: %v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	docType := r.FormValue("docType")
	contentType := header.Header.Get("Content-Type")

	view, err := h.service.UploadDocument(r.Context(), token, key, docType, header.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/documents/%s - Session not found", key)
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("POST /wizard/documents/%s - Wrong step", key)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrDocumentNotFound):
			h.logger.Warn("POST /wizard/documents/%s - Document slot not found", key)
			handlers.RespondNotFound(w, msgDocumentNotFound)

		default:
			h.logger.Error("POST /wizard/documents/%s - Failed to upload: error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/documents/%s - Uploaded: file=%s, size=%d", key, header.Filename, len(data))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
