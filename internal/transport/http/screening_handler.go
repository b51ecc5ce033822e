package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"acctfilter/internal/analysis"
	"acctfilter/internal/config"
	apierrors "acctfilter/internal/errors"
	"acctfilter/internal/infrastructure"
	"acctfilter/internal/middleware"
	"acctfilter/internal/services"
)

// ScreeningServiceInterface runs screening operations
type ScreeningServiceInterface interface {
	Run(ctx context.Context, input io.Reader, req services.Request) (*services.Report, error)
}

// ResultRowsHeader reports the number of result rows on a download
const ResultRowsHeader = "X-Result-Rows"

// ScreeningHandler serves the multipart screening endpoints. Each request
// uploads a workbook in the "file" field and receives the result as a file
// download.
type ScreeningHandler struct {
	service      ScreeningServiceInterface
	validator    *middleware.Validator
	errorHandler *apierrors.ErrorHandler
	metrics      *infrastructure.ScreeningMetrics
	upload       config.UploadConfig
	logger       *slog.Logger
}

// NewScreeningHandler creates a screening handler. metrics may be nil.
func NewScreeningHandler(
	service ScreeningServiceInterface,
	validator *middleware.Validator,
	errorHandler *apierrors.ErrorHandler,
	metrics *infrastructure.ScreeningMetrics,
	upload config.UploadConfig,
	logger *slog.Logger,
) *ScreeningHandler {
	return &ScreeningHandler{
		service:      service,
		validator:    validator,
		errorHandler: errorHandler,
		metrics:      metrics,
		upload:       upload,
		logger:       logger.With(slog.String("handler", "screening")),
	}
}

// Register mounts one POST route per endpoint, with and without the
// trailing slash.
func (h *ScreeningHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeValidator(h.errorHandler, "multipart/form-data"))
		for _, ep := range Endpoints {
			handler := h.Screen(ep.Operation)
			r.Post(ep.Path, handler)
			if trimmed := strings.TrimSuffix(ep.Path, "/"); trimmed != ep.Path {
				r.Post(trimmed, handler)
			}
		}
	})
}

// Screen returns the handler for one operation
func (h *ScreeningHandler) Screen(op analysis.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxBytes)
		if err := r.ParseMultipartForm(h.upload.MemoryBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.errorHandler.HandleError(w, r, err)
				return
			}
			h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrMissingFile)
			return
		}
		defer file.Close()

		form := newForm(op)
		if err := decodeForm(r, form); err != nil {
			h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
			return
		}
		if err := h.validator.ValidateStruct(form); err != nil {
			h.errorHandler.HandleError(w, r, err)
			return
		}
		req, err := form.request()
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
			return
		}

		h.metrics.RecordUpload(ctx, string(op), header.Size)
		h.logger.DebugContext(ctx, "upload received",
			slog.String("operation", string(op)),
			slog.String("filename", header.Filename),
			slog.Int64("size", header.Size))

		report, err := h.service.Run(ctx, file, req)
		if err != nil {
			h.errorHandler.HandleError(w, r, translateServiceError(err))
			return
		}

		h.sendReport(w, r, report)
	}
}

// sendReport streams the saved result file as an attachment
func (h *ScreeningHandler) sendReport(w http.ResponseWriter, r *http.Request, report *services.Report) {
	f, err := os.Open(report.File.Path)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ExportError(err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ExportError(err))
		return
	}

	w.Header().Set("Content-Type", report.File.Format.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": report.File.Name,
	}))
	w.Header().Set(ResultRowsHeader, strconv.Itoa(report.File.Rows))
	http.ServeContent(w, r, report.File.Name, info.ModTime(), f)
}

// translateServiceError maps service sentinels onto API errors. Core errors
// pass through; the error handler maps them by type.
func translateServiceError(err error) error {
	var appErr *apierrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, services.ErrExportFailed):
		return apierrors.ExportError(err)
	case errors.Is(err, services.ErrUnknownOperation):
		return apierrors.ErrValidation("operation", err.Error())
	case errors.Is(err, services.ErrMissingInput):
		return apierrors.ErrMissingFile
	}
	return err
}
