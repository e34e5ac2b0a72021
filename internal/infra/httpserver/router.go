package httpserver

import (
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	appscan "github.com/readyforswiss/cvscan/internal/application/scan"
	"github.com/readyforswiss/cvscan/internal/domain/delivery"
	"github.com/readyforswiss/cvscan/internal/domain/document"
	"github.com/readyforswiss/cvscan/internal/domain/report"
	"github.com/readyforswiss/cvscan/internal/middleware"
)

type Router struct {
	scanSvc   *appscan.Service
	maxUpload int64
}

func NewRouter(scanSvc *appscan.Service, maxUpload int64, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{scanSvc: scanSvc, maxUpload: maxUpload}
	mux := chi.NewRouter()

	mux.Get("/", r.handleIndex)
	mux.Post("/scan", r.wrap(r.handleScan))

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks validation failures raised by the handler itself
// (missing or malformed form fields), with a user-facing message.
type badRequest struct {
	msg string
}

func (e *badRequest) Error() string { return e.msg }

// wrap converts the error taxonomy into HTTP responses: input errors are
// 4xx with a descriptive message, everything else converges on a generic
// technical-error fragment. A panic in a handler is recovered the same
// way instead of killing the process.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in handler: %v", rec)
				writeTechnicalError(w, fmt.Sprintf("%v", rec))
			}
		}()

		err := h(w, req)
		if err == nil {
			return
		}

		var br *badRequest
		if errors.As(err, &br) {
			http.Error(w, br.msg, http.StatusBadRequest)
			return
		}
		if document.IsInputError(err) {
			http.Error(w, inputMessage(err), http.StatusBadRequest)
			return
		}
		log.Printf("scan failed: %v", err)
		writeTechnicalError(w, err.Error())
	}
}

// inputMessage maps input-error kinds to the user-facing copy.
func inputMessage(err error) string {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return "Format non supporté (PDF ou DOCX uniquement)"
	case errors.Is(err, document.ErrExtractionFailed):
		return "Impossible de lire ce fichier."
	case errors.Is(err, document.ErrEmptyContent):
		return "Fichier illisible."
	default:
		return "Requête invalide."
	}
}

func writeTechnicalError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w,
		`<div style="color:red; text-align:center; padding:20px;">Erreur technique : %s</div>`,
		html.EscapeString(msg))
}

// POST /scan
// Multipart form: user_email (required), cv_file (required), persona (optional).
// Responds with an HTML fragment: delivery banner followed by the report.
func (r *Router) handleScan(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload+1<<20)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		return &badRequest{msg: "Fichier manquant"}
	}

	email := middleware.SanitizeString(req.FormValue("user_email"))
	if err := middleware.ValidateEmail(email); err != nil {
		return &badRequest{msg: "Adresse email invalide"}
	}

	file, header, err := req.FormFile("cv_file")
	if err != nil {
		return &badRequest{msg: "Fichier manquant"}
	}
	defer file.Close()

	// Cheap pre-filter before reading the upload; the extractor makes the
	// final call from the declared MIME type as well.
	if err := middleware.ValidateFileName(header.Filename); err != nil {
		return &badRequest{msg: "Format non supporté (PDF ou DOCX uniquement)"}
	}

	if err := middleware.ValidateFileSize(header.Size, r.maxUpload); err != nil {
		return &badRequest{msg: "Fichier invalide"}
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	middleware.IncrementScans()
	result, err := r.scanSvc.Scan(req.Context(), appscan.ScanCommand{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
		Recipient:   email,
		Persona:     req.FormValue("persona"),
	})
	if err != nil {
		middleware.IncrementScansFailed()
		// Input errors become a 400 in wrap; AI envelope and malformed
		// response errors leave nothing to render and become the 500
		// technical-error fragment.
		return err
	}

	if result.Outcome.Status == delivery.StatusDelivered {
		middleware.IncrementDelivered()
	} else {
		middleware.IncrementFallback()
	}

	branding := r.scanSvc.Persona(result.Persona).Branding
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = fmt.Fprint(w, report.Banner(result.Outcome, branding)+result.ReportHTML)
	return err
}
