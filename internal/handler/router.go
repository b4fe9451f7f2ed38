package handler

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/qiscet/campusbot/internal/handler/chat"
	statusHandler "github.com/qiscet/campusbot/internal/handler/status"
	middlewarePkg "github.com/qiscet/campusbot/internal/middleware"
	"github.com/qiscet/campusbot/internal/service/ai"
	statusService "github.com/qiscet/campusbot/internal/service/status"
	"github.com/qiscet/campusbot/pkg/utils"
)

//go:embed web/index.html
var indexHTML []byte

// NewRouter wires HTTP routes to core services. aiSvc may be nil when
// the Gemini client failed to initialize; chat requests then return a
// generic server error without attempting network I/O.
func NewRouter(statusSvc *statusService.Service, aiSvc *ai.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	var responder ai.Responder
	if aiSvc != nil {
		responder = aiSvc
	}

	r.Get("/", handleIndex)
	r.Get("/healthz", handleHealthz)

	statusHandler.New(statusSvc).RegisterRoutes(r)
	chatHandler.New(responder).RegisterRoutes(r)

	return r
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
