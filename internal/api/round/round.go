package round

import (
	"errors"
	"net/http"
	"strconv"

	"satta_backend/internal/converter"
	"satta_backend/internal/middleware"
	"satta_backend/internal/model"
	"satta_backend/internal/service"
	"satta_backend/pkg/resp"

	"go.uber.org/zap"
)

const defaultJournalLimit = 20

type HandlerDeps struct {
	Serv   service.RoundService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.RoundService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

// Generate Один цикл: выдает новый результат
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	report, err := h.serv.Generate(r.Context())
	if err != nil {
		h.writeServiceError(w, "generate", err)
		return
	}

	response := converter.ToOutcomeResponse(*report.Outcome, report.Tracker)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

// Analysis Снимок статистики и веса следующего цикла
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	report, err := h.serv.Preview(r.Context())
	if err != nil {
		h.writeServiceError(w, "analysis", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAnalysisResponse(*report))
}

func (h *Handler) Tracker(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTrackerResponse(h.serv.Tracker()))
}

// Journal Последние записи журнала, ?limit=N
func (h *Handler) Journal(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	entries, err := h.serv.Journal(r.Context(), limit)
	if err != nil {
		if errors.Is(err, model.ErrInvalidLimit) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeServiceError(w, "journal", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToJournalResponse(entries))
}

// RebuildTracker Пересборка трекера по всей истории (только для админа)
func (h *Handler) RebuildTracker(w http.ResponseWriter, r *http.Request) {
	if claims, ok := middleware.AdminFromContext(r.Context()); ok {
		h.logger.Info("tracker rebuild requested", zap.String("admin", claims.Subject))
	}

	state, err := h.serv.RebuildTracker(r.Context())
	if err != nil {
		h.writeServiceError(w, "rebuild tracker", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTrackerResponse(state))
}

// writeServiceError Битая история - 422, все остальное - 500
func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, model.ErrMalformedRecord) {
		h.logger.Warn("history contains malformed record", zap.String("op", op), zap.Error(err))
		resp.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	resp.WriteError(w, http.StatusInternalServerError, "internal error")
}
