package verify_init_data

import (
	"net/http"

	"github.com/m04kA/SMC-WebAppOrderBot/internal/api/handlers"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/webapp/initdata"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyInitData      = "init_data is required"
)

// VerifyRequest тело запроса на проверку init data
type VerifyRequest struct {
	InitData string `json:"init_data"`
}

// VerifyResponse результат проверки init data
type VerifyResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Handler проверяет подлинность строки Telegram.WebApp.initData,
// присланной WebApp страницей, по токену бота
type Handler struct {
	botToken string
	logger   Logger
}

func NewHandler(botToken string, logger Logger) *Handler {
	return &Handler{
		botToken: botToken,
		logger:   logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode init data verify request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.InitData == "" {
		handlers.RespondBadRequest(w, msgEmptyInitData)
		return
	}

	if err := initdata.VerifyHMAC(req.InitData, h.botToken); err != nil {
		h.logger.Info("Init data verification failed: %v", err)
		handlers.RespondJSON(w, http.StatusOK, VerifyResponse{Valid: false, Reason: err.Error()})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VerifyResponse{Valid: true})
}
