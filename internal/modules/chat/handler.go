package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"autocare/internal/pkg/response"
)

type Handler struct {
	service  *Service
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the widget runs on the public site; origin is not restricted
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With().Str("component", "chat").Logger(),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/message", h.Message)
	rg.GET("/chat/ws", h.WebSocket)
}

type messageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) Message(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Message is required")
		return
	}

	reply := h.service.GenerateReply(req.Message)
	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

// WebSocket runs the widget loop: read a text message, write the bot reply.
// Each connection is independent; the bot keeps no conversation state.
func (h *Handler) WebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := h.service.GenerateReply(string(data))
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
