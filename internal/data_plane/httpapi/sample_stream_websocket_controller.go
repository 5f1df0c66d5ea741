package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/async"
	"sensorhub-server/internal/infra/httpserver"
	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin for development
		// In production, you should validate the origin
		return true
	},
}

type SampleStreamMessage struct {
	Type      string               `json:"type"`
	DeviceID  string               `json:"device_id"`
	SensorID  string               `json:"sensor_id"`
	Timestamp utils.Time           `json:"timestamp"`
	Data      domain.SensorReading `json:"data"`
}

// SampleStreamWebSocketController fans live samples out to websocket
// clients as they come off the broker, so dashboards never poll the
// sample store.
type SampleStreamWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan SampleStreamMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewSampleStreamWebSocketController(broker async.InternalBroker) *SampleStreamWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &SampleStreamWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan SampleStreamMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*SampleStreamWebSocketController)(nil)

func (wsc *SampleStreamWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/sensor-samples", wsc.handleWebSocket())
}

func (wsc *SampleStreamWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("new websocket connection established", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *SampleStreamWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *SampleStreamWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *SampleStreamWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(dispatcher.TopicSensorSamples)
	if err != nil {
		slog.Error("failed to subscribe to sensor samples", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(dispatcher.TopicSensorSamples, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				client.Close()
			}
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", len(wsc.clients)))

		case message := <-wsc.broadcast:
			var failed []*websocket.Conn
			wsc.clientsMux.RLock()
			for client := range wsc.clients {
				client.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := client.WriteJSON(message); err != nil {
					slog.Error("failed to write message to websocket client", slog.String("error", err.Error()))
					failed = append(failed, client)
				}
			}
			wsc.clientsMux.RUnlock()

			if len(failed) > 0 {
				wsc.clientsMux.Lock()
				for _, client := range failed {
					client.Close()
					delete(wsc.clients, client)
				}
				wsc.clientsMux.Unlock()
			}

		case brokerMsg := <-subscription.Receiver:
			if brokerMsg.Event != "sample_collected" {
				continue
			}
			sampleMsg, ok := brokerMsg.Value.(dispatcher.SampleMessage)
			if !ok {
				continue
			}

			streamMsg := SampleStreamMessage{
				Type:      "sensor_sample",
				DeviceID:  sampleMsg.DeviceID.String(),
				SensorID:  sampleMsg.SensorID.String(),
				Timestamp: sampleMsg.Sample.Timestamp,
				Data:      sampleMsg.Sample.SensorReading,
			}

			select {
			case wsc.broadcast <- streamMsg:
			default:
				slog.Warn("broadcast channel full, dropping message")
			}
		}
	}
}

func (wsc *SampleStreamWebSocketController) Shutdown() {
	slog.Info("shutting down sample stream websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()
}
