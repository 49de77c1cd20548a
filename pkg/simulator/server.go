// Package simulator serves the hospital service surface the dashboard
// consumes: the REST endpoints plus the websocket push channel. State is
// an in-memory fixture keyed by the active crisis scenario.
package simulator

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/mfreeman451/wardwatch/pkg/derive"
	httpx "github.com/mfreeman451/wardwatch/pkg/http"
	"github.com/mfreeman451/wardwatch/pkg/models"
)

const (
	savingsPerApproval = 18500.0

	clientRateLimit = rate.Limit(20)
	clientRateBurst = 40
)

// Simulator is the in-memory hospital service.
type Simulator struct {
	mu       sync.RWMutex
	scenario models.Scenario
	recs     map[string]*models.Recommendation
	recOrder []string
	history  []models.SurgePrediction

	router   *mux.Router
	upgrader websocket.Upgrader

	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]struct{}

	limMu    sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a simulator in the normal scenario.
func New() *Simulator {
	s := &Simulator{
		scenario:  models.ScenarioNormal,
		recs:      make(map[string]*models.Recommendation),
		router:    mux.NewRouter(),
		wsClients: make(map[*websocket.Conn]struct{}),
		limiters:  make(map[string]*rate.Limiter),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	s.seedScenario(models.ScenarioNormal)
	s.setupRoutes()

	return s
}

func (s *Simulator) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)
	s.router.Use(s.rateLimitMiddleware)

	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/beds", s.getBeds).Methods("GET")
	api.HandleFunc("/staff", s.getStaff).Methods("GET")
	api.HandleFunc("/inventory", s.getInventory).Methods("GET")
	api.HandleFunc("/predictions/latest", s.getLatestPrediction).Methods("GET")
	api.HandleFunc("/predictions/history", s.getPredictionHistory).Methods("GET")
	api.HandleFunc("/recommendations", s.getRecommendations).Methods("GET")
	api.HandleFunc("/recommendations/{id}/approve", s.approveRecommendation).Methods("POST")
	api.HandleFunc("/recommendations/{id}/reject", s.rejectRecommendation).Methods("POST")
	api.HandleFunc("/analytics/cost-savings", s.getCostSavings).Methods("GET")
	api.HandleFunc("/simulation/trigger-crisis", s.triggerCrisis).Methods("POST")
	api.HandleFunc("/environment/aqi", s.getAQI).Methods("GET")
	api.HandleFunc("/agent/run", s.runAgent).Methods("POST")
	api.HandleFunc("/ws", s.handleWS)
}

// ServeHTTP makes the simulator mountable under httptest and http.Server.
func (s *Simulator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Simulator) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.limMu.Lock()
		lim, ok := s.limiters[r.RemoteAddr]
		if !ok {
			lim = rate.NewLimiter(clientRateLimit, clientRateBurst)
			s.limiters[r.RemoteAddr] = lim
		}
		s.limMu.Unlock()

		if !lim.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// seedScenario resets scenario-derived fixture state. Caller must not hold
// s.mu.
func (s *Simulator) seedScenario(sc models.Scenario) {
	now := time.Now()
	_, recs := derive.Derive(sc, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenario = sc
	s.recs = make(map[string]*models.Recommendation, len(recs))
	s.recOrder = s.recOrder[:0]

	for i := range recs {
		rec := recs[i]
		s.recs[rec.ID] = &rec
		s.recOrder = append(s.recOrder, rec.ID)
	}

	s.history = append(s.history, predictionFor(sc, now))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func (s *Simulator) getBeds(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	beds := bedsFor(s.scenario)
	s.mu.RUnlock()

	if department := r.URL.Query().Get("department"); department != "" {
		filtered := models.BedAvailability{}
		if counts, ok := beds[department]; ok {
			filtered[department] = counts
		}

		writeJSON(w, http.StatusOK, filtered)

		return
	}

	writeJSON(w, http.StatusOK, beds)
}

func (s *Simulator) getStaff(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	staff := staffFor(s.scenario)
	s.mu.RUnlock()

	// A shift filter narrows to roughly a third of the roster.
	if shift := r.URL.Query().Get("shift"); shift != "" {
		staff.Total /= 3
		staff.Available /= 3
		staff.OnDuty /= 3
	}

	writeJSON(w, http.StatusOK, staff)
}

func (s *Simulator) getInventory(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	items := inventoryFor(s.scenario)
	s.mu.RUnlock()

	if r.URL.Query().Get("critical_only") == "true" {
		critical := make([]models.InventoryItem, 0, len(items))

		for _, item := range items {
			if item.Status == "critical" {
				critical = append(critical, item)
			}
		}

		items = critical
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Simulator) getLatestPrediction(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.history) == 0 {
		http.Error(w, "No predictions available", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, s.history[len(s.history)-1])
}

func (s *Simulator) getPredictionHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.history
	if len(history) > limit {
		history = history[len(history)-limit:]
	}

	// Newest first, matching the service contract.
	out := make([]models.SurgePrediction, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, history[i])
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Simulator) getRecommendations(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Recommendation, 0, len(s.recOrder))

	for _, id := range s.recOrder {
		rec := s.recs[id]
		if status != "" && string(rec.Status) != status {
			continue
		}

		out = append(out, *rec)
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Simulator) approveRecommendation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()

	rec, ok := s.recs[id]
	if !ok {
		s.mu.Unlock()
		http.Error(w, "Recommendation not found", http.StatusNotFound)

		return
	}

	if rec.Status != models.StatusPending {
		s.mu.Unlock()
		http.Error(w, "Recommendation already resolved", http.StatusConflict)

		return
	}

	rec.Status = models.StatusApproved
	updated := *rec
	s.mu.Unlock()

	s.Broadcast(models.RealtimeMessage{Type: "recommendation_update", Payload: updated})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Recommendation approved",
		"recommendation": updated,
	})
}

func (s *Simulator) rejectRecommendation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Reason string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Reason == "" {
		http.Error(w, "Rejection reason required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()

	rec, ok := s.recs[id]
	if !ok {
		s.mu.Unlock()
		http.Error(w, "Recommendation not found", http.StatusNotFound)

		return
	}

	if rec.Status != models.StatusPending {
		s.mu.Unlock()
		http.Error(w, "Recommendation already resolved", http.StatusConflict)

		return
	}

	rec.Status = models.StatusRejected
	rec.Outcome = "Rejected: " + body.Reason
	updated := *rec
	s.mu.Unlock()

	s.Broadcast(models.RealtimeMessage{Type: "recommendation_update", Payload: updated})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Recommendation rejected"})
}

func (s *Simulator) getCostSavings(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()

	approved := 0

	for _, rec := range s.recs {
		if rec.Status == models.StatusApproved {
			approved++
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, models.CostSavings{
		TotalSavings:  float64(approved) * savingsPerApproval,
		ApprovedCount: approved,
		Currency:      "INR",
	})
}

// crisisScenarios maps the wire crisis_type values, including the legacy
// names, onto scenarios.
var crisisScenarios = map[string]models.Scenario{
	"normal":    models.ScenarioNormal,
	"pollution": models.ScenarioPollution,
	"festival":  models.ScenarioFestival,
	"outbreak":  models.ScenarioOutbreak,
	"dengue":    models.ScenarioOutbreak,
	"trauma":    models.ScenarioFestival,
}

func (s *Simulator) triggerCrisis(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CrisisType string `json:"crisis_type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sc, ok := crisisScenarios[body.CrisisType]
	if !ok {
		http.Error(w, "Unknown crisis type", http.StatusBadRequest)
		return
	}

	s.seedScenario(sc)

	s.Broadcast(models.RealtimeMessage{
		Type:    "scenario_update",
		Payload: map[string]models.Scenario{"scenario": sc},
	})

	writeJSON(w, http.StatusOK, models.CrisisAck{
		Message:  "Crisis simulation '" + body.CrisisType + "' triggered",
		Scenario: sc,
	})
}

func (s *Simulator) getAQI(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	reading := aqiFor(s.scenario, time.Now())
	s.mu.RUnlock()

	// Coordinates select the nearest station; the fixture only has one,
	// so they merely tag the reading.
	if lat := r.URL.Query().Get("lat"); lat != "" && r.URL.Query().Get("lon") != "" {
		reading.Station = "nearest-to-" + lat
	}

	writeJSON(w, http.StatusOK, reading)
}

func (s *Simulator) runAgent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Agent workflow started",
		"status":  "processing",
	})
}

func (s *Simulator) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	s.wsMu.Lock()
	s.wsClients[conn] = struct{}{}
	s.wsMu.Unlock()

	go s.readClient(conn)
}

// readClient relays inbound client messages to every connected client and
// drops the connection on read failure.
func (s *Simulator) readClient(conn *websocket.Conn) {
	defer func() {
		s.wsMu.Lock()
		delete(s.wsClients, conn)
		s.wsMu.Unlock()

		if err := conn.Close(); err != nil {
			log.Printf("Error closing websocket client: %v", err)
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		s.broadcastRaw(data)
	}
}

// Broadcast pushes a message to every connected websocket client.
func (s *Simulator) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling broadcast: %v", err)
		return
	}

	s.broadcastRaw(data)
}

func (s *Simulator) broadcastRaw(data []byte) {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	for conn := range s.wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Dropping websocket client after write error: %v", err)
			delete(s.wsClients, conn)

			if cerr := conn.Close(); cerr != nil {
				log.Printf("Error closing websocket client: %v", cerr)
			}
		}
	}
}

// Scenario reports the active fixture scenario.
func (s *Simulator) Scenario() models.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.scenario
}
