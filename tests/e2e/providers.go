//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// ChallengePassPrefix marks challenge tokens the fake verifier accepts.
const ChallengePassPrefix = "pass-"

// FakeProviders serves the fulfillment, email and challenge APIs from one local server.
type FakeProviders struct {
	server *nethttptest.Server

	mu          sync.Mutex
	nextID      int64
	orders      map[string]*FakeFulfillmentOrder
	createCalls int
	failCreates bool
	emails      []SentEmail
}

type FakeShipment struct {
	ID                int64  `json:"id"`
	Carrier           string `json:"carrier"`
	Service           string `json:"service"`
	TrackingNumber    string `json:"tracking_number"`
	TrackingURL       string `json:"tracking_url"`
	Status            string `json:"status"`
	ShippedAt         int64  `json:"shipped_at"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

type FakeFulfillmentOrder struct {
	ID         int64          `json:"id"`
	ExternalID string         `json:"external_id"`
	Status     string         `json:"status"`
	Shipments  []FakeShipment `json:"shipments"`
	Items      []struct {
		SyncVariantID int64 `json:"sync_variant_id"`
		Quantity      int   `json:"quantity"`
	} `json:"items"`
}

type SentEmail struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func NewFakeProviders() *FakeProviders {
	f := &FakeProviders{
		nextID: 90000,
		orders: make(map[string]*FakeFulfillmentOrder),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /printful/orders", f.createOrder)
	mux.HandleFunc("GET /printful/orders/{id}", f.getOrder)
	mux.HandleFunc("POST /emails", f.sendEmail)
	mux.HandleFunc("POST /turnstile/siteverify", f.siteverify)

	f.server = nethttptest.NewServer(mux)
	return f
}

func (f *FakeProviders) PrintfulURL() string  { return f.server.URL + "/printful" }
func (f *FakeProviders) ResendURL() string    { return f.server.URL }
func (f *FakeProviders) TurnstileURL() string { return f.server.URL + "/turnstile/siteverify" }

func (f *FakeProviders) Close() {
	f.server.Close()
}

func (f *FakeProviders) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = make(map[string]*FakeFulfillmentOrder)
	f.createCalls = 0
	f.failCreates = false
	f.emails = nil
}

// FailCreates makes order submission respond with a provider error until turned off.
func (f *FakeProviders) FailCreates(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreates = fail
}

func (f *FakeProviders) CreateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

func (f *FakeProviders) Order(id string) (FakeFulfillmentOrder, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return FakeFulfillmentOrder{}, false
	}
	return *o, true
}

// Ship attaches a shipment to a previously created order, as the provider would after dispatch.
func (f *FakeProviders) Ship(id string, shipment FakeShipment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[id]; ok {
		o.Status = "fulfilled"
		o.Shipments = append(o.Shipments, shipment)
	}
}

func (f *FakeProviders) Emails() []SentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentEmail(nil), f.emails...)
}

func (f *FakeProviders) createOrder(w http.ResponseWriter, r *http.Request) {
	var in FakeFulfillmentOrder
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeEnvelope(w, http.StatusBadRequest, nil, "invalid body")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failCreates {
		writeEnvelope(w, http.StatusServiceUnavailable, nil, "temporarily unavailable")
		return
	}

	f.nextID++
	o := &FakeFulfillmentOrder{
		ID:         f.nextID,
		ExternalID: in.ExternalID,
		Status:     "pending",
		Shipments:  []FakeShipment{},
		Items:      in.Items,
	}
	f.orders[strconv.FormatInt(o.ID, 10)] = o
	writeEnvelope(w, http.StatusOK, o, "")
}

func (f *FakeProviders) getOrder(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[r.PathValue("id")]
	if !ok {
		writeEnvelope(w, http.StatusNotFound, nil, "Not found")
		return
	}
	writeEnvelope(w, http.StatusOK, o, "")
}

func (f *FakeProviders) sendEmail(w http.ResponseWriter, r *http.Request) {
	var msg SentEmail
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.emails = append(f.emails, msg)
	id := len(f.emails)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": "email_" + strconv.Itoa(id)})
}

func (f *FakeProviders) siteverify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	out := map[string]any{"success": strings.HasPrefix(r.PostForm.Get("response"), ChallengePassPrefix)}
	if !out["success"].(bool) {
		out["error-codes"] = []string{"invalid-input-response"}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func writeEnvelope(w http.ResponseWriter, status int, result any, message string) {
	body := map[string]any{"code": status}
	if result != nil {
		body["result"] = result
	}
	if message != "" {
		body["error"] = map[string]string{"reason": http.StatusText(status), "message": message}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
