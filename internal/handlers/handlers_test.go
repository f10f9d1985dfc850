package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/advisor"
	"github.com/lexdesk-dev/lexdesk/internal/handlers"
	"github.com/lexdesk-dev/lexdesk/internal/router"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "lexdesk.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	h := handlers.New(st, advisor.New(), filepath.Join(dir, "backups"))
	return router.New(h)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response %q is not JSON: %v", w.Body.String(), err)
	}
	return w, envelope
}

func TestLoginReturnsSanitizedUser(t *testing.T) {
	r := newTestServer(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope["success"] != true {
		t.Fatalf("success = %v, want true", envelope["success"])
	}

	user, okCast := envelope["user"].(map[string]interface{})
	if !okCast {
		t.Fatalf("user payload missing: %v", envelope)
	}
	if user["username"] != "admin" {
		t.Errorf("username = %v, want admin", user["username"])
	}
	if strings.Contains(strings.ToLower(w.Body.String()), "hash") {
		t.Errorf("response leaks the password hash: %s", w.Body.String())
	}
}

func TestLoginFailureIsIdenticalForBothCauses(t *testing.T) {
	r := newTestServer(t)

	unknown, unknownEnv := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"username": "nobody",
		"password": "admin123",
	})
	wrong, wrongEnv := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "not-the-password",
	})

	if unknown.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d and %d, want 401 for both", unknown.Code, wrong.Code)
	}
	if unknownEnv["message"] != wrongEnv["message"] {
		t.Errorf("failure messages differ: %v vs %v", unknownEnv["message"], wrongEnv["message"])
	}
}

func TestClientCreateThenListRoundTrip(t *testing.T) {
	r := newTestServer(t)

	_, created := doJSON(t, r, http.MethodPost, "/api/clients", map[string]string{
		"name":    "Bravo & Sons",
		"phone":   "555-0102",
		"email":   "office@bravo.test",
		"address": "4 Court Rd",
	})
	if created["success"] != true {
		t.Fatalf("add-client failed: %v", created)
	}

	_, listed := doJSON(t, r, http.MethodGet, "/api/clients", nil)
	clients, okCast := listed["clients"].([]interface{})
	if !okCast || len(clients) != 1 {
		t.Fatalf("expected one listed client, got %v", listed["clients"])
	}

	got := clients[0].(map[string]interface{})
	if got["name"] != "Bravo & Sons" || got["phone"] != "555-0102" ||
		got["email"] != "office@bravo.test" || got["address"] != "4 Court Rd" {
		t.Errorf("listed client does not match input: %v", got)
	}
	if got["id"] == nil || got["id"].(float64) == 0 {
		t.Errorf("expected an assigned id, got %v", got["id"])
	}
}

func TestDuplicateCaseNumberSurfacesStorageError(t *testing.T) {
	r := newTestServer(t)

	_, first := doJSON(t, r, http.MethodPost, "/api/cases", map[string]string{"case_number": "C-1"})
	if first["success"] != true {
		t.Fatalf("add-case failed: %v", first)
	}

	w, second := doJSON(t, r, http.MethodPost, "/api/cases", map[string]string{"case_number": "C-1"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if second["success"] != false {
		t.Fatalf("success = %v, want false", second["success"])
	}
	message, _ := second["message"].(string)
	if !strings.Contains(message, "constraint") {
		t.Errorf("message %q does not carry the storage engine's text", message)
	}
}

func TestDeleteMissingClientIsFailureEnvelope(t *testing.T) {
	r := newTestServer(t)

	w, envelope := doJSON(t, r, http.MethodDelete, "/api/clients/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if envelope["success"] != false {
		t.Errorf("success = %v, want false", envelope["success"])
	}
}

func TestStatsEnvelope(t *testing.T) {
	r := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/clients", map[string]string{"name": "Solo"})

	_, envelope := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	stats, okCast := envelope["stats"].(map[string]interface{})
	if !okCast {
		t.Fatalf("stats payload missing: %v", envelope)
	}
	if stats["active_clients"].(float64) != 1 {
		t.Errorf("active_clients = %v, want 1", stats["active_clients"])
	}
	if stats["cases_count"].(float64) != 0 {
		t.Errorf("cases_count = %v, want 0", stats["cases_count"])
	}
}

func TestManualBackupAcknowledgesWithPath(t *testing.T) {
	r := newTestServer(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/backup", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	path, _ := envelope["path"].(string)
	if !strings.Contains(path, "backup-") || !strings.HasSuffix(path, ".db") {
		t.Errorf("path = %q, want a timestamped backup file", path)
	}
}

func TestAskWithoutCredentialIsConfigurationFailure(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	r := newTestServer(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/ask", map[string]string{
		"prompt": "Can a verbal lease be enforced?",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	message, _ := envelope["message"].(string)
	if !strings.Contains(message, "not configured") {
		t.Errorf("message = %q, want the configuration error", message)
	}
}

func TestDeletedClientLeavesCasesUnassigned(t *testing.T) {
	r := newTestServer(t)

	_, created := doJSON(t, r, http.MethodPost, "/api/clients", map[string]string{"name": "Fleeting"})
	client := created["client"].(map[string]interface{})
	clientID := int(client["id"].(float64))

	doJSON(t, r, http.MethodPost, "/api/cases", map[string]interface{}{
		"case_number": "C-77",
		"client_id":   clientID,
	})

	doJSON(t, r, http.MethodDelete, "/api/clients/"+strconv.Itoa(clientID), nil)

	_, listed := doJSON(t, r, http.MethodGet, "/api/cases", nil)
	cases := listed["cases"].([]interface{})
	if len(cases) != 1 {
		t.Fatalf("expected the case to survive, got %v", listed["cases"])
	}
	got := cases[0].(map[string]interface{})
	if got["client_name"] != "Unassigned" {
		t.Errorf("client_name = %v, want Unassigned", got["client_name"])
	}
	if got["client_id"] != nil {
		t.Errorf("client_id = %v, want null", got["client_id"])
	}
}
