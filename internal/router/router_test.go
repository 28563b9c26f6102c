package router_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barkly-backend/internal/router"
)

func TestHTTP_EndToEnd_DogLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	alice := "user-alice"
	bob := "user-bob"

	// 1) Alice crea perro
	dogID := createEntity(t, ts.URL, alice, "/api/dogs", map[string]any{
		"name":            "Rocco",
		"profile_picture": "data:image/png;base64,xxx",
	})

	// 2) Bob no lo ve: para él no existe
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/dogs/"+dogID, bob, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for foreign dog, got %d", st)
		}
	}

	// 3) Update parcial conserva lo no mandado
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/dogs/"+dogID, alice, map[string]any{
			"name": "Rocco II",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update dog, got %d body=%s", st, string(body))
		}
		var resp struct {
			Name           string `json:"name"`
			ProfilePicture string `json:"profile_picture"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Name != "Rocco II" {
			t.Fatalf("expected updated name, got %q", resp.Name)
		}
		if resp.ProfilePicture == "" {
			t.Fatalf("partial update wiped profile_picture, body=%s", string(body))
		}
	}

	// 4) name vacío => 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/dogs/"+dogID, alice, map[string]any{
			"name": "",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty name, got %d", st)
		}
	}

	// 5) Bob tampoco puede borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/dogs/"+dogID, bob, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting foreign dog, got %d", st)
		}
	}

	// 6) Alice borra
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/dogs/"+dogID, alice, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete dog, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/dogs/"+dogID, alice, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Events_MutualExclusivityAndOwnership(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	alice := "user-alice"
	bob := "user-bob"

	dogID := createEntity(t, ts.URL, alice, "/api/dogs", map[string]any{"name": "Rocco"})
	customID := createEntity(t, ts.URL, alice, "/api/custom-events", map[string]any{"name": "Zoomies"})

	// ninguno de los dos => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/events", alice, map[string]any{
			"dog_id":      dogID,
			"date":        "2026-08-30T10:00:00Z",
			"time_of_day": "Morning",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without type, got %d body=%s", st, string(body))
		}
	}

	// ambos => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/events", alice, map[string]any{
			"dog_id":          dogID,
			"event_type":      "Poo",
			"custom_event_id": customID,
			"date":            "2026-08-30T10:00:00Z",
			"time_of_day":     "Morning",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 with both type and custom, got %d", st)
		}
	}

	// perro de otro => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/events", bob, map[string]any{
			"dog_id":      dogID,
			"event_type":  "Poo",
			"date":        "2026-08-30T10:00:00Z",
			"time_of_day": "Morning",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 creating event on foreign dog, got %d", st)
		}
	}

	// poo_quality fuera de rango => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/events", alice, map[string]any{
			"dog_id":      dogID,
			"event_type":  "Poo",
			"date":        "2026-08-30T10:00:00Z",
			"time_of_day": "Morning",
			"poo_quality": 9,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for poo_quality 9, got %d", st)
		}
	}

	eventID := createEntity(t, ts.URL, alice, "/api/events", map[string]any{
		"dog_id":      dogID,
		"event_type":  "Poo",
		"date":        "2026-08-30T10:00:00Z",
		"time_of_day": "Morning",
		"poo_quality": 4,
	})

	// Bob accede por id directo: el evento existe pero el perro no es suyo => 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/events/"+eventID, bob, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for foreign event, got %d", st)
		}
	}

	// filtro por perro ajeno => 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/events?dog_id="+dogID, bob, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 filtering foreign dog, got %d", st)
		}
	}

	// evento con custom event
	createEntity(t, ts.URL, alice, "/api/events", map[string]any{
		"dog_id":          dogID,
		"custom_event_id": customID,
		"date":            "2026-08-31T10:00:00Z",
		"time_of_day":     "Evening",
	})

	// orden: fecha desc
	{
		st, body := doReq(t, ts.URL, "GET", "/api/events", alice, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d", st)
		}
		var resp []struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal events: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 events, got %d", len(resp))
		}
		if resp[0].Date < resp[1].Date {
			t.Fatalf("expected date desc order, got %s before %s", resp[0].Date, resp[1].Date)
		}
	}

	// borrar el custom event cascadea su evento
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/custom-events/"+customID, alice, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete custom event, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/api/events", alice, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d", st)
		}
		var resp []json.RawMessage
		_ = json.Unmarshal(body, &resp)
		if len(resp) != 1 {
			t.Fatalf("expected 1 event after custom event cascade, got %d", len(resp))
		}
	}

	// borrar el perro cascadea todo
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/dogs/"+dogID, alice, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete dog, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/events/"+eventID, alice, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 event after dog cascade, got %d", st)
		}
	}
}

func TestHTTP_VetVisits_And_MedicineEvents(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	alice := "user-alice"
	bob := "user-bob"

	dogID := createEntity(t, ts.URL, alice, "/api/dogs", map[string]any{"name": "Rocco"})
	vetID := createEntity(t, ts.URL, alice, "/api/vets", map[string]any{
		"name":         "Dr. Paws",
		"contact_info": "555-0100",
	})
	medID := createEntity(t, ts.URL, alice, "/api/medicines", map[string]any{
		"name": "Apoquel",
		"type": "tablet",
	})

	// vet ajeno => 404 en create
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/vet-visits", bob, map[string]any{
			"dog_id":      dogID,
			"vet_id":      vetID,
			"date":        "2026-08-30",
			"time_of_day": "Morning",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 foreign refs, got %d", st)
		}
	}

	visitID := createEntity(t, ts.URL, alice, "/api/vet-visits", map[string]any{
		"dog_id":      dogID,
		"vet_id":      vetID,
		"date":        "2026-08-30",
		"time_of_day": "Afternoon",
		"notes":       "vacuna anual",
	})

	// dosage <= 0 => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/medicine-events", alice, map[string]any{
			"dog_id":      dogID,
			"medicine_id": medID,
			"date":        "2026-08-30",
			"time_of_day": "Morning",
			"dosage":      0,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for dosage 0, got %d", st)
		}
	}

	medEventID := createEntity(t, ts.URL, alice, "/api/medicine-events", map[string]any{
		"dog_id":      dogID,
		"medicine_id": medID,
		"date":        "2026-08-30",
		"time_of_day": "Morning",
		"dosage":      1.5,
	})

	// tipo de medicina inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/medicines", alice, map[string]any{
			"name": "Misterio",
			"type": "powder",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid medicine type, got %d", st)
		}
	}

	// acceso cruzado por id => 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/vet-visits/"+visitID, bob, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 foreign vet visit, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/api/medicine-events/"+medEventID, bob, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 deleting foreign medicine event, got %d", st)
		}
	}

	// borrar el vet cascadea sus visitas
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/vets/"+vetID, alice, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete vet, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/vet-visits/"+visitID, alice, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 visit after vet cascade, got %d", st)
		}
	}

	// borrar la medicina cascadea sus tomas
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/medicines/"+medID, alice, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete medicine, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/medicine-events/"+medEventID, alice, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 medicine event after cascade, got %d", st)
		}
	}
}

func TestHTTP_AuthRequired(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// sin X-Debug-User-ID no hay identidad
	st, body := doReq(t, ts.URL, "GET", "/api/dogs", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d body=%s", st, string(body))
	}

	// health es público
	st, body = doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	var resp struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Status != "healthy" {
		t.Fatalf("expected healthy status, body=%s", string(body))
	}
}

func TestHTTP_UploadImage(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	alice := "user-alice"

	// PNG real chiquito
	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	st, body := uploadFile(t, ts.URL, alice, "photo.png", "image/png", img.Bytes())
	if st != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d body=%s", st, string(body))
	}
	var resp struct {
		Data string `json:"data"`
	}
	_ = json.Unmarshal(body, &resp)
	if !strings.HasPrefix(resp.Data, "data:image/png;base64,") {
		t.Fatalf("expected data URI, got %q", resp.Data)
	}

	// content type no permitido
	st, _ = uploadFile(t, ts.URL, alice, "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for pdf, got %d", st)
	}

	// content type de imagen pero bytes basura
	st, _ = uploadFile(t, ts.URL, alice, "fake.png", "image/png", []byte("not an image"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for garbage bytes, got %d", st)
	}

	// sin auth
	st, _ = uploadFile(t, ts.URL, "", "photo.png", "image/png", img.Bytes())
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 upload without identity, got %d", st)
	}
}

func TestHTTP_AuthMe(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	alice := "user-alice"

	// en modo dev el usuario se materializa al pedirlo
	st, body := doReq(t, ts.URL, "GET", "/api/auth/me", alice, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 auth/me, got %d body=%s", st, string(body))
	}
	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID != alice {
		t.Fatalf("expected id %q, got %q", alice, resp.ID)
	}

	// sin google configurado, /auth/google avisa
	st, _ = doReq(t, ts.URL, "POST", "/api/auth/google", "", map[string]any{"token": "x"})
	if st != http.StatusNotImplemented {
		t.Fatalf("expected 501 google auth in dev mode, got %d", st)
	}

	// delete account arrastra los datos
	dogID := createEntity(t, ts.URL, alice, "/api/dogs", map[string]any{"name": "Rocco"})
	st, _ = doReq(t, ts.URL, "DELETE", "/api/auth/me", alice, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete account, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/dogs/"+dogID, alice, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 dog after account delete, got %d", st)
	}
}

func createEntity(t *testing.T, baseURL, userID, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func uploadFile(t *testing.T, baseURL, debugUserID, filename, contentType string, content []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL+"/api/upload/image", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
