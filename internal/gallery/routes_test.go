package gallery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, testCatalog(t), zap.NewNop())
	return r
}

func TestApply(t *testing.T) {
	c := testCatalog(t)

	s := Apply(c, State{}, Action{Op: OpFilter, Category: "Stamped"})
	assert.Equal(t, State{Category: "Stamped"}, s)

	s = Apply(c, s, Action{Op: OpOpen, ID: 3})
	s = Apply(c, s, Action{Op: OpNext})
	assert.Equal(t, 8, s.Selected)

	s = Apply(c, s, Action{Op: OpNext})
	assert.Equal(t, 3, s.Selected)

	s = Apply(c, s, Action{Op: OpClose})
	assert.Equal(t, State{Category: "Stamped"}, s)
}

func TestRestoreDropsInvalidSelection(t *testing.T) {
	c := testCatalog(t)
	b := Restore(c, State{Category: "Patios", Selected: 3})
	assert.Equal(t, "Patios", b.Category())
	assert.False(t, b.IsOpen())

	b = Restore(c, State{Category: "Nope", Selected: 3})
	assert.Equal(t, AllCategories, b.Category())
	assert.Equal(t, 3, selectedID(b))
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{
		"filter": OpFilter, "open": OpOpen, "close": OpClose,
		"next": OpNext, "previous": OpPrevious, "prev": OpPrevious, " NEXT ": OpNext,
	} {
		got, err := ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseOp("jump")
	assert.Error(t, err)
}

func TestStateQueryRoundTrip(t *testing.T) {
	s := State{Category: "Stamped", Selected: 8}
	assert.Equal(t, s, StateFromQuery(s.Query()))
	assert.Empty(t, State{Category: AllCategories}.Query().Encode())

	got := StateFromQuery(url.Values{"item": {"abc"}})
	assert.Zero(t, got.Selected)
}

func TestRoute_Snapshot(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/?category=Stamped&item=8", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var snap Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, []int{3, 8}, ids(snap.Items))
	require.True(t, snap.Viewer.Open)
	assert.Equal(t, 8, snap.Viewer.Item.ID)
}

func TestRoute_Transition(t *testing.T) {
	r := setupRouter(t)

	body := `{"state":{"category":"All","selected":6},"action":{"op":"previous"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/gallery/transition", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp transitionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.State.Selected)
	assert.Equal(t, 5, resp.Snapshot.Viewer.Item.ID)
}

func TestRoute_TransitionRejectsUnknownOp(t *testing.T) {
	r := setupRouter(t)

	body := `{"state":{},"action":{"op":"shuffle"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/gallery/transition", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/gallery/transition", strings.NewReader("{"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func readSnapshot(t *testing.T, conn *websocket.Conn) liveMessage {
	t.Helper()
	var msg liveMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestLiveViewer(t *testing.T) {
	server := httptest.NewServer(setupRouter(t))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/gallery?category=Stamped"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	initial := readSnapshot(t, conn)
	assert.Equal(t, "snapshot", initial.Type)
	assert.Equal(t, []int{3, 8}, ids(initial.Snapshot.Items))
	assert.False(t, initial.Snapshot.Viewer.Open)

	require.NoError(t, conn.WriteJSON(liveRequest{Op: "open", ID: 3}))
	msg := readSnapshot(t, conn)
	assert.Equal(t, 3, msg.Snapshot.Viewer.Item.ID)

	require.NoError(t, conn.WriteJSON(liveRequest{Op: "next"}))
	msg = readSnapshot(t, conn)
	assert.Equal(t, 8, msg.Snapshot.Viewer.Item.ID)
	assert.Equal(t, 8, msg.State.Selected)

	require.NoError(t, conn.WriteJSON(liveRequest{Op: "next"}))
	msg = readSnapshot(t, conn)
	assert.Equal(t, 3, msg.Snapshot.Viewer.Item.ID)

	require.NoError(t, conn.WriteJSON(liveRequest{Op: "close"}))
	msg = readSnapshot(t, conn)
	assert.False(t, msg.Snapshot.Viewer.Open)
}

func TestLiveViewerReportsBadCommands(t *testing.T) {
	server := httptest.NewServer(setupRouter(t))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/gallery"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	readSnapshot(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	msg := readSnapshot(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "invalid message format", msg.Error)

	require.NoError(t, conn.WriteJSON(liveRequest{Op: "teleport"}))
	msg = readSnapshot(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "teleport")
}
