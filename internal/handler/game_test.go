package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
	"github.com/hypez33/grow-lab-zen-sub000/internal/handler"
	"github.com/hypez33/grow-lab-zen-sub000/internal/persistence"
	"github.com/hypez33/grow-lab-zen-sub000/internal/testing/rngtest"
)

func newRouter(t *testing.T) (http.Handler, game.Service) {
	t.Helper()
	cat := catalog.MustDefault()
	codec := persistence.NewCodec(func() *domain.State { return cat.NewState(0) })
	svc := game.NewService(
		game.NewEngine(cat, rngtest.Fixed{F: 0.5}, nil, nil),
		persistence.NewMemoryRepository(codec),
		codec, nil, "test",
		func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	)

	r := chi.NewRouter()
	handler.NewGameHandler(svc).Routes(r)
	return r, svc
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) domain.ActionResult {
	t.Helper()
	var res domain.ActionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestGameHandler_GetState(t *testing.T) {
	h, _ := newRouter(t)

	w := do(t, h, http.MethodGet, "/state", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var st domain.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, 50, st.Coins)
	assert.Len(t, st.GrowSlots, 12)
}

func TestGameHandler_Actions(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		body        any
		wantStatus  int
		wantSuccess bool
		wantReason  string
	}{
		{"buy seed", http.MethodPost, "/shop/seeds", handler.IDRequest{ID: "white_widow"}, http.StatusOK, true, ""},
		{"unknown seed", http.MethodPost, "/shop/seeds", handler.IDRequest{ID: "nope"}, http.StatusUnprocessableEntity, false, domain.ErrMsgSeedNotFound},
		{"buy upgrade", http.MethodPost, "/shop/upgrades", handler.UpgradeRequest{Kind: "growth_speed"}, http.StatusOK, true, ""},
		{"unlock slot too expensive", http.MethodPost, "/shop/slots", nil, http.StatusUnprocessableEntity, false, domain.ErrMsgInsufficientFunds},
		{"water locked slot", http.MethodPost, "/grow/water", handler.SlotRequest{Slot: 5}, http.StatusUnprocessableEntity, false, ""},
		{"auto-sell", http.MethodPut, "/sales/auto-sell", handler.AutoSellRequest{Enabled: true, MinQuality: 20}, http.StatusOK, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newRouter(t)

			w := do(t, h, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			res := decodeResult(t, w)
			assert.Equal(t, tt.wantSuccess, res.Success)
			if tt.wantReason != "" {
				assert.Contains(t, res.Reason, tt.wantReason)
			}
		})
	}
}

func TestGameHandler_Validation(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   any
		fields []string
	}{
		{"missing seed id", "/grow/plant", handler.PlantRequest{Slot: 0}, []string{"seedid"}},
		{"negative slot", "/grow/tap", handler.SlotRequest{Slot: -1}, []string{"slot"}},
		{"zero grams", "/sales/sell", handler.SellRequest{BudID: "b", ChannelID: "street"}, []string{"grams"}},
		{"unknown upgrade", "/shop/upgrades", handler.UpgradeRequest{Kind: "warp_drive"}, []string{"kind"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newRouter(t)
			before := svc.Snapshot()

			w := do(t, h, http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp handler.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			for _, f := range tt.fields {
				assert.Contains(t, resp.Fields, f)
			}
			assert.Equal(t, before, svc.Snapshot())
		})
	}
}

func TestGameHandler_MalformedJSON(t *testing.T) {
	h, _ := newRouter(t)

	w := do(t, h, http.MethodPost, "/shop/seeds", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), handler.ErrMsgInvalidRequest)
}

func TestGameHandler_ExportImport(t *testing.T) {
	h, svc := newRouter(t)
	require.True(t, svc.BuySeed(t.Context(), "white_widow").Success)

	w := do(t, h, http.MethodGet, "/save/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var exp handler.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exp))
	require.NotEmpty(t, exp.Data)

	other, otherSvc := newRouter(t)
	w = do(t, other, http.MethodPost, "/save/import", handler.ImportRequest{Data: exp.Data})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 40, otherSvc.Snapshot().Coins)

	w = do(t, other, http.MethodPost, "/save/import", handler.ImportRequest{Data: "garbage!"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 40, otherSvc.Snapshot().Coins)
}

func TestGameHandler_ManualSave(t *testing.T) {
	h, _ := newRouter(t)

	w := do(t, h, http.MethodPost, "/save/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResult(t, w).Success)
}
