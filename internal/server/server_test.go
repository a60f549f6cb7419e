package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)
	return rec
}

func TestHandleShantenReportsTenpaiAndUkiere(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv, "/shanten", shantenRequest{Hand: "123m11222p23456s"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp shantenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Shanten)
	assert.NotEmpty(t, resp.Ukiere)
}

func TestHandleShantenRejectsBadHandText(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv, "/shanten", shantenRequest{Hand: "not-a-hand"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreSevenPairsRon(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv, "/score", scoreRequest{
		Hand: "44556m4488p3399s", WinningTile: "6m",
		Closed: true, RoundWind: "east", SeatWind: "east",
		Source: "discard",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Han)
	assert.Equal(t, 25, resp.Fu)
}

func TestHandleScoreNoYakuReturnsZero(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv, "/score", scoreRequest{
		Hand: "123m11222p23456s", WinningTile: "1s",
		Closed: true, RoundWind: "east", SeatWind: "east", Source: "discard",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Han)
	assert.Equal(t, 0, resp.Fu)
	assert.Equal(t, 0, resp.Points.Total)
}

func TestCorrelationIDGeneratedWhenAbsent(t *testing.T) {
	srv := New(nil)
	rec := postJSON(t, srv, "/shanten", shantenRequest{Hand: "123m11222p23456s"})
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
