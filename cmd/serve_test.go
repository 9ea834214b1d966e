package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/munotes/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method string, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHandleNote(t *testing.T) {
	resp := do(t, http.MethodGet, "/note/A4", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var n model.NoteResponse
	decode(t, resp, &n)

	assert := assert.New(t)
	assert.Equal("A", n.Name)
	assert.Equal(9, n.Index)
	require.NotNil(t, n.Octave)
	assert.Equal(4, *n.Octave)
	assert.Equal(69, *n.Midi)
	assert.InDelta(440.0, *n.Frequency, 1e-9)
	assert.Equal("A4", n.Display)
}

func TestHandleNoteWithOctaveQuery(t *testing.T) {
	var n model.NoteResponse
	decode(t, do(t, http.MethodGet, "/note/Bb?octave=3", nil), &n)
	assert.Equal(t, "A#3", n.Display)
	assert.Equal(t, 58, *n.Midi)
}

func TestHandleNoteWithoutOctave(t *testing.T) {
	var n model.NoteResponse
	decode(t, do(t, http.MethodGet, "/note/Db", nil), &n)

	assert := assert.New(t)
	assert.Equal("C#", n.Name)
	assert.Nil(n.Octave)
	assert.Nil(n.Midi)
	assert.Nil(n.Frequency)
}

func TestHandleNoteRejectsBadInput(t *testing.T) {
	for _, target := range []string{"/note/H", "/note/A?octave=x", "/note/G?octave=10"} {
		resp := do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)

		var e model.ErrorResponse
		decode(t, resp, &e)
		assert.NotEmpty(t, e.Error, target)
	}
}

func TestHandleMidi(t *testing.T) {
	var n model.NoteResponse
	decode(t, do(t, http.MethodGet, "/midi/61", nil), &n)
	assert.Equal(t, "C#4", n.Display)

	resp := do(t, http.MethodGet, "/midi/128", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, http.MethodGet, "/midi/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleChord(t *testing.T) {
	var c model.ChordResponse
	decode(t, do(t, http.MethodGet, "/chord/A%23m7", nil), &c)

	assert := assert.New(t)
	assert.Equal("A#m7", c.Name)
	assert.Equal("m7", c.Type)
	assert.Equal([]int{0, 3, 7, 10}, c.Interval)
	assert.Equal([]string{"A#", "C#", "F", "G#"}, c.NoteNames)
	assert.Equal([]int{10, 1, 5, 8}, c.Indices)
	assert.Nil(c.Root.Octave)
}

func TestHandleChordWithOctave(t *testing.T) {
	var c model.ChordResponse
	decode(t, do(t, http.MethodGet, "/chord/C?octave=4", nil), &c)

	displays := make([]string, len(c.Members))
	for i, m := range c.Members {
		displays[i] = m.Display
	}
	assert.Equal(t, []string{"C4", "E4", "G4"}, displays)

	resp := do(t, http.MethodGet, "/chord/Cxyz", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleTranspose(t *testing.T) {
	body := model.TransposeRequestBody{Items: []string{"A4", "r", "C#"}, Semitones: 3}
	var res model.TransposeResponse
	decode(t, do(t, http.MethodPost, "/transpose", body), &res)
	assert.Equal(t, []string{"C5", "r", "E"}, res.Items)
}

func TestHandleTransposeOutOfRange(t *testing.T) {
	body := model.TransposeRequestBody{Items: []string{"C4", "G9"}, Semitones: 1}
	resp := do(t, http.MethodPost, "/transpose", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e model.ErrorResponse
	decode(t, resp, &e)
	assert.Contains(t, e.Error, "transposition out of range")
}

func TestHandleTransposeBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transpose", strings.NewReader("{"))
	w := httptest.NewRecorder()
	HandleTranspose(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleIdentify(t *testing.T) {
	var res model.IdentifyResponse
	decode(t, do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{Keys: []int{60, 64, 67}}), &res)
	assert.Equal(t, []string{"C"}, res.Chords)

	decode(t, do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{Keys: []int{60, 61}}), &res)
	assert.Equal(t, []string{}, res.Chords)

	resp := do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{Keys: []int{60, 200}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWrongMethodIsRejected(t *testing.T) {
	resp := do(t, http.MethodGet, "/transpose", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
