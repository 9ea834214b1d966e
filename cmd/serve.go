package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/model"
	"github.com/jsphweid/munotes/note"
	"github.com/jsphweid/munotes/util"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long:  `Serves note, chord, transpose and identify lookups over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/note/{name}", HandleNote).Methods("GET")
	router.HandleFunc("/midi/{number}", HandleMidi).Methods("GET")
	router.HandleFunc("/chord/{name}", HandleChord).Methods("GET")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	return router
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Println("Could not encode response: " + err.Error())
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func readBody(r *http.Request, v interface{}) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Wrap(err, "reading request body")
	}
	if err := json.Unmarshal(reqBody, v); err != nil {
		return errors.Wrap(err, "could not unmarshal request body")
	}
	return nil
}

// octaveParam returns ok=false when the query has no octave.
func octaveParam(r *http.Request) (int, bool, error) {
	raw := r.URL.Query().Get("octave")
	if raw == "" {
		return 0, false, nil
	}
	octave, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.Errorf("octave must be an integer, got %q", raw)
	}
	return octave, true, nil
}

func toNoteResponse(n note.Note) model.NoteResponse {
	res := model.NoteResponse{Name: n.Name(), Index: n.Index(), Display: n.String()}
	if octave, ok := n.Octave(); ok {
		num, _ := n.Midi()
		freq, _ := n.Frequency()
		res.Octave = &octave
		res.Midi = &num
		res.Frequency = &freq
	}
	return res
}

func toChordResponse(c chord.Chord) model.ChordResponse {
	members := c.Members()
	notes := make([]model.NoteResponse, len(members))
	for i, m := range members {
		notes[i] = toNoteResponse(m)
	}
	return model.ChordResponse{
		Name:      c.Name(),
		Root:      toNoteResponse(c.Root()),
		Type:      c.Type(),
		Interval:  c.Intervals(),
		NoteNames: c.NoteNames(),
		Indices:   c.Indices(),
		Members:   notes,
	}
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	octave, hasOctave, err := octaveParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	name := mux.Vars(r)["name"]
	var n note.Note
	if hasOctave {
		n, err = note.New(name, octave)
	} else {
		n, err = note.Parse(name)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["number"]
	num, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, errors.Wrapf(note.ErrInvalidMidiNumber, "%q", raw))
		return
	}
	n, err := note.FromMidi(num)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	octave, hasOctave, err := octaveParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	name := mux.Vars(r)["name"]
	var c chord.Chord
	if hasOctave {
		c, err = chord.New(name, octave)
	} else {
		c, err = chord.Parse(name)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChordResponse(c))
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if err := readBody(r, &input); err != nil {
		writeError(w, err)
		return
	}
	ns, err := note.ParseNotes(input.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := ns.Transpose(input.Semitones); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransposeResponse{Items: ns.Strings()})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := readBody(r, &input); err != nil {
		writeError(w, err)
		return
	}
	keys := make([]uint8, 0, len(input.Keys))
	for _, k := range util.Dedupe(input.Keys) {
		if k < note.MinMidi || k > note.MaxMidi {
			writeError(w, errors.Wrapf(note.ErrInvalidMidiNumber, "%d", k))
			return
		}
		keys = append(keys, uint8(k))
	}
	chords := chord.Identify(keys)
	if chords == nil {
		chords = []string{}
	}
	writeJSON(w, http.StatusOK, model.IdentifyResponse{Chords: chords})
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	log.Printf("listening on %v\n", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
