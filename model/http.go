package model

type NoteResponse struct {
	Name      string   `json:"name"`
	Index     int      `json:"idx"`
	Octave    *int     `json:"octave"`
	Midi      *int     `json:"midi_number"`
	Frequency *float64 `json:"freq"`
	Display   string   `json:"display"`
}

type ChordResponse struct {
	Name      string         `json:"name"`
	Root      NoteResponse   `json:"root"`
	Type      string         `json:"type"`
	Interval  []int          `json:"interval"`
	NoteNames []string       `json:"note_names"`
	Indices   []int          `json:"idx"`
	Members   []NoteResponse `json:"notes"`
}

type TransposeRequestBody struct {
	Items     []string `json:"items"`
	Semitones int      `json:"semitones"`
}

type TransposeResponse struct {
	Items []string `json:"items"`
}

type IdentifyRequestBody struct {
	Keys []int `json:"keys"`
}

type IdentifyResponse struct {
	Chords []string `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
