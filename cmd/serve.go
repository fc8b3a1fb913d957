package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/cristijiru/mozart/constants"
	"github.com/cristijiru/mozart/midi"
	"github.com/cristijiru/mozart/model"
	"github.com/cristijiru/mozart/note"
	"github.com/cristijiru/mozart/scale"
	"github.com/cristijiru/mozart/score"
	"github.com/cristijiru/mozart/transpose"
	"github.com/cristijiru/mozart/util"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// The engine itself is synchronous; this store owns the only lock, at the
// application boundary.
var (
	storeMu sync.Mutex
	scores  = make(map[string]*score.Score)
	persist = debounce.New(500 * time.Millisecond)
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the score API",
	Long:  `Serves the HTTP JSON API consumed by the editor UI.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles loads every saved score from the data dir into the store,
// keyed by filename.
func LoadServeFiles() {
	storeMu.Lock()
	defer storeMu.Unlock()

	for _, path := range util.GatherAllScorePaths(constants.GetDataDir()) {
		s, err := score.Load(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		id := strings.TrimSuffix(filepath.Base(path), ".mozart.json")
		scores[id] = s
	}
	fmt.Printf("Loaded %v scores from %v\n", len(scores), constants.GetDataDir())
}

// saveAll flushes the store to the data dir. Runs debounced after mutations.
func saveAll() {
	storeMu.Lock()
	defer storeMu.Unlock()

	dir := constants.GetDataDir()
	os.MkdirAll(dir, 0777)
	for id, s := range scores {
		path := filepath.Join(dir, id+".mozart.json")
		if err := s.Save(path); err != nil {
			fmt.Printf("Could not save %v because: %v\n", path, err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleCreateScore(w http.ResponseWriter, r *http.Request) {
	var input model.CreateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}
	if input.Title == "" {
		input.Title = "Untitled"
	}

	storeMu.Lock()
	id := uuid.New().String()
	s := score.WithTitle(input.Title)
	scores[id] = s
	storeMu.Unlock()
	persist(saveAll)

	json.NewEncoder(w).Encode(model.ScoreResponse{Id: id, Score: s})
}

func HandleListScores(w http.ResponseWriter, r *http.Request) {
	storeMu.Lock()
	ids := util.GetKeysSorted(scores)
	storeMu.Unlock()

	json.NewEncoder(w).Encode(ids)
}

func HandleGetScore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	storeMu.Lock()
	s, ok := scores[id]
	storeMu.Unlock()
	if !ok {
		http.Error(w, "No such score", 404)
		return
	}

	json.NewEncoder(w).Encode(model.ScoreResponse{Id: id, Score: s})
}

func HandleDeleteScore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	storeMu.Lock()
	_, ok := scores[id]
	delete(scores, id)
	storeMu.Unlock()
	if !ok {
		http.Error(w, "No such score", 404)
		return
	}
	os.Remove(filepath.Join(constants.GetDataDir(), id+".mozart.json"))

	w.WriteHeader(204)
}

func HandleSetMelody(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input model.MelodyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	storeMu.Lock()
	s, ok := scores[id]
	if !ok {
		storeMu.Unlock()
		http.Error(w, "No such score", 404)
		return
	}
	err := s.SetMelody(input.Melody)
	storeMu.Unlock()
	if err != nil {
		writeError(w, 400, err)
		return
	}
	persist(saveAll)

	json.NewEncoder(w).Encode(model.ScoreResponse{Id: id, Score: s})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input model.TransposeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	storeMu.Lock()
	defer storeMu.Unlock()
	s, ok := scores[id]
	if !ok {
		http.Error(w, "No such score", 404)
		return
	}

	var mode transpose.Mode
	switch {
	case input.Semitones != nil:
		mode = transpose.Chromatic(*input.Semitones)
	case input.Degrees != nil && input.TargetScale != "":
		target, err := scale.Parse(input.TargetScale)
		if err != nil {
			writeError(w, 400, err)
			return
		}
		mode = transpose.DiatonicWithKeyChange(s.Settings.Key, target, *input.Degrees)
	case input.Degrees != nil:
		mode = transpose.Diatonic(s.Settings.Key, *input.Degrees)
	default:
		http.Error(w, "Need semitones or degrees", 400)
		return
	}

	if err := s.Transpose(mode); err != nil {
		writeError(w, 400, err)
		return
	}
	persist(saveAll)

	json.NewEncoder(w).Encode(model.ScoreResponse{Id: id, Score: s})
}

func HandleExportMidi(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	storeMu.Lock()
	s, ok := scores[id]
	storeMu.Unlock()
	if !ok {
		http.Error(w, "No such score", 404)
		return
	}

	data, err := midi.Export(s)
	if err != nil {
		writeError(w, 500, err)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Write(data)
}

func HandleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.MelodyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	notes, err := note.ParseMelody(input.Melody)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	detected, ok := transpose.DetectScale(notes)
	if !ok {
		http.Error(w, "No notes, nothing to detect", 400)
		return
	}

	json.NewEncoder(w).Encode(model.DetectResponse{
		Root:      detected.Root.String(),
		ScaleType: detected.Type.Name(),
	})
}

func HandleParseMelody(w http.ResponseWriter, r *http.Request) {
	var input model.MelodyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	notes, err := note.ParseMelody(input.Melody)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	json.NewEncoder(w).Encode(model.MelodyResponse{Notes: notes})
}

// NewRouter wires every handler; the e2e tests drive it directly.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scores", HandleCreateScore).Methods("POST")
	router.HandleFunc("/scores", HandleListScores).Methods("GET")
	router.HandleFunc("/scores/{id}", HandleGetScore).Methods("GET")
	router.HandleFunc("/scores/{id}", HandleDeleteScore).Methods("DELETE")
	router.HandleFunc("/scores/{id}/notes", HandleSetMelody).Methods("POST")
	router.HandleFunc("/scores/{id}/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/scores/{id}/midi", HandleExportMidi).Methods("GET")
	router.HandleFunc("/detect", HandleDetect).Methods("POST")
	router.HandleFunc("/melody", HandleParseMelody).Methods("POST")
	return router
}

func serve() {
	LoadServeFiles()

	// the editor UI runs in a browser shell on another origin
	handler := cors.AllowAll().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":8080", handler))
}
