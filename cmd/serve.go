package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordcoach/chord"
	"github.com/jsphweid/chordcoach/constants"
	"github.com/jsphweid/chordcoach/db"
	"github.com/jsphweid/chordcoach/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the trainer API",
	Long:  `Runs the trainer API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func HandleAllChords(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(registry.All())
}

func HandleChordsForDifficulty(w http.ResponseWriter, r *http.Request) {
	difficulty := mux.Vars(r)["difficulty"]
	chords := registry.ChordsFor(difficulty)
	if chords == nil {
		writeError(w, 404, "No such difficulty: "+difficulty)
		return
	}
	json.NewEncoder(w).Encode(chords)
}

func HandleCheck(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.CheckRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	var targetChord *model.ChordData
	targetNotes := input.TargetNotes
	if input.TargetId != nil {
		c, ok := registry.ById(*input.TargetId)
		if !ok {
			writeError(w, 404, fmt.Sprintf("No chord with id %v", *input.TargetId))
			return
		}
		targetChord = &c
		if len(targetNotes) == 0 {
			targetNotes = c.Notes
		}
	}

	match := chord.CheckMatch(input.Notes, targetNotes, targetChord)
	json.NewEncoder(w).Encode(model.CheckResponse{Match: match})
}

func HandlePutAttempt(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var attempt model.Attempt
	err = json.Unmarshal(reqBody, &attempt)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if attempt.SessionId == "" {
		attempt.SessionId = uuid.New().String()
	}

	if err = db.PutAttempt(attempt); err != nil {
		fmt.Printf("Could not store attempt: %v\n", err)
		writeError(w, 502, "Could not store attempt")
		return
	}
	json.NewEncoder(w).Encode(attempt)
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionId := mux.Vars(r)["session"]
	score, err := db.GetSession(sessionId)
	if err != nil {
		fmt.Printf("Could not fetch session %v: %v\n", sessionId, err)
		writeError(w, 502, "Could not fetch session")
		return
	}
	json.NewEncoder(w).Encode(score)
}

func serve() {
	LoadRegistry()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", HandleAllChords).Methods("GET")
	router.HandleFunc("/chords/{difficulty}", HandleChordsForDifficulty).Methods("GET")
	router.HandleFunc("/check", HandleCheck).Methods("POST")
	router.HandleFunc("/scores", HandlePutAttempt).Methods("POST")
	router.HandleFunc("/scores/{session}", HandleGetSession).Methods("GET")

	// the piano UI is served from a different origin
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
