package http

import (
	"encoding/json"
	"io"
	"net/http"

	"triviahost/internal/content"
	"triviahost/internal/domain"
)

// maxImportBytes bounds pasted imports; anything bigger is not a quiz.
const maxImportBytes = 1 << 20

type importResponse struct {
	Status    string            `json:"status"`
	Count     int               `json:"count"`
	Questions []domain.Question `json:"questions"`
}

// HandleImport parses pasted free text into question records. It never
// touches game state: clients review the parse result, then submit the
// approved questions over the socket. An empty parse is a success with
// count zero, not an error.
func HandleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// PostFormValue parses form bodies; plain-text bodies fall through.
	text := r.PostFormValue("raw_text")
	if text == "" {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		text = string(body)
	}

	questions := content.ParseText(text)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(importResponse{
		Status:    "success",
		Count:     len(questions),
		Questions: questions,
	})
}
