package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/models"
)

const contentTypeJSON = "application/json"

// WriteJSON marshals data and sends it with statusCode. When data cannot be
// marshalled the client gets a 500 message body and the marshalling error is
// returned.
//
//	utils.WriteJSON(w, post, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		body, _ = json.Marshal(models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)})
		statusCode = http.StatusInternalServerError
		err = fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	n, writeErr := w.Write(body)
	if err != nil {
		return n, err
	}
	return n, writeErr
}

// WriteMessage answers with a {"message": ...} JSON body and statusCode.
// Handlers use it for every error response and for plain acknowledgements.
//
//	utils.WriteMessage(w, "user not found", http.StatusNotFound)
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
