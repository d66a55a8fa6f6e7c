package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/itssocoldhere/glowbio/internal/ui"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 200 << 10

// bindJSON decodes the request body into dst. On failure it writes a 400 with
// message and returns false.
func bindJSON(w http.ResponseWriter, r *http.Request, dst any, message string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ui.Error(w, http.StatusBadRequest, message)
		return false
	}
	return true
}

// flexString accepts a JSON string or number. Front ends send Discord ids
// either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return strings.TrimSpace(string(f))
}
