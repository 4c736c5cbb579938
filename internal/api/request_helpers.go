package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/sahayak-api/internal/api/shared"
	"github.com/phrazzld/sahayak-api/internal/domain"
)

// requireIdentity extracts the signed-in user's identity placed in the
// context by the auth middleware. It writes a 401 and returns false when the
// identity is missing or anonymous.
func requireIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	identity, ok := shared.GetIdentity(r.Context())
	if !ok || identity.Anonymous() {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return domain.Identity{}, false
	}
	return identity, true
}

// decodeAndValidate decodes the JSON body into v and validates it, writing a
// 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			HandleAPIError(w, r, err, "")
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
