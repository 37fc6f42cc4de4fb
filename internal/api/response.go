package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	"fundaevento/plataforma/internal/logging"
	"fundaevento/plataforma/internal/models/dtos/responses"
	"fundaevento/plataforma/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondDomainError maps service/repository sentinels to HTTP statuses
// and user-facing messages. Anything unmatched is a store failure: logged
// and surfaced as a generic 500, never assumed to have succeeded.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		// The sentinel crosses entity boundaries (events, users,
		// registrations), so the message stays entity-neutral.
		respondWithError(w, http.StatusNotFound, constants.MsgNotFound)
	case errors.Is(err, services.ErrAlreadyRegistered):
		respondWithError(w, http.StatusConflict, constants.MsgAlreadyRegistered)
	case errors.Is(err, services.ErrEventNotOpen):
		respondWithError(w, http.StatusConflict, constants.MsgEventNotOpen)
	case errors.Is(err, services.ErrEventFull):
		respondWithError(w, http.StatusConflict, constants.MsgEventFull)
	case errors.Is(err, services.ErrNotRegistered):
		// Cancelling an enrollment that no longer exists is a missing
		// resource, not a conflict.
		respondWithError(w, http.StatusNotFound, constants.MsgNotRegistered)
	case errors.Is(err, services.ErrInvalidStatus):
		respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
	case errors.Is(err, services.ErrForbidden):
		respondWithError(w, http.StatusForbidden, constants.MsgNotEventOwner)
	case errors.Is(err, services.ErrUnknownRole), errors.Is(err, services.ErrAccountInactive):
		respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
	default:
		logging.Error("store operation failed", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, constants.MsgStoreFailure)
	}
}
