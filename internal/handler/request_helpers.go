package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// handleAction decodes REQ, runs the action and writes its result
func handleAction[REQ any](opName string, action func(context.Context, REQ) domain.ActionResult) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req REQ
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}
		res := action(r.Context(), req)
		if !res.Success {
			logger.FromContext(r.Context()).Debug(LogMsgActionRejected, "action", opName, "reason", res.Reason)
		}
		respondResult(w, res)
	}
}

// handleBodyless runs an action that takes no request body
func handleBodyless(action func(context.Context) domain.ActionResult) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondResult(w, action(r.Context()))
	}
}
