package account

import (
	"encoding/json"
	"reflect"
	"strings"
)

// endSessionWire is the schema-bound shape of the end-session response.
type endSessionWire struct {
	Request string  `json:"request"`
	Error   *string `json:"error"`
}

// ProcessActionResult maps a raw action response onto the caller's expected
// result type, dispatching on the action.
//
// Structurally this mirrors ProcessResults but is keyed by the separate
// Action enumeration: side-effecting calls have their own response shapes
// and must never share the query dispatch table. Currently the only action
// is EndSession; any other Action value is an INVALID_OPERATION error under
// the same exhaustiveness contract as the query path.
//
// The produced Account is narrowed to T. A T incompatible with Account is a
// TYPE_MISMATCH error.
func ProcessActionResult[T any](action Action, responseJSON string) (T, error) {
	var zero T

	acct, err := mapAction(action, responseJSON)
	if err != nil {
		return zero, err
	}

	out, ok := any(acct).(T)
	if !ok {
		return zero, NewTypeMismatchError(reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return out, nil
}

func mapAction(action Action, responseJSON string) (Account, error) {
	switch action {
	case ActionEndSession:
		return mapEndSession(responseJSON)
	default:
		return Account{}, NewInvalidOperationError(action.String())
	}
}

func mapEndSession(responseJSON string) (Account, error) {
	if strings.TrimSpace(responseJSON) == "" {
		return Account{}, nil
	}

	var wire endSessionWire
	if err := json.Unmarshal([]byte(responseJSON), &wire); err != nil {
		return Account{}, NewMalformedResponseError(ActionEndSession.String(), err)
	}

	status := &EndSessionStatus{Request: wire.Request}
	if wire.Error != nil {
		status.Error = *wire.Error
	}

	return Account{Payload: status}, nil
}
