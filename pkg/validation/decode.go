package validation

import (
	"encoding/json"
	"errors"

	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
)

// PayloadField names the pseudo-field used for body-level decode failures.
const PayloadField = "payload"

// DecodeViolation converts a JSON binding error into a single violation.
// dateField names the request field that carries a helpers.Date, since the
// decoder does not report which field a custom unmarshaler failed on.
func DecodeViolation(err error, dateField string) Violation {
	var dfe *helpers.DateFormatError
	if errors.As(err, &dfe) {
		return Violation{Field: dateField, Message: MsgDateFmt}
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return Violation{Field: ute.Field, Message: MsgType}
	}

	return Violation{Field: PayloadField, Message: MsgJSON}
}
