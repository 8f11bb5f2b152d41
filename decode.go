package jsend

import (
	"slices"

	"github.com/jmgilman/go/jsend/codec"
	"github.com/jmgilman/go/jsend/errors"
)

// Decode reads one envelope from r into e.
//
// Decoding is directed by the "status" field, looked up by key:
//
//   - "success" requires data.
//   - "fail" and "error" require message; code and data are optional and
//     decode to nil when absent or null. With FailPayload, fail requires
//     data only.
//   - any other status, a missing status, or a status that is not text is
//     an error.
//
// Unknown fields are ignored unless strict mode is enabled. e is only
// assigned when decoding succeeds.
func Decode[D, FM, FD, EM, ED any](r codec.ObjectReader, e *Envelope[D, FM, FD, EM, ED], opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	decoded, err := decodeEnvelope[D, FM, FD, EM, ED](r, cfg)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

func decodeEnvelope[D, FM, FD, EM, ED any](r codec.ObjectReader, cfg Config) (Envelope[D, FM, FD, EM, ED], error) {
	var e Envelope[D, FM, FD, EM, ED]

	if !r.Has(fieldStatus) {
		return e, errors.NewField(errors.CodeMissingStatus, fieldStatus, "missing status discriminator")
	}
	tag, err := r.Text(fieldStatus)
	if err != nil {
		return e, errors.WrapField(err, errors.CodeInvalidStatus, fieldStatus, "status is not text")
	}

	status := Status(tag)
	switch status {
	case StatusSuccess:
		if err := checkFields(r, cfg, status, fieldData); err != nil {
			return e, err
		}
		if err := requireField(r, status, fieldData); err != nil {
			return e, err
		}
		if err := r.Decode(fieldData, &e.data); err != nil {
			return e, withStatus(err, status)
		}

	case StatusFail:
		if cfg.FailShape == FailPayload {
			if err := checkFields(r, cfg, status, fieldData); err != nil {
				return e, err
			}
			if err := requireField(r, status, fieldData); err != nil {
				return e, err
			}
			var data FD
			if err := r.Decode(fieldData, &data); err != nil {
				return e, withStatus(err, status)
			}
			e.fail.Data = &data
			break
		}
		e.fail, err = decodeErrorFields[FM, FD](r, cfg, status)
		if err != nil {
			return e, err
		}

	case StatusError:
		e.err, err = decodeErrorFields[EM, ED](r, cfg, status)
		if err != nil {
			return e, err
		}

	default:
		return e, errors.WithContext(
			errors.NewField(errors.CodeInvalidStatus, fieldStatus, "unknown status"),
			"status", tag,
		)
	}

	e.status = status
	return e, nil
}

func decodeErrorFields[M, D any](r codec.ObjectReader, cfg Config, status Status) (ErrorFields[M, D], error) {
	var f ErrorFields[M, D]

	if err := checkFields(r, cfg, status, fieldMessage, fieldCode, fieldData); err != nil {
		return f, err
	}
	if err := requireField(r, status, fieldMessage); err != nil {
		return f, err
	}

	text, err := r.Text(fieldMessage)
	if err != nil {
		return f, withStatus(err, status)
	}
	if f.Message, err = messageFromText[M](fieldMessage, text); err != nil {
		return f, withStatus(err, status)
	}

	if present(r, fieldCode) {
		code, err := readCode(r, cfg.CodeMode)
		if err != nil {
			return f, withStatus(err, status)
		}
		f.Code = &code
	}

	if present(r, fieldData) {
		var data D
		if err := r.Decode(fieldData, &data); err != nil {
			return f, withStatus(err, status)
		}
		f.Data = &data
	}
	return f, nil
}

// present reports whether an optional field carries a value.
func present(r codec.ObjectReader, key string) bool {
	return r.Has(key) && !r.IsNull(key)
}

func requireField(r codec.ObjectReader, status Status, key string) error {
	if r.Has(key) {
		return nil
	}
	return withStatus(errors.NewField(errors.CodeMissingField, key, "missing required field"), status)
}

// checkFields rejects, in strict mode, any field other than status and the
// given keys.
func checkFields(r codec.ObjectReader, cfg Config, status Status, allowed ...string) error {
	if !cfg.Strict {
		return nil
	}

	var unknown []string
	for _, k := range r.Keys() {
		if k == fieldStatus || slices.Contains(allowed, k) {
			continue
		}
		unknown = append(unknown, k)
	}
	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)
	return errors.WithContextMap(
		errors.NewField(errors.CodeUnknownField, unknown[0], "unknown field"),
		map[string]interface{}{"status": string(status), "unknown": unknown},
	)
}

func withStatus(err error, status Status) error {
	return errors.WithContext(err, "status", string(status))
}
