package jsend

import (
	"github.com/jmgilman/go/jsend/codec"
	"github.com/jmgilman/go/jsend/errors"
)

// wireField is one key/value pair planned for output.
type wireField struct {
	key   string
	value any
}

// Encode writes the envelope as one object to w.
//
// The fields are planned before anything is written: status, the variant's
// required fields, and only those optional fields that are present. The
// writer is told the planned count up front, so formats with length-prefixed
// objects never see a declared slot left empty. Absent optional fields are
// omitted, never written as null.
//
// Errors returned by the writer are passed through unchanged.
func Encode[D, FM, FD, EM, ED any](w codec.ObjectWriter, e Envelope[D, FM, FD, EM, ED], opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	fields, err := planFields(e, cfg)
	if err != nil {
		return err
	}
	return writeObject(w, e.status, fields)
}

// planFields lists the fields following status for the envelope's variant.
func planFields[D, FM, FD, EM, ED any](e Envelope[D, FM, FD, EM, ED], cfg Config) ([]wireField, error) {
	switch e.status {
	case StatusSuccess:
		return []wireField{{fieldData, e.data}}, nil
	case StatusFail:
		if cfg.FailShape == FailPayload {
			if e.fail.Data == nil {
				return nil, errors.NewField(errors.CodeInvalidEnvelope, fieldData,
					"fail envelope has no data for the payload fail shape")
			}
			return []wireField{{fieldData, *e.fail.Data}}, nil
		}
		return planErrorFields(e.fail, cfg)
	case StatusError:
		return planErrorFields(e.err, cfg)
	}
	return nil, errors.New(errors.CodeInvalidEnvelope, "envelope has no status")
}

// planErrorFields lists message, then code and data when present.
func planErrorFields[M, D any](f ErrorFields[M, D], cfg Config) ([]wireField, error) {
	fields := make([]wireField, 0, 3)
	fields = append(fields, wireField{fieldMessage, messageText(f.Message)})
	if f.Code != nil {
		n, err := wireCode(*f.Code, cfg.CodeMode)
		if err != nil {
			return nil, err
		}
		fields = append(fields, wireField{fieldCode, n})
	}
	if f.Data != nil {
		fields = append(fields, wireField{fieldData, *f.Data})
	}
	return fields, nil
}

func writeObject(w codec.ObjectWriter, status Status, fields []wireField) error {
	if err := w.Begin(1 + len(fields)); err != nil {
		return err
	}
	if err := w.Field(fieldStatus, string(status)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := w.Field(f.key, f.value); err != nil {
			return err
		}
	}
	return w.End()
}
