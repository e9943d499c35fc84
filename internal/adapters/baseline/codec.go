package baseline

import (
	"bytes"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/xeipuuv/gojsonschema"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// codec encodes baseline documents in one serialization format.
type codec interface {
	encode(doc documentDTO) ([]byte, error)
	// decode parses data and validates it against the baseline schema.
	decode(data []byte) (documentDTO, error)
}

func codecFor(format string) (codec, error) {
	switch format {
	case domain.FormatJSON, "":
		return jsonCodec{}, nil
	case domain.FormatYAML:
		return yamlCodec{}, nil
	case domain.FormatCBOR:
		return newCBORCodec()
	default:
		return nil, zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}

type jsonCodec struct{}

func (jsonCodec) encode(doc documentDTO) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) decode(data []byte) (documentDTO, error) {
	var doc documentDTO
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return documentDTO{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	if doc.Version != documentVersion {
		return doc, nil
	}
	if err := validate(gojsonschema.NewBytesLoader(data)); err != nil {
		return documentDTO{}, err
	}
	return doc, nil
}

type yamlCodec struct{}

func (yamlCodec) encode(doc documentDTO) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) decode(data []byte) (documentDTO, error) {
	var doc documentDTO
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentDTO{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return validated(doc)
}

// cborCodec uses core deterministic encoding so equal baselines produce equal bytes.
type cborCodec struct {
	em cbor.EncMode
	dm cbor.DecMode
}

func newCBORCodec() (cborCodec, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return cborCodec{}, zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	dm, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      cbor.IndefLengthForbidden,
		MaxArrayElements: 1 << 20,
	}.DecMode()
	if err != nil {
		return cborCodec{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return cborCodec{em: em, dm: dm}, nil
}

func (c cborCodec) encode(doc documentDTO) ([]byte, error) {
	return c.em.Marshal(doc)
}

func (c cborCodec) decode(data []byte) (documentDTO, error) {
	var doc documentDTO
	if err := c.dm.Unmarshal(data, &doc); err != nil {
		return documentDTO{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return validated(doc)
}

// validated runs schema validation on an already decoded document.
func validated(doc documentDTO) (documentDTO, error) {
	if doc.Version != documentVersion {
		return doc, nil
	}
	if doc.Entries == nil {
		doc.Entries = []entryDTO{}
	}
	if err := validate(gojsonschema.NewGoLoader(doc)); err != nil {
		return documentDTO{}, err
	}
	return doc, nil
}
