package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"medusa/internal/chore"
)

// record is the on-disk shape of one chore. Fields are pointers so a missing
// key can be told apart from a zero value. Description is the only optional
// field; unknown keys are ignored.
type record struct {
	Name          *string `json:"name"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	Frequency     *int    `json:"frequency"`
	Delta         *int    `json:"delta"`
	Type          *string `json:"type"`
	LastCompleted *string `json:"last_completed"`
}

func decodeChores(path string, data []byte) ([]chore.Chore, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &chore.LoadError{Path: path, Index: -1, Err: fmt.Errorf("decode chore list: %w", err)}
	}
	if raws == nil {
		return nil, &chore.LoadError{Path: path, Index: -1, Err: errors.New("decode chore list: want a JSON array")}
	}

	out := make([]chore.Chore, 0, len(raws))
	for i, raw := range raws {
		c, err := decodeChore(path, i, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeChore(path string, index int, raw json.RawMessage) (chore.Chore, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return chore.Chore{}, &chore.LoadError{Path: path, Index: index, Field: typeErr.Field, Err: fmt.Errorf("want %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return chore.Chore{}, &chore.LoadError{Path: path, Index: index, Err: err}
	}

	missing := func(field string) error {
		return &chore.LoadError{Path: path, Index: index, Field: field, Err: errors.New("missing required field")}
	}
	switch {
	case rec.Name == nil:
		return chore.Chore{}, missing("name")
	case rec.Location == nil:
		return chore.Chore{}, missing("location")
	case rec.Frequency == nil:
		return chore.Chore{}, missing("frequency")
	case rec.Delta == nil:
		return chore.Chore{}, missing("delta")
	case rec.Type == nil:
		return chore.Chore{}, missing("type")
	case rec.LastCompleted == nil:
		return chore.Chore{}, missing("last_completed")
	}

	var desc string
	if rec.Description != nil {
		desc = *rec.Description
	}

	last, err := chore.ParseDate(*rec.LastCompleted)
	if err != nil {
		return chore.Chore{}, &chore.LoadError{Path: path, Index: index, Field: "last_completed", Err: err}
	}

	return chore.New(chore.NewInput{
		Name:          *rec.Name,
		Location:      *rec.Location,
		Description:   desc,
		Frequency:     *rec.Frequency,
		Delta:         *rec.Delta,
		Type:          *rec.Type,
		LastCompleted: last,
	})
}

func encodeChore(c chore.Chore) record {
	typ := c.Type.String()
	last := c.LastCompleted.String()
	return record{
		Name:          &c.Name,
		Location:      &c.Location,
		Description:   &c.Description,
		Frequency:     &c.Frequency,
		Delta:         &c.Delta,
		Type:          &typ,
		LastCompleted: &last,
	}
}
