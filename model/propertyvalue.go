package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// wireProperty mirrors the REST/RPC wire shape for a single property
// entry on an object: {property_id, key, <format>: <value>}.
type wireProperty struct {
	PropertyID string          `json:"property_id"`
	Key        string          `json:"key"`
	Format     PropertyFormat  `json:"format"`
	Text       *string         `json:"text,omitempty"`
	Number     *float64        `json:"number,omitempty"`
	Date       *time.Time      `json:"date,omitempty"`
	Checkbox   *bool           `json:"checkbox,omitempty"`
	Select     *Tag            `json:"select,omitempty"`
	MultiSel   []Tag           `json:"multi_select,omitempty"`
	File       []FileObject    `json:"file,omitempty"`
	Object     []ObjectRef     `json:"object,omitempty"`
	Email      *string         `json:"email,omitempty"`
	URL        *string         `json:"url,omitempty"`
	Phone      *string         `json:"phone,omitempty"`
}

// UnmarshalJSON decodes a wire property entry, selecting the
// PropertyValue branch named by Format. An unrecognized format decodes
// to a pass-through raw-JSON branch (Format stays as given, Raw holds
// the original bytes) rather than failing, so a client can still list
// objects whose schema it doesn't fully understand.
func (p *PropertyWithValue) UnmarshalJSON(data []byte) error {
	var w wireProperty
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.PropertyID = w.PropertyID
	p.PropertyKey = w.Key
	p.Value.Format = w.Format

	switch w.Format {
	case FormatText, FormatEmail, FormatURL, FormatPhone:
		switch w.Format {
		case FormatText:
			if w.Text != nil {
				p.Value.Text = *w.Text
			}
		case FormatEmail:
			if w.Email != nil {
				p.Value.Email = *w.Email
			}
		case FormatURL:
			if w.URL != nil {
				p.Value.URL = *w.URL
			}
		case FormatPhone:
			if w.Phone != nil {
				p.Value.Phone = *w.Phone
			}
		}
	case FormatNumber:
		if w.Number != nil {
			p.Value.Number = *w.Number
		}
	case FormatDate:
		if w.Date != nil {
			p.Value.Date = *w.Date
		}
	case FormatCheckbox:
		if w.Checkbox != nil {
			p.Value.Checkbox = *w.Checkbox
		}
	case FormatSelect:
		p.Value.Select = w.Select
	case FormatMultiSelect:
		p.Value.MultiSelect = w.MultiSel
	case FormatFile:
		p.Value.File = w.File
	case FormatObject:
		p.Value.Object = w.Object
	default:
		p.Value.Raw = append([]byte(nil), data...)
	}
	return nil
}

// MarshalJSON re-encodes a PropertyWithValue into the wire shape,
// emitting only the field that matches its Format. An unrecognized
// format (Raw set) re-emits the original bytes verbatim.
func (p PropertyWithValue) MarshalJSON() ([]byte, error) {
	if p.Value.Raw != nil {
		return p.Value.Raw, nil
	}
	w := wireProperty{PropertyID: p.PropertyID, Key: p.PropertyKey, Format: p.Value.Format}
	switch p.Value.Format {
	case FormatText:
		w.Text = &p.Value.Text
	case FormatEmail:
		w.Email = &p.Value.Email
	case FormatURL:
		w.URL = &p.Value.URL
	case FormatPhone:
		w.Phone = &p.Value.Phone
	case FormatNumber:
		w.Number = &p.Value.Number
	case FormatDate:
		w.Date = &p.Value.Date
	case FormatCheckbox:
		w.Checkbox = &p.Value.Checkbox
	case FormatSelect:
		w.Select = p.Value.Select
	case FormatMultiSelect:
		w.MultiSel = p.Value.MultiSelect
	case FormatFile:
		w.File = p.Value.File
	case FormatObject:
		w.Object = p.Value.Object
	default:
		return nil, fmt.Errorf("model: unknown property format %q", p.Value.Format)
	}
	return json.Marshal(w)
}
