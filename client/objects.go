package client

import (
	"context"
	"time"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
	"github.com/anytype-sdk/anytype-go/verify"
)

// Objects returns a list builder over the objects in space.
func (c *Client) Objects(space string) *ListBuilder[model.Object] {
	return newListBuilder[model.Object](c.Transport.REST, "/v1/spaces/"+space+"/objects")
}

// GetObject fetches the object identified by id within space. Objects
// are addressed by id only; there is no key-based alias to resolve. A
// wire 404 here surfaces as errs.KindNotFound, which is what makes this
// method usable as the fetch closure verify.Do retries against to
// absorb read-after-write lag on a freshly created object.
func (c *Client) GetObject(ctx context.Context, space, id string) (model.Object, error) {
	var o model.Object
	resp, err := c.Transport.REST.Request(ctx).SetResult(&o).Get("/v1/spaces/" + space + "/objects/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Object{}, errs.NotFoundAs(err, "object", id)
	}
	return o, nil
}

// wireObjectProperty is the creation/update body shape for a single
// typed property setter, mirroring model.wireProperty without requiring
// export of that type.
type wireObjectProperty struct {
	Key         string         `json:"key"`
	Format      model.PropertyFormat `json:"format"`
	Text        *string        `json:"text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Date        *time.Time     `json:"date,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	Select      *string        `json:"select,omitempty"`
	MultiSelect []string       `json:"multi_select,omitempty"`
	File        []string       `json:"file,omitempty"`
	Object      []string       `json:"object,omitempty"`
}

// NewObjectBuilder accumulates fields for an object creation.
type NewObjectBuilder struct {
	c       *Client
	space   string
	typeKey string
	name    string
	body    string
	props   []wireObjectProperty

	verifyPolicy verify.Policy
	verifyCfg    verify.Config
}

// NewObject starts a creation builder for an object of typeKey within
// space.
func (c *Client) NewObject(space, typeKey string) *NewObjectBuilder {
	return &NewObjectBuilder{c: c, space: space, typeKey: typeKey}
}

// Name sets the object's display name.
func (b *NewObjectBuilder) Name(n string) *NewObjectBuilder {
	b.name = n
	return b
}

// Body sets the markdown body.
func (b *NewObjectBuilder) Body(md string) *NewObjectBuilder {
	b.body = md
	return b
}

func (b *NewObjectBuilder) SetText(key, v string) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatText, Text: &v})
	return b
}

func (b *NewObjectBuilder) SetNumber(key string, v float64) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatNumber, Number: &v})
	return b
}

func (b *NewObjectBuilder) SetDate(key string, v time.Time) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatDate, Date: &v})
	return b
}

func (b *NewObjectBuilder) SetCheckbox(key string, v bool) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatCheckbox, Checkbox: &v})
	return b
}

// SetSelect attaches a single select tag, addressed by key or id; the
// server resolves it the same way the tags repository does.
func (b *NewObjectBuilder) SetSelect(key, tagKeyOrID string) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatSelect, Select: &tagKeyOrID})
	return b
}

func (b *NewObjectBuilder) SetMultiSelect(key string, tagKeysOrIDs []string) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatMultiSelect, MultiSelect: tagKeysOrIDs})
	return b
}

func (b *NewObjectBuilder) SetFile(key string, fileIDs []string) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatFile, File: fileIDs})
	return b
}

func (b *NewObjectBuilder) SetObject(key string, objectIDs []string) *NewObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatObject, Object: objectIDs})
	return b
}

// EnsureAvailableWith attaches a verification policy to this creation:
// once the write succeeds, Create retries GetObject until it resolves or
// the policy's budget is exhausted.
func (b *NewObjectBuilder) EnsureAvailableWith(policy verify.Policy, cfg verify.Config) *NewObjectBuilder {
	b.verifyPolicy = policy
	b.verifyCfg = cfg
	return b
}

// Create issues the write, evicts nothing (objects are never cached),
// then runs verification per the attached policy. Under PolicyDefault,
// verification runs only when a non-zero config was attached via
// EnsureAvailableWith.
func (b *NewObjectBuilder) Create(ctx context.Context) (model.Object, error) {
	body := map[string]any{"type_key": b.typeKey, "name": b.name, "markdown": b.body, "properties": b.props}
	var o model.Object
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&o).
		Post("/v1/spaces/" + b.space + "/objects")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Object{}, err
	}

	switch b.verifyPolicy {
	case verify.PolicyDisabled:
		return o, nil
	case verify.PolicyEnabled:
		// fall through
	default: // PolicyDefault
		if b.verifyCfg == (verify.Config{}) {
			return o, nil
		}
	}

	fetch := func(ctx context.Context) error {
		_, err := b.c.GetObject(ctx, b.space, o.ID)
		return err
	}
	if err := verify.Do(ctx, "object", o.ID, b.verifyCfg, fetch); err != nil {
		return o, err
	}
	return o, nil
}

// UpdateObjectBuilder accumulates fields for an object update.
type UpdateObjectBuilder struct {
	c     *Client
	space string
	id    string
	name  *string
	body  *string
	props []wireObjectProperty
}

// UpdateObject starts an update builder for id within space.
func (c *Client) UpdateObject(space, id string) *UpdateObjectBuilder {
	return &UpdateObjectBuilder{c: c, space: space, id: id}
}

func (b *UpdateObjectBuilder) Name(n string) *UpdateObjectBuilder {
	b.name = &n
	return b
}

func (b *UpdateObjectBuilder) Body(md string) *UpdateObjectBuilder {
	b.body = &md
	return b
}

func (b *UpdateObjectBuilder) SetText(key, v string) *UpdateObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatText, Text: &v})
	return b
}

func (b *UpdateObjectBuilder) SetNumber(key string, v float64) *UpdateObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatNumber, Number: &v})
	return b
}

func (b *UpdateObjectBuilder) SetCheckbox(key string, v bool) *UpdateObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatCheckbox, Checkbox: &v})
	return b
}

func (b *UpdateObjectBuilder) SetSelect(key, tagKeyOrID string) *UpdateObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatSelect, Select: &tagKeyOrID})
	return b
}

func (b *UpdateObjectBuilder) SetMultiSelect(key string, tagKeysOrIDs []string) *UpdateObjectBuilder {
	b.props = append(b.props, wireObjectProperty{Key: key, Format: model.FormatMultiSelect, MultiSelect: tagKeysOrIDs})
	return b
}

// Update issues the write and returns the fresh record.
func (b *UpdateObjectBuilder) Update(ctx context.Context) (model.Object, error) {
	body := map[string]any{}
	if b.name != nil {
		body["name"] = *b.name
	}
	if b.body != nil {
		body["markdown"] = *b.body
	}
	if len(b.props) > 0 {
		body["properties"] = b.props
	}
	var o model.Object
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&o).
		Put("/v1/spaces/" + b.space + "/objects/" + b.id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Object{}, err
	}
	return o, nil
}

// DeleteObject deletes the object identified by id and returns its
// last-known record.
func (c *Client) DeleteObject(ctx context.Context, space, id string) (model.Object, error) {
	var o model.Object
	resp, err := c.Transport.REST.Request(ctx).SetResult(&o).Delete("/v1/spaces/" + space + "/objects/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Object{}, err
	}
	return o, nil
}

// CountArchived returns the number of archived objects in space.
func (c *Client) CountArchived(ctx context.Context, space string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	resp, err := c.Transport.REST.Request(ctx).SetResult(&out).
		Get("/v1/spaces/" + space + "/objects/archived/count")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// DeleteAllArchivedResult reports the outcome of a bulk archived-object
// deletion: partial failure is normal, not fatal.
type DeleteAllArchivedResult struct {
	Deleted   int      `json:"deleted"`
	FailedIDs []string `json:"failed_ids"`
}

// DeleteAllArchived deletes every archived object in space, returning
// how many succeeded and which ids failed.
func (c *Client) DeleteAllArchived(ctx context.Context, space string) (DeleteAllArchivedResult, error) {
	var out DeleteAllArchivedResult
	resp, err := c.Transport.REST.Request(ctx).SetResult(&out).
		Post("/v1/spaces/" + space + "/objects/archived/delete")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return DeleteAllArchivedResult{}, err
	}
	return out, nil
}
