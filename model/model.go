// Package model defines the entity value types shared across the REST
// and RPC surfaces: spaces, types, properties, tags, objects, members,
// files, chat messages, and views. These are plain value records — the
// transport, cache, and repository layers decode into and operate on
// them, but none of them carry behavior of their own beyond small
// predicates (IsObjectID) and value-shape helpers (PropertyValue).
package model

import "time"

// IsObjectID reports whether s looks like a server-assigned id rather
// than a human-supplied key. Ids in this system are long (>= 20 chars),
// use only lowercase ASCII letters, digits, '_' and '-', and are never equal to a
// typical key such as "priority" or "page". This predicate is the sole
// basis for key-vs-id disambiguation used by the resolver (package
// cache) and is guaranteed not to issue network calls.
func IsObjectID(s string) bool {
	if len(s) < 20 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// SpaceObjectKind distinguishes a space container from a chat room,
// which share the Space shape in the wire format.
type SpaceObjectKind string

const (
	SpaceObjectSpace SpaceObjectKind = "space"
	SpaceObjectChat  SpaceObjectKind = "chat"
)

// Space is a top-level workspace container.
type Space struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Object      SpaceObjectKind `json:"object"`
	Description string          `json:"description,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	GatewayURL  string          `json:"gateway_url,omitempty"`
	NetworkID   string          `json:"network_id,omitempty"`
}

// Layout enumerates the known object/type layouts.
type Layout string

const (
	LayoutBasic       Layout = "basic"
	LayoutProfile     Layout = "profile"
	LayoutAction      Layout = "action"
	LayoutNote        Layout = "note"
	LayoutBookmark    Layout = "bookmark"
	LayoutSet         Layout = "set"
	LayoutCollection  Layout = "collection"
	LayoutParticipant Layout = "participant"
)

// Type is a schema for objects within a space, identified by a
// space-local id and a key that is stable across spaces for built-ins
// (page, note, task, bookmark).
type Type struct {
	ID         string     `json:"id"`
	Key        string     `json:"key"`
	Name       string     `json:"name,omitempty"`
	Plural     string     `json:"plural,omitempty"`
	Layout     Layout     `json:"layout"`
	Icon       string     `json:"icon,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Archived   bool       `json:"archived"`
}

// PropertyFormat determines the shape of a PropertyValue for a given
// property.
type PropertyFormat string

const (
	FormatText        PropertyFormat = "text"
	FormatNumber      PropertyFormat = "number"
	FormatDate        PropertyFormat = "date"
	FormatCheckbox    PropertyFormat = "checkbox"
	FormatSelect      PropertyFormat = "select"
	FormatMultiSelect PropertyFormat = "multi_select"
	FormatFile        PropertyFormat = "file"
	FormatObject      PropertyFormat = "object"
	FormatEmail       PropertyFormat = "email"
	FormatURL         PropertyFormat = "url"
	FormatPhone       PropertyFormat = "phone"
)

// Property is a named, typed attribute attachable to objects. Key is
// stable; Format determines the legal shape of any PropertyValue tagged
// with this property.
type Property struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	Name   string         `json:"name"`
	Format PropertyFormat `json:"format"`
}

// Tag is a named, colored value of a select/multi_select property.
type Tag struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// FileType classifies a FileObject's content.
type FileType string

const (
	FileTypeFile  FileType = "file"
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
	FileTypeAudio FileType = "audio"
	FileTypePDF   FileType = "pdf"
	FileTypeOther FileType = "other"
)

// FileObject is a handle to an uploaded blob.
type FileObject struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Mime     string   `json:"mime,omitempty"`
	Size     int64    `json:"size,omitempty"`
	FileType FileType `json:"file_type"`
}

// ObjectRef is a reference to another Object, used by property values
// of format "object".
type ObjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// PropertyValue is the tagged union over a property's possible value
// shapes. Exactly one of the typed fields is meaningful at a time,
// selected by Format; Raw holds the pass-through JSON for any format the
// client doesn't recognize (see PropertyWithValue.UnmarshalJSON), so
// callers can still list objects whose schema predates this client.
type PropertyValue struct {
	Format      PropertyFormat
	Text        string
	Number      float64
	Date        time.Time
	Checkbox    bool
	Select      *Tag
	MultiSelect []Tag
	File        []FileObject
	Object      []ObjectRef
	Email       string
	URL         string
	Phone       string
	Raw         []byte
}

// PropertyWithValue pairs a Property's identity with the value an
// object carries for it.
type PropertyWithValue struct {
	PropertyID  string
	PropertyKey string
	Value       PropertyValue
}

// Object is the central content entity: a typed, property-bearing
// record within a space.
type Object struct {
	ID         string              `json:"id"`
	Name       string              `json:"name,omitempty"`
	Type       *Type               `json:"type,omitempty"`
	Layout     Layout              `json:"layout"`
	Archived   bool                `json:"archived"`
	Properties []PropertyWithValue `json:"properties,omitempty"`
	Markdown   string              `json:"markdown,omitempty"`
	Icon       string              `json:"icon,omitempty"`
	CreatedAt  time.Time           `json:"created_at,omitempty"`
	UpdatedAt  time.Time           `json:"updated_at,omitempty"`
}

// MemberRole is a member's permission level within a space.
type MemberRole string

const (
	RoleViewer       MemberRole = "viewer"
	RoleEditor       MemberRole = "editor"
	RoleOwner        MemberRole = "owner"
	RoleNoPermission MemberRole = "no_permission"
)

// MemberStatus is a member's current invitation/membership state.
type MemberStatus string

const (
	StatusJoining  MemberStatus = "joining"
	StatusActive   MemberStatus = "active"
	StatusRemoved  MemberStatus = "removed"
	StatusDeclined MemberStatus = "declined"
	StatusRemoving MemberStatus = "removing"
	StatusCanceled MemberStatus = "canceled"
)

// Member is a user with a role in a space.
type Member struct {
	ID         string       `json:"id"`
	Identity   string       `json:"identity,omitempty"`
	GlobalName string       `json:"global_name,omitempty"`
	Name       string       `json:"name,omitempty"`
	Icon       string       `json:"icon,omitempty"`
	Role       MemberRole   `json:"role"`
	Status     MemberStatus `json:"status"`
}

// MessageStyle and MessageMark describe chat message rich-text content.
type MessageStyle string

// MessageMark is a single inline formatting span within a message.
type MessageMark struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Type  string `json:"type"`
	Param string `json:"param,omitempty"`
}

// MessageContent is the body of a chat message.
type MessageContent struct {
	Text  string        `json:"text"`
	Style MessageStyle  `json:"style,omitempty"`
	Marks []MessageMark `json:"marks,omitempty"`
}

// Reaction is one emoji reaction and the identities that applied it.
type Reaction struct {
	Emoji      string   `json:"emoji"`
	Identities []string `json:"identities"`
}

// ChatMessage is a single message within a chat room. OrderID is an
// opaque, totally-ordered byte string (treated as hex by callers) used
// as the pagination cursor; it is monotonic per chat room but not dense.
type ChatMessage struct {
	ID        string         `json:"id"`
	ChatID    string         `json:"chat_id"`
	Creator   string         `json:"creator"`
	CreatedAt time.Time      `json:"created_at"`
	OrderID   string         `json:"order_id"`
	Content   MessageContent `json:"content"`
	Read      bool           `json:"read"`
	Reactions []Reaction     `json:"reactions,omitempty"`
}

// Sort direction for a View or a list builder.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort pairs a property key with a direction.
type Sort struct {
	PropertyKey string        `json:"property_key"`
	Direction   SortDirection `json:"direction"`
}

// View is a saved filter/sort configuration over a set or collection.
// Filters here is intentionally untyped at this layer (package filter
// defines the concrete Filter type); View only needs to carry it through
// encode/decode.
type View struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Layout  Layout `json:"layout"`
	Filters []any  `json:"filters,omitempty"`
	Sorts   []Sort `json:"sorts,omitempty"`
}
