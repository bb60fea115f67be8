package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anytype-sdk/anytype-go/errs"
)

func TestParse_DefaultsToEqual(t *testing.T) {
	f, err := Parse("name=Meeting")
	require.NoError(t, err)
	assert.Equal(t, "name", f.PropertyKey)
	assert.Equal(t, Equal, f.Condition)
	assert.Equal(t, KindText, f.Kind)
	assert.Equal(t, "Meeting", f.Text)
}

func TestParse_ValuePrecedence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  ValueKind
	}{
		{"bool wins over everything", "done[eq]=true", KindCheckbox},
		{"int parses as number", "priority[eq]=3", KindNumber},
		{"float parses as number", "score[eq]=3.5", KindNumber},
		{"non-numeric falls back to text", "name[eq]=hello", KindText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, f.Kind)
		})
	}
}

func TestParse_InAndNinSplitOnComma(t *testing.T) {
	f, err := Parse("tag[in]=a, b ,c")
	require.NoError(t, err)
	assert.Equal(t, KindMultiSelect, f.Kind)
	assert.Equal(t, In, f.Condition)
	assert.Equal(t, []string{"a", "b", "c"}, f.MultiSelect)
}

func TestParse_TypeKeyRoutesToObjects(t *testing.T) {
	f, err := Parse("type[in]=page,note")
	require.NoError(t, err)
	assert.Equal(t, KindObjects, f.Kind)
	assert.Equal(t, []string{"page", "note"}, f.Objects)

	f2, err := Parse("type[nin]=task")
	require.NoError(t, err)
	assert.Equal(t, KindObjects, f2.Kind)
}

func TestParse_EmptyAndNotEmpty(t *testing.T) {
	f, err := Parse("icon[empty]=")
	require.NoError(t, err)
	assert.Equal(t, KindIsEmpty, f.Kind)

	f2, err := Parse("icon[nempty]=")
	require.NoError(t, err)
	assert.Equal(t, KindNotEmpty, f2.Kind)
}

func TestParse_EmptyKeyIsValidationError(t *testing.T) {
	_, err := Parse("=value")
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindValidation, e.Kind)
}

func TestParse_UnterminatedBracketIsValidationError(t *testing.T) {
	_, err := Parse("name[eq=value")
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindValidation, e.Kind)
}

func TestParse_UnknownConditionIsValidationError(t *testing.T) {
	_, err := Parse("name[bogus]=value")
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindValidation, e.Kind)
}

func TestParse_MissingEqualsIsValidationError(t *testing.T) {
	_, err := Parse("name[eq]value")
	require.Error(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"name[eq]=Meeting",
		"priority[gt]=3",
		"done[eq]=true",
		"tag[in]=a,b,c",
		"type[nin]=page,note",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			f, err := Parse(s)
			require.NoError(t, err)

			s2 := Format(f)
			f2, err := Parse(s2)
			require.NoError(t, err)

			assert.Equal(t, Format(f), Format(f2))
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	require.Error(t, Filter{Kind: KindText, Condition: Equal}.Validate(), "missing property key")
	require.NoError(t, Checkbox("done", true).Validate())
	require.Error(t, Filter{PropertyKey: "done", Kind: KindCheckbox, Condition: Contains}.Validate())
	require.NoError(t, Number("priority", Less, 3).Validate())
	require.Error(t, Number("priority", Contains, 3).Validate())
}
