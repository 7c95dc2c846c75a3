package gdform

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pawelWritesCode/gdform/pkg/field"
	"github.com/pawelWritesCode/gdform/pkg/source"
	"github.com/pawelWritesCode/gdform/pkg/validator"
)

type mockedValidator struct {
	mock.Mock
}

func (m *mockedValidator) Validate(in any) error {
	args := m.Called(in)

	return args.Error(0)
}

func newNF() *Schema {
	return NewSchema("NF").
		Field("a", field.NewText(field.MaxLength(4), field.MinLength(2))).
		Field("b", field.NewText(field.MaxLength(4), field.MinLength(2), field.Optional(), field.EmptyValue("222"))).
		Field("phone", field.NewPhone(field.MaxLength(11))).
		Field("email", field.NewEmail()).
		Field("reg", field.MustRegex(`^1[3456789]\d{9}$`)).
		Field("uuid", field.NewUUID(field.Optional())).
		Field("boolean", field.NewBoolean(field.Optional())).
		Field("integer", field.NewInteger(field.MaxValue(11))).
		Field("ft", field.NewFloat(field.MaxValue(12))).
		Field("dc", field.NewDecimal(field.MaxDigits(3), field.DecimalPlaces(1), field.Optional())).
		MustBuild()
}

func nfData() map[string]any {
	return map[string]any{
		"a":       "12",
		"b":       "",
		"phone":   "16666666666",
		"email":   "16666666666@qq.com",
		"reg":     "16666666666",
		"uuid":    "998a281c-e257-11e8-b428-8c85904e5604",
		"boolean": 0,
		"integer": "11",
		"ft":      "11.1111",
		"dc":      11.0,
	}
}

func TestForm_valid(t *testing.T) {
	form := newNF().New(nfData())

	require.True(t, form.IsValid())
	assert.Zero(t, form.Errors().Len())

	data, err := form.CleanedData()
	require.NoError(t, err)

	assert.Equal(t, form.Fields(), data.Keys())

	want := map[string]any{
		"a":       "12",
		"b":       "222",
		"phone":   "16666666666",
		"email":   "16666666666@qq.com",
		"reg":     "16666666666",
		"uuid":    "998a281c-e257-11e8-b428-8c85904e5604",
		"boolean": false,
		"integer": int64(11),
		"ft":      11.1111,
	}
	for k, v := range want {
		got, ok := data.Get(k)
		require.True(t, ok, k)
		assert.Equal(t, v, got, k)
	}

	dc, _ := data.Get("dc")
	assert.True(t, decimal.RequireFromString("11.0").Equal(dc.(decimal.Decimal)))
}

func TestForm_missingRequiredField(t *testing.T) {
	s := NewSchema("NF").
		Field("a", field.NewText(field.MinLength(2), field.MaxLength(4))).
		Field("phone", field.NewPhone()).
		Field("email", field.NewEmail()).
		MustBuild()

	form := s.New(map[string]any{"phone": "16666666666", "email": "x@y.com"})

	assert.False(t, form.IsValid())

	errs := form.Errors()
	assert.Equal(t, []string{"a"}, errs.Keys())

	msg, ok := errs.Get("a")
	require.True(t, ok)
	assert.Equal(t, "This field is required", msg)
	assert.False(t, errs.Has("phone"))
	assert.False(t, errs.Has("email"))
}

func TestForm_reportsEveryFailingField(t *testing.T) {
	data := nfData()
	data["a"] = "1"
	data["phone"] = "12345"
	data["integer"] = "abc"
	data["ft"] = "inf"
	data["dc"] = "111.11"

	form := newNF().New(data)

	require.False(t, form.IsValid())

	errs := form.Errors()
	assert.Equal(t, []string{"a", "phone", "integer", "ft", "dc"}, errs.Keys())

	got := errs.Map()
	assert.Equal(t, "min_length -> 2", got["a"])
	assert.Equal(t, "invalid phone", got["phone"])
	assert.Equal(t, "Enter a whole number", got["integer"])
	assert.Equal(t, "Enter a number", got["ft"])
	assert.Equal(t, "max_digits -> 3, max_decimal_places -> 1, max_whole_digits -> 3", got["dc"])
}

func TestForm_CleanedData_usageErrors(t *testing.T) {
	form := newNF().New(nfData())

	_, err := form.CleanedData()
	assert.ErrorIs(t, err, ErrNotValidated)

	invalid := newNF().New(map[string]any{"a": "1"})
	assert.False(t, invalid.IsValid())

	_, err = invalid.CleanedData()
	assert.ErrorIs(t, err, ErrInvalidData)

	var vErr *validator.Error
	assert.False(t, errors.As(err, &vErr), "usage error should not be validation error")
}

func TestForm_Errors_triggersValidation(t *testing.T) {
	form := newNF().New(nfData())

	assert.Zero(t, form.Errors().Len())

	_, err := form.CleanedData()
	assert.NoError(t, err)
}

func TestForm_emptyInputIsNeverValid(t *testing.T) {
	s := NewSchema("Optional").
		Field("a", field.NewText(field.Optional())).
		MustBuild()

	for _, data := range []map[string]any{nil, {}} {
		form := s.New(data)

		assert.False(t, form.IsValid())
		assert.Zero(t, form.Errors().Len())

		cleaned, err := form.CleanedData()
		require.NoError(t, err)
		v, _ := cleaned.Get("a")
		assert.Nil(t, v)
	}
}

func TestForm_validatesOnce(t *testing.T) {
	mv := new(mockedValidator)
	mv.On("Validate", "abc").Return(validator.NewError("mock", "mocked failure")).Once()

	s := NewSchema("Once").
		Field("a", field.NewText(field.Validators(mv))).
		MustBuild()

	form := s.New(map[string]any{"a": "abc"})

	first := form.Errors()
	second := form.Errors()
	assert.False(t, form.IsValid())
	_, err := form.CleanedData()
	assert.ErrorIs(t, err, ErrInvalidData)

	assert.Same(t, first, second)
	msg, _ := first.Get("a")
	assert.Equal(t, "mocked failure", msg)

	mv.AssertNumberOfCalls(t, "Validate", 1)
	mv.AssertExpectations(t)
}

func TestForm_declarationOrderIgnoresInputOrder(t *testing.T) {
	s := NewSchema("Order").
		Field("z", field.NewText()).
		Field("m", field.NewText()).
		Field("a", field.NewText()).
		MustBuild()

	src, err := source.NewJSON([]byte(`{"a": "1", "m": "2", "z": "3"}`))
	require.NoError(t, err)

	form := s.NewFromSource(src)
	require.True(t, form.IsValid())

	data, err := form.CleanedData()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, data.Keys())

	b, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"3","m":"2","a":"1"}`, string(b))

	invalid := s.New(map[string]any{"a": "", "z": ""})
	assert.Equal(t, []string{"z", "m", "a"}, invalid.Errors().Keys())
}

func TestForm_fieldsAreIsolated(t *testing.T) {
	s := NewSchema("Iso").Field("a", field.NewText()).MustBuild()

	first := s.New(map[string]any{"a": "abcdef"})
	second := s.New(map[string]any{"a": "abcdef"})

	f, ok := first.Field("a")
	require.True(t, ok)
	f.AddValidators(validator.NewMaxLength(3))

	assert.False(t, first.IsValid())
	assert.True(t, second.IsValid())
	assert.True(t, s.New(map[string]any{"a": "abcdef"}).IsValid())
}

func TestForm_concurrentForms(t *testing.T) {
	s := newNF()

	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			data := nfData()
			if i%2 == 1 {
				data["integer"] = fmt.Sprint(100 + i)
			}

			form := s.New(data)
			if f, ok := form.Field("a"); ok {
				f.AddValidators(validator.NewMaxLength(4))
			}
			results[i] = form.IsValid()
		}(i)
	}
	wg.Wait()

	for i, valid := range results {
		assert.Equal(t, i%2 == 0, valid, "form #%d", i)
	}

	f, _ := s.Field("a")
	assert.Len(t, f.Validators(), 3)
}

func TestForm_logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	form := newNF().New(map[string]any{"a": "1"}, WithLogger(zap.New(core)))
	require.False(t, form.IsValid())

	failures := logs.FilterMessage("field failed validation")
	assert.Equal(t, form.Errors().Len(), failures.Len())

	first := failures.All()[0].ContextMap()
	assert.Equal(t, "NF", first["schema"])
	assert.Equal(t, "a", first["field"])
	assert.Equal(t, "min_length -> 2", first["error"])

	assert.Equal(t, 1, logs.FilterMessage("form validated").Len())
}

func TestForm_sources(t *testing.T) {
	s := NewSchema("Src").
		Field("phone", field.NewPhone()).
		Field("integer", field.NewInteger(field.MaxValue(11))).
		Field("dc", field.NewDecimal(field.MaxDigits(3), field.DecimalPlaces(1))).
		MustBuild()

	docs := map[string]string{
		"json": `{"phone": "16666666666", "integer": 11.00, "dc": 11.0}`,
		"yaml": "phone: \"16666666666\"\ninteger: \"11.00\"\ndc: \"11.0\"\n",
		"xml":  `<f><phone>16666666666</phone><integer>11.00</integer><dc>11.0</dc></f>`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			src, err := source.Detect([]byte(doc))
			require.NoError(t, err)

			form := s.NewFromSource(src)
			require.True(t, form.IsValid(), "%v", form.Errors().Map())

			data, err := form.CleanedData()
			require.NoError(t, err)

			n, _ := data.Get("integer")
			assert.Equal(t, int64(11), n)
		})
	}
}
