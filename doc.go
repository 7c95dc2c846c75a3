// Package gdform provides declarative validation and coercion of untyped input.
//
// Schema is an ordered set of named fields, declared once with a Builder:
//
//	var NF = gdform.NewSchema("NF").
//		Field("a", field.NewText(field.MaxLength(4), field.MinLength(2))).
//		Field("b", field.NewText(field.MaxLength(4), field.MinLength(2), field.Optional(), field.EmptyValue("222"))).
//		Field("phone", field.NewPhone(field.MaxLength(11))).
//		Field("email", field.NewEmail()).
//		Field("integer", field.NewInteger(field.MaxValue(11))).
//		Field("dc", field.NewDecimal(field.MaxDigits(3), field.DecimalPlaces(1), field.Optional())).
//		MustBuild()
//
// Schema may be extended, fields of the child override same named parent fields in place
// and Remove drops inherited ones:
//
//	var Short = gdform.Extend(NF, "Short").Remove("dc").MustBuild()
//
// Every Form gets private copy of schema fields, so forms of the same schema may be validated concurrently:
//
//	form := NF.New(map[string]any{"a": "12", "phone": "16666666666", "email": "x@y.com", "integer": "11"})
//	if form.IsValid() {
//		data, _ := form.CleanedData()
//		...
//	} else {
//		errs := form.Errors()
//		...
//	}
//
// Input may come from any source.Source, for example JSON, YAML or XML documents:
//
//	src, err := source.Detect(body)
//	form := NF.NewFromSource(src, gdform.WithLogger(logger))
//
// Validation runs once, on first call to IsValid or Errors. Its outcome is cached.
// CleanedData returns ErrNotValidated before validation and ErrInvalidData when any field failed.
package gdform
