/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/suparena/assetregistry/errors"
)

// Asset is the canonical registry record.
type Asset struct {
	ID          string
	Owner       string
	AssetType   string
	Description string
	Value       float64
}

// Field names used in the canonical encoding.
const (
	fieldID          = "assetId"
	fieldOwner       = "owner"
	fieldAssetType   = "assetType"
	fieldDescription = "description"
	fieldValue       = "value"
)

var (
	crlfStripper = strings.NewReplacer("\r", "", "\n", "")
	fieldEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	// unescapePattern reverses fieldEscaper: any backslash-escaped
	// character collapses back to the character itself.
	unescapePattern = regexp.MustCompile(`\\(.)`)

	// One extraction pattern per named field. A field value is either a
	// quoted string (backslash escapes allowed) or a bare token; decoding
	// does not depend on field order or whitespace.
	fieldPatterns = map[string]*regexp.Regexp{
		fieldID:          fieldPattern(fieldID),
		fieldOwner:       fieldPattern(fieldOwner),
		fieldAssetType:   fieldPattern(fieldAssetType),
		fieldDescription: fieldPattern(fieldDescription),
		fieldValue:       fieldPattern(fieldValue),
	}
)

func fieldPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`"` + name + `"\s*:\s*(?:"((?:\\.|[^"\\])*)"|([^,}\s"]+))`)
}

// Sanitize normalizes an untrusted text field: carriage returns and line
// feeds are stripped entirely, then surrounding whitespace is trimmed.
func Sanitize(s string) string {
	return strings.TrimSpace(crlfStripper.Replace(s))
}

// Sanitized returns a copy of the asset with every string field sanitized.
func (a Asset) Sanitized() Asset {
	a.ID = Sanitize(a.ID)
	a.Owner = Sanitize(a.Owner)
	a.AssetType = Sanitize(a.AssetType)
	a.Description = Sanitize(a.Description)
	return a
}

// Encode produces the canonical textual encoding of the asset. String
// fields are sanitized and quote/backslash-escaped so the encoding stays
// parseable for adversarial input; the monetary value is rendered with
// exactly two fractional digits.
func Encode(a Asset) string {
	a = a.Sanitized()
	return fmt.Sprintf(
		`{"assetId":"%s","owner":"%s","assetType":"%s","description":"%s","value":%.2f}`,
		fieldEscaper.Replace(a.ID),
		fieldEscaper.Replace(a.Owner),
		fieldEscaper.Replace(a.AssetType),
		fieldEscaper.Replace(a.Description),
		a.Value,
	)
}

// Decode parses a canonical encoding back into an Asset. Each field is
// located independently by name, so field order and whitespace do not
// matter. It fails with an EncodingError when the input is blank, when
// any of assetId/owner/assetType/value is missing, or when the value
// field does not parse as a number. A missing description decodes to "".
func Decode(encoded string) (Asset, error) {
	if strings.TrimSpace(encoded) == "" {
		return Asset{}, errors.NewEncodingError("blank input", nil)
	}

	var a Asset
	for _, req := range []struct {
		name string
		dst  *string
	}{
		{fieldID, &a.ID},
		{fieldOwner, &a.Owner},
		{fieldAssetType, &a.AssetType},
	} {
		v, ok := extractField(encoded, req.name)
		if !ok {
			return Asset{}, errors.NewEncodingError("missing field "+req.name, nil)
		}
		*req.dst = v
	}

	if v, ok := extractField(encoded, fieldDescription); ok {
		a.Description = v
	}

	raw, ok := extractField(encoded, fieldValue)
	if !ok {
		return Asset{}, errors.NewEncodingError("missing field "+fieldValue, nil)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Asset{}, errors.NewEncodingError("field value is not a number", err)
	}
	a.Value = value

	return a, nil
}

// extractField locates a named field and returns its unescaped value.
// The submatch indices distinguish a quoted (possibly empty) value from
// a bare one.
func extractField(encoded, name string) (string, bool) {
	m := fieldPatterns[name].FindStringSubmatchIndex(encoded)
	if m == nil {
		return "", false
	}
	if m[2] >= 0 { // quoted alternative
		return unescapePattern.ReplaceAllString(encoded[m[2]:m[3]], "$1"), true
	}
	return encoded[m[4]:m[5]], true
}
