/*
Package codec converts Asset records to and from their canonical textual
encoding.

The encoding is a single-line, JSON-shaped text carrying exactly five
named fields:

	{"assetId":"A1","owner":"alice","assetType":"gold","description":"bar","value":10.50}

Untrusted string fields are sanitized before encoding: surrounding
whitespace is trimmed and carriage returns and line feeds are stripped.
Double quotes and backslashes are escaped inside the encoding, so
Decode(Encode(a)) round-trips any sanitized asset, including ones whose
fields contain quote characters.

The monetary value is always rendered with two fractional digits;
precision beyond two decimals does not survive an encode/decode round
trip.

Decode extracts each field independently by name and accepts quoted or
bare values, so it tolerates reordered fields and incidental whitespace
in stored records.
*/
package codec
