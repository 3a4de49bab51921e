/*
Package identifier generates short textual identifiers under four schemes.

# Architecture

  - domain: Schemes, per-scheme configuration, charsets, batches and errors
  - service: Scheme generators, alphabet resolution, random sources and the reversible codec
  - usecase: Batch bookkeeping, decoding and validation with a metrics decorator
  - export: Text, CSV, JSON and YAML rendering of batches
  - http: HTTP handlers and DTOs

# Schemes

  - uuid: 36 characters shaped like a version 4 UUID (xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx)
  - nanoid: Random string of an exact length over the selected charset
  - hashids: Salted, reversible encoding of an unsigned integer padded to a minimum length
  - slug: Words joined by '-' or '_' and padded or cut to an exact length

Charsets are built from uppercase letters, lowercase letters, digits and symbols in that
order. An empty selection falls back to lowercase letters and digits. The nanoid and slug
schemes use the broad symbol set while hashids uses only '-' and '_'.

# Randomness

Generators draw from a RandomSource. The default source reads crypto/rand; a seeded source
makes every scheme reproducible for tests and fixtures:

	generator := service.NewGenerator(service.NewSeededSource(42))
	ids, err := generator.GenerateBatch(domain.NanoIDConfig{Length: 10}, 5)

# Reversible Encoding

The hashids scheme writes the positional digits of a number over its alphabet and prefixes
salted padding up to the minimum length. Decoding needs the payload length reported at
encoding time to strip the padding:

	enc, err := generator.Encode(domain.EncodeInput{Number: 123, MinLength: 6})
	// enc.ID == "cak9dp", enc.PayloadLength == 2
	n, err := generator.Decode(domain.DecodeInput{ID: enc.ID, PayloadLength: enc.PayloadLength})

Numbers whose natural encoding exceeds the minimum length fail with ErrEncodingOverflow
unless truncation is allowed, in which case only the trailing characters are kept and the
value can no longer be recovered.
*/
package identifier
