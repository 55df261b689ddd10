// Package asr decodes FBI ASR (Age/Sex/Race) master files: fixed-width,
// column-positional crime statistics records.
//
// # Architecture
//
// The package is organized around three pieces:
//
// 1. Schema: a declarative table of (name, start, end, kind) field specs,
// with the repeated demographic count runs generated from banded groups
// rather than hand-written offsets.
//
// 2. Decoder: classifies each line as a header or detail record by its
// offense-code field and applies the matching schema, producing ordered
// field-to-value records.
//
// 3. Decode loop: reads a master file line by line, skips blank lines,
// and accumulates the two record sequences in input order.
//
// # Usage
//
//	dec := asr.NewDecoder(asr.DefaultRecordLength, asr.DefaultHeaderSentinel)
//	result, err := dec.DecodeFile("2024_ASR1MON_NATIONAL_MASTER_FILE.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Notes
//
// Lines shorter than the configured record length are right-padded with
// spaces before any field is extracted, so decoding never fails on a short
// line. Malformed numeric fields degrade to zero rather than erroring.
// Classification relies solely on the offense-code field matching the
// header sentinel; a detail line whose offense code happens to equal the
// sentinel is routed to the header decoder. That ambiguity is inherent to
// the file format and is deliberately not second-guessed here.
package asr
